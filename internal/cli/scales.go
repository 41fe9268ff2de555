package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/chartkit/internal/colour"
)

// scalesResult is the output of the scales command.
type scalesResult struct {
	Categorical []string            `json:"categorical" yaml:"categorical"`
	Scales      []colour.Scale      `json:"scales" yaml:"scales"`
	Brand       map[string][]string `json:"brand" yaml:"brand"`
}

func newScalesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List palette types and their anchor colours",
		Long: `List the categorical palette, every registered sequential and diverging
scale (built-in and from configuration), and the brand colour groups.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScales(cmd)
		},
	}
}

func (a *app) runScales(cmd *cobra.Command) error {
	result := scalesResult{
		Categorical: a.registry.Categorical(),
		Scales:      a.registry.Scales(),
		Brand:       make(map[string][]string),
	}
	for _, name := range colour.BrandGroupNames() {
		result.Brand[name], _ = colour.BrandGroup(name)
	}

	return a.render(cmd, result, func(w io.Writer) error {
		preview := a.showPreview(w)
		strip := func(colors []string) string {
			if preview {
				return strings.Join(lo.Map(colors, func(hex string, _ int) string {
					return colour.Swatch(hex, 2)
				}), "")
			}
			return strings.Join(colors, " ")
		}

		table := NewTable("Type", "Anchors", "Colours")
		table.AddRow(colour.PaletteCategorical, strconv.Itoa(len(result.Categorical)), strip(result.Categorical))
		for _, s := range result.Scales {
			table.AddRow(s.PaletteType(), strconv.Itoa(len(s.Colors)), strip(s.Colors))
		}
		fmt.Fprint(w, table.Render())

		fmt.Fprintln(w)
		brand := NewTable("Brand", "Colours")
		for _, name := range colour.BrandGroupNames() {
			brand.AddRow(name, strip(result.Brand[name]))
		}
		fmt.Fprint(w, brand.Render())
		return nil
	})
}
