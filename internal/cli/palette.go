package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chartkit/internal/colour"
)

// paletteResult is the output of the palette and interpolate commands.
type paletteResult struct {
	Type   string         `json:"type" yaml:"type"`
	Count  int            `json:"count" yaml:"count"`
	Colors colour.Palette `json:"colors" yaml:"colors"`
	Fills  []string       `json:"fills,omitempty" yaml:"fills,omitempty"`
}

func newPaletteCmd(a *app) *cobra.Command {
	var (
		paletteType string
		fills       bool
	)

	cmd := &cobra.Command{
		Use:   "palette <count>",
		Short: "Generate colours for chart series",
		Long: `Generate colours for chart series.

Palette types:
  categorical          cycle through 12 distinct colours
  sequential_<name>    light to dark along a sequential scale
  diverging_<name>     two hues meeting at a light midpoint

Scales with fewer anchors than requested are interpolated. Unknown types
and unknown scale names fall back to categorical. Run 'chartkit scales' to
list scale names.

Examples:
  chartkit palette 5
  chartkit palette 12 --type sequential_blue
  chartkit palette 7 --type diverging_blue_red --fills`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("type") {
				paletteType = a.cfg.Palette
			}
			return a.runPalette(cmd, count, paletteType, fills)
		},
	}

	cmd.Flags().StringVarP(&paletteType, "type", "t", colour.PaletteCategorical, "palette type (categorical, sequential_<name>, diverging_<name>)")
	cmd.Flags().BoolVar(&fills, "fills", false, "include rgba fill colours using the configured alpha")

	return cmd
}

func (a *app) runPalette(cmd *cobra.Command, count int, paletteType string, fills bool) error {
	if paletteType != colour.PaletteCategorical {
		if _, ok := a.registry.Scale(paletteType); !ok {
			a.logger.Warn("unknown palette type, using categorical", "type", paletteType)
		}
	}

	palette := a.registry.ChartColors(count, paletteType)
	return a.writePalette(cmd, paletteType, palette, fills)
}

func (a *app) writePalette(cmd *cobra.Command, paletteType string, palette colour.Palette, fills bool) error {
	result := paletteResult{
		Type:   paletteType,
		Count:  palette.Len(),
		Colors: palette,
	}
	if fills {
		result.Fills = make([]string, len(palette))
		for i, hex := range palette {
			fill, err := colour.HexToRGBA(hex, a.cfg.Alpha)
			if err != nil {
				return err
			}
			result.Fills[i] = fill
		}
	}

	return a.render(cmd, result, func(w io.Writer) error {
		preview := a.showPreview(w)
		for i, hex := range result.Colors {
			line := hex
			if preview {
				line = colour.FormatWithPreview(hex, 8)
			}
			if fills {
				line += "  " + result.Fills[i]
			}
			fmt.Fprintln(w, line)
		}
		return nil
	})
}

// parseCount parses a positive colour count.
func parseCount(s string) (int, error) {
	count, err := strconv.Atoi(s)
	if err != nil || count < 1 {
		return 0, fmt.Errorf("invalid count %q: must be a positive integer", s)
	}
	return count, nil
}
