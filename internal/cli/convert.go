package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chartkit/internal/colour"
)

// convertResult is the output of the convert command.
type convertResult struct {
	Input     string     `json:"input" yaml:"input"`
	Hex       string     `json:"hex" yaml:"hex"`
	RGB       colour.RGB `json:"rgb" yaml:"rgb"`
	HSL       colour.HSL `json:"hsl" yaml:"hsl"`
	RGBA      string     `json:"rgba" yaml:"rgba"`
	Luminance float64    `json:"luminance" yaml:"luminance"`
}

func newConvertCmd(a *app) *cobra.Command {
	var alpha float64

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour as hex, RGB, HSL and rgba",
		Long: `Show a colour in every supported representation along with its WCAG
relative luminance.

Examples:
  # Hex, RGB, HSL and a translucent fill
  chartkit convert '#1e40af'

  # Colour names work too
  chartkit convert navy --alpha 0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("alpha") {
				alpha = a.cfg.Alpha
			}
			return a.runConvert(cmd, args[0], alpha)
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", colour.DefaultFillAlpha, "alpha for the rgba form (0-1)")

	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, input string, alpha float64) error {
	hex, err := a.resolve(input)
	if err != nil {
		return err
	}
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return err
	}
	rgba, err := colour.HexToRGBA(hex, alpha)
	if err != nil {
		return err
	}

	result := convertResult{
		Input:     input,
		Hex:       hex,
		RGB:       rgb,
		HSL:       colour.RGBToHSL(rgb),
		RGBA:      rgba,
		Luminance: colour.Luminance(rgb),
	}

	return a.render(cmd, result, func(w io.Writer) error {
		if a.showPreview(w) {
			fmt.Fprintln(w, colour.Swatch(hex, 16))
		}
		fmt.Fprintf(w, "hex:       %s\n", result.Hex)
		fmt.Fprintf(w, "rgb:       %s\n", result.RGB)
		fmt.Fprintf(w, "hsl:       hsl(%.1f, %.1f%%, %.1f%%)\n", result.HSL.H, result.HSL.S*100, result.HSL.L*100)
		fmt.Fprintf(w, "rgba:      %s\n", result.RGBA)
		fmt.Fprintf(w, "luminance: %.4f\n", result.Luminance)
		return nil
	})
}
