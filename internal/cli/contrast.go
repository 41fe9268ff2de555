package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chartkit/internal/colour"
)

// contrastResult is the output of the contrast command.
type contrastResult struct {
	Foreground string  `json:"foreground" yaml:"foreground"`
	Background string  `json:"background" yaml:"background"`
	Ratio      float64 `json:"ratio" yaml:"ratio"`
	AA         bool    `json:"aa" yaml:"aa"`
	AAA        bool    `json:"aaa" yaml:"aaa"`
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Show the WCAG contrast ratio between two colours",
		Long: `Show the WCAG 2.0 contrast ratio between two colours and whether it meets
the AA (4.5:1) and AAA (7:1) thresholds for normal text. The ratio does not
depend on argument order.

Examples:
  chartkit contrast '#1e40af' '#ffffff'
  chartkit contrast navy white --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runContrast(cmd, args[0], args[1])
		},
	}
}

func (a *app) runContrast(cmd *cobra.Command, fgInput, bgInput string) error {
	fg, err := a.resolve(fgInput)
	if err != nil {
		return fmt.Errorf("invalid foreground: %w", err)
	}
	bg, err := a.resolve(bgInput)
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}

	ratio, err := colour.ContrastRatioHex(fg, bg)
	if err != nil {
		return err
	}

	result := contrastResult{
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
		AA:         colour.Passes(ratio, colour.LevelAA),
		AAA:        colour.Passes(ratio, colour.LevelAAA),
	}

	return a.render(cmd, result, func(w io.Writer) error {
		if a.showPreview(w) {
			fmt.Fprintln(w, colour.SwatchWithText(fg, bg, "The quick brown fox"))
		}
		fmt.Fprintf(w, "%s on %s: %.2f:1\n", fg, bg, ratio)
		fmt.Fprintf(w, "AA  (%.1f:1): %s\n", colour.ThresholdAA, verdict(result.AA))
		fmt.Fprintf(w, "AAA (%.1f:1): %s\n", colour.ThresholdAAA, verdict(result.AAA))
		return nil
	})
}
