package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chartkit/internal/colour"
)

func newVariantCmd(a *app) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "variant <colour>",
		Short: "Find an accessible variant of a colour",
		Long: `Find a variant of a colour that meets a WCAG level on a background.

A colour that already passes is printed unchanged. Otherwise its HSL
lightness is moved away from the background in 5% steps, up to ten times,
keeping hue and saturation. If no step passes, black is used on light
backgrounds and white on dark ones.

Examples:
  chartkit variant '#93c5fd'
  chartkit variant '#1e40af' --background '#000000' --level AAA --explain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := a.backgroundFlag(cmd)
			if err != nil {
				return fmt.Errorf("invalid background: %w", err)
			}
			return a.runVariant(cmd, args[0], bg, a.levelFlag(cmd), explain)
		},
	}

	addBackgroundFlag(cmd.Flags())
	addLevelFlag(cmd.Flags())
	cmd.Flags().BoolVar(&explain, "explain", false, "show how the variant was found")

	return cmd
}

func (a *app) runVariant(cmd *cobra.Command, input, bg string, level colour.Level, explain bool) error {
	hex, err := a.resolve(input)
	if err != nil {
		return err
	}
	a.warnUnknownLevel(level)

	report, err := colour.ExplainVariant(hex, bg, level)
	if err != nil {
		return err
	}
	if report.Fallback {
		a.logger.Warn("no lightness step met the level, using fallback", "colour", hex, "background", bg, "level", level, "result", report.Result)
	}
	a.logger.Debug("variant search finished", "colour", hex, "result", report.Result, "steps", report.Steps)

	if !explain && a.format != formatText {
		return a.render(cmd, map[string]string{"colour": report.Result}, nil)
	}

	return a.render(cmd, report, func(w io.Writer) error {
		preview := a.showPreview(w)
		if !explain {
			if preview {
				fmt.Fprintln(w, colour.SwatchWithText(report.Result, bg, report.Result))
				return nil
			}
			fmt.Fprintln(w, report.Result)
			return nil
		}

		if preview {
			fmt.Fprintf(w, "%s -> %s\n", colour.SwatchWithText(report.Original, bg, report.Original), colour.SwatchWithText(report.Result, bg, report.Result))
		}
		fmt.Fprintf(w, "original:   %s (%.2f:1)\n", report.Original, report.Before)
		fmt.Fprintf(w, "result:     %s (%.2f:1)\n", report.Result, report.After)
		fmt.Fprintf(w, "background: %s\n", report.Background)
		fmt.Fprintf(w, "level:      %s\n", report.Level)
		switch {
		case !report.Adjusted:
			fmt.Fprintln(w, "status:     already accessible")
		case report.Fallback:
			fmt.Fprintf(w, "status:     fallback after %d steps\n", report.Steps)
		default:
			fmt.Fprintf(w, "status:     adjusted in %d steps\n", report.Steps)
		}
		return nil
	})
}
