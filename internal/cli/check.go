package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chartkit/internal/colour"
)

// checkResult is the output of the check command.
type checkResult struct {
	Foreground string       `json:"foreground" yaml:"foreground"`
	Background string       `json:"background" yaml:"background"`
	Level      colour.Level `json:"level" yaml:"level"`
	Ratio      float64      `json:"ratio" yaml:"ratio"`
	Accessible bool         `json:"accessible" yaml:"accessible"`
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <foreground> [background]",
		Short: "Check whether a colour pair meets a WCAG level",
		Long: `Check whether a foreground colour meets the contrast threshold of a WCAG
level on a background. The background defaults to the configured background.

The command exits non-zero when the pair is not accessible. A level other
than AA or AAA is never accessible.

Examples:
  chartkit check '#6b7280'
  chartkit check '#6b7280' '#ffffff' --level AAA`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg := a.cfg.Background
			if len(args) == 2 {
				bg = args[1]
			}
			return a.runCheck(cmd, args[0], bg, a.levelFlag(cmd))
		},
	}

	addLevelFlag(cmd.Flags())

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, fgInput, bgInput string, level colour.Level) error {
	fg, err := a.resolve(fgInput)
	if err != nil {
		return fmt.Errorf("invalid foreground: %w", err)
	}
	bg, err := a.resolve(bgInput)
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	a.warnUnknownLevel(level)

	ok, err := colour.IsAccessible(fg, bg, level)
	if err != nil {
		return err
	}
	ratio, err := colour.ContrastRatioHex(fg, bg)
	if err != nil {
		return err
	}

	result := checkResult{
		Foreground: fg,
		Background: bg,
		Level:      level,
		Ratio:      ratio,
		Accessible: ok,
	}

	if !a.quiet {
		err = a.render(cmd, result, func(w io.Writer) error {
			fmt.Fprintf(w, "%s on %s at %s: %s (%.2f:1)\n", fg, bg, level, verdict(ok), ratio)
			return nil
		})
		if err != nil {
			return err
		}
	}

	if !ok {
		return fmt.Errorf("%s on %s at %s: %w", fg, bg, level, ErrNotAccessible)
	}
	return nil
}
