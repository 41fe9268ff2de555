// Package cli provides the command-line interface for chartkit.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/chartkit/internal/colour"
	"github.com/jmylchreest/chartkit/internal/config"
	"github.com/jmylchreest/chartkit/internal/version"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Preview modes.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// app carries state shared by every subcommand of one root command.
type app struct {
	verbose    bool
	quiet      bool
	configPath string
	format     string
	preview    string

	logger   hclog.Logger
	cfg      *config.Config
	registry *colour.Registry
}

// NewRootCmd builds the chartkit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "chartkit",
		Short: "Accessible colours and palettes for charts",
		Long: `chartkit checks WCAG contrast between chart colours, finds accessible
variants of colours that fall short, and generates categorical, sequential
and diverging palettes for chart series.

Colours are given as #rrggbb, rrggbb or an SVG colour name such as navy.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./chartkit.yaml or $XDG_CONFIG_HOME/chartkit/chartkit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", formatText, "output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&a.preview, "preview", previewAuto, "colour swatches in text output (auto, always, never)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConvertCmd(a),
		newContrastCmd(a),
		newCheckCmd(a),
		newVariantCmd(a),
		newPaletteCmd(a),
		newInterpolateCmd(a),
		newScalesCmd(a),
		newThemeCmd(a),
	)

	return rootCmd
}

// setup validates global flags, configures logging and loads configuration.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := hclog.Info
	switch {
	case a.quiet:
		level = hclog.Error
	case a.verbose:
		level = hclog.Debug
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "chartkit",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	switch a.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("invalid format: %s (valid: text, json, yaml)", a.format)
	}
	switch a.preview {
	case previewAuto, previewAlways, previewNever:
	default:
		return fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", a.preview)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded", "level", cfg.Level, "background", cfg.Background, "palette", cfg.Palette, "scales", len(cfg.Scales))

	registry, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("invalid scale configuration: %w", err)
	}
	a.registry = registry

	return nil
}

// showPreview reports whether text output should include swatches.
func (a *app) showPreview(w io.Writer) bool {
	switch a.preview {
	case previewAlways:
		return true
	case previewNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// resolve turns a colour argument into "#rrggbb".
func (a *app) resolve(input string) (string, error) {
	hex, err := colour.Resolve(input)
	if err != nil {
		return "", err
	}
	if hex != input {
		a.logger.Debug("resolved colour", "input", input, "hex", hex)
	}
	return hex, nil
}

// levelFlag returns the --level value, or the configured level when unset.
func (a *app) levelFlag(cmd *cobra.Command) colour.Level {
	if f, ok := flagChanged(cmd.Flags(), "level"); ok {
		return colour.ParseLevel(f.Value.String())
	}
	return a.cfg.AccessibilityLevel()
}

// backgroundFlag returns the --background value resolved to hex, or the
// configured background when unset.
func (a *app) backgroundFlag(cmd *cobra.Command) (string, error) {
	if f, ok := flagChanged(cmd.Flags(), "background"); ok {
		return a.resolve(f.Value.String())
	}
	return a.cfg.Background, nil
}

// warnUnknownLevel logs when a level will evaluate as never accessible.
func (a *app) warnUnknownLevel(level colour.Level) {
	if _, ok := level.Threshold(); !ok {
		a.logger.Warn("unknown accessibility level, every colour will fail", "level", level)
	}
}

// ErrNotAccessible is returned by check when a pair fails its level.
var ErrNotAccessible = errors.New("contrast below required level")

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
