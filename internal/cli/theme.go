package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chartkit/internal/colour"
)

// themeResult is the output of the theme command.
type themeResult struct {
	Level colour.Level          `json:"level" yaml:"level"`
	Theme colour.Theme          `json:"theme" yaml:"theme"`
	Roles []colour.RoleContrast `json:"roles" yaml:"roles"`
}

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Audit the chart theme's text contrast",
		Long: `Check every text role of the chart theme against the surface it is drawn
on and suggest accessible variants for roles that fall short.

Examples:
  chartkit theme
  chartkit theme --level AAA --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTheme(cmd, a.levelFlag(cmd))
		},
	}

	addLevelFlag(cmd.Flags())

	return cmd
}

func (a *app) runTheme(cmd *cobra.Command, level colour.Level) error {
	a.warnUnknownLevel(level)

	theme := colour.DefaultTheme()
	roles, err := theme.Audit(level)
	if err != nil {
		return err
	}

	failing := 0
	for _, rc := range roles {
		if !rc.Passes {
			failing++
		}
	}
	a.logger.Debug("theme audited", "level", level, "roles", len(roles), "failing", failing)

	result := themeResult{Level: level, Theme: theme, Roles: roles}
	return a.render(cmd, result, func(w io.Writer) error {
		preview := a.showPreview(w)
		table := NewTable("Role", "Colour", "Background", "Ratio", string(level), "Suggestion")
		for _, rc := range roles {
			sample := rc.Colour
			if preview {
				sample = colour.SwatchWithText(rc.Colour, rc.Background, rc.Colour)
			}
			table.AddRow(rc.Role, sample, rc.Background, fmt.Sprintf("%.2f", rc.Ratio), verdict(rc.Passes), rc.Suggestion)
		}
		fmt.Fprint(w, table.Render())
		return nil
	})
}
