package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/chartkit/internal/colour"
)

func newInterpolateCmd(a *app) *cobra.Command {
	var fills bool

	cmd := &cobra.Command{
		Use:   "interpolate <count> <colour>...",
		Short: "Blend evenly spaced colours along ad-hoc anchors",
		Long: `Spread count colours evenly along the given anchor colours, blending RGB
channels linearly between neighbours. The first and last outputs are always
the first and last anchors.

Examples:
  chartkit interpolate 5 '#000000' '#ffffff'
  chartkit interpolate 9 navy white crimson`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[0])
			if err != nil {
				return err
			}

			anchors := make([]string, 0, len(args)-1)
			for _, arg := range args[1:] {
				hex, err := a.resolve(arg)
				if err != nil {
					return err
				}
				anchors = append(anchors, hex)
			}

			palette, err := colour.Interpolate(anchors, count)
			if err != nil {
				return err
			}
			return a.writePalette(cmd, "interpolated", palette, fills)
		},
	}

	cmd.Flags().BoolVar(&fills, "fills", false, "include rgba fill colours using the configured alpha")

	return cmd
}
