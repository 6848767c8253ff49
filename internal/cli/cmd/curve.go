package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx/internal/curve"
	"github.com/matjam/blazefx/pkg/fx"
	"github.com/spf13/cobra"
)

func NewCurveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve [easing]",
		Short: "Plot an easing curve in the terminal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			e, err := fx.ParseEasing(args[0])
			if err != nil {
				log.Fatalf("%v", err)
			}
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n\n%s\n", e, e.CSS(), curve.Plot(e, width, height))
		},
	}
	cmd.Flags().Int("width", 60, "plot width in columns")
	cmd.Flags().Int("height", 16, "plot height in rows")
	return cmd
}
