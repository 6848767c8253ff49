/*
Copyright © 2025 Nathan Ollerenshaw <chrome@stupendous.net>
*/
package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx"
	"github.com/matjam/blazefx/internal/cli/cmd"
	"github.com/matjam/blazefx/internal/cli/cmd/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blazefx",
	Short: "CSS animations for server rendered elements",
	Long: `blazefx attaches CSS animation classes and inline styles to elements,
optionally keeping them hidden until rendering completes, and applies them
to the live element through a small browser bridge.`,
	Run: func(cmd *cobra.Command, args []string) {
		if v, err := cmd.Flags().GetBool("installconfig"); err == nil && v {
			utils.InstallDefaultConfig()
			return
		}

		if v, err := cmd.Flags().GetBool("show-config"); err == nil && v {
			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			log.Infof("All settings:")
			utils.PrintJSONColored(viper.AllSettings())
			return
		}

		if v, err := cmd.Flags().GetBool("version"); err == nil && v {
			babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
			green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
			log.Infof("%v version %v",
				babyBlue.Render("blazefx"),
				green.Render(strings.Trim(blazefx.Version, "\n\r ")))
			return
		}

		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RegisterFlags(rootCmd)

	rootCmd.AddCommand(
		cmd.NewStartCmd(),
		cmd.NewStopCmd(),
		cmd.NewStatusCmd(),
		cmd.NewAnimateCmd(),
		cmd.NewRemoveCmd(),
		cmd.NewListCmd(),
		cmd.NewRenderCmd(),
		cmd.NewEasingsCmd(),
		cmd.NewCurveCmd(),
	)
	rootCmd.AddCommand(cmd.NewGenManCmd(rootCmd))
}
