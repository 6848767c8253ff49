package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func RegisterFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/blazefx/blazefx.toml)")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().String("socket", "", "control socket (default is $XDG_RUNTIME_DIR/blazefx.sock)")
	viper.BindPFlag("socket", rootCmd.PersistentFlags().Lookup("socket"))

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.Flags().BoolP("installconfig", "i", false, "Install a default config file")
	rootCmd.Flags().Bool("show-config", false, "Dump resolved config")
	rootCmd.Flags().BoolP("version", "v", false, "Print version")
}
