package cli

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blazefx")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/blazefx")
		viper.AddConfigPath("/etc/xdg/blazefx")
	}

	viper.SetDefault("preview_addr", "127.0.0.1:7766")
	viper.SetDefault("debug", false)
	viper.SetDefault("defaults.duration", 1.0)
	viper.SetDefault("defaults.delay", 0.0)
	viper.SetDefault("defaults.easing", "ease-in")
	viper.SetDefault("defaults.fill_mode", "both")

	viper.SetEnvPrefix("blazefx")
	viper.AutomaticEnv() // read environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatalf("Error reading config: %v", err)
		}
		log.Debug("No config file found, using defaults")
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}
