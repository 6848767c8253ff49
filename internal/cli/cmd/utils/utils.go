package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx"
	"github.com/matjam/blazefx/internal/types"
	"github.com/spf13/viper"
	"github.com/tidwall/pretty"
)

func CanonicalPath(path string) string {
	if path == "" {
		return ""
	}

	if path == "~" {
		return os.Getenv("HOME")
	}

	if strings.HasPrefix(path, "~/") {
		homeDir := os.Getenv("HOME")
		return strings.Replace(path, "~", homeDir, 1)
	}

	return path
}

func PrintJSONColored(data interface{}) {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Errorf("Error marshalling JSON: %v", err)
		return
	}

	PrintRawJSON(j)
}

func PrintRawJSON(j []byte) {
	jPretty := pretty.Color(pretty.Pretty(j), nil)
	log.Info(string(jPretty))
}

func InstallDefaultConfig() {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}

	configPath := filepath.Join(configDir, "blazefx", "blazefx.toml")

	if _, err := os.Stat(configPath); err == nil {
		log.Warnf("Config file already exists at %v", configPath)
		return
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		log.Fatalf("Error creating config directory: %v", err)
	}

	if err := os.WriteFile(configPath, []byte(blazefx.DefaultConfig), 0644); err != nil {
		log.Fatalf("Error writing config file: %v", err)
	}

	log.Infof("Installed default config file at %v", configPath)
}

// LoadDefaults reads the [defaults] table.
func LoadDefaults() (types.Defaults, error) {
	d := types.DefaultDefaults()
	if err := viper.UnmarshalKey("defaults", &d); err != nil {
		return d, fmt.Errorf("decoding defaults: %w", err)
	}
	if err := d.Validate(); err != nil {
		return d, fmt.Errorf("defaults: %w", err)
	}
	return d, nil
}

// LoadElements reads the [[elements]] tables.
func LoadElements() ([]types.ElementSpec, error) {
	var specs []types.ElementSpec
	if err := viper.UnmarshalKey("elements", &specs); err != nil {
		return nil, fmt.Errorf("decoding elements: %w", err)
	}
	return specs, nil
}
