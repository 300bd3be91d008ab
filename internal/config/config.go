package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Source SourceConfig
	UI     UIConfig
}

// SourceConfig selects where the draft document comes from. URL wins
// when both are set; Path is the local fallback.
type SourceConfig struct {
	URL            string
	Path           string
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title   string
	Columns int
}

// Load reads configuration from file and env. Env var overrides use
// prefix DRAFTBOARD_. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("source.url", "")
	v.SetDefault("source.path", "draft.json")
	v.SetDefault("source.timeout_seconds", 0)
	v.SetDefault("ui.title", "Draftboard")
	v.SetDefault("ui.columns", 4)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DRAFTBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "draftboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DRAFTBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

func normalize(c Config) Config {
	if strings.TrimSpace(c.Source.Path) == "" && strings.TrimSpace(c.Source.URL) == "" {
		c.Source.Path = "draft.json"
	}
	if c.Source.TimeoutSeconds < 0 {
		c.Source.TimeoutSeconds = 0
	}
	if c.UI.Columns < 1 || c.UI.Columns > 8 {
		c.UI.Columns = 4
	}
	if strings.TrimSpace(c.UI.Title) == "" {
		c.UI.Title = "Draftboard"
	}
	return c
}
