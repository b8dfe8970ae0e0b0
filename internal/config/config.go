package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	Tabs []string
	UI   UIConfig
	Log  LogConfig
}

// UIConfig holds presentation settings for the tab view.
type UIConfig struct {
	ForceFixedTabWidth    bool
	FixedTabWidthFraction float64
	IndicatorColor        string
	BackgroundColor       string
	ShowSeparator         bool
	TabTopPadding         int
	TabBottomPadding      int
}

// LogConfig holds event-log settings.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix
// LOOPTAB_. An explicit path wins over LOOPTAB_CONFIG and the default
// location.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("tabs", []string{"Home", "News", "Music", "Video", "Books", "Games", "Sports", "Mail", "Maps"})
	v.SetDefault("ui.force_fixed_tab_width", false)
	v.SetDefault("ui.fixed_tab_width_fraction", 0.5)
	v.SetDefault("ui.indicator_color", "")
	v.SetDefault("ui.background_color", "")
	v.SetDefault("ui.show_separator", true)
	v.SetDefault("ui.tab_top_padding", 0)
	v.SetDefault("ui.tab_bottom_padding", 0)
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("LOOPTAB_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "looptab"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LOOPTAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Tabs) == 0 {
		return Config{}, fmt.Errorf("config: tabs must not be empty")
	}
	return c, nil
}
