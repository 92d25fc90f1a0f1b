package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Refresh RefreshConfig
	Log     LogConfig
}

// APIConfig holds remote endpoint settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// StorageConfig holds the persisted-state location.
type StorageConfig struct {
	Path string
}

// RefreshConfig holds session refresh settings.
type RefreshConfig struct {
	Interval time.Duration
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// STOREFRONT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "https://dummyjson.com")
	v.SetDefault("storage.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "storefront", "storefront.db"))
	v.SetDefault("refresh.interval", "4m")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "storefront", "storefront.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("STOREFRONT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "storefront"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
