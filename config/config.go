package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables read as configuration,
// e.g. COMMANDAPI_LISTEN or COMMANDAPI_LOG_LEVEL.
const EnvPrefix = "COMMANDAPI"

// Config represents the complete commandapi configuration
type Config struct {
	// Listen is the address serve binds to.
	Listen string `mapstructure:"listen"`
	// Driver selects the store backend (see db.Drivers).
	Driver string `mapstructure:"driver"`
	// DSN is the database file or connection string of the driver.
	DSN string `mapstructure:"dsn"`
	// ShutdownTimeout bounds graceful shutdown of serve.
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
	// Server is the base URL browse talks to. Empty means the local store.
	Server string `mapstructure:"server"`

	Log LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() *Config {
	return &Config{
		Listen:          "127.0.0.1:8080",
		Driver:          "sqlite",
		DSN:             "",
		ShutdownTimeout: 10 * time.Second,
		Server:          "",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// New returns a viper carrying the defaults and reading COMMANDAPI_* env.
//
// Callers may bind flags to it before Load.
func New() *viper.Viper {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("listen", d.Listen)
	v.SetDefault("driver", d.Driver)
	v.SetDefault("dsn", d.DSN)
	v.SetDefault("shutdownTimeout", d.ShutdownTimeout)
	v.SetDefault("server", d.Server)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path into v and decodes the result.
//
// With an empty path, config.{yaml,json,toml} in $HOME/.commandapi is read when
// present. A named file which does not exist is an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".commandapi"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ShutdownTimeout < 0 {
		return &ConfigError{Field: "shutdownTimeout", Message: "should not be negative"}
	}
	if c.Listen == "" {
		return &ConfigError{Field: "listen", Message: "should not be empty"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
