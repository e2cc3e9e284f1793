package main

import (
	"log/slog"

	"commandapi/config"
	"commandapi/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	configPath string
	v          = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "commandapi",
	Short: "A catalogue of command lines, served over HTTP",
	Long: `commandapi keeps "how to" notes for command lines: what a command does,
the platform it is for, and the line to type. It serves them as a REST API
(serve) and browses, edits and runs them in the terminal (browse).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("commandapi version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default $HOME/.commandapi/config.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")
	flags.String("driver", "", "store backend: sqlite, memory, gorm-sqlite or gorm-postgres")
	flags.String("dsn", "", "database file or connection string for the driver")

	mustBind("log.level", flags.Lookup("log-level"))
	mustBind("log.format", flags.Lookup("log-format"))
	mustBind("driver", flags.Lookup("driver"))
	mustBind("dsn", flags.Lookup("dsn"))
}

// loadConfig reads configuration and builds the logger from it.
// Precedence: flags > COMMANDAPI_* env > config file > defaults.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(logging.Config{
		Format: logging.Format(cfg.Log.Format),
		Level:  cfg.Log.Level,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func mustBind(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
