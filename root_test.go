package main

import (
	"testing"
)

func TestRootCmd_Subcommands(t *testing.T) {
	for _, name := range []string{"serve", "browse"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if cmd.Name() != name {
			t.Errorf("Find(%s) = %s", name, cmd.Name())
		}
	}
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COMMANDAPI_DRIVER", "gorm-sqlite")

	if err := serveCmd.Flags().Set("listen", ":18080"); err != nil {
		t.Fatal(err)
	}
	if err := rootCmd.PersistentFlags().Set("driver", "memory"); err != nil {
		t.Fatal(err)
	}

	cfg, log, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if log == nil {
		t.Error("logger is nil")
	}
	if cfg.Listen != ":18080" {
		t.Errorf("Listen = %q, want :18080", cfg.Listen)
	}
	if cfg.Driver != "memory" {
		t.Errorf("Driver = %q, want memory", cfg.Driver)
	}
}
