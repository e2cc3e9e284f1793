package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"commandapi/config"
)

func TestLoad(t *testing.T) {
	t.Run("it returns defaults when no file is found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		got, err := config.Load(config.New(), "")
		if err != nil {
			t.Fatal(err)
		}
		want := config.DefaultConfig()
		if *got != *want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("file overrides defaults and env overrides file", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		path := filepath.Join(t.TempDir(), "commandapi.yaml")
		if err := os.WriteFile(path, []byte(`
listen: ":9000"
driver: gorm-sqlite
shutdownTimeout: 3s
log:
  level: debug
  format: json
`), 0644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("COMMANDAPI_LOG_LEVEL", "warn")
		t.Setenv("COMMANDAPI_DSN", "/tmp/x.db")

		got, err := config.Load(config.New(), path)
		if err != nil {
			t.Fatal(err)
		}
		if got.Listen != ":9000" {
			t.Errorf("Listen = %q", got.Listen)
		}
		if got.Driver != "gorm-sqlite" {
			t.Errorf("Driver = %q", got.Driver)
		}
		if got.DSN != "/tmp/x.db" {
			t.Errorf("DSN = %q", got.DSN)
		}
		if got.ShutdownTimeout != 3*time.Second {
			t.Errorf("ShutdownTimeout = %v", got.ShutdownTimeout)
		}
		if got.Log.Level != "warn" {
			t.Errorf("Log.Level = %q", got.Log.Level)
		}
		if got.Log.Format != "json" {
			t.Errorf("Log.Format = %q", got.Log.Format)
		}
	})

	t.Run("it fails when the named file is missing", func(t *testing.T) {
		if _, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Load succeeded, want error")
		}
	})

	t.Run("it rejects invalid values", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("COMMANDAPI_SHUTDOWNTIMEOUT", "-1s")
		_, err := config.Load(config.New(), "")
		cerr := new(config.ConfigError)
		if !errors.As(err, &cerr) || cerr.Field != "shutdownTimeout" {
			t.Errorf("err = %v, want ConfigError on shutdownTimeout", err)
		}
	})
}
