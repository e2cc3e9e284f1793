package db

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Drivers lists the names Open accepts.
var Drivers = []string{"sqlite", "memory", "gorm-sqlite", "gorm-postgres"}

// Backend is a Store holding resources which should be released by Close.
type Backend interface {
	Store
	io.Closer
}

// Open returns the Store backend for driver.
//
// dsn is a file path for "sqlite" and "gorm-sqlite" (empty means the default
// path, see DefaultPath), a connection string for "gorm-postgres", and is
// ignored for "memory".
func Open(driver, dsn string, log *slog.Logger) (Backend, error) {
	switch strings.ToLower(driver) {
	case "memory":
		return NewMemory(), nil
	case "sqlite", "":
		path, err := pathOrDefault(dsn)
		if err != nil {
			return nil, err
		}
		return NewSQLite(path)
	case "gorm-sqlite":
		path, err := pathOrDefault(dsn)
		if err != nil {
			return nil, err
		}
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, err
			}
		}
		return NewGorm("sqlite", path, log)
	case "gorm-postgres":
		if dsn == "" {
			return nil, fmt.Errorf("driver %s needs a dsn", driver)
		}
		return NewGorm("postgres", dsn, log)
	default:
		return nil, fmt.Errorf(
			"unknown driver %q: should be one of %s",
			driver, strings.Join(Drivers, ", "),
		)
	}
}

// DefaultPath is where the sqlite database lives unless told otherwise:
// $HOME/.commandapi/commands.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".commandapi", "commands.db"), nil
}

func pathOrDefault(dsn string) (string, error) {
	if dsn != "" {
		return dsn, nil
	}
	return DefaultPath()
}
