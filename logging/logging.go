package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the encoding of log records.
type Format string

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

// Config holds logger configuration
type Config struct {
	Format Format
	Level  string
	Output io.Writer // defaults to stderr
}

// New builds a slog.Logger from config.
//
// Level is one of debug, info, warn, error (case insensitive); empty means info.
func New(config Config) (*slog.Logger, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	switch Format(strings.ToLower(string(config.Format))) {
	case JSONFormat:
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	case TextFormat, "":
		return slog.New(slog.NewTextHandler(out, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q: should be text or json", config.Format)
	}
}

func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return level, nil
}

// Discard returns a logger which writes nothing.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
