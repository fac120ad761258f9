package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatText    = "text"
	FormatConsole = "console"
)

// New builds a Logger writing to w. json and text go through slog,
// console goes through zerolog's ConsoleWriter.
func New(format, level string, w io.Writer) (Logger, error) {
	switch format {
	case "", FormatJSON, FormatText:
		var lvl slog.Level
		if level != "" {
			if err := lvl.UnmarshalText([]byte(level)); err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", level, err)
			}
		}
		opts := &slog.HandlerOptions{Level: lvl}
		if format == FormatText {
			return NewSlogLogger(slog.New(slog.NewTextHandler(w, opts))), nil
		}
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, opts))), nil

	case FormatConsole:
		lvl := zerolog.InfoLevel
		if level != "" {
			var err error
			if lvl, err = zerolog.ParseLevel(level); err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", level, err)
			}
		}
		l := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
			Level(lvl).
			With().Timestamp().Logger()
		return NewZerologLogger(l), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}
