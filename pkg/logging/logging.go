// Package logging builds the zerolog logger shared by every command.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names fall
// back to warn so degraded states still surface.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "OFF", "DISABLED":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// New returns a console logger writing to w at the named level.
func New(level string, w io.Writer) zerolog.Logger {
	return NewWithColor(level, w, false)
}

// NewWithColor is New with control over ANSI colors.
func NewWithColor(level string, w io.Writer, color bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}
