package jisho

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is used by the whole package. It discards everything until the
// caller replaces it.
var Logger = zerolog.Nop()

// NewConsoleLogger returns a human readable logger writing to w.
func NewConsoleLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Str("component", "jisho").
		Logger()
}
