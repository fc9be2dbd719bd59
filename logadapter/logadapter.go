// logadapter.go - zerolog-backed implementation of coretiming.Logger
//
// The scheduler core only ever depends on coretiming.Logger, so swapping
// this adapter for another implementation needs no change to the core.
package logadapter

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger adapts a zerolog.Logger to coretiming.Logger.
type Logger struct {
	z zerolog.Logger
}

// New returns a Logger that writes human-readable, console-formatted
// output to os.Stderr.
func New() *Logger {
	return &Logger{z: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()}
}

// Wrap adapts an already-configured zerolog.Logger.
func Wrap(z zerolog.Logger) *Logger {
	return &Logger{z: z}
}

func (l *Logger) Warnf(format string, args ...any) {
	l.z.Warn().Msgf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.z.Error().Msgf(format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.z.Info().Msgf(format, args...)
}

func (l *Logger) Noticef(format string, args ...any) {
	// zerolog has no "notice" level; it's logged at Info with a field so
	// it can still be filtered by anyone parsing the structured output.
	l.z.Info().Str("kind", "notice").Msgf(format, args...)
}

func (l *Logger) Panicf(format string, args ...any) {
	l.z.Error().Str("kind", "panic-notify").Msgf(format, args...)
}
