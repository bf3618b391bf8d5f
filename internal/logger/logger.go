package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New creates a logger writing human-readable output to stderr. With verbose
// false only warnings and errors are emitted, keeping stdout clean for the
// generated commit message.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything, for tests and library use.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
