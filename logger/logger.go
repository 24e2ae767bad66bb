// Package logger configures the process-wide zerolog logger.
//
// Development gets a human-readable console writer; production gets JSON lines
// on stdout for log aggregators.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a logger writing to w at the named level. Unknown levels fall back to info.
func New(w io.Writer, level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Init installs the logger as zerolog's global and returns it
func Init(level string, production bool) zerolog.Logger {
	l := New(os.Stdout, level, !production)
	log.Logger = l
	return l
}
