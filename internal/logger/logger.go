package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. format is "json" for raw JSON lines,
// anything else gives the human-readable console writer. Unknown levels fall back to info.
func Init(format, level string) {
	Setup(os.Stderr, format, level)
}

// Setup is Init with an explicit destination.
func Setup(out io.Writer, format, level string) {
	var w io.Writer = out
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	log.Logger = zerolog.New(w).With().Timestamp().Caller().Logger()
}
