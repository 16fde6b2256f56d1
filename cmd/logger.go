package cmd

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global zerolog logger to write on w, according to
// the global flags.
func SetupLogger(w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl := zerolog.WarnLevel
	if Verbose {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)

	out := w
	if strings.ToLower(strings.TrimSpace(logFormat)) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}
