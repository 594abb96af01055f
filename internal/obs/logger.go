// Package obs sets up the process-wide zerolog logger.
package obs

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global logger to write human-readable lines to
// w at the given level. Unknown levels fall back to warn.
func InitLogger(w io.Writer, level string) {
	if w == nil {
		w = os.Stderr
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// Logger returns a child of the global logger tagged with component.
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
