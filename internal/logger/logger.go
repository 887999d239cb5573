package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process-wide structured logger. Unknown levels fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", "pesagem").
		Logger().
		Level(lvl)
}
