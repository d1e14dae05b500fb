package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. Output goes to stderr so stdout stays free
// for battle results. Unknown levels fall back to info.
func New(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Caller().
		Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}
