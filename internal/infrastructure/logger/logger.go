package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the log level and output format.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// New builds the process-wide zerolog logger. JSON output goes to stdout
// unless console format is requested, which is friendlier for local runs.
func New(cfg Config) zerolog.Logger {
	return zerolog.New(writerFor(cfg.Format)).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Caller().
		Logger()
}

func writerFor(format string) io.Writer {
	if format == "console" {
		return zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}
	return os.Stdout
}

// parseLevel maps a level name to a zerolog level, defaulting to info
// when the name is empty or unrecognized.
func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
