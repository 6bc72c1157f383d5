package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"todolist/internal/config"
)

// New builds the application logger. In the local env it writes
// human-readable console output; elsewhere it emits JSON lines.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	w := io.Writer(os.Stdout)
	if cfg.Env == config.EnvLocal {
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = os.Stdout
		w = consoleWriter
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
