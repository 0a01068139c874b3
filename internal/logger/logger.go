package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
	Output string `mapstructure:"output" validate:"oneof=stdout stderr file"`
	File   string `mapstructure:"file" validate:"required_if=Output file"`
}

// NewLogger initializes a new slog logger based on the provided configuration.
// A nil output resolves to the console: stdout, or stderr when cfg.Output is
// "stderr" or "file". Callers logging to a file open it with OpenOutput so
// they own its closer.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output = consoleOutput(cfg)
	}

	level := new(slog.Level)
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = new(slog.Level)
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, &slog.HandlerOptions{
			Level: level,
		})
	case "text":
		fallthrough
	default:
		handler = slog.NewTextHandler(output, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(handler)
}

// OpenOutput returns the writer named by cfg.Output and a function that
// releases it. Only file output needs closing.
func OpenOutput(cfg Config) (io.Writer, func(), error) {
	switch cfg.Output {
	case "stderr":
		return os.Stderr, func() {}, nil
	case "file":
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", cfg.File, err)
		}
		return f, func() { _ = f.Close() }, nil
	default:
		return os.Stdout, func() {}, nil
	}
}

func consoleOutput(cfg Config) io.Writer {
	switch cfg.Output {
	case "stderr", "file":
		return os.Stderr
	default:
		return os.Stdout
	}
}
