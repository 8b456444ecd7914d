package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on environment
// level overrides the environment default when it parses (debug, info, warn, error)
func Setup(env, level string) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: defaultLevel(env),
	}

	if level != "" {
		var override slog.Level
		if err := override.UnmarshalText([]byte(strings.ToUpper(level))); err == nil {
			opts.Level = override
		}
	}

	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))

	slog.Info("Logger 초기화", "env", env, "level", opts.Level.Level().String())
}

func defaultLevel(env string) slog.Level {
	switch env {
	case "local", "dev", "development":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
