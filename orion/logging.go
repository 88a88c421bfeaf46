package orion

import (
	"log/slog"
	"os"
)

// ConfigureLogging installs a text handler writing to stderr as the default logger.
// In the browser, stderr ends up in the developer console.
func ConfigureLogging(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))
}

// LogLevelFromEnv parses the HALO_LOG_LEVEL variable, e.g. "debug" or "warn".
// Defaults to info.
func LogLevelFromEnv() slog.Level {
	return parseLogLevel(os.Getenv("HALO_LOG_LEVEL"))
}

func parseLogLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}

	return level
}
