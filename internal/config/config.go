package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything resolved from the environment at startup.
// Values are read once in Load and never refreshed.
type Config struct {
	FinnhubAPIKey string
	Port          string
	LogLevel      string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	godotenv.Load(".env")
	return Config{
		FinnhubAPIKey: get("FINNHUB_API_KEY"),
		Port:          getOr("PORT", "8000"),
		LogLevel:      getOr("LOG_LEVEL", "INFO"),
	}
}

// Configured reports whether the Finnhub token is present.
func (c Config) Configured() bool {
	return c.FinnhubAPIKey != ""
}

// ParseLevel maps the LOG_LEVEL value to a slog level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func get(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func getOr(key, def string) string {
	if v := get(key); v != "" {
		return v
	}
	return def
}
