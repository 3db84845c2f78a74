package game

import (
	"os"

	"github.com/samdwyer/hexband/internal/telemetry"
)

// Config holds game configuration options, read from the environment after
// .env has been loaded.
type Config struct {
	// ScenarioPath names a scenario JSON file. Empty uses the embedded default.
	ScenarioPath string
	// LogFile receives logs while the terminal UI is running. Empty discards them.
	LogFile string
	// LogLevel is a zerolog level name.
	LogLevel string

	Honeycomb telemetry.Honeycomb
}

// ConfigFromEnv reads configuration from environment variables.
func ConfigFromEnv() Config {
	return Config{
		ScenarioPath: os.Getenv("HEXBAND_SCENARIO"),
		LogFile:      os.Getenv("HEXBAND_LOG_FILE"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Honeycomb: telemetry.Honeycomb{
			APIKey:  os.Getenv("HONEYCOMB_HEXBAND_API_KEY"),
			Dataset: os.Getenv("HONEYCOMB_HEXBAND_DATASET"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
