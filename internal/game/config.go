package game

import (
	"os"
	"strconv"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible shrine
	// placement. A seed of 0 means a time-derived seed will be used.
	Seed int64
}

// ConfigFromEnv builds a config from environment variables.
// SEALQUEST_SEED, when set to a valid integer, fixes the map seed.
func ConfigFromEnv() Config {
	var cfg Config
	if raw := os.Getenv("SEALQUEST_SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	return cfg
}
