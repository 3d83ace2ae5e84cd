// Package config provides configuration loading for the
// communitycli driver.
package config

import (
	"os"
	"strconv"
)

// DetectionConfig holds the defaults communitycli falls back to when a
// subcommand flag isn't set explicitly.
type DetectionConfig struct {
	Model        string
	DefaultGamma float64
	MinGain      float64
	RandomSeed   int64

	DatabaseURL string
}

// LoadDetectionConfig loads configuration from environment, falling
// back to the package defaults used throughout pkg/community's tests.
func LoadDetectionConfig() *DetectionConfig {
	return &DetectionConfig{
		Model:        getEnv("COMMUNITY_MODEL", "dcppm"),
		DefaultGamma: getEnvFloat("COMMUNITY_GAMMA", 1.0),
		MinGain:      getEnvFloat("COMMUNITY_MIN_GAIN", 0.0000001),
		RandomSeed:   getEnvInt64("COMMUNITY_RANDOM_SEED", 0),
		DatabaseURL:  firstNonEmpty(os.Getenv("COMMUNITY_DATABASE_URL"), os.Getenv("DATABASE_URL")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
