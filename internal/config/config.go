// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"
	"strings"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress  string
	PostgresURL  string   // Empty selects the in-memory registry.
	KafkaBrokers []string // Empty disables roster-change publishing.
	RosterTopic  string
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress: getEnv("HTTP_ADDRESS", ":8080"),
		PostgresURL: getEnv("POSTGRES_URL", ""),
		RosterTopic: getEnv("ROSTER_TOPIC", "activity.roster"),
	}

	cfg.KafkaBrokers = splitAndTrim(getEnv("KAFKA_BROKERS", ""))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
