package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the console reads from the environment.
type Config struct {
	Port            string
	UpstreamBaseURL string
	DataDir         string
	PollInterval    time.Duration
	CORSOrigins     []string
}

func Load() Config {
	cfg := Config{
		Port:            getEnv("PORT", "4000"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:8080"),
		DataDir:         getEnv("DATA_DIR", "data"),
		PollInterval:    5 * time.Second,
		CORSOrigins:     []string{"http://localhost:5173"},
	}

	if raw := os.Getenv("POLL_INTERVAL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.PollInterval = time.Duration(secs) * time.Second
		}
	}

	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins := strings.Split(raw, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSOrigins = origins
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
