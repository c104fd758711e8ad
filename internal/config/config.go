package config

import (
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	MaxBodyBytes int64
	ReadTimeout  Duration
	WriteTimeout Duration
	CORSOrigins  []string
	Storage      StorageConfig
	Auth         AuthConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; real
// environment variables win over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		MaxBodyBytes: int64(intEnvOrDefault(envMaxBodyBytes, defaultMaxBodyBytes)),
		ReadTimeout:  durationEnvOrDefault(envReadTimeout, defaultReadTimeout),
		WriteTimeout: durationEnvOrDefault(envWriteTimeout, defaultWriteTimeout),
		CORSOrigins:  listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Storage:      loadStorage(),
		Auth:         loadAuth(),
		Metrics:      loadMetrics(),
	}
}
