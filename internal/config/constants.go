package config

import "time"

const (
	envPort            = "PORT"
	envDataDir         = "DATA_DIR"
	envStaticDir       = "STATIC_DIR"
	envMaxBodyBytes    = "MAX_BODY_BYTES"
	envReadTimeout     = "READ_TIMEOUT"
	envWriteTimeout    = "WRITE_TIMEOUT"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envRegistrationKey = "REGISTRATION_CODE"
	envAllowReregister = "ALLOW_REREGISTER"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort      = "3000"
	defaultDataDir   = "."
	defaultStaticDir = "public"
	// Profile photos and spray charts arrive as base64 data URLs, so the ceiling is generous.
	defaultMaxBodyBytes = 50 << 20

	defaultReadTimeout  = 30 * Duration(time.Second)
	defaultWriteTimeout = 30 * Duration(time.Second)

	defaultCORSOrigins      = "*"
	defaultRegistrationCode = "BASEBALL2025"
	defaultAllowReregister  = true

	defaultMetricsEnabled = true
	defaultMetricsPort    = "9090"
	defaultServiceName    = "player-profile-service"
	defaultOtelInsecure   = true

	// DataFileName and AuthFileName are the document names inside DATA_DIR.
	DataFileName = "data.json"
	AuthFileName = "auth.json"
	LockFileName = ".profile.lock"
)
