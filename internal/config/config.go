package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	// DatabasePath is the SQLite file holding every collection. The whole
	// application state lives in this one file.
	DatabasePath string

	// Media host settings. When MediaHostUploadURL is empty the ingest
	// service runs in local fallback mode and stores video bytes in the
	// database instead of uploading them anywhere.
	MediaHostUploadURL string
	MediaHostPreset    string
	MediaHostTimeout   time.Duration

	// DefaultCPM is the revenue-per-thousand-views figure used by the
	// analytics service unless a settings override exists.
	DefaultCPM float64

	MaxUploadBytes int64

	CORSOrigins string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabasePath: getEnv("DATABASE_PATH", "shortvideo.db"),

		MediaHostUploadURL: getEnv("MEDIA_HOST_UPLOAD_URL", ""),
		MediaHostPreset:    getEnv("MEDIA_HOST_PRESET", ""),
		MediaHostTimeout:   getDurationEnv("MEDIA_HOST_TIMEOUT", 2*time.Minute),

		DefaultCPM: getFloatEnv("DEFAULT_CPM", 2.5),

		MaxUploadBytes: getInt64Env("MAX_UPLOAD_BYTES", 100<<20),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}
}

func (c *Config) RemoteMediaHost() bool {
	return c.MediaHostUploadURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
