package config

import (
	"os"
	"time"
)

type Config struct {
	ServerPort     string
	DatabasePath   string
	AllowedOrigins string
	PublicDir      string
	UploadDir      string

	// Janitor: active sessions older than this get auto-completed
	SessionMaxAge   time.Duration
	JanitorInterval time.Duration
}

func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "3000"),
		DatabasePath:    getEnv("DATABASE_PATH", "practrac.db"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		PublicDir:       getEnv("PUBLIC_DIR", "./public"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		SessionMaxAge:   12 * time.Hour,
		JanitorInterval: 5 * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
