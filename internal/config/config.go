package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort       string
	MySQLDSN         string
	JikanBaseURL     string
	JikanMinInterval time.Duration
	CookieSecure     bool
	SwaggerHost      string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/animehub?charset=utf8mb4&parseTime=True&loc=Local"),
		JikanBaseURL:     getEnv("JIKAN_BASE_URL", "https://api.jikan.moe/v4"),
		JikanMinInterval: time.Duration(getEnvInt("JIKAN_MIN_INTERVAL_MS", 1000)) * time.Millisecond,
		CookieSecure:     getEnvBool("COOKIE_SECURE", false),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
