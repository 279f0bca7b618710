package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Backing stores
	MySQLDSN string
	RedisURL string

	// Upstream stats API
	UpstreamBaseURL     string
	UpstreamRPS         int
	UpstreamBurst       int
	UpstreamTimeout     time.Duration
	UpstreamInsecureTLS bool

	// Legacy surface
	AvatarBaseURL string
	RequireAPIKey bool

	// Store call bound
	QueryTimeout time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 5000),
		Env:  getEnv("ENV", "development"),

		UpstreamRPS:         getEnvInt("UPSTREAM_RPS", 5),
		UpstreamBurst:       getEnvInt("UPSTREAM_BURST", 5),
		UpstreamTimeout:     getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamInsecureTLS: getEnvBool("UPSTREAM_INSECURE_TLS", false),

		AvatarBaseURL: getEnv("AVATAR_BASE_URL", "https://a.example.com"),
		RequireAPIKey: getEnvBool("REQUIRE_API_KEY", true),

		QueryTimeout: getEnvDuration("QUERY_TIMEOUT", 5*time.Second),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.MySQLDSN, err = getEnvRequired("MYSQL_DSN"); err != nil {
		return nil, err
	}
	if cfg.RedisURL, err = getEnvRequired("REDIS_URL"); err != nil {
		return nil, err
	}
	if cfg.UpstreamBaseURL, err = getEnvRequired("UPSTREAM_BASE_URL"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
