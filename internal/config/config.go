package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins []string

	JWTSecret   string
	JWTTTL      time.Duration
	MockLatency time.Duration

	StoreDriver string
	SQLitePath  string
	RedisURL    string
	DatabaseURL string

	MeiliSearchHost   string
	MeiliMasterKey    string
	SearchReindexSpec string

	RateLimitAuth time.Duration
	CloudinaryURL string
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

var defaults = map[string]any{
	"APP_ENV":             "development",
	"PORT":                "8080",
	"ALLOWED_ORIGINS":     "http://localhost:3000",
	"JWT_SECRET":          "change-me",
	"JWT_TTL":             "24h",
	"MOCK_LATENCY":        "1s",
	"STORE_DRIVER":        "memory",
	"SQLITE_PATH":         "askify.db",
	"REDIS_URL":           "",
	"DATABASE_URL":        "",
	"MEILISEARCH_HOST":    "",
	"MEILI_MASTER_KEY":    "",
	"SEARCH_REINDEX_SPEC": "@every 10m",
	"RATE_LIMIT_AUTH":     "2s",
	"CLOUDINARY_URL":      "",
}

// Load reads .env when present, then the process environment. Unset
// variables take the defaults above.
func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{
		AppEnv:            v.GetString("APP_ENV"),
		Port:              v.GetString("PORT"),
		AllowedOrigins:    splitList(v.GetString("ALLOWED_ORIGINS")),
		JWTSecret:         v.GetString("JWT_SECRET"),
		StoreDriver:       strings.ToLower(v.GetString("STORE_DRIVER")),
		SQLitePath:        v.GetString("SQLITE_PATH"),
		RedisURL:          v.GetString("REDIS_URL"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		MeiliSearchHost:   v.GetString("MEILISEARCH_HOST"),
		MeiliMasterKey:    v.GetString("MEILI_MASTER_KEY"),
		SearchReindexSpec: v.GetString("SEARCH_REINDEX_SPEC"),
		CloudinaryURL:     v.GetString("CLOUDINARY_URL"),
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"JWT_TTL", &cfg.JWTTTL},
		{"MOCK_LATENCY", &cfg.MockLatency},
		{"RATE_LIMIT_AUTH", &cfg.RateLimitAuth},
	}
	for _, d := range durations {
		parsed, err := time.ParseDuration(v.GetString(d.key))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("invalid %s: must not be negative", d.key)
		}
		*d.dst = parsed
	}

	if cfg.IsProduction() && cfg.JWTSecret == defaults["JWT_SECRET"] {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
