package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultDatabaseURL   = "prodboard.db"
	defaultListenAddr    = ":8080"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTTTL        = "24h"
	defaultUploadsDir    = "./uploads"
	defaultStaticBase    = "/static/uploads"
	defaultCacheTTL      = "60s"
	defaultMaxUploadSize = 50 * 1024 * 1024 // 50 MB
)

type Config struct {
	AppEnv        string
	ListenAddr    string
	DatabaseURL   string
	RedisAddr     string // empty means in-memory cache
	JWTSecret     string
	JWTTTL        time.Duration
	UploadsDir    string
	StaticBase    string
	CacheTTL      time.Duration
	MaxUploadSize int64
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.UploadsDir = getEnv("UPLOADS_DIR", defaultUploadsDir)
	cfg.StaticBase = getEnv("STATIC_URL_BASE", defaultStaticBase)
	cfg.MaxUploadSize = defaultMaxUploadSize

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL, err = parseDurationEnv("CACHE_TTL", defaultCacheTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.AppEnv != "prod" && c.AppEnv != "production" && c.AppEnv != "release"
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if !cfg.IsDev() && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
