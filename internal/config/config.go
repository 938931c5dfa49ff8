package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Mirror   MirrorConfig
	Identity IdentityConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	LoginPath   string // where anonymous requests to protected routes are sent
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // minutes
}

// MirrorConfig configures the external document-store mirror.
// When Enabled is false the application runs with a no-op mirror,
// which is also how the test suite runs (tests never build this config).
type MirrorConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// IdentityConfig configures the external-identity token verifier.
type IdentityConfig struct {
	VerifyURL string // provider tokeninfo endpoint
	Audience  string // expected aud claim (OAuth client ID)
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			LoginPath:   getEnv("APP_LOGIN_PATH", "/login"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "catalog"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 1440),
		},
		Mirror: MirrorConfig{
			Enabled:   getEnvBool("MIRROR_ENABLED", false),
			Endpoint:  getEnv("MIRROR_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MIRROR_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MIRROR_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MIRROR_BUCKET", "catalog"),
			UseSSL:    getEnvBool("MIRROR_USE_SSL", false),
		},
		Identity: IdentityConfig{
			VerifyURL: getEnv("IDENTITY_VERIFY_URL", "https://oauth2.googleapis.com/tokeninfo"),
			Audience:  getEnv("IDENTITY_AUDIENCE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Mirror.Enabled && c.Mirror.SecretKey == "minioadmin" {
			return fmt.Errorf("MIRROR_SECRET_KEY must be set when the mirror is enabled in production")
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
