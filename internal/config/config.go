package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds everything the process reads from its environment. It is
// loaded once at startup; a bad value is a boot failure, not a request failure.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret      string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration

	Port string
}

func Load() (*Config, error) {
	cfg := &Config{
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       getenv("DB_USER", "postgres"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getenv("DB_NAME", "postly"),
		DBSSLMode:    getenv("DB_SSLMODE", "disable"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTAlgorithm: getenv("JWT_ALGORITHM", "HS256"),
		Port:         getenv("PORT", "8080"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if !strings.EqualFold(cfg.JWTAlgorithm, "HS256") {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q (only HS256 is supported)", cfg.JWTAlgorithm)
	}

	minutes := 60
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES %q", v)
		}
		minutes = n
	}
	cfg.AccessTokenTTL = time.Duration(minutes) * time.Minute

	return cfg, nil
}

// DSN builds the Postgres connection string the way the database package
// expects it.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
