package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port    string
	BaseURL string

	Database DatabaseConfig

	JWTSecret   string
	AdminEmails string

	StripeSecretKey string
	ResendAPIKey    string
	FormspreeID     string

	LogLevel  string
	LogFormat string
}

type DatabaseConfig struct {
	Host     string
	Port     uint
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// Load reads the configuration from the environment. A .env file is picked up
// when present; missing optional values fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:    getEnv("PORT", "8080"),
		BaseURL: getEnv("BASE_URL", "https://lmwlabs.faith"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvUint("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "lmwlabs"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AdminEmails:     getEnv("ADMIN_EMAILS", "admin@lmwlabs.faith,awyrick@lmwlabs.faith,info@lmwlabs.faith"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		FormspreeID:     os.Getenv("FORMSPREE_ID"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvUint(key string, fallback uint) uint {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 32)
	if err != nil {
		return fallback
	}
	return uint(v)
}
