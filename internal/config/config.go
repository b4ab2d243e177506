package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Application
	Port        string
	AppEnv      string
	FrontendURL string

	// Database
	DatabaseURL string

	// Security
	JWTSecret string

	// Mail relay
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:         envString("PORT", "8080"),
		AppEnv:       envString("APP_ENV", "development"),
		FrontendURL:  envString("FRONTEND_URL", "http://localhost:5173"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SMTPHost:     envString("SMTP_HOST", "localhost"),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     envString("MAIL_FROM", "no-reply@apan.org"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

// IsDevelopment reports whether the process runs outside production. In
// development outbound mail is logged instead of sent.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv != "production"
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return n
}
