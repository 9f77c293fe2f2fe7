package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	CORSOrigins   []string

	AI   *AIConfig
	SMTP *SMTPConfig
}

// SMTPConfig configures review notification mail. An unset host or
// sender disables sending entirely.
type SMTPConfig struct {
	Host        string
	Port        string
	From        string
	Password    string `json:"-"` // Never serialize
	StaffDomain string
}

// IsEnabled returns true if outgoing mail is configured
func (c *SMTPConfig) IsEnabled() bool {
	return c.Host != "" && c.From != ""
}

// Addr returns the host:port dial address
func (c *SMTPConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Load reads configuration from the environment. A .env file is honored
// as a development convenience but never required.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using system environment")
	}

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DB", "quizbank"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", "dev-secret-change-me"),
		CORSOrigins:   splitList(getEnvOrDefault("CORS_ORIGINS", "*")),
		AI:            DefaultAIConfig(),
		SMTP: &SMTPConfig{
			Host:        os.Getenv("SMTP_HOST"),
			Port:        getEnvOrDefault("SMTP_PORT", "587"),
			From:        os.Getenv("SMTP_FROM"),
			Password:    os.Getenv("SMTP_PASSWORD"),
			StaffDomain: getEnvOrDefault("STAFF_MAIL_DOMAIN", "primehotels.example"),
		},
	}

	if cfg.JWTSecret == "dev-secret-change-me" {
		slog.Warn("using default JWT_SECRET, set it before deploying")
	}
	if !cfg.AI.IsEnabled() {
		slog.Warn("GEMINI_API_KEY not set, question generation runs in mock mode")
	}
	if !cfg.SMTP.IsEnabled() {
		slog.Warn("SMTP not configured, review notifications are disabled")
	}

	return cfg
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
