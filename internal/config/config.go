package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is built once in main and injected everywhere. Nothing below main
// reads the environment directly.
type Config struct {
	Port        string
	DatabaseURL string
	BaseURL     string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	FromAddress  string
	NotifyEmail  string

	WhopAPIKey          string
	WhopWebhookSecret   string
	FacebookVerifyToken string
	JWTSecret           string
}

// Load reads .env if present, then the environment. Only DATABASE_URL is
// hard-required; everything else degrades to a documented default.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),

		RabbitUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitPass: getEnv("RABBITMQ_PASS", "guest"),
		RabbitHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASS"),
		FromAddress:  getEnv("FROM_ADDRESS", "no-reply@leadpilot.io"),
		NotifyEmail:  getEnv("NOTIFY_EMAIL", "ops@leadpilot.io"),

		WhopAPIKey:          os.Getenv("WHOP_API_KEY"),
		WhopWebhookSecret:   os.Getenv("WHOP_WEBHOOK_SECRET"),
		FacebookVerifyToken: os.Getenv("FB_VERIFY_TOKEN"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// RabbitURL assembles the AMQP DSN.
func (c *Config) RabbitURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.RabbitUser, c.RabbitPass, c.RabbitHost, c.RabbitPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
