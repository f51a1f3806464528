package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	LogLevel      string
	Port          uint16
	DatabaseURL   string
	SessionSecret string
	BaseURL       string
	Backend       BackendConfig
	Admin         AdminConfig
	Telegram      TelegramConfig
	Events        EventsConfig
	Sentry        SentryConfig
}

// BackendConfig points at the external shop REST API. All catalog, checkout
// and payment data lives there; this service only proxies and orchestrates.
type BackendConfig struct {
	// BaseURL is the backend origin without the /api suffix,
	// e.g. "https://shop.partyland.uz".
	BaseURL string

	// TimeoutSeconds bounds every outbound request.
	TimeoutSeconds int

	// AdminToken authenticates server-to-server calls to the backend's
	// admin payment endpoints.
	AdminToken string
}

// AdminConfig holds credentials for the payment-review console.
// PasswordHash is a bcrypt hash; plaintext passwords never appear in config.
type AdminConfig struct {
	Username     string
	PasswordHash string
	SessionTTL   int // minutes
}

// TelegramConfig enables the embedded mini-app host integration.
// When BotToken is empty, initData headers are ignored and every request is
// treated as a standalone browser.
type TelegramConfig struct {
	BotToken string
	// InitDataMaxAge bounds how old a signed initData payload may be, in
	// seconds. Telegram recommends rejecting stale payloads.
	InitDataMaxAge int
}

// EventsConfig configures the optional NATS publisher for accepted orders.
type EventsConfig struct {
	NATSURL string
	Subject string
}

// SentryConfig holds error tracking configuration.
type SentryConfig struct {
	DSN         string
	Enabled     bool
	Environment string
	SampleRate  float64
}

func NewConfig() (*Config, error) {
	// Try .env in the working directory first, then walk up (max 2 levels).
	if err := godotenv.Load(); err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("No .env file found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:           getEnv("ENV", "dev"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Port:          uint16(getEnvInt("PORT", 3000)),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		Backend: BackendConfig{
			BaseURL:        getEnv("SHOP_BACKEND_URL", "http://localhost:8000"),
			TimeoutSeconds: int(getEnvInt("SHOP_BACKEND_TIMEOUT", 15)),
			AdminToken:     getEnv("SHOP_BACKEND_ADMIN_TOKEN", ""),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			SessionTTL:   int(getEnvInt("ADMIN_SESSION_TTL_MINUTES", 120)),
		},
		Telegram: TelegramConfig{
			BotToken:       getEnv("TELEGRAM_BOT_TOKEN", ""),
			InitDataMaxAge: int(getEnvInt("TELEGRAM_INITDATA_MAX_AGE", 86400)),
		},
		Events: EventsConfig{
			NATSURL: getEnv("NATS_URL", ""),
			Subject: getEnv("NATS_ORDERS_SUBJECT", "orders.accepted"),
		},
		Sentry: SentryConfig{
			DSN:         getEnv("SENTRY_DSN", ""),
			Enabled:     getEnvBool("SENTRY_ENABLED", false),
			Environment: getEnv("SENTRY_ENVIRONMENT", "development"),
			SampleRate:  getEnvFloat("SENTRY_SAMPLE_RATE", 1.0),
		},
	}

	if cfg.Env != "dev" && cfg.Env != "prod" {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.Env == "prod" {
		if cfg.SessionSecret == "dev-secret-change-in-production" {
			return nil, fmt.Errorf("SESSION_SECRET must be set in production environment")
		}
		if cfg.Admin.PasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production environment")
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intValue int
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var floatValue float64
		if _, err := fmt.Sscanf(value, "%f", &floatValue); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
