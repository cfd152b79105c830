package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	App    AppConfig
	Auth   AuthConfig
	Store  StoreConfig
	Mail   MailConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// AuthConfig carries the single admin identity and token settings.
// The identity is injected here rather than hardcoded so tests can
// substitute their own fixture.
type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	AdminID           string
	AdminEmail        string
	AdminName         string
	AdminPasswordHash string
}

type StoreConfig struct {
	Driver        string // memory | redis | postgres
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresDSN   string
}

type MailConfig struct {
	ResendAPIKey   string
	SenderEmail    string
	RecipientEmail string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", "your-super-secret-jwt-key"),
			TokenTTL:   time.Duration(getEnvAsInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
			AdminID:    getEnv("ADMIN_ID", "1"),
			AdminEmail: getEnv("ADMIN_EMAIL", "admin@demo.com"),
			AdminName:  getEnv("ADMIN_NAME", "Demo Admin"),
			// bcrypt hash of the demo password; override in any real deployment
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH",
				"$2a$12$LQv3c1yqBWVHxkd0LHAkCOYz6TtxMQJqhN8/RHKtMqHZgcl7S1jlK"),
		},
		Store: StoreConfig{
			Driver:        getEnv("STORE_DRIVER", "memory"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			PostgresDSN:   getEnv("DATABASE_DSN", ""),
		},
		Mail: MailConfig{
			ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
			SenderEmail:    getEnv("SENDER_EMAIL", "onboarding@resend.dev"),
			RecipientEmail: getEnv("RECIPIENT_EMAIL", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ORIGINS", []string{"http://localhost:5173"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.Auth.AdminEmail == "" || c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD_HASH are required")
	}

	switch c.Store.Driver {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("STORE_DRIVER must be memory, redis or postgres, got %q", c.Store.Driver)
	}

	if c.Store.Driver == "postgres" && c.Store.PostgresDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required when STORE_DRIVER=postgres")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
