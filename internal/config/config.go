package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	// APP
	AppEnv      string
	Port        string
	LogLevel    string
	CORSOrigins []string

	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPass      string
	DBName      string

	JWTSecret string

	// Admin login
	AdminUsername string
	AdminPassword string

	// ClickUp (destination + read path)
	ClickUpToken      string
	ClickUpAPIURL     string
	ClickUpListID     string
	ClickUpDoneStatus string

	// Wrike (webhook source)
	WrikeToken      string
	WrikeAPIURL     string
	WrikeHookSecret string

	// Grocy
	GrocyURL    string
	GrocyAPIKey string

	// Outbound HTTP
	HTTPTimeout    time.Duration
	HTTPMaxRetries int
	HTTPRetryDelay time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		// App
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8001"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),

		// DB
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "127.0.0.1"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPass:      getEnv("DB_PASS", "postgres"),
		DBName:      getEnv("DB_NAME", "productivity_db"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "secret123"),

		// Admin login
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),

		// ClickUp
		ClickUpToken:      os.Getenv("CLICKUP_TOKEN"),
		ClickUpAPIURL:     getEnv("CLICKUP_API_URL", "https://api.clickup.com/api/v2"),
		ClickUpListID:     os.Getenv("CLICKUP_LIST_ID"),
		ClickUpDoneStatus: getEnv("CLICKUP_DONE_STATUS", "complete"),

		// Wrike
		WrikeToken:      os.Getenv("WRIKE_TOKEN"),
		WrikeAPIURL:     getEnv("WRIKE_API_URL", "https://www.wrike.com/api/v4"),
		WrikeHookSecret: os.Getenv("WRIKE_HOOK_SECRET"),

		// Grocy
		GrocyURL:    os.Getenv("GROCY_URL"),
		GrocyAPIKey: os.Getenv("GROCY_API_KEY"),

		// HTTP
		HTTPTimeout:    getEnvDuration("HTTP_TIMEOUT", 20*time.Second),
		HTTPMaxRetries: getEnvInt("HTTP_MAX_RETRIES", 3),
		HTTPRetryDelay: getEnvDuration("HTTP_RETRY_DELAY", 500*time.Millisecond),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.AppEnv == "production" && (c.JWTSecret == "" || c.JWTSecret == "secret123") {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.HTTPMaxRetries < 0 {
		return errors.Errorf("HTTP_MAX_RETRIES must be >= 0, got %d", c.HTTPMaxRetries)
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN from the DB_* vars.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}

// getEnv returns environment variable or default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns int from env or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("2s") or plain milliseconds ("2000").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
