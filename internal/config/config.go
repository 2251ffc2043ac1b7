package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// News source configuration
	NewsAPIURL          string
	NewsAPIKey          string
	NewsPageSize        int
	NewsExcludedDomains string
	NewsRequestTimeout  time.Duration

	// AI rewriter configuration
	GeminiAPIURL  string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	// Object storage configuration (empty URL disables image re-hosting)
	StorageURL        string
	StorageServiceKey string
	StorageBucket     string
	StorageTimeout    time.Duration

	// Social publisher configuration (empty token disables tweeting)
	TwitterAPIURL      string
	TwitterBearerToken string
	TwitterTimeout     time.Duration

	// Hosted auth provider configuration
	AuthURL     string
	AuthAnonKey string
	AuthTimeout time.Duration

	// Payment webhook configuration
	StripeWebhookSecret string

	// Trigger / site configuration
	CronSecret string
	SiteURL    string
	AdminToken string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "novapress"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		NewsAPIURL:          getEnv("NEWS_API_URL", "https://newsapi.org/v2"),
		NewsAPIKey:          getEnv("NEWS_API_KEY", ""),
		NewsPageSize:        getEnvInt("NEWS_PAGE_SIZE", 20),
		NewsExcludedDomains: getEnv("NEWS_EXCLUDED_DOMAINS", "prnewswire.com,businesswire.com,marketwatch.com,globenewswire.com"),
		NewsRequestTimeout:  getEnvDuration("NEWS_REQUEST_TIMEOUT", 15*time.Second),
		GeminiAPIURL:        getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTimeout:       getEnvDuration("GEMINI_TIMEOUT", 30*time.Second),
		StorageURL:          getEnv("STORAGE_URL", ""),
		StorageServiceKey:   getEnv("STORAGE_SERVICE_KEY", ""),
		StorageBucket:       getEnv("STORAGE_BUCKET", "post-images"),
		StorageTimeout:      getEnvDuration("STORAGE_TIMEOUT", 20*time.Second),
		TwitterAPIURL:       getEnv("TWITTER_API_URL", "https://api.twitter.com"),
		TwitterBearerToken:  getEnv("TWITTER_BEARER_TOKEN", ""),
		TwitterTimeout:      getEnvDuration("TWITTER_TIMEOUT", 15*time.Second),
		AuthURL:             getEnv("AUTH_URL", ""),
		AuthAnonKey:         getEnv("AUTH_ANON_KEY", ""),
		AuthTimeout:         getEnvDuration("AUTH_TIMEOUT", 10*time.Second),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		CronSecret:          getEnv("CRON_SECRET", ""),
		SiteURL:             getEnv("SITE_URL", "http://localhost:3000"),
		AdminToken:          getEnv("ADMIN_TOKEN", ""),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.NewsAPIKey == "" {
		return fmt.Errorf("NEWS_API_KEY is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.CronSecret == "" {
		return fmt.Errorf("CRON_SECRET is required")
	}
	if c.NewsPageSize < 1 || c.NewsPageSize > 100 {
		return fmt.Errorf("NEWS_PAGE_SIZE must be between 1 and 100")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
