package config

import (
	"fmt"
	"os"
	"time"
)

// FallbackAdminPassword is used when ADMIN_PASSWORD is not set.
const FallbackAdminPassword = "admin123"

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabaseAnonKey        string
	SupabaseServiceRoleKey string
	SupabaseStorageBucket  string

	// Database (direct connection for migrations and the orphan ledger)
	DatabaseURL string

	// Admin gate
	AdminPassword    string
	AdminTokenSecret string
	AdminTokenTTL    time.Duration

	// External job scraper
	ScraperURL    string
	ScraperAPIKey string

	// Server
	BaseURL         string
	Port            string
	Environment     string
	LogLevel        string
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey:        getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "client-media"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		AdminPassword:    getEnv("ADMIN_PASSWORD", FallbackAdminPassword),
		AdminTokenSecret: getEnv("ADMIN_TOKEN_SECRET", ""),

		ScraperURL:    getEnv("SCRAPER_URL", ""),
		ScraperAPIKey: getEnv("SCRAPER_API_KEY", ""),

		BaseURL:     getEnv("BASE_URL", ""),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.AdminTokenTTL, err = getDuration("ADMIN_TOKEN_TTL", 12*time.Hour); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseAnonKey == "" {
		return fmt.Errorf("SUPABASE_ANON_KEY is required")
	}
	if c.SupabaseStorageBucket == "" {
		return fmt.Errorf("SUPABASE_STORAGE_BUCKET must not be empty")
	}
	if c.AdminTokenTTL <= 0 {
		return fmt.Errorf("ADMIN_TOKEN_TTL must be positive")
	}
	return nil
}

// UsesFallbackAdminPassword reports whether the admin gate is running on the
// hardcoded literal rather than a configured password.
func (c *Config) UsesFallbackAdminPassword() bool {
	return c.AdminPassword == FallbackAdminPassword
}

// PrivilegedKey returns the key for the admin Supabase client. Without a
// service-role key the anon key is used and row-level security applies.
func (c *Config) PrivilegedKey() string {
	if c.SupabaseServiceRoleKey != "" {
		return c.SupabaseServiceRoleKey
	}
	return c.SupabaseAnonKey
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
