package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Record validation modes
const (
	RecordValidationOff     = "off"
	RecordValidationEnforce = "enforce"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseDriver       string `mapstructure:"DB_DRIVER"`
	DatabaseURL          string `mapstructure:"DATABASE_URL"`
	DatabaseHost         string `mapstructure:"DB_HOST"`
	DatabasePort         string `mapstructure:"DB_PORT"`
	DatabaseUser         string `mapstructure:"DB_USER"`
	DatabasePassword     string `mapstructure:"DB_PASSWORD"`
	DatabaseName         string `mapstructure:"DB_NAME"`
	DatabaseSSLMode      string `mapstructure:"DB_SSL_MODE"`
	DatabaseMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	SQLitePath           string `mapstructure:"SQLITE_PATH"`

	// Auth configuration
	AuthEnabled bool   `mapstructure:"AUTH_ENABLED"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Observability
	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`

	// Record engine
	RecordValidation  string `mapstructure:"RECORD_VALIDATION"`
	RecordPageSize    int    `mapstructure:"RECORD_PAGE_SIZE"`
	RecordMaxPageSize int    `mapstructure:"RECORD_MAX_PAGE_SIZE"`
	SearchLimit       int    `mapstructure:"SEARCH_LIMIT"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" && config.DatabaseDriver == "postgres" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "crm_builder")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 20)
	viper.SetDefault("SQLITE_PATH", "crm_builder.db")

	// Auth defaults
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	viper.SetDefault("METRICS_ENABLED", true)

	// Record engine defaults
	viper.SetDefault("RECORD_VALIDATION", RecordValidationOff)
	viper.SetDefault("RECORD_PAGE_SIZE", 100)
	viper.SetDefault("RECORD_MAX_PAGE_SIZE", 1000)
	viper.SetDefault("SEARCH_LIMIT", 50)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.AuthEnabled && config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is set")
	}
	if config.Environment == "production" && config.AuthEnabled {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	for _, origin := range config.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("ALLOWED_ORIGINS entry %q must be \"*\" or start with http:// or https://", origin)
		}
	}

	switch config.DatabaseDriver {
	case "postgres":
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return fmt.Errorf("database name is required")
		}
	case "sqlite":
		if config.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", config.DatabaseDriver)
	}

	switch config.RecordValidation {
	case RecordValidationOff, RecordValidationEnforce:
	default:
		return fmt.Errorf("RECORD_VALIDATION must be %q or %q", RecordValidationOff, RecordValidationEnforce)
	}

	if config.RecordPageSize < 1 || config.RecordMaxPageSize < config.RecordPageSize {
		return fmt.Errorf("RECORD_PAGE_SIZE must be positive and not exceed RECORD_MAX_PAGE_SIZE")
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.DatabaseDriver == "sqlite" {
		return c.SQLitePath
	}
	return c.DatabaseURL
}

// EnforceRecordValidation reports whether record writes are gated by field validation
func (c *Config) EnforceRecordValidation() bool {
	return c.RecordValidation == RecordValidationEnforce
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
