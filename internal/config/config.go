package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Game configuration
	CatalogPath       string        `mapstructure:"CATALOG_PATH"`
	ClaimCodePrefix   string        `mapstructure:"CLAIM_CODE_PREFIX"`
	StuckThreshold    time.Duration `mapstructure:"STUCK_THRESHOLD"`
	ActiveWindow      time.Duration `mapstructure:"ACTIVE_WINDOW"`
	RivalWindow       time.Duration `mapstructure:"RIVAL_WINDOW"`
	ResolveMaxRetries int           `mapstructure:"RESOLVE_MAX_RETRIES"`

	// Diagnostics
	EnablePprof      bool    `mapstructure:"ENABLE_PPROF"`
	OTLPEndpoint     string  `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelServiceName  string  `mapstructure:"OTEL_SERVICE_NAME"`
	TraceSampleRatio float64 `mapstructure:"OTEL_TRACES_SAMPLER_ARG"`
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

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
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
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "mission_control")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Game defaults
	viper.SetDefault("CATALOG_PATH", "config/missions.yaml")
	viper.SetDefault("CLAIM_CODE_PREFIX", "MC-")
	viper.SetDefault("STUCK_THRESHOLD", 5*time.Minute)
	viper.SetDefault("ACTIVE_WINDOW", 2*time.Minute)
	viper.SetDefault("RIVAL_WINDOW", 90*time.Second)
	viper.SetDefault("RESOLVE_MAX_RETRIES", 3)

	// Diagnostics defaults
	viper.SetDefault("ENABLE_PPROF", false)
	viper.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	viper.SetDefault("OTEL_SERVICE_NAME", "mission-control-backend")
	viper.SetDefault("OTEL_TRACES_SAMPLER_ARG", 1.0)
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
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	if config.StuckThreshold <= 0 || config.ActiveWindow <= 0 || config.RivalWindow <= 0 {
		return fmt.Errorf("STUCK_THRESHOLD, ACTIVE_WINDOW and RIVAL_WINDOW must be positive")
	}

	if config.ResolveMaxRetries < 0 {
		return fmt.Errorf("RESOLVE_MAX_RETRIES must not be negative")
	}

	if config.CatalogPath == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TracingEnabled returns true when an OTLP endpoint is configured
func (c *Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}
