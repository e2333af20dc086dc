package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Classifier modes
const (
	ClassifierLocal  = "local"
	ClassifierRemote = "remote"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
	Classifier ClassifierConfig
	Analysis   AnalysisConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CacheConfig holds analysis-cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP      int `mapstructure:"per_ip"`
	Classifier int `mapstructure:"classifier"`
}

// ClassifierConfig selects the cleanliness classifier backend
type ClassifierConfig struct {
	Mode    string `mapstructure:"mode"` // "local" or "remote"
	BaseURL string `mapstructure:"base_url"`
}

// AnalysisConfig holds analysis pipeline configuration
type AnalysisConfig struct {
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cleanfood/")

	// Environment variable settings
	v.SetEnvPrefix("CLEANFOOD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.classifier", 600)

	// Classifier defaults
	v.SetDefault("classifier.mode", ClassifierLocal)
	v.SetDefault("classifier.base_url", "")

	// Analysis defaults
	v.SetDefault("analysis.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Classifier.Mode != ClassifierLocal && config.Classifier.Mode != ClassifierRemote {
		return fmt.Errorf("classifier mode must be 'local' or 'remote', got: %s", config.Classifier.Mode)
	}

	if config.Classifier.Mode == ClassifierRemote && config.Classifier.BaseURL == "" {
		return fmt.Errorf("classifier base URL is required when classifier mode is 'remote' (set CLEANFOOD_CLASSIFIER_BASE_URL)")
	}

	return nil
}
