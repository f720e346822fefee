package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Corpus    CorpusConfig
	Recommend RecommendConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CorpusConfig holds corpus source configuration
type CorpusConfig struct {
	CSVPath       string `mapstructure:"csv_path"`
	BaseModelRule string `mapstructure:"base_model_rule"` // "auto", "paren" or "comma"
}

// RecommendConfig holds recommendation engine configuration
type RecommendConfig struct {
	DefaultTopN int `mapstructure:"default_top_n"`
	MaxTopN     int `mapstructure:"max_top_n"`
	CacheSize   int `mapstructure:"cache_size"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/soundscout/")

	// Environment variable settings
	v.SetEnvPrefix("SOUNDSCOUT")
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
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Corpus defaults
	v.SetDefault("corpus.csv_path", "productdata.csv")
	v.SetDefault("corpus.base_model_rule", "auto")

	// Recommendation defaults
	v.SetDefault("recommend.default_top_n", 5)
	v.SetDefault("recommend.max_top_n", 6)
	v.SetDefault("recommend.cache_size", 256)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Corpus.BaseModelRule {
	case "auto", "paren", "comma":
	default:
		return fmt.Errorf("corpus base_model_rule must be 'auto', 'paren' or 'comma', got: %s", config.Corpus.BaseModelRule)
	}

	if config.Recommend.DefaultTopN < 1 {
		return fmt.Errorf("recommend default_top_n must be at least 1, got: %d", config.Recommend.DefaultTopN)
	}

	if config.Recommend.MaxTopN < config.Recommend.DefaultTopN {
		return fmt.Errorf("recommend max_top_n must be >= default_top_n, got: %d < %d",
			config.Recommend.MaxTopN, config.Recommend.DefaultTopN)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("ratelimit per_ip must not be negative, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
