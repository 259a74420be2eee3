package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Extraction ExtractionConfig
	Menus      MenusConfig
	Session    SessionConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ExtractionConfig holds menu extraction service configuration
type ExtractionConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// MenusConfig holds menu-storage service configuration
type MenusConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// SessionConfig holds editing-session configuration
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/menucraft/")

	// Environment variable settings. The replacer maps nested keys to
	// flat env names, e.g. server.port to MENUCRAFT_SERVER_PORT.
	v.SetEnvPrefix("MENUCRAFT")
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

	// Collaborator defaults. API keys default to empty so the env
	// binding is registered even when no config file sets them.
	v.SetDefault("extraction.api_key", "")
	v.SetDefault("extraction.base_url", "http://menu-extraction.internal")
	v.SetDefault("menus.api_key", "")
	v.SetDefault("menus.base_url", "http://menu-storage.internal")

	// Session defaults
	v.SetDefault("session.ttl", "2h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Extraction.BaseURL == "" {
		return fmt.Errorf("extraction base URL is required (set MENUCRAFT_EXTRACTION_BASE_URL)")
	}

	if config.Menus.BaseURL == "" {
		return fmt.Errorf("menus base URL is required (set MENUCRAFT_MENUS_BASE_URL)")
	}

	if config.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got: %s", config.Session.TTL)
	}

	return nil
}
