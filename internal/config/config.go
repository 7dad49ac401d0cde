package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/clinical-docs-server/internal/domain"
)

// Manager implements the ConfigManager interface using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/clinical-docs-server/")

	viper.SetEnvPrefix("CLINDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The deployment convention is a bare GENAI_API_KEY variable; the
	// prefixed form wins when both are set.
	if err := viper.BindEnv("genai.api_key", "CLINDOC_GENAI_API_KEY", "GENAI_API_KEY"); err != nil {
		return fmt.Errorf("error binding API key variable: %w", err)
	}

	m.setDefaults()

	// Config file is optional; defaults and environment variables suffice
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Generation service defaults
	viper.SetDefault("genai.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("genai.model", "gemini-2.5-flash")
	viper.SetDefault("genai.api_key", "")
	viper.SetDefault("genai.timeout", "120s")
	viper.SetDefault("genai.rate_limit", 2)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetGenAIConfig returns generation service configuration
func (m *Manager) GetGenAIConfig() *domain.GenAIConfig {
	return &m.config.GenAI
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration. An empty API key is allowed here:
// generation calls report a configuration error at request time instead of
// blocking startup.
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.GenAI.BaseURL == "" {
		return fmt.Errorf("generation service base URL is required")
	}
	if config.GenAI.Model == "" {
		return fmt.Errorf("generation model is required")
	}
	if config.GenAI.RateLimit <= 0 {
		return fmt.Errorf("invalid generation rate limit: %d", config.GenAI.RateLimit)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// IsProduction returns true if running in production mode
func (m *Manager) IsProduction() bool {
	return strings.ToLower(viper.GetString("environment")) == "production"
}

// IsDevelopment returns true if running in development mode
func (m *Manager) IsDevelopment() bool {
	env := strings.ToLower(viper.GetString("environment"))
	return env == "development" || env == "dev" || env == ""
}
