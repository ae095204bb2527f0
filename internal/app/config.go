package app

import (
	"cinematch/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// ConfigPath points at an explicit config file. Empty means layered loading.
	ConfigPath string

	// BaseURL overrides service.baseURL when set.
	BaseURL string

	// Loaded configuration, filled in by NewApplication.
	CinematchConfig *config.CinematchConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath, baseURL string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
		BaseURL:    baseURL,
	}
}
