package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/cinematch"
	projectConfigDir = ".cinematch"
	configFileName   = "config.yaml"
)

// LoadConfig loads the cinematch configuration by layering default, user, and project settings.
func LoadConfig() (CinematchConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		config, err = overlayIfExists(config, userConfigPath)
		if err != nil {
			return CinematchConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		config, err = overlayIfExists(config, projectConfigPath)
		if err != nil {
			return CinematchConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	return finalize(config)
}

// LoadConfigFromPath loads the defaults overlaid with a single explicit file.
// Unlike the layered files, the explicit file must exist.
func LoadConfigFromPath(filePath string) (CinematchConfig, error) {
	overlay, err := loadConfigFromFile(filePath)
	if err != nil {
		return CinematchConfig{}, fmt.Errorf("error loading config from %s: %w", filePath, err)
	}
	return finalize(mergeConfigs(GetDefaultConfig(), overlay))
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func overlayIfExists(base CinematchConfig, path string) (CinematchConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return CinematchConfig{}, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a CinematchConfig from a YAML file.
func loadConfigFromFile(filePath string) (CinematchConfig, error) {
	var config CinematchConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return CinematchConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return CinematchConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the
// overlay leave the base untouched.
func mergeConfigs(base, overlay CinematchConfig) CinematchConfig {
	merged := base

	if overlay.Service.BaseURL != "" {
		merged.Service.BaseURL = overlay.Service.BaseURL
	}
	if overlay.Service.Timeout != 0 {
		merged.Service.Timeout = overlay.Service.Timeout
	}
	if overlay.Suggestions.Limit != 0 {
		merged.Suggestions.Limit = overlay.Suggestions.Limit
	}
	if overlay.Cache.TTL != nil {
		ttl := *overlay.Cache.TTL
		merged.Cache.TTL = &ttl
	}
	if overlay.Breaker.FailureThreshold != 0 {
		merged.Breaker.FailureThreshold = overlay.Breaker.FailureThreshold
	}
	if overlay.Breaker.OpenTimeout != 0 {
		merged.Breaker.OpenTimeout = overlay.Breaker.OpenTimeout
	}
	if overlay.Update.Repository != "" {
		merged.Update.Repository = overlay.Update.Repository
	}

	return merged
}

func finalize(config CinematchConfig) (CinematchConfig, error) {
	config.Service.BaseURL = os.ExpandEnv(config.Service.BaseURL)
	if err := config.Validate(); err != nil {
		return CinematchConfig{}, err
	}
	return config, nil
}

// Validate checks the settings that would otherwise fail at request time.
func (c CinematchConfig) Validate() error {
	u, err := url.Parse(c.Service.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid service.baseURL %q: %w", c.Service.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid service.baseURL %q: must be an absolute http(s) URL", c.Service.BaseURL)
	}
	if c.Service.Timeout < 0 {
		return fmt.Errorf("invalid service.timeout %s: must not be negative", c.Service.Timeout)
	}
	if c.Suggestions.Limit <= 0 {
		return fmt.Errorf("invalid suggestions.limit %d: must be positive", c.Suggestions.Limit)
	}
	if c.CacheTTL() < 0 {
		return fmt.Errorf("invalid cache.ttl %s: must not be negative", c.CacheTTL())
	}
	return nil
}
