package config

import (
	"time"
)

// CinematchConfig is the top-level configuration structure for cinematch.
type CinematchConfig struct {
	Service     ServiceConfig     `yaml:"service"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
	Cache       CacheConfig       `yaml:"cache"`
	Breaker     BreakerConfig     `yaml:"breaker"`
	Update      UpdateConfig      `yaml:"update"`
}

// ServiceConfig locates the recommendation service.
type ServiceConfig struct {
	BaseURL string        `yaml:"baseURL,omitempty"` // e.g. "http://127.0.0.1:5001"; ${VAR} is expanded
	Timeout time.Duration `yaml:"timeout,omitempty"` // per-request timeout
}

// SuggestionsConfig controls the autocomplete panel.
type SuggestionsConfig struct {
	Limit int `yaml:"limit,omitempty"` // maximum number of suggestions shown
}

// CacheConfig controls the in-memory recommendation cache.
type CacheConfig struct {
	TTL *time.Duration `yaml:"ttl,omitempty"` // nil keeps the default, 0 disables caching
}

// BreakerConfig controls the circuit breaker wrapped around service calls.
type BreakerConfig struct {
	FailureThreshold uint32        `yaml:"failureThreshold,omitempty"` // consecutive failures before opening
	OpenTimeout      time.Duration `yaml:"openTimeout,omitempty"`      // how long the breaker stays open
}

// UpdateConfig is used by the self-update command.
type UpdateConfig struct {
	Repository string `yaml:"repository,omitempty"` // GitHub "owner/name" slug publishing releases
}

// CacheTTL returns the effective cache TTL.
func (c CinematchConfig) CacheTTL() time.Duration {
	if c.Cache.TTL == nil {
		return DefaultCacheTTL
	}
	return *c.Cache.TTL
}
