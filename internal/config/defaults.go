package config

import "time"

const (
	DefaultBaseURL          = "http://127.0.0.1:5001"
	DefaultTimeout          = 10 * time.Second
	DefaultSuggestionLimit  = 7
	DefaultCacheTTL         = 5 * time.Minute
	DefaultFailureThreshold = 5
	DefaultOpenTimeout      = 30 * time.Second
)

// GetDefaultConfig returns the built-in configuration every layer is merged onto.
func GetDefaultConfig() CinematchConfig {
	return CinematchConfig{
		Service: ServiceConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Suggestions: SuggestionsConfig{
			Limit: DefaultSuggestionLimit,
		},
		Breaker: BreakerConfig{
			FailureThreshold: DefaultFailureThreshold,
			OpenTimeout:      DefaultOpenTimeout,
		},
	}
}
