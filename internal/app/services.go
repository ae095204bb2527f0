package app

import (
	"cinematch/internal/api"
)

// Services holds the initialized collaborators
type Services struct {
	Client *api.Client
}

// InitializeServices creates the recommendation service client from the
// loaded configuration.
func InitializeServices(cfg *Config) (*Services, error) {
	client := api.NewClientFromConfig(*cfg.CinematchConfig)
	return &Services{Client: client}, nil
}
