package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"cinematch/internal/api"
	"cinematch/internal/config"
	"cinematch/pkg/logging"
)

// Application is the main application structure that bootstraps and runs cinematch
type Application struct {
	config   *Config
	services *Services
}

// logOutput receives CLI-mode logs. Stdout is reserved for command output.
var logOutput io.Writer = os.Stderr

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelWarn
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(appLogLevel, logOutput)

	cinematchCfg, err := loadConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	cfg.CinematchConfig = &cinematchCfg

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	logging.Debug("Bootstrap", "Using recommendation service at %s", services.Client.BaseURL())

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

func loadConfiguration(cfg *Config) (config.CinematchConfig, error) {
	var (
		loaded config.CinematchConfig
		err    error
	)

	if cfg.ConfigPath != "" {
		loaded, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return loaded, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		loaded, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return loaded, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	if cfg.BaseURL != "" {
		loaded.Service.BaseURL = cfg.BaseURL
		if err := loaded.Validate(); err != nil {
			return loaded, fmt.Errorf("invalid --base-url: %w", err)
		}
	}
	return loaded, nil
}

// Service returns the recommendation service used by all modes.
func (a *Application) Service() api.Service {
	return a.services.Client
}

// Settings returns the loaded configuration.
func (a *Application) Settings() config.CinematchConfig {
	return *a.config.CinematchConfig
}

// Run starts the interactive terminal UI.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}
