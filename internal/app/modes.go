package app

import (
	"context"

	"cinematch/internal/tui/controller"
	"cinematch/internal/tui/design"
	"cinematch/internal/tui/model"
	"cinematch/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	design.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)

	p := controller.NewProgram(tuiConfig(config, services, logChan), tea.WithContext(ctx))
	_, err := p.Run()

	logging.CloseTUIChannel()
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	if n := logging.Dropped(); n > 0 {
		logging.Debug("TUI-Lifecycle", "%d log entries were dropped while the TUI was busy", n)
	}
	return nil
}

func tuiConfig(config *Config, services *Services, logChan <-chan logging.LogEntry) model.TUIConfig {
	return model.TUIConfig{
		Service:         services.Client,
		SuggestionLimit: config.CinematchConfig.Suggestions.Limit,
		DebugMode:       config.Debug,
		LogChannel:      logChan,
	}
}
