package app

import (
	"context"
	"fmt"
	"os"

	"paletteai/internal/config"
	"paletteai/pkg/logging"
)

// Application is the main application structure that bootstraps and runs the
// palette wizard.
type Application struct {
	config   *Config
	settings config.PaletteConfig
	services *Services
}

// LoadSettings reads .env, then the layered or single-path configuration, and
// applies the command-line overrides in cfg.
func LoadSettings(cfg *Config) (config.PaletteConfig, error) {
	config.LoadDotEnv()

	var (
		settings config.PaletteConfig
		err      error
	)
	if cfg.ConfigPath != "" {
		settings, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return config.PaletteConfig{}, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		settings, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return config.PaletteConfig{}, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	if cfg.APIURL != "" {
		settings.Client.APIURL = cfg.APIURL
	}
	if cfg.OutputDir != "" {
		settings.Client.OutputDir = cfg.OutputDir
	}
	return settings, nil
}

// LogLevel picks the level for this run: --debug wins over logging.level.
func LogLevel(cfg *Config, settings config.PaletteConfig) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	return logging.ParseLevel(settings.Logging.Level)
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// CLI logging until the TUI takes over the terminal.
	logging.InitForCLI(logging.LevelInfo, os.Stderr)

	settings, err := LoadSettings(cfg)
	if err != nil {
		return nil, err
	}

	services, err := InitializeServices(cfg, settings)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		settings: settings,
		services: services,
	}, nil
}

// Run executes the interactive wizard.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.settings, a.services)
}
