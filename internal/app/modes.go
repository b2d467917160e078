package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"paletteai/internal/config"
	"paletteai/internal/tui/controller"
	"paletteai/internal/tui/design"
	"paletteai/internal/tui/model"
	"paletteai/pkg/logging"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, settings config.PaletteConfig, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(true)

	mirror, closeMirror, err := openLogMirror(settings.Logging.File)
	if err != nil {
		return err
	}
	defer closeMirror()

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(LogLevel(cfg, settings), mirror)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		DebugMode:       cfg.Debug,
		Generator:       services.Generator,
		Exporter:        services.Exporter,
		FallbackPalette: settings.Client.FallbackPalette,
		Demo:            cfg.Demo,
		LogChannel:      logChan,
	})
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

// openLogMirror opens the optional log file that receives a copy of every
// entry while the TUI owns the terminal.
func openLogMirror(path string) (io.Writer, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
