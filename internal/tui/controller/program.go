package controller

import (
	"errors"

	"paletteai/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the palette wizard.
func NewProgram(cfg model.TUIConfig) (*tea.Program, error) {
	if cfg.Generator == nil && !cfg.Demo {
		return nil, errors.New("a palette generator is required unless running in demo mode")
	}
	m := model.InitialModel(cfg)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen()), nil
}
