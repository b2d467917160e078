package controller

import (
	"paletteai/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions when the window is resized.
// It also transitions from ModeInitializing → ModeWizard once we know the size.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeWizard
	}
	return m, nil
}
