package view

import (
	"paletteai/internal/tui/design"
	"paletteai/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the whole screen for the current mode.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return m.QuittingMessage + "\n"
	case model.ModeInitializing:
		return "Initializing..."
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	}
	if m.Width == 0 {
		return "Initializing..."
	}

	width := contentWidth(m.Width)
	header := renderHeader(m, width)

	var body string
	switch {
	case m.Modal != "":
		body = renderModal(m, width)
	case m.Wizard.State().ResultVisible:
		body = renderResult(m, width)
	default:
		body = renderInputStep(m, width)
	}

	statusBar := renderStatusBar(m, m.Width)
	main := lipgloss.JoinVertical(lipgloss.Left, header, "", body)
	main = design.CenterHorizontal(m.Width, main)

	if h := m.Height - lipgloss.Height(statusBar); h > 0 {
		main = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(main)
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, statusBar)
}

func contentWidth(total int) int {
	w := total - 4
	if w > design.MaxContentWidth {
		w = design.MaxContentWidth
	}
	if w < design.MinContentWidth {
		w = design.MinContentWidth
	}
	return w
}
