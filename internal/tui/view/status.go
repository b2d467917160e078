package view

import (
	"paletteai/internal/tui/design"
	"paletteai/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar shows the transient status message when there is one and
// the short key help otherwise.
func renderStatusBar(m *model.Model, width int) string {
	if m.StatusBarMessage == "" {
		help := m.Help.ShortHelpView(m.Keys.ShortHelp())
		return design.StatusBarStyle.Width(width).MaxHeight(1).Render(help)
	}

	var style lipgloss.Style
	switch m.StatusBarMessageType {
	case model.StatusBarSuccess:
		style = design.StatusBarSuccessStyle
	case model.StatusBarError:
		style = design.StatusBarErrorStyle
	case model.StatusBarWarning:
		style = design.StatusBarWarningStyle
	default:
		style = design.StatusBarInfoStyle
	}
	return style.Width(width).MaxHeight(1).Render(m.StatusBarMessage)
}
