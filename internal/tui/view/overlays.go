package view

import (
	"paletteai/internal/tui/design"
	"paletteai/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

var overlayWhitespace = lipgloss.WithWhitespaceBackground(design.ColorBackgroundOverlay)

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	body := m.Help.FullHelpView(m.Keys.FullHelp())
	container := design.CenteredOverlayContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

// renderLogOverlay sizes the log viewport to 80%x70% of the terminal and
// refreshes its content when the log changed since the last frame.
func renderLogOverlay(m *model.Model) string {
	title := design.LogPanelTitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(title)

	totalWidth := int(float64(m.Width) * 0.8)
	totalHeight := int(float64(m.Height) * 0.7)

	vpWidth := totalWidth - design.LogOverlayStyle.GetHorizontalFrameSize()
	vpHeight := totalHeight - design.LogOverlayStyle.GetVerticalFrameSize() - titleHeight
	if vpWidth < 0 {
		vpWidth = 0
	}
	if vpHeight < 0 {
		vpHeight = 0
	}

	resized := m.LogViewport.Width != vpWidth || m.LogViewport.Height != vpHeight
	m.LogViewport.Width = vpWidth
	m.LogViewport.Height = vpHeight
	if m.ActivityLogDirty || resized {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, vpWidth))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	overlay := design.LogOverlayStyle.
		Width(totalWidth - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(totalHeight - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)

	canvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay, overlayWhitespace)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.Width))
}

// renderModal shows a failure that must be acknowledged before anything else.
func renderModal(m *model.Model, width int) string {
	inner := width - design.ModalStyle.GetHorizontalFrameSize()
	if inner > 60 {
		inner = 60
	}
	msg := lipgloss.NewStyle().Width(inner).Render(design.TextErrorStyle.Render(m.Modal))
	hint := design.TextMutedStyle.Render("press enter to dismiss")
	box := design.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		design.HelpTitleStyle.Render("Something went wrong"), "", msg, "", hint))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
