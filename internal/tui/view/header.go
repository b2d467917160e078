package view

import (
	"strings"

	"paletteai/internal/tui/design"
	"paletteai/internal/tui/model"
	"paletteai/internal/wizard"

	"github.com/charmbracelet/lipgloss"
)

func renderHeader(m *model.Model, width int) string {
	title := design.TitleStyle.Render("🎨 PaletteAI")
	subtitle := design.SubtitleStyle.Render("AI color palettes for your brand")
	top := lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", subtitle)
	return lipgloss.JoinVertical(lipgloss.Left, top, "", renderStepper(m.Wizard.State(), width))
}

// renderStepper draws "✓ Business ── ● Design ── ○ Usage ── ○ Result".
func renderStepper(st wizard.State, width int) string {
	parts := make([]string, 0, len(wizard.StepNames))
	for i, name := range wizard.StepNames {
		switch {
		case i < st.Step:
			parts = append(parts, design.StepDoneStyle.Render("✓ "+name))
		case i == st.Step:
			parts = append(parts, design.StepActiveStyle.Render("● "+name))
		default:
			parts = append(parts, design.StepPendingStyle.Render("○ "+name))
		}
	}
	line := strings.Join(parts, design.StepPendingStyle.Render(" ── "))
	if lipgloss.Width(line) > width {
		// Narrow terminals only get the active step.
		return design.StepActiveStyle.Render(wizard.StepNames[st.Step])
	}
	return line
}
