package view

import (
	"strings"

	"paletteai/internal/export"
	"paletteai/internal/palette"
	"paletteai/internal/tui/design"
	"paletteai/internal/tui/model"
	"paletteai/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

func renderResult(m *model.Model, width int) string {
	p := m.Wizard.Palette()
	if p == nil {
		return ""
	}
	form := m.Wizard.Form()
	swatches := m.Wizard.Swatches()
	layout := export.NewLayout(export.Job{Palette: *p, Form: form}, "")

	sections := []string{
		design.SectionTitleStyle.Render("Your Color Palette"),
	}
	if layout.Subtitle != "" {
		sections = append(sections, design.SubtitleStyle.Render(layout.Subtitle))
	}
	sections = append(sections, renderSwatchGrid(swatches, m.SelectedSwatch), "")

	if notes := renderPsychology(swatches, width); notes != "" {
		sections = append(sections, notes, "")
	}
	sections = append(sections, renderTypography(p, form, width), "", renderResultButtons(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderSwatchGrid(swatches []palette.Swatch, selected int) string {
	var rows []string
	for start := 0; start < len(swatches); start += model.SwatchColumns {
		end := start + model.SwatchColumns
		if end > len(swatches) {
			end = len(swatches)
		}
		cells := make([]string, 0, model.SwatchColumns)
		for i := start; i < end; i++ {
			cells = append(cells, renderSwatchCell(swatches[i], i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderSwatchCell(sw palette.Swatch, selected bool) string {
	inner := design.SwatchCellWidth
	block := lipgloss.NewStyle().Width(inner).Height(design.SwatchBlockHeight)
	if bg, fg, ok := swatchColors(sw.Hex); ok {
		block = block.Background(bg).Foreground(fg)
	} else {
		block = block.Foreground(design.ColorError)
	}
	name := sw.Name
	if name == "" {
		name = " "
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		block.Render(" "+utils.TruncateString(name, inner-2)),
		design.SwatchRoleStyle.Render(utils.TruncateString(sw.Role, inner)),
		design.SwatchHexStyle.Render(sw.Hex),
	)
	style := design.SwatchCellStyle
	if selected {
		style = design.SwatchCellSelectedStyle
	}
	return style.Render(body)
}

func renderPsychology(swatches []palette.Swatch, width int) string {
	notes := palette.WithPsychology(swatches)
	if len(notes) == 0 {
		return ""
	}
	lines := []string{design.SectionTitleStyle.Render("Color Psychology")}
	wrap := lipgloss.NewStyle().Width(width - 2)
	for _, sw := range notes {
		lines = append(lines, wrap.Render(design.SwatchRoleStyle.Render(sw.Role+": ")+design.TextStyle.Render(sw.Psychology)))
	}
	return strings.Join(lines, "\n")
}

// TypographyNote is the sentence under the suggested font.
func TypographyNote(form palette.FormInput) string {
	return strings.ToLower("Recommended for " + form.DesignStyle + " designs targeting " + form.Audience)
}

func renderTypography(p *palette.Palette, form palette.FormInput, width int) string {
	font := p.FontSuggestion
	if font == "" {
		font = "-"
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		design.SectionTitleStyle.Render("Typography"),
		design.TextSecondaryStyle.Render("Recommended Font"),
		design.TitleStyle.Render(font),
		design.TextMutedStyle.Render(TypographyNote(form)),
	)
	return design.PanelStyle.Width(width - design.PanelStyle.GetHorizontalFrameSize()).Render(content)
}

func renderResultButtons(m *model.Model) string {
	st := m.Wizard.State()
	download := design.ButtonStyle.Render("Download as Image (d)")
	if st.ExportInFlight {
		download = design.ButtonDisabledStyle.Render(m.Spinner.View() + " Rendering...")
	}
	buttons := []string{
		download,
		design.TextSecondaryStyle.Render("Create New Palette (n)"),
		design.TextSecondaryStyle.Render("Copy hex (c)"),
	}
	line := strings.Join(buttons, "   ")
	if m.LastExportPath != "" {
		line += "\n" + design.TextMutedStyle.Render("Last saved: "+m.LastExportPath)
	}
	return line
}
