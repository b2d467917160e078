package view

import (
	"fmt"
	"strings"

	"paletteai/internal/tui/design"
	"paletteai/internal/tui/model"
	"paletteai/internal/wizard"

	"github.com/charmbracelet/lipgloss"
)

const gridColumns = 3

func renderInputStep(m *model.Model, width int) string {
	st := m.Wizard.State()
	form := m.Wizard.Form()

	var rows []string
	rows = append(rows, design.SectionTitleStyle.Render(model.StepTitles[st.Step]))

	for i, f := range model.StepFields[st.Step] {
		focused := i == m.FocusIndex
		label := design.LabelStyle.Render(f.Label)
		if focused {
			label = design.LabelStyle.Foreground(design.ColorPrimary).Render("› " + f.Label)
		}

		switch f.Kind {
		case model.KindText:
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, m.AudienceInput.View()))
		case model.KindSelect:
			value := model.OptionLabel(f, form.Get(f.Field))
			style := design.FieldStyle
			if focused {
				style = design.FieldFocusedStyle
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, style.Render("‹ "+value+" ›")))
		case model.KindGrid:
			selected := form.Get(f.Field)
			rows = append(rows, label, renderOptionGrid(f.Options, func(i int, o string) string {
				if o == selected {
					return design.OptionSelectedStyle.Render(o)
				}
				return design.OptionStyle.Render(o)
			}))
		case model.KindToggleGrid:
			rows = append(rows, renderOptionGrid(f.Options, func(i int, o string) string {
				box := "[ ] "
				if form.HasUsage(o) {
					box = "[x] "
				}
				switch {
				case focused && i == m.OptionCursor:
					return design.OptionCursorStyle.Render(box + o)
				case form.HasUsage(o):
					return design.TextSuccessStyle.Padding(0, design.SpaceXS).Render(box + o)
				default:
					return design.OptionStyle.Render(box + o)
				}
			}))
		}
		rows = append(rows, "")
	}

	rows = append(rows, renderStepButtons(m, st))
	return design.PanelStyle.Width(width - design.PanelStyle.GetHorizontalFrameSize()).Render(strings.Join(rows, "\n"))
}

func renderOptionGrid(options []string, cell func(i int, o string) string) string {
	var lines []string
	for start := 0; start < len(options); start += gridColumns {
		end := start + gridColumns
		if end > len(options) {
			end = len(options)
		}
		cells := make([]string, 0, gridColumns)
		for i := start; i < end; i++ {
			cells = append(cells, lipgloss.NewStyle().Width(22).Render(cell(i, options[i])))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func renderStepButtons(m *model.Model, st wizard.State) string {
	var buttons []string
	if st.Step > wizard.StepBusiness {
		buttons = append(buttons, design.TextSecondaryStyle.Render("‹ Back (esc)"))
	}
	switch {
	case st.Step == wizard.StepUsage && st.SubmissionInFlight:
		buttons = append(buttons, design.ButtonDisabledStyle.Render(m.Spinner.View()+" Generating..."))
	case st.Step == wizard.StepUsage:
		buttons = append(buttons, design.ButtonStyle.Render("Generate Palette (enter)"))
	case len(m.Wizard.Missing()) > 0:
		buttons = append(buttons, design.ButtonDisabledStyle.Render("Next ›"))
		buttons = append(buttons, design.TextWarningStyle.Render(requiredHint(len(m.Wizard.Missing()))))
	default:
		buttons = append(buttons, design.ButtonStyle.Render("Next › (enter)"))
	}
	return strings.Join(buttons, "   ")
}

func requiredHint(n int) string {
	if n == 1 {
		return "1 required field left"
	}
	return fmt.Sprintf("%d required fields left", n)
}
