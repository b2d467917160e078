package controller

import (
	"errors"
	"fmt"
	"strings"

	"paletteai/internal/palette"
	"paletteai/internal/tui/model"
	"paletteai/internal/wizard"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleWizardKeys routes keys to the input steps or the result view.
func handleWizardKeys(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.Wizard.State().ResultVisible {
		return handleResultKeys(m, keyMsg)
	}
	return handleInputStepKeys(m, keyMsg)
}

func handleInputStepKeys(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	var err error
	switch {
	case key.Matches(keyMsg, m.Keys.Tab):
		m.FocusNext()
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		m.FocusPrev()
	case key.Matches(keyMsg, m.Keys.Left):
		err = m.CycleOption(-1)
	case key.Matches(keyMsg, m.Keys.Right):
		err = m.CycleOption(1)
	case key.Matches(keyMsg, m.Keys.Toggle):
		err = m.ToggleAtCursor()
	case key.Matches(keyMsg, m.Keys.Esc):
		if m.Wizard.PrevStep() {
			m.ResetFocus()
		}
	case key.Matches(keyMsg, m.Keys.Enter):
		return advanceOrSubmit(m)
	}
	if errors.Is(err, wizard.ErrSubmissionInFlight) {
		LogDebug(m, controllerSubsystem, "Form is locked while generating")
	}
	return m, nil
}

func advanceOrSubmit(m *model.Model) (*model.Model, tea.Cmd) {
	st := m.Wizard.State()
	if st.Step == wizard.StepUsage {
		return submit(m)
	}
	if m.Wizard.NextStep() {
		m.ResetFocus()
		return m, nil
	}
	if missing := m.Wizard.Missing(); len(missing) > 0 {
		msg := fmt.Sprintf("Please fill in: %s", strings.Join(fieldLabels(st.Step, missing), ", "))
		return m, m.SetStatusMessage(msg, model.StatusBarWarning, model.StatusBarDuration)
	}
	return m, nil
}

func submit(m *model.Model) (*model.Model, tea.Cmd) {
	form, err := m.Wizard.BeginSubmit()
	if err != nil {
		// Single flight: a second enter while generating is dropped.
		LogDebug(m, controllerSubsystem, "Submit ignored: %v", err)
		return m, nil
	}
	return m, model.GenerateCmd(m.Generator, form)
}

func fieldLabels(step int, names []string) []string {
	if step < 0 || step >= len(model.StepFields) {
		return names
	}
	labels := make([]string, 0, len(names))
	for _, n := range names {
		label := n
		for _, f := range model.StepFields[step] {
			if string(f.Field) == n {
				label = f.Label
				break
			}
		}
		labels = append(labels, label)
	}
	return labels
}

func handleResultKeys(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	swatches := m.Wizard.Swatches()
	switch {
	case key.Matches(keyMsg, m.Keys.Left):
		moveSwatch(m, len(swatches), -1)
	case key.Matches(keyMsg, m.Keys.Right):
		moveSwatch(m, len(swatches), 1)
	case key.Matches(keyMsg, m.Keys.Up):
		moveSwatch(m, len(swatches), -model.SwatchColumns)
	case key.Matches(keyMsg, m.Keys.Down):
		moveSwatch(m, len(swatches), model.SwatchColumns)
	case key.Matches(keyMsg, m.Keys.Copy), key.Matches(keyMsg, m.Keys.Enter):
		if m.SelectedSwatch < len(swatches) {
			return copySwatch(m, swatches[m.SelectedSwatch].Slot)
		}
	case key.Matches(keyMsg, m.Keys.Export):
		job, ok := m.Wizard.BeginExport()
		if !ok {
			return m, nil
		}
		return m, model.ExportCmd(m.Exporter, job)
	case key.Matches(keyMsg, m.Keys.NewPalette):
		if m.Wizard.State().ExportInFlight {
			return m, nil
		}
		m.Wizard.Reset()
		m.SelectedSwatch = 0
		m.LastExportPath = ""
		m.ResetFocus()
	}
	return m, nil
}

func moveSwatch(m *model.Model, n, delta int) {
	if n == 0 {
		return
	}
	next := m.SelectedSwatch + delta
	if next < 0 || next >= n {
		return
	}
	m.SelectedSwatch = next
}

// copySwatch copies a hex value. Clipboard failures are silent.
func copySwatch(m *model.Model, slot palette.Slot) (*model.Model, tea.Cmd) {
	hex, ok := m.Wizard.Copy(slot, m.Clipboard)
	if !ok {
		return m, nil
	}
	return m, m.SetStatusMessage("Copied "+hex, model.StatusBarSuccess, model.StatusBarDuration)
}
