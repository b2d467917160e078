package controller

import (
	"strings"

	"paletteai/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgGlobal processes key presses. Quit, the failure modal and the
// overlays take precedence over the wizard's own keys.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.Type == tea.KeyCtrlC {
		return quit(m)
	}

	// The modal blocks everything until dismissed.
	if m.Modal != "" {
		if key.Matches(keyMsg, m.Keys.Enter) || key.Matches(keyMsg, m.Keys.Esc) {
			m.Modal = ""
		}
		return m, nil
	}

	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = m.LastAppMode
			return m, nil
		case key.Matches(keyMsg, m.Keys.CopyLogs):
			if err := m.Clipboard.WriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(controllerSubsystem, err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, model.StatusBarDuration)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, model.StatusBarDuration)
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.Help), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = m.LastAppMode
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	}

	// While typing, letters belong to the text input.
	if m.AudienceInput.Focused() && !isFormNavigationKey(m, keyMsg) {
		return handleAudienceInput(m, keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		openOverlay(m, model.ModeLogOverlay)
		return m, nil
	case key.Matches(keyMsg, m.Keys.Help):
		openOverlay(m, model.ModeHelpOverlay)
		return m, nil
	}

	return handleWizardKeys(m, keyMsg)
}

func openOverlay(m *model.Model, mode model.AppMode) {
	if m.CurrentAppMode != model.ModeHelpOverlay && m.CurrentAppMode != model.ModeLogOverlay {
		m.LastAppMode = m.CurrentAppMode
	}
	if m.LastAppMode == model.ModeInitializing {
		m.LastAppMode = model.ModeWizard
	}
	m.CurrentAppMode = mode
	if mode == model.ModeLogOverlay {
		m.ActivityLogDirty = true
	}
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuitApp = true
	m.QuittingMessage = "Goodbye!"
	return m, tea.Quit
}

func isFormNavigationKey(m *model.Model, keyMsg tea.KeyMsg) bool {
	return key.Matches(keyMsg, m.Keys.Tab) ||
		key.Matches(keyMsg, m.Keys.ShiftTab) ||
		key.Matches(keyMsg, m.Keys.Enter) ||
		key.Matches(keyMsg, m.Keys.Esc)
}

// handleAudienceInput feeds a key to the text input and mirrors the value
// into the form.
func handleAudienceInput(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.AudienceInput, cmd = m.AudienceInput.Update(keyMsg)
	f, ok := m.FocusedField()
	if !ok {
		return m, cmd
	}
	if err := m.Wizard.SetField(f.Field, m.AudienceInput.Value()); err != nil {
		LogDebug(m, controllerSubsystem, "Audience edit rejected: %v", err)
		m.AudienceInput.SetValue(m.Wizard.Form().Audience)
	}
	return m, cmd
}
