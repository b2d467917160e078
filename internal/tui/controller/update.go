package controller

import (
	"paletteai/internal/tui/model"
	"paletteai/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// mainControllerDispatch is the central message routing function for the TUI application.
// It receives all Bubble Tea messages and directs them to the appropriate handler functions
// based on the message type and current application mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.PaletteGeneratedMsg:
		return handlePaletteGeneratedMsg(m, msg)

	case model.ExportFinishedMsg:
		return handleExportFinishedMsg(m, msg)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			return m, cmd
		}
		return m, nil

	default:
		// Cursor blink and similar widget-internal messages.
		if m.AudienceInput.Focused() {
			var cmd tea.Cmd
			m.AudienceInput, cmd = m.AudienceInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func handlePaletteGeneratedMsg(m *model.Model, msg model.PaletteGeneratedMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		// FailSubmit notifies, which opens the modal.
		_ = m.Wizard.FailSubmit(msg.Err)
		return m, nil
	}
	if err := m.Wizard.CompleteSubmit(msg.Palette); err != nil {
		LogWarn(controllerSubsystem, "Palette rejected: %v", err)
		return m, nil
	}
	m.SelectedSwatch = 0
	m.LastExportPath = ""
	return m, m.SetStatusMessage("Palette ready", model.StatusBarSuccess, model.StatusBarDuration)
}

func handleExportFinishedMsg(m *model.Model, msg model.ExportFinishedMsg) (*model.Model, tea.Cmd) {
	if !m.Wizard.State().ExportInFlight {
		LogDebug(m, controllerSubsystem, "Dropping export result with no export in flight")
		return m, nil
	}
	if err := m.Wizard.FinishExport(msg.Err); err != nil {
		return m, nil
	}
	m.LastExportPath = msg.Artifact.Path
	LogInfo(controllerSubsystem, "Palette image saved to %s", msg.Artifact.Path)
	return m, m.SetStatusMessage("Saved "+msg.Artifact.Path, model.StatusBarSuccess, model.StatusBarDuration)
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry
	// Debug lines only reach the activity log in debug mode.
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, entry.Line())
	}
	return m
}
