package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"paletteai/internal/clipboard"
	"paletteai/internal/palette"
	"paletteai/internal/tui/design"
	"paletteai/internal/wizard"
	"paletteai/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeWizard
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeWizard:
		return "Wizard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	StatusBarDuration   = 3 * time.Second
	// SwatchColumns is the width of the result grid, used for ↑/↓ movement.
	SwatchColumns = design.SwatchColumns
)

// TUIConfig carries the ports the wizard talks to.
type TUIConfig struct {
	DebugMode bool
	Generator wizard.Generator
	Exporter  wizard.Exporter
	Clipboard clipboard.Writer
	// FallbackPalette enables demo mode when Demo is set.
	FallbackPalette *palette.Palette
	Demo            bool
	LogChannel      <-chan logging.LogEntry
	Now             func() time.Time
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Enter      key.Binding
	Esc        key.Binding
	Toggle     key.Binding
	Copy       key.Binding
	Export     key.Binding
	NewPalette key.Binding
	ToggleLog  key.Binding
	CopyLogs   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Esc, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Left, k.Right, k.Toggle},
		{k.Enter, k.Esc, k.Up, k.Down},
		{k.Copy, k.Export, k.NewPalette},
		{k.ToggleLog, k.CopyLogs, k.Help, k.Quit},
	}
}

// Model is the TUI state. All wizard state lives in Wizard; the rest is
// presentation.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	QuitApp         bool
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string

	Wizard    *wizard.Controller
	Generator wizard.Generator
	Exporter  wizard.Exporter
	Clipboard clipboard.Writer

	// Input step focus. OptionCursor is the highlighted cell of a grid field.
	FocusIndex    int
	OptionCursor  int
	AudienceInput textinput.Model

	// Result step
	SelectedSwatch int
	LastExportPath string

	// Modal holds a blocking failure message; empty when none is shown.
	Modal string

	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	LogChannel <-chan logging.LogEntry
}

// Busy reports whether a generation or export is running.
func (m *Model) Busy() bool {
	st := m.Wizard.State()
	return st.SubmissionInFlight || st.ExportInFlight
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ShowFailure opens the blocking failure modal.
func (m *Model) ShowFailure(err error) {
	m.Modal = wizard.UserMessage(err)
}
