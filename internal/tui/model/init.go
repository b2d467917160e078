package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paletteai/internal/clipboard"
	"paletteai/internal/tui/design"
	"paletteai/internal/wizard"
	"paletteai/pkg/logging"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "swatch up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "swatch down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next/submit"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle usage"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy hex"),
		),
		Export: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download PNG"),
		),
		NewPalette: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new palette"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InitialModel constructs the initial model with sensible defaults.
func InitialModel(cfg TUIConfig) *Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. Young professionals"
	ti.CharLimit = 120
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(design.ColorPrimary)

	clip := cfg.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}

	m := &Model{
		CurrentAppMode: ModeInitializing,
		DebugMode:      cfg.DebugMode,
		Generator:      cfg.Generator,
		Exporter:       cfg.Exporter,
		Clipboard:      clip,
		AudienceInput:  ti,
		LogViewport:    viewport.New(0, 0),
		Spinner:        s,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		LogChannel:     cfg.LogChannel,
	}

	// The notifier runs inside FailSubmit/FinishExport, i.e. on the update
	// loop, so it may touch the model directly.
	m.Wizard = wizard.New(
		wizard.WithNotifier(wizard.NotifierFunc(m.ShowFailure)),
		wizard.WithFallbackPalette(cfg.FallbackPalette),
		wizard.WithClock(cfg.Now),
	)

	if cfg.Demo {
		if err := m.Wizard.Demo(); err != nil {
			logging.Warn("TUI", "Demo mode unavailable: %v", err)
		}
	}
	m.syncFocus()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		textinput.Blink,
		ListenForLogEntriesCmd(m.LogChannel),
	)
}
