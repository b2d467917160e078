package model

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"paletteai/internal/export"
	"paletteai/internal/palette"
	"paletteai/internal/wizard"
	"paletteai/pkg/logging"
)

var (
	errNoGenerator = errors.New("no palette generator configured")
	errNoExporter  = errors.New("no exporter configured")
)

// GenerateCmd requests a palette for form. In-flight requests are never
// cancelled, so the command runs on a background context.
func GenerateCmd(g wizard.Generator, form palette.FormInput) tea.Cmd {
	return func() tea.Msg {
		if g == nil {
			return PaletteGeneratedMsg{Err: errNoGenerator}
		}
		p, err := g.Generate(context.Background(), form)
		return PaletteGeneratedMsg{Palette: p, Err: err}
	}
}

// ExportCmd renders job to a PNG.
func ExportCmd(e wizard.Exporter, job export.Job) tea.Cmd {
	return func() tea.Msg {
		if e == nil {
			return ExportFinishedMsg{Err: errNoExporter}
		}
		art, err := e.Export(context.Background(), job)
		return ExportFinishedMsg{Artifact: art, Err: err}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil when
// there is no channel so tests can run without logging set up.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
