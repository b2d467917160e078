package model

import (
	"paletteai/internal/export"
	"paletteai/internal/palette"
	"paletteai/pkg/logging"
)

// ---- Async results ----

// PaletteGeneratedMsg carries the outcome of a generation request.
type PaletteGeneratedMsg struct {
	Palette *palette.Palette
	Err     error
}

// ExportFinishedMsg carries the outcome of a PNG export.
type ExportFinishedMsg struct {
	Artifact export.Artifact
	Err      error
}

// ---- Logging / status bar ----

type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

type ClearStatusBarMsg struct{}
