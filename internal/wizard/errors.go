package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmissionInFlight is returned when a submission is requested while
	// another one has not completed.
	ErrSubmissionInFlight = errors.New("a palette generation is already in progress")
	// ErrExportInFlight is returned by Export when an export is already running.
	ErrExportInFlight = errors.New("an export is already in progress")
	// ErrNoResult is returned by result-only operations when no palette is shown.
	ErrNoResult = errors.New("no palette result is visible")
	// ErrWrongStep is returned when an operation is not valid on the current step.
	ErrWrongStep = errors.New("operation not allowed on the current step")
	// ErrNoFallback is returned by Demo when no fallback palette was configured.
	ErrNoFallback = errors.New("no fallback palette configured")
)

// GenerationFailure wraps any error that kept a submission from producing a
// palette: transport errors, non-success statuses, and unusable bodies alike.
type GenerationFailure struct {
	Err error
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("palette generation failed: %v", e.Err)
}

func (e *GenerationFailure) Unwrap() error { return e.Err }

// UserMessage is the text shown to the user for this failure.
func (e *GenerationFailure) UserMessage() string {
	return "Error generating palette. Please try again."
}

// ExportFailure wraps a rasterization or write error during export.
type ExportFailure struct {
	Err error
}

func (e *ExportFailure) Error() string {
	return fmt.Sprintf("palette export failed: %v", e.Err)
}

func (e *ExportFailure) Unwrap() error { return e.Err }

// UserMessage is the text shown to the user for this failure.
func (e *ExportFailure) UserMessage() string {
	return "Could not generate image. Please try again."
}

// UserMessage returns the notification text for err, falling back to the
// error string for unclassified errors.
func UserMessage(err error) string {
	var gf *GenerationFailure
	if errors.As(err, &gf) {
		return gf.UserMessage()
	}
	var ef *ExportFailure
	if errors.As(err, &ef) {
		return ef.UserMessage()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
