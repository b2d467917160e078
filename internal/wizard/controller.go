// Package wizard implements the palette wizard's step machine: form
// collection across three input steps, submission to a generation service,
// the result view, and export of the result. It is independent of any UI
// toolkit; the TUI and the CLI both drive it.
//
// A Controller is owned by a single event loop and is not safe for
// concurrent use.
package wizard

import (
	"context"
	"errors"
	"time"

	"paletteai/internal/clipboard"
	"paletteai/internal/export"
	"paletteai/internal/palette"
	"paletteai/pkg/logging"
)

const subsystem = "Wizard"

// Step indices.
const (
	StepBusiness = iota
	StepDesign
	StepUsage
	StepResult
)

// StepNames labels the steps for display.
var StepNames = []string{"Business", "Design", "Usage", "Result"}

// State is the wizard's transient navigation state.
type State struct {
	Step               int
	ResultVisible      bool
	SubmissionInFlight bool
	ExportInFlight     bool
}

// Generator produces a palette for a form.
type Generator interface {
	Generate(ctx context.Context, form palette.FormInput) (*palette.Palette, error)
}

// Exporter renders an export job to an artifact.
type Exporter interface {
	Export(ctx context.Context, job export.Job) (export.Artifact, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sets where failure notifications go.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithFallbackPalette sets the palette shown by Demo.
func WithFallbackPalette(p *palette.Palette) Option {
	return func(c *Controller) {
		if p != nil {
			cp := p.Clone()
			c.fallback = &cp
		}
	}
}

// WithClock overrides the time source used to date exports.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// Controller owns FormInput, the current Palette and the State.
type Controller struct {
	state    State
	form     palette.FormInput
	result   *palette.Palette
	notifier Notifier
	fallback *palette.Palette
	now      func() time.Time
}

// New returns a controller on the first step with an empty form.
func New(opts ...Option) *Controller {
	c := &Controller{
		notifier: discardNotifier{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the navigation state.
func (c *Controller) State() State { return c.state }

// Form returns a copy of the current form.
func (c *Controller) Form() palette.FormInput { return c.form.Clone() }

// Palette returns a copy of the displayed palette, or nil when no result is visible.
func (c *Controller) Palette() *palette.Palette {
	if !c.state.ResultVisible || c.result == nil {
		return nil
	}
	p := c.result.Clone()
	return &p
}

// Swatches returns the displayable swatches of the current result.
func (c *Controller) Swatches() []palette.Swatch {
	if !c.state.ResultVisible || c.result == nil {
		return nil
	}
	return c.result.Swatches()
}

// Missing lists the required fields still empty on the current step.
func (c *Controller) Missing() []string {
	return c.form.Missing(c.state.Step)
}

func (c *Controller) onInputStep() bool {
	return !c.state.ResultVisible && c.state.Step < StepResult
}

// NextStep advances from step 0 or 1 when the step's required fields are set.
// It reports whether the step changed.
func (c *Controller) NextStep() bool {
	if !c.onInputStep() || c.state.SubmissionInFlight || c.state.Step >= StepUsage {
		return false
	}
	if missing := c.form.Missing(c.state.Step); len(missing) > 0 {
		logging.Debug(subsystem, "Step %d incomplete, missing %v", c.state.Step, missing)
		return false
	}
	c.state.Step++
	logging.Debug(subsystem, "Advanced to step %d (%s)", c.state.Step, StepNames[c.state.Step])
	return true
}

// PrevStep moves back one input step without validation. It reports whether
// the step changed.
func (c *Controller) PrevStep() bool {
	if !c.onInputStep() || c.state.SubmissionInFlight || c.state.Step == StepBusiness {
		return false
	}
	c.state.Step--
	logging.Debug(subsystem, "Returned to step %d (%s)", c.state.Step, StepNames[c.state.Step])
	return true
}

func (c *Controller) checkEditable() error {
	if c.state.SubmissionInFlight {
		return ErrSubmissionInFlight
	}
	if !c.onInputStep() {
		return ErrWrongStep
	}
	return nil
}

// SetField assigns a text field of the form.
func (c *Controller) SetField(field palette.Field, value string) error {
	if err := c.checkEditable(); err != nil {
		return err
	}
	return c.form.Set(field, value)
}

// ToggleUsage flips one usage selection.
func (c *Controller) ToggleUsage(value string) error {
	if err := c.checkEditable(); err != nil {
		return err
	}
	c.form.ToggleUsage(value)
	return nil
}

// BeginSubmit marks a submission in flight and returns the form to send.
// It is only valid on the usage step.
func (c *Controller) BeginSubmit() (palette.FormInput, error) {
	if c.state.SubmissionInFlight {
		return palette.FormInput{}, ErrSubmissionInFlight
	}
	if !c.onInputStep() || c.state.Step != StepUsage {
		return palette.FormInput{}, ErrWrongStep
	}
	c.state.SubmissionInFlight = true
	logging.Info(subsystem, "Submitting palette request for %q", c.form.BusinessType)
	return c.form.Clone(), nil
}

// CompleteSubmit stores the generated palette and shows the result. A nil
// palette counts as a failure. Calls without a submission in flight are
// ignored.
func (c *Controller) CompleteSubmit(p *palette.Palette) error {
	if !c.state.SubmissionInFlight {
		logging.Warn(subsystem, "Ignoring palette delivered with no submission in flight")
		return nil
	}
	if p == nil {
		return c.FailSubmit(errors.New("response contained no palette"))
	}
	cp := p.Clone()
	c.result = &cp
	c.state.SubmissionInFlight = false
	c.state.ResultVisible = true
	c.state.Step = StepResult
	logging.Info(subsystem, "Palette received with %d colors", len(cp.Swatches()))
	return nil
}

// FailSubmit ends the in-flight submission without a result. The wizard stays
// on the usage step with the form untouched and the notifier fires once. The
// returned error is a *GenerationFailure, or nil if nothing was in flight.
func (c *Controller) FailSubmit(err error) error {
	if !c.state.SubmissionInFlight {
		return nil
	}
	c.state.SubmissionInFlight = false
	c.result = nil
	failure := asGenerationFailure(err)
	logging.Error(subsystem, failure.Err, "Palette generation failed")
	c.notifier.Notify(failure)
	return failure
}

func asGenerationFailure(err error) *GenerationFailure {
	var gf *GenerationFailure
	if errors.As(err, &gf) {
		return gf
	}
	if err == nil {
		err = errors.New("unknown error")
	}
	return &GenerationFailure{Err: err}
}

// Generate runs a full submission synchronously against g.
func (c *Controller) Generate(ctx context.Context, g Generator) error {
	form, err := c.BeginSubmit()
	if err != nil {
		return err
	}
	p, err := g.Generate(ctx, form)
	if err != nil {
		return c.FailSubmit(err)
	}
	return c.CompleteSubmit(p)
}

// Demo shows the configured fallback palette as the result, skipping the
// generation service.
func (c *Controller) Demo() error {
	if c.fallback == nil {
		return ErrNoFallback
	}
	if c.state.SubmissionInFlight {
		return ErrSubmissionInFlight
	}
	cp := c.fallback.Clone()
	c.result = &cp
	c.state = State{Step: StepResult, ResultVisible: true}
	logging.Info(subsystem, "Showing fallback palette")
	return nil
}

// Reset starts over: empty form, no palette, first step.
func (c *Controller) Reset() {
	c.state = State{}
	c.form = palette.FormInput{}
	c.result = nil
	logging.Info(subsystem, "Wizard reset")
}

// BeginExport marks an export in flight and returns the job to render. It
// returns false, changing nothing, when no result is visible or an export is
// already running.
func (c *Controller) BeginExport() (export.Job, bool) {
	if !c.state.ResultVisible || c.result == nil || c.state.ExportInFlight {
		return export.Job{}, false
	}
	c.state.ExportInFlight = true
	return export.Job{
		Palette: c.result.Clone(),
		Form:    c.form.Clone(),
		Date:    c.now(),
	}, true
}

// FinishExport clears the export flag. A non-nil err fires the notifier once
// and is returned as an *ExportFailure. Palette and form are never touched.
func (c *Controller) FinishExport(err error) error {
	if !c.state.ExportInFlight {
		return nil
	}
	c.state.ExportInFlight = false
	if err == nil {
		return nil
	}
	var failure *ExportFailure
	if !errors.As(err, &failure) {
		failure = &ExportFailure{Err: err}
	}
	logging.Error(subsystem, failure.Err, "Palette export failed")
	c.notifier.Notify(failure)
	return failure
}

// Export runs a full export synchronously with e.
func (c *Controller) Export(ctx context.Context, e Exporter) (export.Artifact, error) {
	job, ok := c.BeginExport()
	if !ok {
		if !c.state.ResultVisible {
			return export.Artifact{}, ErrNoResult
		}
		return export.Artifact{}, ErrExportInFlight
	}
	art, err := e.Export(ctx, job)
	if ferr := c.FinishExport(err); ferr != nil {
		return export.Artifact{}, ferr
	}
	logging.Info(subsystem, "Exported palette to %s", art.Path)
	return art, nil
}

// Copy writes the hex value of slot to w. Failures are logged and otherwise
// ignored. It returns the copied value and whether the write succeeded.
func (c *Controller) Copy(slot palette.Slot, w clipboard.Writer) (string, bool) {
	if !c.state.ResultVisible || c.result == nil || w == nil {
		return "", false
	}
	hex := c.result.Hex(slot)
	if hex == "" {
		return "", false
	}
	if err := w.WriteAll(hex); err != nil {
		logging.Debug(subsystem, "Clipboard write of %s failed: %v", hex, err)
		return hex, false
	}
	return hex, true
}
