package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"paletteai/internal/clipboard"
	"paletteai/internal/export"
	"paletteai/internal/palette"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	errs []error
}

func (n *recordingNotifier) Notify(err error) { n.errs = append(n.errs, err) }

type fakeGenerator struct {
	palette *palette.Palette
	err     error
	calls   int
	lastIn  palette.FormInput
}

func (g *fakeGenerator) Generate(_ context.Context, in palette.FormInput) (*palette.Palette, error) {
	g.calls++
	g.lastIn = in
	return g.palette, g.err
}

type fakeExporter struct {
	err      error
	calls    int
	onExport func()
}

func (e *fakeExporter) Export(_ context.Context, job export.Job) (export.Artifact, error) {
	e.calls++
	if e.onExport != nil {
		e.onExport()
	}
	if e.err != nil {
		return export.Artifact{}, e.err
	}
	return export.Artifact{Path: export.FileName(job.Form.BusinessType), Width: 1600}, nil
}

func samplePalette() *palette.Palette {
	return &palette.Palette{
		Primary:        "#3A86FF",
		Secondary:      "#8338EC",
		Accent:         "#FF006E",
		Neutral:        "#F8F9FA",
		Background:     "#212529",
		Highlight:      "#06B6D4",
		Muted:          "#94A3B8",
		Success:        "#10B981",
		FontSuggestion: "Inter, sans-serif",
		ColorPsychology: []string{
			"Trustworthy", "Creative", "Vibrant", "Balanced",
			"Modern", "Fresh", "Subtle", "Positive",
		},
	}
}

// toUsageStep fills in a valid form and walks to the usage step.
func toUsageStep(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.SetField(palette.FieldBusinessType, "Startup"))
	require.NoError(t, c.SetField(palette.FieldIndustry, "Technology"))
	require.NoError(t, c.SetField(palette.FieldAudience, "Developers"))
	require.True(t, c.NextStep())
	require.NoError(t, c.SetField(palette.FieldDesignStyle, "Modern"))
	require.True(t, c.NextStep())
	require.Equal(t, StepUsage, c.State().Step)
}

func assertInvariants(t *testing.T, c *Controller) {
	t.Helper()
	s := c.State()
	assert.True(t, s.Step >= StepBusiness && s.Step <= StepResult)
	assert.Equal(t, s.Step == StepResult, s.ResultVisible, "result step and visibility go together")
	if s.SubmissionInFlight {
		assert.Equal(t, StepUsage, s.Step)
	}
	if s.ResultVisible {
		assert.NotNil(t, c.Palette())
	}
}

func TestNextStep_RequiresAudience(t *testing.T) {
	c := New()
	require.NoError(t, c.SetField(palette.FieldBusinessType, "Startup"))
	require.NoError(t, c.SetField(palette.FieldIndustry, "Technology"))

	before := c.State()
	assert.False(t, c.NextStep())
	assert.Equal(t, before, c.State())
	assert.Equal(t, []string{"audience"}, c.Missing())

	require.NoError(t, c.SetField(palette.FieldAudience, "Developers"))
	assert.True(t, c.NextStep())
	assert.Equal(t, StepDesign, c.State().Step)
	assertInvariants(t, c)
}

func TestNextStep_DesignRequiresStyle(t *testing.T) {
	c := New()
	require.NoError(t, c.SetField(palette.FieldBusinessType, "Startup"))
	require.NoError(t, c.SetField(palette.FieldIndustry, "Technology"))
	require.NoError(t, c.SetField(palette.FieldAudience, "Developers"))
	require.True(t, c.NextStep())

	assert.False(t, c.NextStep())
	require.NoError(t, c.SetField(palette.FieldDesignStyle, "Bold"))
	assert.True(t, c.NextStep())
	assert.False(t, c.NextStep(), "usage step only leaves by submission")
	assert.Equal(t, StepUsage, c.State().Step)
}

func TestPrevThenNextRestoresStep(t *testing.T) {
	for _, step := range []int{StepBusiness, StepDesign, StepUsage} {
		c := New()
		toUsageStep(t, c)
		for c.State().Step > step {
			require.True(t, c.PrevStep())
		}
		require.Equal(t, step, c.State().Step)

		moved := c.PrevStep()
		if moved {
			assert.True(t, c.NextStep())
		}
		assert.Equal(t, step, c.State().Step, "step %d", step)
		assertInvariants(t, c)
	}
}

func TestPrevStep_NoOpAtStart(t *testing.T) {
	c := New()
	assert.False(t, c.PrevStep())
	assert.Equal(t, State{}, c.State())
}

func TestToggleUsageTwiceRestores(t *testing.T) {
	c := New()
	toUsageStep(t, c)
	require.NoError(t, c.ToggleUsage("Print"))
	require.NoError(t, c.ToggleUsage("Website"))
	before := c.Form().Usage

	require.NoError(t, c.ToggleUsage("Logo"))
	require.NoError(t, c.ToggleUsage("Logo"))
	assert.Equal(t, before, c.Form().Usage)
	assert.Equal(t, []string{"Website", "Print"}, before)
}

func TestGenerate_Success(t *testing.T) {
	n := &recordingNotifier{}
	c := New(WithNotifier(n))
	toUsageStep(t, c)
	require.NoError(t, c.ToggleUsage("App"))

	g := &fakeGenerator{palette: samplePalette()}
	require.NoError(t, c.Generate(context.Background(), g))

	s := c.State()
	assert.True(t, s.ResultVisible)
	assert.False(t, s.SubmissionInFlight)
	assert.Equal(t, StepResult, s.Step)
	assert.Equal(t, samplePalette(), c.Palette())
	assert.Empty(t, n.errs)
	assert.Equal(t, []string{"App"}, g.lastIn.Usage)
	assertInvariants(t, c)

	sw := c.Swatches()
	require.Len(t, sw, 8)
	assert.Equal(t, "#3A86FF", sw[0].Hex)
}

func TestGenerate_FailureStaysOnUsage(t *testing.T) {
	n := &recordingNotifier{}
	c := New(WithNotifier(n))
	toUsageStep(t, c)
	require.NoError(t, c.ToggleUsage("Marketing"))
	formBefore := c.Form()

	g := &fakeGenerator{err: errors.New("status 500")}
	err := c.Generate(context.Background(), g)
	require.Error(t, err)

	var gf *GenerationFailure
	require.True(t, errors.As(err, &gf))
	assert.Equal(t, "Error generating palette. Please try again.", UserMessage(err))

	s := c.State()
	assert.Equal(t, StepUsage, s.Step)
	assert.False(t, s.ResultVisible)
	assert.False(t, s.SubmissionInFlight)
	assert.Nil(t, c.Palette())
	assert.Equal(t, formBefore, c.Form())
	assert.Len(t, n.errs, 1)
	assertInvariants(t, c)
}

func TestGenerate_NilPaletteIsFailure(t *testing.T) {
	n := &recordingNotifier{}
	c := New(WithNotifier(n))
	toUsageStep(t, c)

	err := c.Generate(context.Background(), &fakeGenerator{})
	var gf *GenerationFailure
	assert.True(t, errors.As(err, &gf))
	assert.Len(t, n.errs, 1)
	assert.False(t, c.State().ResultVisible)
}

func TestBeginSubmit_SingleInFlight(t *testing.T) {
	c := New()
	toUsageStep(t, c)

	_, err := c.BeginSubmit()
	require.NoError(t, err)
	_, err = c.BeginSubmit()
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	assert.ErrorIs(t, c.SetField(palette.FieldAudience, "x"), ErrSubmissionInFlight)
	assert.False(t, c.PrevStep())
	assertInvariants(t, c)
}

func TestBeginSubmit_WrongStep(t *testing.T) {
	c := New()
	_, err := c.BeginSubmit()
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestFailSubmit_NotifiesOnce(t *testing.T) {
	n := &recordingNotifier{}
	c := New(WithNotifier(n))
	toUsageStep(t, c)
	_, err := c.BeginSubmit()
	require.NoError(t, err)

	assert.Error(t, c.FailSubmit(errors.New("timeout")))
	assert.NoError(t, c.FailSubmit(errors.New("late duplicate")))
	assert.Len(t, n.errs, 1)
}

func TestCompleteSubmit_IgnoredWithoutFlight(t *testing.T) {
	c := New()
	toUsageStep(t, c)
	require.NoError(t, c.CompleteSubmit(samplePalette()))
	assert.False(t, c.State().ResultVisible)
}

func TestReset_AfterSuccess(t *testing.T) {
	c := New()
	toUsageStep(t, c)
	require.NoError(t, c.ToggleUsage("Logo"))
	require.NoError(t, c.Generate(context.Background(), &fakeGenerator{palette: samplePalette()}))

	c.Reset()
	assert.Equal(t, State{}, c.State())
	assert.Equal(t, palette.FormInput{}, c.Form())
	assert.Nil(t, c.Palette())
	assert.Nil(t, c.Swatches())
}

func TestResultBlocksEditing(t *testing.T) {
	c := New()
	toUsageStep(t, c)
	require.NoError(t, c.Generate(context.Background(), &fakeGenerator{palette: samplePalette()}))

	assert.ErrorIs(t, c.SetField(palette.FieldAudience, "x"), ErrWrongStep)
	assert.ErrorIs(t, c.ToggleUsage("Logo"), ErrWrongStep)
	assert.False(t, c.PrevStep())
	assert.False(t, c.NextStep())
}

func TestExport_SecondCallWhileInFlightIsNoOp(t *testing.T) {
	c := New()
	toUsageStep(t, c)
	require.NoError(t, c.Generate(context.Background(), &fakeGenerator{palette: samplePalette()}))

	job, ok := c.BeginExport()
	require.True(t, ok)
	assert.Equal(t, "Startup", job.Form.BusinessType)
	assert.True(t, c.State().ExportInFlight)

	_, ok = c.BeginExport()
	assert.False(t, ok)

	require.NoError(t, c.FinishExport(nil))
	assert.False(t, c.State().ExportInFlight)
}

func TestExport_ReentrantRequestProducesOneArtifact(t *testing.T) {
	c := New()
	toUsageStep(t, c)
	require.NoError(t, c.Generate(context.Background(), &fakeGenerator{palette: samplePalette()}))

	e := &fakeExporter{}
	var nestedErr error
	e.onExport = func() {
		_, nestedErr = c.Export(context.Background(), e)
	}
	art, err := c.Export(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, "palette-startup.png", art.Path)
	assert.ErrorIs(t, nestedErr, ErrExportInFlight)
	assert.Equal(t, 1, e.calls)
}

func TestExport_FailureLeavesStateUnchanged(t *testing.T) {
	n := &recordingNotifier{}
	c := New(WithNotifier(n))
	toUsageStep(t, c)
	require.NoError(t, c.Generate(context.Background(), &fakeGenerator{palette: samplePalette()}))
	stateBefore, formBefore, paletteBefore := c.State(), c.Form(), c.Palette()

	_, err := c.Export(context.Background(), &fakeExporter{err: errors.New("raster")})
	var ef *ExportFailure
	require.True(t, errors.As(err, &ef))
	assert.Equal(t, "Could not generate image. Please try again.", UserMessage(err))

	assert.Equal(t, stateBefore, c.State())
	assert.Equal(t, formBefore, c.Form())
	assert.Equal(t, paletteBefore, c.Palette())
	assert.Len(t, n.errs, 1)
}

func TestExport_RequiresResult(t *testing.T) {
	c := New()
	_, err := c.Export(context.Background(), &fakeExporter{})
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestExport_UsesClock(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	c := New(WithClock(func() time.Time { return at }))
	toUsageStep(t, c)
	require.NoError(t, c.Generate(context.Background(), &fakeGenerator{palette: samplePalette()}))

	job, ok := c.BeginExport()
	require.True(t, ok)
	assert.Equal(t, at, job.Date)
}

func TestCopy(t *testing.T) {
	c := New()
	rec := &clipboard.Recorder{}

	_, ok := c.Copy(palette.SlotPrimary, rec)
	assert.False(t, ok, "copy is result-only")

	toUsageStep(t, c)
	p := samplePalette()
	p.Highlight = ""
	require.NoError(t, c.Generate(context.Background(), &fakeGenerator{palette: p}))

	hex, ok := c.Copy(palette.SlotAccent, rec)
	assert.True(t, ok)
	assert.Equal(t, "#FF006E", hex)
	assert.Equal(t, []string{"#FF006E"}, rec.Writes())

	_, ok = c.Copy(palette.SlotHighlight, rec)
	assert.False(t, ok)
}

func TestCopy_FailureIsSilent(t *testing.T) {
	n := &recordingNotifier{}
	c := New(WithNotifier(n))
	toUsageStep(t, c)
	require.NoError(t, c.Generate(context.Background(), &fakeGenerator{palette: samplePalette()}))
	before := c.State()

	hex, ok := c.Copy(palette.SlotPrimary, &clipboard.Recorder{Err: errors.New("no xclip")})
	assert.False(t, ok)
	assert.Equal(t, "#3A86FF", hex)
	assert.Empty(t, n.errs)
	assert.Equal(t, before, c.State())
}

func TestMissingSlotOmittedFromSwatches(t *testing.T) {
	c := New()
	toUsageStep(t, c)
	p := samplePalette()
	p.Highlight = ""
	require.NoError(t, c.Generate(context.Background(), &fakeGenerator{palette: p}))

	sw := c.Swatches()
	assert.Len(t, sw, 7)
	for _, s := range palette.WithPsychology(sw) {
		assert.NotEqual(t, palette.SlotHighlight, s.Slot)
	}
}

func TestDemo(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Demo(), ErrNoFallback)

	c = New(WithFallbackPalette(samplePalette()))
	require.NoError(t, c.Demo())
	assert.True(t, c.State().ResultVisible)
	assert.Equal(t, samplePalette(), c.Palette())
	assertInvariants(t, c)
}

func TestPaletteIsACopy(t *testing.T) {
	c := New()
	toUsageStep(t, c)
	require.NoError(t, c.Generate(context.Background(), &fakeGenerator{palette: samplePalette()}))

	p := c.Palette()
	p.Primary = "#000000"
	assert.Equal(t, "#3A86FF", c.Palette().Primary)
}
