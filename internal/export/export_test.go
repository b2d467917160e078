package export

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"paletteai/internal/palette"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoJob() Job {
	return Job{
		Palette: palette.Palette{
			Primary:        "#3A86FF",
			Secondary:      "#8338EC",
			Accent:         "#FF006E",
			Neutral:        "#F8F9FA",
			Background:     "#212529",
			Highlight:      "#06B6D4",
			Muted:          "#94A3B8",
			Success:        "#10B981",
			FontSuggestion: "Inter, sans-serif",
			ColorNamesDetailed: []palette.ColorName{
				{Role: "Primary", Name: "Sky Blue"},
			},
			ColorPsychology: []string{"Trustworthy and professional"},
		},
		Form: palette.FormInput{
			BusinessType: "Small Business",
			Industry:     "Finance",
			Audience:     "Families",
			DesignStyle:  "Modern",
		},
		Date: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC),
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"":                 "palette-design.png",
		"Startup":          "palette-startup.png",
		"Small Business":   "palette-small-business.png",
		"Non-Profit":       "palette-non-profit.png",
		"  Food & Bev!!  ": "palette-food-bev.png",
		"???":              "palette-design.png",
		"Café 2":           "palette-caf-2.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, FileName(in), "input %q", in)
	}
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(demoJob(), "paletteai.local")

	assert.Equal(t, "PaletteAI", l.Title)
	assert.Equal(t, "Small Business • Finance • Modern", l.Subtitle)
	assert.Equal(t, "Mar 9, 2024", l.DateLine)
	assert.Equal(t, "Inter, sans-serif", l.Font)
	assert.Equal(t, "Generated by PaletteAI • paletteai.local", l.Footer)
	assert.Len(t, l.Swatches, 8)
}

func TestLayout_Geometry(t *testing.T) {
	l := NewLayout(demoJob(), "")
	assert.Equal(t, 168, CellWidth())
	assert.Equal(t, LogicalWidth, l.Size().Dx())

	// Eight swatches fill two rows of four.
	assert.Equal(t, l.CellRect(0).Min.X, l.CellRect(4).Min.X)
	assert.Greater(t, l.CellRect(4).Min.Y, l.CellRect(3).Max.Y)
	assert.LessOrEqual(t, l.CellRect(3).Max.X, LogicalWidth-Padding)
}

func TestRasterize_SwatchColorsAndScale(t *testing.T) {
	job := demoJob()
	l := NewLayout(job, "example.com")

	img, err := NewRasterizer(2).Rasterize(context.Background(), l)
	require.NoError(t, err)
	assert.Equal(t, LogicalWidth*2, img.Bounds().Dx())
	assert.Equal(t, l.Height()*2, img.Bounds().Dy())

	for i, sw := range l.Swatches {
		want, err := ParseColor(sw.Hex)
		require.NoError(t, err)
		block := l.BlockRect(i)
		center := image.Pt((block.Min.X+block.Max.X)/2*2, (block.Min.Y+block.Max.Y)/2*2)
		got := color.RGBAModel.Convert(img.At(center.X, center.Y)).(color.RGBA)
		assert.Equal(t, want, got, "swatch %s", sw.Key)
	}
}

func TestRasterize_KeepsHexCase(t *testing.T) {
	lower := demoJob()
	lower.Palette.Primary = "#3a86ff"
	upper := demoJob()

	r := NewRasterizer(1)
	lowerLayout := NewLayout(lower, "")
	assert.Equal(t, "#3a86ff", lowerLayout.Swatches[0].Hex)

	lowerImg, err := r.Rasterize(context.Background(), lowerLayout)
	require.NoError(t, err)
	upperImg, err := r.Rasterize(context.Background(), NewLayout(upper, ""))
	require.NoError(t, err)

	// Same fill, different caption text.
	block := lowerLayout.BlockRect(0)
	cx, cy := (block.Min.X+block.Max.X)/2, (block.Min.Y+block.Max.Y)/2
	assert.Equal(t, upperImg.At(cx, cy), lowerImg.At(cx, cy))
	assert.NotEqual(t, toRGBA(upperImg).Pix, toRGBA(lowerImg).Pix)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func TestRasterize_OmitsMissingSlots(t *testing.T) {
	job := demoJob()
	job.Palette.Highlight = ""
	l := NewLayout(job, "")

	require.Len(t, l.Swatches, 7)
	for _, sw := range l.Swatches {
		assert.NotEqual(t, "highlight", sw.Key)
	}

	img, err := NewRasterizer(1).Rasterize(context.Background(), l)
	require.NoError(t, err)
	// The eighth cell position stays background.
	full := NewLayout(demoJob(), "")
	empty := full.BlockRect(7)
	got := color.RGBAModel.Convert(img.At(empty.Min.X+10, empty.Min.Y+10)).(color.RGBA)
	assert.Equal(t, mustColor(ColorBackground), got)
}

func TestRasterize_InvalidHex(t *testing.T) {
	job := demoJob()
	job.Palette.Accent = "#GGGGGG"

	_, err := NewRasterizer(2).Rasterize(context.Background(), NewLayout(job, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent")
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#3A86FF")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x3a, G: 0x86, B: 0xff, A: 0xff}, c)

	c, err = ParseColor("navy")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0x80, A: 0xff}, c)

	_, err = ParseColor("")
	assert.Error(t, err)
	_, err = ParseColor("not a color")
	assert.Error(t, err)
}

func TestEllipsize(t *testing.T) {
	assert.Equal(t, "Sky", ellipsize("Sky", 100))
	short := ellipsize("A very long color name that never fits", 70)
	assert.True(t, len(short) > 3 && short[len(short)-3:] == "...")
	assert.LessOrEqual(t, textWidth(short), 70)
}

type failingRasterizer struct{ err error }

func (f failingRasterizer) Rasterize(context.Context, Layout) (image.Image, error) {
	return nil, f.err
}

func TestExporter_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(NewRasterizer(2), DirSink{Dir: filepath.Join(dir, "out")}, "localhost")

	art, err := e.Export(context.Background(), demoJob())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "palette-small-business.png"), art.Path)
	assert.Equal(t, 1600, art.Width)

	f, err := os.Open(art.Path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, art.Width, decoded.Bounds().Dx())
	assert.Equal(t, art.Height, decoded.Bounds().Dy())
}

func TestExporter_RasterizeFailure(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")
	e := NewExporter(failingRasterizer{err: boom}, DirSink{Dir: dir}, "")

	_, err := e.Export(context.Background(), demoJob())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
