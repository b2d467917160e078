// Package export renders a generated palette into a fixed-layout PNG image.
package export

import (
	"image"
	"strings"
	"time"

	"paletteai/internal/palette"
)

// Logical geometry of the export card, in pixels before density scaling.
const (
	LogicalWidth = 800
	Padding      = 40
	Columns      = 4
	GridGap      = 16
	SectionGap   = 24
	HeaderHeight = 60
	BlockHeight  = 128
	LabelHeight  = 64
	FontPanel    = 80
	FooterHeight = 20
)

// Card colors.
const (
	ColorBackground = "#212529"
	ColorTitle      = "#a78bfa"
	ColorText       = "#d1d5db"
	ColorMuted      = "#94a3b8"
	ColorRole       = "#a5b4fc"
	ColorPanel      = "#1e293b"
	ColorBorder     = "#334155"
	ColorFooter     = "#64748b"
)

const dateFormat = "Jan 2, 2006"

// Job is everything an export needs, captured when the export starts.
type Job struct {
	Palette palette.Palette
	Form    palette.FormInput
	Date    time.Time
}

// Artifact describes a written export.
type Artifact struct {
	Path   string
	Width  int
	Height int
}

// Layout is the export card's content. Psychology notes are not part of it.
type Layout struct {
	Title    string
	Subtitle string
	DateLine string
	Swatches []palette.Swatch
	Font     string
	Footer   string
}

// NewLayout builds the card for a job. host fills the footer attribution.
func NewLayout(job Job, host string) Layout {
	var parts []string
	for _, v := range []string{job.Form.BusinessType, job.Form.Industry, job.Form.DesignStyle} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	footer := "Generated by PaletteAI"
	if host != "" {
		footer += " • " + host
	}
	date := job.Date
	if date.IsZero() {
		date = time.Now()
	}
	return Layout{
		Title:    "PaletteAI",
		Subtitle: strings.Join(parts, " • "),
		DateLine: date.Format(dateFormat),
		Swatches: job.Palette.Swatches(),
		Font:     job.Palette.FontSuggestion,
		Footer:   footer,
	}
}

func (l Layout) rows() int {
	return (len(l.Swatches) + Columns - 1) / Columns
}

// CellWidth is the logical width of one grid cell.
func CellWidth() int {
	inner := LogicalWidth - 2*Padding
	return (inner - (Columns-1)*GridGap) / Columns
}

func cellHeight() int { return BlockHeight + LabelHeight }

func (l Layout) gridTop() int { return Padding + HeaderHeight + SectionGap }

func (l Layout) gridHeight() int {
	r := l.rows()
	if r == 0 {
		return 0
	}
	return r*cellHeight() + (r-1)*GridGap
}

func (l Layout) fontTop() int { return l.gridTop() + l.gridHeight() + SectionGap }

func (l Layout) footerTop() int { return l.fontTop() + FontPanel + SectionGap }

// Height is the logical height of the card.
func (l Layout) Height() int { return l.footerTop() + FooterHeight + Padding }

// Size is the logical bounds of the card.
func (l Layout) Size() image.Rectangle {
	return image.Rect(0, 0, LogicalWidth, l.Height())
}

// CellRect is the logical bounds of swatch i's grid cell.
func (l Layout) CellRect(i int) image.Rectangle {
	col, row := i%Columns, i/Columns
	x := Padding + col*(CellWidth()+GridGap)
	y := l.gridTop() + row*(cellHeight()+GridGap)
	return image.Rect(x, y, x+CellWidth(), y+cellHeight())
}

// BlockRect is the logical bounds of swatch i's color block.
func (l Layout) BlockRect(i int) image.Rectangle {
	c := l.CellRect(i)
	return image.Rect(c.Min.X, c.Min.Y, c.Max.X, c.Min.Y+BlockHeight)
}
