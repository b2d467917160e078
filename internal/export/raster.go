package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultScale is the pixel density multiplier applied to the logical layout.
const DefaultScale = 2

// Rasterizer turns a layout into an image.
type Rasterizer interface {
	Rasterize(ctx context.Context, l Layout) (image.Image, error)
}

// Raster draws layouts with the basic bitmap font and scales the result.
type Raster struct {
	Scale int
}

// NewRasterizer returns a Raster with the given density; values below 1 use
// DefaultScale.
func NewRasterizer(scale int) *Raster {
	if scale < 1 {
		scale = DefaultScale
	}
	return &Raster{Scale: scale}
}

var face = basicfont.Face7x13

// basicfont covers ASCII and Latin-1 only.
var glyphFallback = strings.NewReplacer("•", "·", "—", "-", "–", "-")

// Rasterize implements Rasterizer. Any swatch with an unparseable hex value
// fails the whole export.
func (r *Raster) Rasterize(ctx context.Context, l Layout) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blocks := make([]color.RGBA, len(l.Swatches))
	for i, sw := range l.Swatches {
		c, err := ParseColor(sw.Hex)
		if err != nil {
			return nil, fmt.Errorf("swatch %s: %w", sw.Key, err)
		}
		blocks[i] = c
	}

	canvas := image.NewRGBA(l.Size())
	fill(canvas, canvas.Bounds(), mustColor(ColorBackground))

	r.drawHeader(canvas, l)
	for i, sw := range l.Swatches {
		r.drawCell(canvas, l, i, sw.Role, sw.Name, sw.Hex, blocks[i])
	}
	r.drawFontPanel(canvas, l)
	footerW := textWidth(l.Footer)
	drawText(canvas, l.Footer, (LogicalWidth-footerW)/2, l.footerTop()+14, mustColor(ColorFooter))

	scale := r.Scale
	if scale < 1 {
		scale = DefaultScale
	}
	if scale == 1 {
		return canvas, nil
	}
	b := canvas.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), canvas, b, draw.Src, nil)
	return out, nil
}

func (r *Raster) drawHeader(img *image.RGBA, l Layout) {
	top := Padding
	drawText(img, l.Title, Padding, top+14, mustColor(ColorTitle))
	drawText(img, l.Subtitle, Padding, top+38, mustColor(ColorText))

	label := "Generated on"
	right := LogicalWidth - Padding
	drawText(img, label, right-textWidth(label), top+14, mustColor(ColorMuted))
	drawText(img, l.DateLine, right-textWidth(l.DateLine), top+38, mustColor(ColorText))

	rule := image.Rect(Padding, top+HeaderHeight-1, LogicalWidth-Padding, top+HeaderHeight)
	fill(img, rule, mustColor(ColorBorder))
}

func (r *Raster) drawCell(img *image.RGBA, l Layout, i int, role, name, hex string, c color.RGBA) {
	cell := l.CellRect(i)
	fill(img, cell, mustColor(ColorBorder))
	inner := cell.Inset(1)
	fill(img, inner, mustColor(ColorPanel))
	fill(img, l.BlockRect(i), c)

	maxW := cell.Dx() - 16
	x := cell.Min.X + 8
	y := cell.Min.Y + BlockHeight
	drawText(img, ellipsize(role, maxW), x, y+18, mustColor(ColorRole))
	drawText(img, ellipsize(name, maxW), x, y+36, mustColor(ColorText))
	drawText(img, ellipsize(hex, maxW), x, y+54, mustColor(ColorMuted))
}

func (r *Raster) drawFontPanel(img *image.RGBA, l Layout) {
	top := l.fontTop()
	panel := image.Rect(Padding, top, LogicalWidth-Padding, top+FontPanel)
	fill(img, panel, mustColor(ColorBorder))
	fill(img, panel.Inset(1), mustColor(ColorPanel))
	drawText(img, "Recommended Font", Padding+16, top+26, mustColor(ColorRole))
	drawText(img, ellipsize(l.Font, panel.Dx()-32), Padding+16, top+54, mustColor(ColorText))
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawText(img *image.RGBA, s string, x, baseline int, c color.Color) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(glyphFallback.Replace(s))
}

func textWidth(s string) int {
	return font.MeasureString(face, glyphFallback.Replace(s)).Ceil()
}

// ellipsize shortens s with "..." until it fits within maxW pixels.
func ellipsize(s string, maxW int) string {
	if textWidth(s) <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if textWidth(candidate) <= maxW {
			return candidate
		}
	}
	return ""
}
