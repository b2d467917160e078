package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"paletteai/internal/export"
	"paletteai/internal/palette"
)

var (
	headingColor = color.New(color.FgHiMagenta, color.Bold)
	roleColor    = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
	okColor      = color.New(color.FgGreen)
)

// PrintPalette writes a palette summary: a colored block, role, name and hex
// per swatch, then the psychology notes and the suggested font.
func PrintPalette(w io.Writer, p *palette.Palette, form palette.FormInput) {
	headingColor.Fprintln(w, "Your Color Palette")
	if sub := export.NewLayout(export.Job{Palette: *p, Form: form}, "").Subtitle; sub != "" {
		dimColor.Fprintln(w, sub)
	}
	fmt.Fprintln(w)

	for _, sw := range p.Swatches() {
		fmt.Fprintf(w, "  %s  %-12s %-8s %s\n", swatchBlock(sw.Hex), roleColor.Sprint(sw.Role), sw.Hex, dimColor.Sprint(sw.Name))
	}

	if notes := palette.WithPsychology(p.Swatches()); len(notes) > 0 {
		fmt.Fprintln(w)
		headingColor.Fprintln(w, "Color Psychology")
		for _, sw := range notes {
			fmt.Fprintf(w, "  %s %s\n", roleColor.Sprint(sw.Role+":"), sw.Psychology)
		}
	}

	if p.FontSuggestion != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %s\n", headingColor.Sprint("Recommended Font:"), p.FontSuggestion)
	}
}

// PrintSaved reports where an export was written.
func PrintSaved(w io.Writer, art export.Artifact) {
	fmt.Fprintf(w, "%s %s (%dx%d)\n", okColor.Sprint("Saved"), art.Path, art.Width, art.Height)
}

func swatchBlock(hex string) string {
	c, err := export.ParseColor(hex)
	if err != nil {
		return "  ?   "
	}
	return color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint("      ")
}
