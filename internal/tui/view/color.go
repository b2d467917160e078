package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"paletteai/internal/export"
)

// swatchColors returns the terminal background for a swatch value and a
// readable foreground for text drawn on it. ok is false when the value is not
// a color, in which case the swatch is drawn without fill.
func swatchColors(value string) (bg, fg lipgloss.Color, ok bool) {
	c, err := export.ParseColor(value)
	if err != nil {
		return "", "", false
	}
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	cf, _ := colorful.MakeColor(c)
	l, _, _ := cf.Lab()
	if l > 0.6 {
		return lipgloss.Color(hex), lipgloss.Color("#111827"), true
	}
	return lipgloss.Color(hex), lipgloss.Color("#F9FAFB"), true
}
