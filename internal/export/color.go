package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor accepts "#rrggbb", "#rgb" or a CSS color name.
func ParseColor(s string) (color.RGBA, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return color.RGBA{}, fmt.Errorf("empty color value")
	}
	if !strings.HasPrefix(v, "#") {
		if named, ok := colornames.Map[strings.ToLower(v)]; ok {
			return named, nil
		}
		v = "#" + v
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func mustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
