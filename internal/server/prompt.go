package server

import (
	"fmt"
	"strings"

	"paletteai/internal/palette"
)

const promptTemplate = `Generate a professional, harmonious color palette for a %s business in the %s industry.
Target audience: %s.
Design style: %s. Color preference: %s.
Palette will be used for: %s.

Please return 8 colors in this JSON format:
{
  "primary": "#hexcode",
  "secondary": "#hexcode",
  "accent": "#hexcode",
  "neutral": "#hexcode",
  "background": "#hexcode",
  "highlight": "#hexcode",
  "muted": "#hexcode",
  "success": "#hexcode",
  "fontSuggestion": "font-family-name",
  "colorNamesDetailed": [
    { "role": "Primary", "name": "Sky Blue" },
    { "role": "Secondary", "name": "Royal Purple" },
    { "role": "Accent", "name": "Crimson Red" },
    { "role": "Neutral", "name": "Ivory" },
    { "role": "Background", "name": "Charcoal" },
    { "role": "Highlight", "name": "Turquoise" },
    { "role": "Muted", "name": "Slate Gray" },
    { "role": "Success", "name": "Emerald" }
  ],
  "colorNames": ["Primary", "Secondary", "Accent", "Neutral", "Background", "Highlight", "Muted", "Success"],
  "colorPsychology": [
    "reason for primary",
    "reason for secondary",
    "reason for accent",
    "reason for neutral",
    "reason for background",
    "reason for highlight",
    "reason for muted",
    "reason for success"
  ]
}
For each color, provide a detailed, one-sentence color psychology justification and ensure all colors work together. The palette should be suitable for both digital and print, and accessible for all users.`

// BuildPrompt renders the generation prompt for a form.
func BuildPrompt(f palette.FormInput) string {
	return fmt.Sprintf(promptTemplate,
		f.BusinessType, f.Industry, f.Audience, f.DesignStyle, f.ColorPref,
		strings.Join(f.Usage, ", "))
}

// ExtractJSON returns the first balanced JSON object in s. Models often wrap
// the object in prose or code fences.
func ExtractJSON(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
