package utils

import "github.com/mattn/go-runewidth"

// TruncateString shortens s to at most width terminal cells, ending with an
// ellipsis when anything was cut. Wide runes count as two cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight fills s with spaces up to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
