package ui

import "github.com/mattn/go-runewidth"

// truncateLine shortens text to at most width terminal cells, adding
// an ellipsis when anything was cut. Width is measured in display
// cells so wide runes count double.
func truncateLine(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
