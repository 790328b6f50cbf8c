package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/pickpack/pkg/picker"
	"github.com/vanderheijden86/pickpack/pkg/tree"
)

// Line is one display row: the unstyled text plus whether it carries
// the multiselect highlight.
type Line struct {
	Text     string
	Selected bool
}

// Lines builds the display lines for the picker's current state and
// returns them with the 1-based line number of the cursor line. Title
// lines (when a title is set) come first, followed by a blank line,
// then one line per tree row in traversal order.
func Lines(p *picker.Picker) ([]Line, int) {
	var lines []Line
	if title := p.Title(); title != "" {
		for _, part := range strings.Split(title, "\n") {
			lines = append(lines, Line{Text: part})
		}
		lines = append(lines, Line{})
	}
	titleCount := len(lines)

	glyph, left, right, brackets := p.Indicator()
	blank := strings.Repeat(" ", runewidth.StringWidth(glyph))

	for _, row := range tree.Rows(p.Root()) {
		var b strings.Builder
		if brackets {
			b.WriteString(left)
		}
		if row.Node.Index == p.Cursor() {
			b.WriteString(glyph)
		} else {
			b.WriteString(blank)
		}
		if brackets {
			b.WriteString(right)
		}
		b.WriteString(" ")
		b.WriteString(row.Prefix)
		b.WriteString(" ")
		b.WriteString(row.Node.Name)

		lines = append(lines, Line{
			Text:     b.String(),
			Selected: p.Multiselect() && p.IsSelected(row.Node.Index),
		})
	}

	return lines, p.Cursor() + titleCount + 1
}

// ScrollOffset recomputes the scroll offset so the cursor line stays
// within a viewport of maxRows lines: clamp to the top when the cursor
// line is at or above the previous offset, otherwise push the offset
// forward just enough to keep the cursor visible at the bottom. Pure
// function, no tree knowledge.
func ScrollOffset(currentLine, maxRows, prev int) int {
	if currentLine <= prev {
		return 0
	}
	if currentLine-prev > maxRows {
		return currentLine - maxRows
	}
	return prev
}
