package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/pickpack/pkg/picker"
)

// Theme bundles the renderer and the styles the picker view uses. All
// styles are precomputed once at construction instead of per frame.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	Base     lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style // multiselect rows; overridden per picker highlight
	Help     lipgloss.Style
}

// DefaultTheme returns the standard adaptive theme.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
		Muted:     lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F8F8F2"})
	t.Title = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.Selected = r.NewStyle().
		Foreground(lipgloss.ANSIColor(7)).
		Background(lipgloss.ANSIColor(2))
	t.Help = r.NewStyle().Foreground(t.Secondary).Italic(true)

	return t
}

// withHighlight returns a copy of the theme whose Selected style uses
// the picker's configured highlight colors.
func (t Theme) withHighlight(p *picker.Picker) Theme {
	fg, bg := p.Highlight()
	style := t.Renderer.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	t.Selected = style
	return t
}
