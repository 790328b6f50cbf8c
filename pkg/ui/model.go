// Package ui renders a picker on the terminal and drives it from
// keyboard input: a bubbletea model around the selection engine, plus
// the blocking Run entry point. One model instance is driven by exactly
// one program; every input event applies a single state transition
// before the next redraw.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/pickpack/pkg/picker"
)

// KeyHandler is a caller-supplied handler for a custom key. It may
// inspect or mutate the picker; returning done=true ends the session
// immediately with the given items instead of the normal selection.
type KeyHandler func(*picker.Picker) (items []picker.Item, done bool)

// KeyMap defines the built-in keyboard shortcuts.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the standard bindings: arrow keys plus vim-style
// j/k, space or right to toggle, enter to confirm.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "right"),
			key.WithHelp("space/→", "toggle"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Model is the bubbletea model for one picker session. The selection
// engine owns cursor and selection; the model owns only presentation
// state, viewport size and scroll offset.
type Model struct {
	picker   *picker.Picker
	keys     KeyMap
	theme    Theme
	handlers map[string]KeyHandler

	width  int
	height int
	offset int

	done      bool
	cancelled bool
	result    []picker.Item
}

// NewModel creates a model for the given picker.
func NewModel(p *picker.Picker, theme Theme) Model {
	return Model{
		picker:   p,
		keys:     DefaultKeyMap(),
		theme:    theme.withHighlight(p),
		handlers: make(map[string]KeyHandler),
	}
}

// SetKeyMap replaces the built-in bindings.
func (m *Model) SetKeyMap(keys KeyMap) {
	m.keys = keys
}

// RegisterKeyHandler installs a custom handler for the given key, a
// tea key string such as "b" or "ctrl+r". Built-in bindings take
// precedence over custom handlers.
func (m *Model) RegisterKeyHandler(keyName string, handler KeyHandler) {
	m.handlers[keyName] = handler
}

// Picker exposes the engine backing this model.
func (m Model) Picker() *picker.Picker { return m.picker }

// Done reports whether the session has terminated.
func (m Model) Done() bool { return m.done }

// Cancelled reports whether the session ended by cancellation.
func (m Model) Cancelled() bool { return m.cancelled }

// Result returns the shaped selection on confirm, or whatever a custom
// handler returned. Nil until Done.
func (m Model) Result() []picker.Item { return m.result }

func (m Model) Init() tea.Cmd {
	return nil
}

// Update applies exactly one state transition per input event.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.picker.MoveUp()
			m.updateScroll()
		case key.Matches(msg, m.keys.Down):
			m.picker.MoveDown()
			m.updateScroll()
		case key.Matches(msg, m.keys.Select):
			m.picker.Toggle()
		case key.Matches(msg, m.keys.Confirm):
			// Below the minimum selection count the key press is
			// ignored and the session continues.
			if m.picker.CanFinalize() {
				m.done = true
				m.result = m.picker.Selected()
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Cancel):
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		default:
			if handler, ok := m.handlers[msg.String()]; ok {
				if items, done := handler(m.picker); done {
					m.done = true
					m.result = items
					return m, tea.Quit
				}
			}
		}
	}
	return m, nil
}

// defaultRows is the viewport height used before the first
// WindowSizeMsg arrives.
const defaultRows = 20

func (m Model) maxRows() int {
	if m.height <= 1 {
		return defaultRows
	}
	return m.height - 1
}

func (m *Model) updateScroll() {
	_, currentLine := Lines(m.picker)
	m.offset = ScrollOffset(currentLine, m.maxRows(), m.offset)
}

// View renders the visible slice of lines, highlighting selected rows.
func (m Model) View() string {
	if m.done {
		return ""
	}

	lines, _ := Lines(m.picker)
	maxRows := m.maxRows()

	start := m.offset
	if start > len(lines) {
		start = len(lines)
	}
	end := start + maxRows
	if end > len(lines) {
		end = len(lines)
	}

	var b []byte
	for _, line := range lines[start:end] {
		text := line.Text
		if m.width > 0 {
			text = truncateLine(text, m.width-1)
		}
		if line.Selected {
			text = m.theme.Selected.Render(text)
		} else {
			text = m.theme.Base.Render(text)
		}
		b = append(b, text...)
		b = append(b, '\n')
	}
	return string(b)
}
