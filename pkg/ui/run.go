package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vanderheijden86/pickpack/pkg/picker"
)

// ErrCancelled is returned by Run when the user aborts the session
// with escape or ctrl+c.
var ErrCancelled = errors.New("picker cancelled")

// ErrNotTerminal is returned by Run when the input is not an
// interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// RunOption configures a Run session.
type RunOption func(*runConfig)

type runConfig struct {
	theme    *Theme
	keys     *KeyMap
	handlers map[string]KeyHandler
	input    *os.File
	output   io.Writer
}

// WithTheme overrides the default theme.
func WithTheme(t Theme) RunOption {
	return func(c *runConfig) { c.theme = &t }
}

// WithKeyMap overrides the built-in key bindings.
func WithKeyMap(k KeyMap) RunOption {
	return func(c *runConfig) { c.keys = &k }
}

// WithKeyHandler installs a custom handler for the given key. Built-in
// bindings still win when a key is bound to both.
func WithKeyHandler(keyName string, handler KeyHandler) RunOption {
	return func(c *runConfig) { c.handlers[keyName] = handler }
}

// WithInput overrides the input stream, mostly for tests. The terminal
// check is skipped for non-default input.
func WithInput(f *os.File) RunOption {
	return func(c *runConfig) { c.input = f }
}

// WithOutput overrides the output stream.
func WithOutput(w io.Writer) RunOption {
	return func(c *runConfig) { c.output = w }
}

// Run drives a full interactive session for the picker and blocks
// until the user confirms, cancels, or a custom key handler ends it.
// On confirm it returns the shaped selection; on cancel it returns
// ErrCancelled.
func Run(p *picker.Picker, opts ...RunOption) ([]picker.Item, error) {
	cfg := runConfig{handlers: make(map[string]KeyHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.input == nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, ErrNotTerminal
		}
	}

	var theme Theme
	if cfg.theme != nil {
		theme = *cfg.theme
	} else {
		theme = DefaultTheme(lipgloss.DefaultRenderer())
	}

	m := NewModel(p, theme)
	if cfg.keys != nil {
		m.SetKeyMap(*cfg.keys)
	}
	for name, handler := range cfg.handlers {
		m.RegisterKeyHandler(name, handler)
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.input != nil {
		progOpts = append(progOpts, tea.WithInput(cfg.input))
	}
	if cfg.output != nil {
		progOpts = append(progOpts, tea.WithOutput(cfg.output))
	}

	prog := tea.NewProgram(m, progOpts...)
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	result, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	if result.Cancelled() {
		return nil, ErrCancelled
	}
	return result.Result(), nil
}
