// Package picker is the terminal implementation of core.Picker.
package picker

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/spell-warden/internal/core"
)

// TUI prompts on a terminal using a filterable list.
type TUI struct {
	theme  ThemeName
	input  io.Reader
	output io.Writer
}

type Option func(*TUI)

func WithTheme(theme ThemeName) Option {
	return func(t *TUI) { t.theme = theme }
}

// WithIO overrides the terminal streams. Nil values keep the defaults.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(t *TUI) {
		t.input = in
		t.output = out
	}
}

func New(opts ...Option) *TUI {
	t := &TUI{theme: ThemeCyan}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ core.Picker = (*TUI)(nil)

// Pick runs the prompt until the user selects a choice or dismisses it.
func (t *TUI) Pick(ctx context.Context, title string, choices []core.Choice) (int, bool, error) {
	if len(choices) == 0 {
		return 0, false, nil
	}

	m := newModel(title, choices, t.theme)
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}
	if t.output != nil {
		opts = append(opts, tea.WithOutput(t.output))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return 0, false, ctx.Err()
		}
		return 0, false, fmt.Errorf("run picker: %w", err)
	}

	fm, ok := final.(*model)
	if !ok {
		return 0, false, fmt.Errorf("unexpected picker model %T", final)
	}
	idx, picked := fm.selection()
	return idx, picked, nil
}
