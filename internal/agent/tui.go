package agent

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/euchre/internal/apperrors"
	"github.com/palemoky/euchre/internal/game"
	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/ui/prompt"
)

// TUI asks for each decision through a short-lived bubbletea program.
type TUI struct {
	opts []tea.ProgramOption
}

// NewTUI passes opts to every program, e.g. tea.WithInput for tests.
func NewTUI(opts ...tea.ProgramOption) *TUI {
	return &TUI{opts: opts}
}

func (t *TUI) DecideAction(state *game.ScopedState) (action.Action, error) {
	final, err := tea.NewProgram(prompt.New(state), t.opts...).Run()
	if err != nil {
		return 0, fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(prompt.Model)
	if !ok {
		return 0, fmt.Errorf("unexpected prompt model %T", final)
	}
	if a, ok := m.Chosen(); ok {
		return a, nil
	}
	return 0, apperrors.ErrPromptCancelled
}
