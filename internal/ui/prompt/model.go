// Package prompt is a bubbletea model that asks the acting seat for one
// action and keeps asking until it gets a legal one.
package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/euchre/internal/game"
	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/ui/common"
	"github.com/palemoky/euchre/internal/ui/view"
)

// Model holds one pending decision.
type Model struct {
	state     *game.ScopedState
	input     textinput.Model
	err       string
	chosen    *action.Action
	cancelled bool
}

// New builds a prompt for s.
func New(s *game.ScopedState) Model {
	input := textinput.New()
	input.Placeholder = "type an action, e.g. Pass"
	input.CharLimit = 16
	input.Width = 24
	input.Focus()

	return Model{state: s, input: input}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the typed text; unknown or illegal actions keep the prompt
// open with an error line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	a, err := action.Parse(text)
	if err != nil {
		m.err = fmt.Sprintf("unknown action %q", text)
		return m, nil
	}
	if !m.state.CanPlay(a) {
		m.err = fmt.Sprintf("action %s not available", a)
		return m, nil
	}

	m.err = ""
	m.chosen = &a
	return m, tea.Quit
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(view.RenderState(m.state))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	if m.err != "" {
		sb.WriteString("\n")
		sb.WriteString(common.ErrorStyle.Render(m.err))
	}
	sb.WriteString("\n")
	return sb.String()
}

// Chosen returns the accepted action, if any.
func (m Model) Chosen() (action.Action, bool) {
	if m.chosen == nil {
		return 0, false
	}
	return *m.chosen, true
}

// Cancelled reports whether the player aborted the prompt.
func (m Model) Cancelled() bool { return m.cancelled }

// Err is the last validation message shown.
func (m Model) Err() string { return m.err }
