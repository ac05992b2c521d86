package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/palemoky/euchre/internal/apperrors"
	"github.com/palemoky/euchre/internal/game"
	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/ui/view"
)

// Human reads action names line by line. Unknown names and illegal actions
// are reported and asked for again.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHuman reads from r and writes prompts to w.
func NewHuman(r io.Reader, w io.Writer) *Human {
	return &Human{in: bufio.NewScanner(r), out: w}
}

func (h *Human) DecideAction(state *game.ScopedState) (action.Action, error) {
	fmt.Fprintln(h.out, view.RenderState(state))

	for {
		fmt.Fprint(h.out, "> ")
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return 0, fmt.Errorf("read action: %w", err)
			}
			return 0, apperrors.ErrInputExhausted
		}

		a, err := action.Parse(h.in.Text())
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnknownAction) {
				return 0, err
			}
			fmt.Fprintf(h.out, "Unknown action %q\n", h.in.Text())
			continue
		}
		if !state.CanPlay(a) {
			fmt.Fprintf(h.out, "Action %s not available\n", a)
			continue
		}
		return a, nil
	}
}
