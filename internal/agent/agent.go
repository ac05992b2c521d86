// Package agent contains the decision makers that sit at a euchre table.
package agent

import (
	"github.com/palemoky/euchre/internal/game"
	"github.com/palemoky/euchre/internal/game/action"
)

// Agent picks one action for the seat described by state. The returned
// action should come from state.LegalActions.
type Agent interface {
	DecideAction(state *game.ScopedState) (action.Action, error)
}

// Factory builds an agent for a seat.
type Factory func(seat int) Agent
