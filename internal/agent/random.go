package agent

import (
	"math/rand/v2"

	"github.com/palemoky/euchre/internal/apperrors"
	"github.com/palemoky/euchre/internal/game"
	"github.com/palemoky/euchre/internal/game/action"
)

// Random picks uniformly among the legal actions.
type Random struct {
	rng *rand.Rand
}

// NewRandom seeds the agent's own generator; nil draws from system entropy.
func NewRandom(seed *uint64) *Random {
	return &Random{rng: game.NewRand(seed)}
}

func (r *Random) DecideAction(state *game.ScopedState) (action.Action, error) {
	if len(state.LegalActions) == 0 {
		return 0, apperrors.Wrap(apperrors.ErrIllegalAction, "no legal actions for seat %d", state.CurrentActor)
	}
	return state.LegalActions[r.rng.IntN(len(state.LegalActions))], nil
}

// First always takes the first legal action.
type First struct{}

func (First) DecideAction(state *game.ScopedState) (action.Action, error) {
	if len(state.LegalActions) == 0 {
		return 0, apperrors.Wrap(apperrors.ErrIllegalAction, "no legal actions for seat %d", state.CurrentActor)
	}
	return state.LegalActions[0], nil
}
