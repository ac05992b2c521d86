package game

import (
	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/game/card"
)

// LegalActions lists what the current seat may do. It reads state only and
// is recomputed on every call.
func (g *Game) LegalActions() []action.Action {
	hand := g.players[g.current].Hand()

	switch g.phase {
	case PhaseBiddingFlip:
		return []action.Action{action.Pick, action.Pass}

	case PhaseDiscarding:
		return cardActions(hand, false)

	case PhaseBiddingCall:
		acts := make([]action.Action, 0, 4)
		for _, s := range card.Suits() {
			if s != g.flipped.Suit {
				acts = append(acts, action.CallFor(s))
			}
		}
		// stick the dealer
		if g.current != g.dealerID {
			acts = append(acts, action.Pass)
		}
		return acts

	case PhaseLeading:
		return cardActions(hand, true)

	case PhaseFollowing:
		return cardActions(followable(hand, *g.trump, *g.ledSuit), true)

	default:
		return nil
	}
}

// followable returns the cards of the led effective suit, or the whole hand
// when there are none.
func followable(hand []card.Card, trump, led card.Suit) []card.Card {
	var out []card.Card
	for _, c := range hand {
		if c.EffectiveSuit(trump) == led {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return hand
	}
	return out
}

func cardActions(cards []card.Card, isPlay bool) []action.Action {
	acts := make([]action.Action, 0, len(cards))
	for _, c := range cards {
		acts = append(acts, action.FromCard(c, isPlay))
	}
	return acts
}
