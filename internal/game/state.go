package game

import (
	"slices"

	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/game/card"
	"github.com/palemoky/euchre/internal/game/player"
)

// ScopedState is what one seat is allowed to see. It is rebuilt on every
// State call and shares no memory with the Game.
type ScopedState struct {
	Phase        Phase
	CurrentActor int
	Dealer       int
	// Hand is the acting seat's own hand; other hands are never exposed.
	Hand []card.Card

	// nil until trump is decided
	Caller        *int
	FlippedCard   card.Card
	FlippedChoice FlippedChoice
	Trump         *card.Suit
	// nil while no card has been led this trick
	LedSuit *card.Suit

	Order          []int
	Center         []card.Card
	PreviousPlayed [player.Seats][]card.Card
	Tricks         [player.Seats]int

	LegalActions []action.Action
}

// State builds the current seat's view.
func (g *Game) State() *ScopedState {
	s := &ScopedState{
		Phase:         g.phase,
		CurrentActor:  g.current,
		Dealer:        g.dealerID,
		Hand:          g.players[g.current].Hand(),
		Caller:        clonePtr(g.caller),
		FlippedCard:   g.flipped,
		FlippedChoice: g.flippedChoice,
		Trump:         clonePtr(g.trump),
		LedSuit:       clonePtr(g.ledSuit),
		Order:         slices.Clone(g.order),
		Center:        slices.Clone(g.center),
		Tricks:        g.tricks(),
		LegalActions:  g.LegalActions(),
	}
	for i, played := range g.history {
		s.PreviousPlayed[i] = slices.Clone(played)
	}
	return s
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CanPlay reports whether a is in the view's legal list.
func (s *ScopedState) CanPlay(a action.Action) bool {
	return slices.Contains(s.LegalActions, a)
}
