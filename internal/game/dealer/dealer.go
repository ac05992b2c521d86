// Package dealer owns the deck for one deal.
package dealer

import (
	"math/rand/v2"

	"github.com/palemoky/euchre/internal/apperrors"
	"github.com/palemoky/euchre/internal/game/card"
	"github.com/palemoky/euchre/internal/game/player"
)

// HandSize is the number of cards dealt to each seat.
const HandSize = 5

// Dealer builds the 24-card deck once and draws from its tail.
type Dealer struct {
	deck []card.Card
	rng  *rand.Rand
}

// New builds a fresh, unshuffled deck. rng is the game's generator; the
// dealer never uses any other source of randomness.
func New(rng *rand.Rand) *Dealer {
	return &Dealer{
		deck: card.NewDeck(),
		rng:  rng,
	}
}

// Shuffle permutes the deck.
func (d *Dealer) Shuffle() {
	d.rng.Shuffle(len(d.deck), func(i, j int) {
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	})
}

// DealCards moves the last five cards of the deck into p's hand.
func (d *Dealer) DealCards(p *player.Player) error {
	if len(d.deck) < HandSize {
		return apperrors.Wrap(apperrors.ErrDeckExhausted, "%d cards left, need %d", len(d.deck), HandSize)
	}
	at := len(d.deck) - HandSize
	p.AddCards(d.deck[at:]...)
	d.deck = d.deck[:at]
	return nil
}

// FlipTopCard removes and returns the kitty card. The remaining cards stay
// face down for the rest of the round.
func (d *Dealer) FlipTopCard() (card.Card, error) {
	if len(d.deck) == 0 {
		return card.Card{}, apperrors.Wrap(apperrors.ErrDeckExhausted, "nothing to flip")
	}
	top := d.deck[len(d.deck)-1]
	d.deck = d.deck[:len(d.deck)-1]
	return top, nil
}

// Remaining is the number of undealt cards.
func (d *Dealer) Remaining() int {
	return len(d.deck)
}
