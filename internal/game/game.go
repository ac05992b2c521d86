// Package game runs one round of euchre as a turn-based state machine.
//
// The Game owns every piece of mutable state. Agents only ever see a
// ScopedState, a fresh copy built for the seat that is about to act.
package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"slices"

	"github.com/palemoky/euchre/internal/apperrors"
	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/game/card"
	"github.com/palemoky/euchre/internal/game/dealer"
	"github.com/palemoky/euchre/internal/game/judge"
	"github.com/palemoky/euchre/internal/game/player"
)

// Options configures a new round. Nil fields are chosen at random.
type Options struct {
	Dealer *int
	Seed   *uint64
}

// LogEntry is one applied action.
type LogEntry struct {
	Seat   int
	Action action.Action
}

// Game is the authoritative state of one round.
type Game struct {
	rng  *rand.Rand
	deck *dealer.Dealer

	phase    Phase
	players  [player.Seats]*player.Player
	current  int
	dealerID int

	flipped       card.Card
	flippedChoice FlippedChoice
	caller        *int
	trump         *card.Suit
	ledSuit       *card.Suit

	history [player.Seats][]card.Card
	center  []card.Card
	order   []int

	scores *[player.Seats]int
	log    []LogEntry
}

// NewRand returns the ChaCha8 generator a game draws from, seeded with seed
// or with system entropy when seed is nil.
func NewRand(seed *uint64) *rand.Rand {
	var key [32]byte
	if seed != nil {
		binary.LittleEndian.PutUint64(key[:8], *seed)
	} else {
		_, _ = crand.Read(key[:])
	}
	return rand.New(rand.NewChaCha8(key))
}

// New deals a round: chooses the dealer, shuffles, deals five cards to each
// seat and flips the kitty card. The seat left of the dealer acts first.
func New(opts Options) (*Game, error) {
	rng := NewRand(opts.Seed)

	dealerSeat, err := determineDealer(opts.Dealer, rng)
	if err != nil {
		return nil, err
	}

	g := &Game{
		rng:      rng,
		deck:     dealer.New(rng),
		phase:    PhaseBiddingFlip,
		dealerID: dealerSeat,
	}
	g.deck.Shuffle()
	for i := range g.players {
		g.players[i] = player.New(i)
		if err := g.deck.DealCards(g.players[i]); err != nil {
			return nil, err
		}
	}
	if g.flipped, err = g.deck.FlipTopCard(); err != nil {
		return nil, err
	}

	g.current = player.NextSeat(dealerSeat)
	g.order = player.OrderFrom(g.current)
	return g, nil
}

// determineDealer validates an explicit dealer seat or draws one.
func determineDealer(seat *int, rng *rand.Rand) (int, error) {
	if seat != nil {
		if *seat < 0 || *seat >= player.Seats {
			return 0, apperrors.Wrap(apperrors.ErrDealerRange, "got %d", *seat)
		}
		return *seat, nil
	}
	return rng.IntN(player.Seats), nil
}

func (g *Game) IsOver() bool { return g.phase == PhaseOver }

func (g *Game) Phase() Phase { return g.phase }

// CurrentPlayer is the seat whose decision the game is waiting on.
func (g *Game) CurrentPlayer() int { return g.current }

// Dealer is the dealer's seat.
func (g *Game) Dealer() int { return g.dealerID }

// Scores returns the points per seat once the round is over.
func (g *Game) Scores() ([player.Seats]int, bool) {
	if g.scores == nil {
		return [player.Seats]int{}, false
	}
	return *g.scores, true
}

// Log returns a copy of the actions applied so far.
func (g *Game) Log() []LogEntry {
	return slices.Clone(g.log)
}

// Step applies a for the current seat and returns the next seat's view.
// Actions outside the current legal set are rejected with ErrIllegalAction
// and leave the state untouched.
func (g *Game) Step(a action.Action) (*ScopedState, int, error) {
	if g.phase == PhaseOver {
		return nil, g.current, apperrors.ErrGameOver
	}
	if !slices.Contains(g.LegalActions(), a) {
		return nil, g.current, apperrors.Wrap(apperrors.ErrIllegalAction, "%s during %s by seat %d", a, g.phase, g.current)
	}

	g.log = append(g.log, LogEntry{Seat: g.current, Action: a})

	var err error
	switch g.phase {
	case PhaseBiddingFlip:
		if a == action.Pick {
			g.pick()
		} else {
			g.passFlip()
		}
	case PhaseDiscarding:
		err = g.discard(a)
	case PhaseBiddingCall:
		if a == action.Pass {
			g.current = player.NextSeat(g.current)
		} else {
			g.call(a)
		}
	case PhaseLeading, PhaseFollowing:
		err = g.play(a)
	}
	if err != nil {
		return nil, g.current, err
	}
	return g.State(), g.current, nil
}

// pick: the dealer takes the flip, its suit becomes trump and the seat that
// ordered it up is the caller. The dealer then has to discard.
func (g *Game) pick() {
	g.players[g.dealerID].AddCards(g.flipped)
	trump := g.flipped.Suit
	caller := g.current
	g.trump = &trump
	g.caller = &caller
	g.flippedChoice = PickedUp
	g.current = g.dealerID
	g.phase = PhaseDiscarding
}

// passFlip moves on; the dealer passing turns the flip down and opens the
// second bidding round.
func (g *Game) passFlip() {
	if g.current == g.dealerID {
		g.flippedChoice = TurnedDown
		g.phase = PhaseBiddingCall
	}
	g.current = player.NextSeat(g.current)
}

func (g *Game) call(a action.Action) {
	suit, _ := a.CalledSuit()
	caller := g.current
	g.trump = &suit
	g.caller = &caller
	g.startTricks()
}

func (g *Game) discard(a action.Action) error {
	c, err := action.ToCard(a)
	if err != nil {
		return err
	}
	if !g.players[g.current].Remove(c) {
		return apperrors.Wrap(apperrors.ErrCardNotInHand, "%v", c)
	}
	g.startTricks()
	return nil
}

// startTricks closes bidding; the seat left of the dealer leads.
func (g *Game) startTricks() {
	g.current = player.NextSeat(g.dealerID)
	g.order = player.OrderFrom(g.current)
	g.phase = PhaseLeading
}

func (g *Game) play(a action.Action) error {
	c, err := action.ToCard(a)
	if err != nil {
		return err
	}
	if !g.players[g.current].Remove(c) {
		return apperrors.Wrap(apperrors.ErrCardNotInHand, "%v", c)
	}

	if g.phase == PhaseLeading {
		led := c.EffectiveSuit(*g.trump)
		g.ledSuit = &led
		g.center = []card.Card{c}
		g.phase = PhaseFollowing
	} else {
		g.center = append(g.center, c)
	}
	g.history[g.current] = append(g.history[g.current], c)

	if len(g.center) < player.Seats {
		g.current = player.NextSeat(g.current)
		return nil
	}
	g.finishTrick()
	return nil
}

// finishTrick awards the full trick; the winner leads next, and an empty
// hand for the winner means all five tricks are done.
func (g *Game) finishTrick() {
	winner := judge.JudgeTrick(*g.trump, g.center, g.order)
	g.players[winner].WinTrick()

	g.current = winner
	g.order = player.OrderFrom(winner)
	g.center = nil
	g.ledSuit = nil
	g.phase = PhaseLeading

	if g.players[winner].HandSize() == 0 {
		scores := judge.JudgeRound(g.tricks(), *g.caller)
		g.scores = &scores
		g.phase = PhaseOver
	}
}

func (g *Game) tricks() [player.Seats]int {
	var out [player.Seats]int
	for i, p := range g.players {
		out[i] = p.Tricks()
	}
	return out
}
