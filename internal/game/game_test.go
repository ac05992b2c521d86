package game

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/euchre/internal/apperrors"
	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/game/card"
	"github.com/palemoky/euchre/internal/game/player"
)

func c(s card.Suit, r card.Rank) card.Card {
	return card.Card{Suit: s, Rank: r}
}

func intPtr(v int) *int        { return &v }
func seedPtr(v uint64) *uint64 { return &v }

func play(x card.Card) action.Action    { return action.FromCard(x, true) }
func discard(x card.Card) action.Action { return action.FromCard(x, false) }

// riggedHands gives seat 0 every black jack and high spade, and the other
// seats one plain suit each. S9 is the flip.
func riggedHands() ([player.Seats][]card.Card, card.Card) {
	return [player.Seats][]card.Card{
		{c(card.Spades, card.Jack), c(card.Clubs, card.Jack), c(card.Spades, card.Ace), c(card.Spades, card.King), c(card.Spades, card.Queen)},
		{c(card.Hearts, card.Nine), c(card.Hearts, card.Ten), c(card.Hearts, card.Queen), c(card.Hearts, card.King), c(card.Hearts, card.Ace)},
		{c(card.Diamonds, card.Nine), c(card.Diamonds, card.Ten), c(card.Diamonds, card.Queen), c(card.Diamonds, card.King), c(card.Diamonds, card.Ace)},
		{c(card.Clubs, card.Nine), c(card.Clubs, card.Ten), c(card.Clubs, card.Queen), c(card.Clubs, card.King), c(card.Clubs, card.Ace)},
	}, c(card.Spades, card.Nine)
}

// rigged replaces the shuffled deal with fixed hands.
func rigged(t *testing.T, dealerSeat int, hands [player.Seats][]card.Card, flip card.Card) *Game {
	t.Helper()
	g, err := New(Options{Dealer: intPtr(dealerSeat), Seed: seedPtr(1)})
	require.NoError(t, err)
	for i := range g.players {
		g.players[i] = player.New(i)
		g.players[i].AddCards(hands[i]...)
	}
	g.flipped = flip
	return g
}

func mustStep(t *testing.T, g *Game, a action.Action) *ScopedState {
	t.Helper()
	s, seat, err := g.Step(a)
	require.NoError(t, err, "step %s", a)
	assert.Equal(t, g.CurrentPlayer(), seat)
	return s
}

// playOut steps the first legal action until the round ends.
func playOut(t *testing.T, g *Game) {
	t.Helper()
	for !g.IsOver() {
		mustStep(t, g, g.LegalActions()[0])
	}
}

func TestNew_InitialState(t *testing.T) {
	t.Parallel()

	g, err := New(Options{Dealer: intPtr(2), Seed: seedPtr(9)})
	require.NoError(t, err)

	assert.False(t, g.IsOver())
	assert.Equal(t, PhaseBiddingFlip, g.Phase())
	assert.Equal(t, 2, g.Dealer())
	assert.Equal(t, 3, g.CurrentPlayer())
	assert.Equal(t, 3, g.deck.Remaining())

	seen := map[card.Card]bool{g.flipped: true}
	for _, p := range g.players {
		assert.Equal(t, 5, p.HandSize())
		for _, x := range p.Hand() {
			assert.False(t, seen[x])
			seen[x] = true
		}
	}

	s := g.State()
	assert.Equal(t, []action.Action{action.Pick, action.Pass}, s.LegalActions)
	assert.Nil(t, s.Trump)
	assert.Nil(t, s.Caller)
	assert.Nil(t, s.LedSuit)
	assert.Nil(t, s.Center)
	assert.Equal(t, FlipUndecided, s.FlippedChoice)
	assert.Equal(t, []int{3, 0, 1, 2}, s.Order)

	_, ok := g.Scores()
	assert.False(t, ok)
}

func TestNew_DealerOverride(t *testing.T) {
	t.Parallel()

	for _, bad := range []int{-1, 4, 10} {
		_, err := New(Options{Dealer: intPtr(bad)})
		assert.True(t, errors.Is(err, apperrors.ErrDealerRange), "dealer %d", bad)
		assert.True(t, apperrors.IsConfig(err))
	}

	for range 20 {
		g, err := New(Options{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, g.Dealer(), 0)
		assert.Less(t, g.Dealer(), 4)
	}
}

func TestPick_DealerDiscards(t *testing.T) {
	t.Parallel()

	hands, flip := riggedHands()
	g := rigged(t, 3, hands, flip)

	s := mustStep(t, g, action.Pass) // seat 0
	assert.Equal(t, 1, s.CurrentActor)
	s = mustStep(t, g, action.Pick) // seat 1 orders it up

	require.NotNil(t, s.Trump)
	assert.Equal(t, card.Spades, *s.Trump)
	require.NotNil(t, s.Caller)
	assert.Equal(t, 1, *s.Caller)
	assert.Equal(t, PickedUp, s.FlippedChoice)
	assert.Equal(t, PhaseDiscarding, s.Phase)
	assert.Equal(t, 3, s.CurrentActor)
	assert.Len(t, s.Hand, 6)
	assert.Contains(t, s.Hand, flip)
	assert.Len(t, s.LegalActions, 6)
	for _, a := range s.LegalActions {
		assert.True(t, a.IsDiscard())
	}

	s = mustStep(t, g, discard(c(card.Clubs, card.Nine)))
	assert.Equal(t, PhaseLeading, s.Phase)
	assert.Equal(t, 0, s.CurrentActor)
	assert.Equal(t, []int{0, 1, 2, 3}, s.Order)
	assert.Equal(t, 5, g.players[3].HandSize())
	assert.False(t, g.players[3].Has(c(card.Clubs, card.Nine)))
}

func TestPassAround_SecondBidding(t *testing.T) {
	t.Parallel()

	hands, flip := riggedHands()
	g := rigged(t, 3, hands, flip)

	for seat := range 3 {
		s := mustStep(t, g, action.Pass)
		assert.Equal(t, FlipUndecided, s.FlippedChoice, "after seat %d", seat)
	}
	s := mustStep(t, g, action.Pass) // dealer turns it down

	assert.Equal(t, TurnedDown, s.FlippedChoice)
	assert.Equal(t, PhaseBiddingCall, s.Phase)
	assert.Equal(t, 0, s.CurrentActor)
	assert.Equal(t, []action.Action{action.CallH, action.CallD, action.CallC, action.Pass}, s.LegalActions)
	assert.Nil(t, s.Trump)

	mustStep(t, g, action.Pass)
	mustStep(t, g, action.Pass)
	s = mustStep(t, g, action.Pass)

	// stick the dealer
	assert.Equal(t, 3, s.CurrentActor)
	assert.Equal(t, []action.Action{action.CallH, action.CallD, action.CallC}, s.LegalActions)

	s = mustStep(t, g, action.CallD)
	require.NotNil(t, s.Trump)
	assert.Equal(t, card.Diamonds, *s.Trump)
	assert.Equal(t, 3, *s.Caller)
	assert.Equal(t, PhaseLeading, s.Phase)
	assert.Equal(t, 0, s.CurrentActor)
}

func TestStep_RejectsIllegal(t *testing.T) {
	t.Parallel()

	hands, flip := riggedHands()
	g := rigged(t, 3, hands, flip)

	tests := []struct {
		name string
		act  action.Action
	}{
		{"discard while bidding", discard(c(card.Spades, card.Jack))},
		{"play while bidding", play(c(card.Spades, card.Jack))},
		{"call during first bidding", action.CallH},
		{"out of range", action.Action(99)},
	}
	for _, tt := range tests {
		_, _, err := g.Step(tt.act)
		assert.True(t, errors.Is(err, apperrors.ErrIllegalAction), tt.name)
		assert.True(t, apperrors.IsInvariant(err), tt.name)
	}
	assert.Empty(t, g.Log())
	assert.Equal(t, 0, g.CurrentPlayer())

	for range 4 {
		mustStep(t, g, action.Pass)
	}
	_, _, err := g.Step(action.CallS) // the turned down suit
	assert.True(t, errors.Is(err, apperrors.ErrIllegalAction))

	mustStep(t, g, action.CallC)
	_, _, err = g.Step(play(c(card.Hearts, card.Ace))) // not seat 0's card
	assert.True(t, errors.Is(err, apperrors.ErrIllegalAction))
}

func TestPlay_LeftBowerLeadSetsTrump(t *testing.T) {
	t.Parallel()

	hands, flip := riggedHands()
	g := rigged(t, 3, hands, flip)
	mustStep(t, g, action.Pick)                       // seat 0 orders spades
	mustStep(t, g, discard(c(card.Clubs, card.Nine))) // dealer

	s := mustStep(t, g, play(c(card.Clubs, card.Jack)))
	require.NotNil(t, s.LedSuit)
	assert.Equal(t, card.Spades, *s.LedSuit)
	assert.Equal(t, []card.Card{c(card.Clubs, card.Jack)}, s.Center)
	assert.Equal(t, PhaseFollowing, s.Phase)
	assert.Equal(t, 1, s.CurrentActor)

	// seat 1 holds no spades and may play anything
	assert.Len(t, s.LegalActions, 5)
	mustStep(t, g, play(c(card.Hearts, card.Ace)))
	mustStep(t, g, play(c(card.Diamonds, card.Ace)))

	// seat 3 took the S9 and has to follow trump
	s = g.State()
	assert.Equal(t, []action.Action{play(c(card.Spades, card.Nine))}, s.LegalActions)
}

func TestFollowSuit_LeftBowerMustFollowTrump(t *testing.T) {
	t.Parallel()

	hands := [player.Seats][]card.Card{
		{c(card.Hearts, card.Ace), c(card.Diamonds, card.Nine), c(card.Diamonds, card.Ten), c(card.Spades, card.Nine), c(card.Spades, card.Ten)},
		{c(card.Diamonds, card.Jack), c(card.Clubs, card.Nine), c(card.Clubs, card.Ten), c(card.Spades, card.Queen), c(card.Spades, card.King)},
		{c(card.Hearts, card.Nine), c(card.Hearts, card.Ten), c(card.Clubs, card.Queen), c(card.Clubs, card.King), c(card.Clubs, card.Ace)},
		{c(card.Hearts, card.Queen), c(card.Hearts, card.King), c(card.Diamonds, card.Queen), c(card.Diamonds, card.King), c(card.Diamonds, card.Ace)},
	}
	g := rigged(t, 3, hands, c(card.Spades, card.Ace))
	for range 4 {
		mustStep(t, g, action.Pass)
	}
	mustStep(t, g, action.CallH)                       // seat 0 calls hearts
	s := mustStep(t, g, play(c(card.Hearts, card.Ace))) // lead trump

	// DJ is the left bower and the only heart seat 1 holds
	assert.Equal(t, []action.Action{play(c(card.Diamonds, card.Jack))}, s.LegalActions)
	s = mustStep(t, g, play(c(card.Diamonds, card.Jack)))

	assert.ElementsMatch(t, []action.Action{play(c(card.Hearts, card.Nine)), play(c(card.Hearts, card.Ten))}, s.LegalActions)
	mustStep(t, g, play(c(card.Hearts, card.Nine)))
	s = mustStep(t, g, play(c(card.Hearts, card.Queen)))

	// the left bower takes the trick and seat 1 leads next
	assert.Equal(t, 1, s.CurrentActor)
	assert.Equal(t, [4]int{0, 1, 0, 0}, s.Tricks)
	assert.Nil(t, s.Center)
	assert.Nil(t, s.LedSuit)
	assert.Equal(t, PhaseLeading, s.Phase)
	assert.Equal(t, []int{1, 2, 3, 0}, s.Order)
	assert.Equal(t, []card.Card{c(card.Diamonds, card.Jack)}, s.PreviousPlayed[1])
	assert.Len(t, s.LegalActions, 4)
}

func TestFullRound_CallerMarches(t *testing.T) {
	t.Parallel()

	hands, flip := riggedHands()
	g := rigged(t, 3, hands, flip)
	mustStep(t, g, action.Pick)
	playOut(t, g)

	scores, ok := g.Scores()
	require.True(t, ok)
	assert.Equal(t, [4]int{2, 0, 2, 0}, scores)
	assert.Equal(t, 5, g.players[0].Tricks())
	assert.Equal(t, PhaseOver, g.Phase())
	assert.Empty(t, g.LegalActions())

	_, _, err := g.Step(action.Pass)
	assert.True(t, errors.Is(err, apperrors.ErrGameOver))
}

func TestFullRound_SecondRoundCallerMarches(t *testing.T) {
	t.Parallel()

	hands, flip := riggedHands()
	g := rigged(t, 3, hands, flip)
	for range 5 {
		mustStep(t, g, action.Pass)
	}
	mustStep(t, g, action.CallH) // seat 1 holds all five hearts
	playOut(t, g)

	scores, ok := g.Scores()
	require.True(t, ok)
	assert.Equal(t, [4]int{0, 2, 0, 2}, scores)
}

func TestState_IsASnapshot(t *testing.T) {
	t.Parallel()

	hands, flip := riggedHands()
	g := rigged(t, 3, hands, flip)
	mustStep(t, g, action.Pick)
	mustStep(t, g, discard(c(card.Clubs, card.Nine)))
	s := mustStep(t, g, play(c(card.Spades, card.Ace)))

	s.Hand[0] = c(card.Hearts, card.Nine)
	s.Center[0] = c(card.Hearts, card.Nine)
	*s.Trump = card.Hearts
	*s.Caller = 2
	s.Order[0] = 3
	s.PreviousPlayed[0][0] = c(card.Hearts, card.Nine)
	s.LegalActions[0] = action.Pass

	fresh := g.State()
	assert.Equal(t, card.Spades, *fresh.Trump)
	assert.Equal(t, 0, *fresh.Caller)
	assert.Equal(t, []card.Card{c(card.Spades, card.Ace)}, fresh.Center)
	assert.Equal(t, []card.Card{c(card.Spades, card.Ace)}, fresh.PreviousPlayed[0])
	assert.Equal(t, []int{0, 1, 2, 3}, fresh.Order)
	assert.NotContains(t, fresh.LegalActions, action.Pass)
	assert.Equal(t, hands[1], fresh.Hand)
}

func TestLog_RecordsSeats(t *testing.T) {
	t.Parallel()

	hands, flip := riggedHands()
	g := rigged(t, 3, hands, flip)
	mustStep(t, g, action.Pass)
	mustStep(t, g, action.Pick)

	assert.Equal(t, []LogEntry{{Seat: 0, Action: action.Pass}, {Seat: 1, Action: action.Pick}}, g.Log())
}

// checkInvariants asserts the properties every reachable state must hold.
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()
	s := g.State()

	total := 0
	for _, n := range s.Tricks {
		total += n
	}
	assert.LessOrEqual(t, total, 5)
	assert.LessOrEqual(t, len(s.Center), 4)
	assert.Equal(t, s.Trump == nil, s.Caller == nil)

	if g.IsOver() {
		assert.Equal(t, 5, total)
		assert.Empty(t, s.Hand)
		return
	}
	require.NotEmpty(t, s.LegalActions, "phase %s", s.Phase)

	if s.Phase == PhaseFollowing {
		var matching int
		for _, x := range s.Hand {
			if x.EffectiveSuit(*s.Trump) == *s.LedSuit {
				matching++
			}
		}
		cards := action.Cards(s.LegalActions)
		if matching > 0 {
			assert.Len(t, cards, matching)
			for _, x := range cards {
				assert.Equal(t, *s.LedSuit, x.EffectiveSuit(*s.Trump))
			}
		} else {
			assert.ElementsMatch(t, s.Hand, cards)
		}
	}
}

func TestRandomRounds_Invariants(t *testing.T) {
	t.Parallel()

	for seed := range uint64(200) {
		g, err := New(Options{Seed: seedPtr(seed)})
		require.NoError(t, err)
		pick := rand.New(rand.NewPCG(seed, 99))

		steps := 0
		for !g.IsOver() {
			checkInvariants(t, g)
			legal := g.LegalActions()
			mustStep(t, g, legal[pick.IntN(len(legal))])
			steps++
			require.Less(t, steps, 50, "seed %d did not terminate", seed)
		}
		checkInvariants(t, g)

		scores, ok := g.Scores()
		require.True(t, ok)
		sum := 0
		for _, p := range scores {
			sum += p
		}
		assert.Contains(t, []int{2, 4}, sum, "seed %d scores %v", seed, scores)
		assert.Equal(t, scores[0], scores[2])
		assert.Equal(t, scores[1], scores[3])
	}
}

func TestDeterminism_SameSeedSameGame(t *testing.T) {
	t.Parallel()

	run := func() ([]*ScopedState, [4]int) {
		g, err := New(Options{Dealer: intPtr(1), Seed: seedPtr(2024)})
		require.NoError(t, err)
		pick := rand.New(rand.NewPCG(5, 5))
		states := []*ScopedState{g.State()}
		for !g.IsOver() {
			legal := g.LegalActions()
			s, _, err := g.Step(legal[pick.IntN(len(legal))])
			require.NoError(t, err)
			states = append(states, s)
		}
		scores, _ := g.Scores()
		return states, scores
	}

	statesA, scoresA := run()
	statesB, scoresB := run()
	assert.Equal(t, statesA, statesB)
	assert.Equal(t, scoresA, scoresB)
}
