// Package judge decides trick winners and converts a round's trick counts
// into points.
package judge

import (
	"github.com/palemoky/euchre/internal/game/card"
)

const (
	leftBowerStrength  = int(card.Ace) + 1
	rightBowerStrength = int(card.Ace) + 2
)

// TricksPerRound is the number of tricks in one euchre round.
const TricksPerRound = 5

// strength orders cards within their effective suit: right bower, left
// bower, then Ace down to Nine.
func strength(c card.Card, trump card.Suit) int {
	switch {
	case c.IsRight(trump):
		return rightBowerStrength
	case c.IsLeft(trump):
		return leftBowerStrength
	default:
		return int(c.Rank)
	}
}

// IsLower reports whether best loses to other under trump. best is the
// card currently winning the trick, so it is always either the led card or
// a trump; a card of any third suit can never take the trick.
func IsLower(best card.Card, trump card.Suit, other card.Card) bool {
	bestSuit := best.EffectiveSuit(trump)
	otherSuit := other.EffectiveSuit(trump)

	if bestSuit == otherSuit {
		return strength(best, trump) < strength(other, trump)
	}
	return otherSuit == trump
}

// JudgeTrick returns the seat that won the trick. center[i] was played by
// order[i] and center[0] is the led card.
func JudgeTrick(trump card.Suit, center []card.Card, order []int) int {
	winner := order[0]
	best := center[0]
	for i := 1; i < len(center); i++ {
		if IsLower(best, trump, center[i]) {
			best = center[i]
			winner = order[i]
		}
	}
	return winner
}

// JudgeRound turns tricks won per seat into points per seat. Seats 0 and 2
// are one team and 1 and 3 the other. A march earns 2, making the bid earns
// 1 and euchring the callers earns 2; losers score 0.
func JudgeRound(tricks [4]int, caller int) [4]int {
	teamA := tricks[0] + tricks[2]
	teamACalled := caller%2 == 0

	var points int
	var winners int // 0 for seats 0/2, 1 for seats 1/3
	switch {
	case teamA == TricksPerRound:
		points, winners = 2, 0
	case teamA >= 3:
		points, winners = roundPoints(teamACalled), 0
	case teamA == 0:
		points, winners = 2, 1
	default:
		points, winners = roundPoints(!teamACalled), 1
	}

	var out [4]int
	for seat := range out {
		if seat%2 == winners {
			out[seat] = points
		}
	}
	return out
}

// roundPoints is 1 when the winners called trump and 2 when they euchred
// the callers.
func roundPoints(winnersCalled bool) int {
	if winnersCalled {
		return 1
	}
	return 2
}
