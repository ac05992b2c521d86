// Package player holds a seat's hand and trick count.
package player

import (
	"slices"

	"github.com/palemoky/euchre/internal/game/card"
)

// Seats is the number of players at a euchre table.
const Seats = 4

// Player is one seat. Seats 0 and 2 form one team, 1 and 3 the other.
type Player struct {
	ID     int
	hand   []card.Card
	tricks int
}

// New creates an empty seat.
func New(id int) *Player {
	return &Player{ID: id, hand: make([]card.Card, 0, 6)}
}

// Team is 0 for seats 0 and 2, 1 for seats 1 and 3.
func (p *Player) Team() int {
	return p.ID % 2
}

// AddCards appends cards to the hand.
func (p *Player) AddCards(cards ...card.Card) {
	p.hand = append(p.hand, cards...)
}

// Remove takes c out of the hand, reporting whether it was there.
func (p *Player) Remove(c card.Card) bool {
	i := slices.Index(p.hand, c)
	if i < 0 {
		return false
	}
	p.hand = slices.Delete(p.hand, i, i+1)
	return true
}

// Has reports whether c is in the hand.
func (p *Player) Has(c card.Card) bool {
	return slices.Contains(p.hand, c)
}

// Hand returns a copy of the hand.
func (p *Player) Hand() []card.Card {
	return slices.Clone(p.hand)
}

func (p *Player) HandSize() int { return len(p.hand) }

func (p *Player) WinTrick() { p.tricks++ }

func (p *Player) Tricks() int { return p.tricks }

func (p *Player) ResetTricks() { p.tricks = 0 }

// NextSeat returns the seat to the left of seat.
func NextSeat(seat int) int {
	return (seat + 1) % Seats
}

// OrderFrom lists all seats in turn order starting at seat.
func OrderFrom(seat int) []int {
	order := make([]int, Seats)
	for i := range order {
		order[i] = (seat + i) % Seats
	}
	return order
}
