// Package card defines the 24-card euchre deck and the trump-relative
// predicates used to rank cards.
package card

// Suit is a card suit. Unset is only valid in template data.
type Suit int

// Rank is a card rank, ordered Nine < Ten < Jack < Queen < King < Ace for
// plain comparisons. Unset is only valid in template data.
type Rank int

// Card is an immutable (suit, rank) pair; compare with ==.
type Card struct {
	Suit Suit
	Rank Rank
}

const (
	SuitUnset Suit = iota
	Hearts
	Diamonds
	Spades
	Clubs
)

const (
	RankUnset Rank = iota
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// suitLetters maps suits to the letters used in names.
var suitLetters = map[Suit]string{
	Hearts:   "H",
	Diamonds: "D",
	Spades:   "S",
	Clubs:    "C",
}

var suitNames = map[Suit]string{
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Spades:   "Spades",
	Clubs:    "Clubs",
}

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Spades:   "♠",
	Clubs:    "♣",
}

// rankLetters maps ranks to the letters used in names.
var rankLetters = map[Rank]string{
	Nine:  "9",
	Ten:   "T",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// partners pairs the two suits of each colour.
var partners = map[Suit]Suit{
	Hearts:   Diamonds,
	Diamonds: Hearts,
	Spades:   Clubs,
	Clubs:    Spades,
}

// Suits returns the four concrete suits.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Spades, Clubs}
}

// Ranks returns the six concrete ranks from Nine to Ace.
func Ranks() []Rank {
	return []Rank{Nine, Ten, Jack, Queen, King, Ace}
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "Unset"
}

// Letter is the single letter used in action names, e.g. "H".
func (s Suit) Letter() string {
	if l, ok := suitLetters[s]; ok {
		return l
	}
	return "?"
}

// Symbol returns the pip symbol for rendering.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// Valid reports whether s is one of the four concrete suits.
func (s Suit) Valid() bool {
	_, ok := suitNames[s]
	return ok
}

// IsRed reports whether s is Hearts or Diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Partner returns the other suit of the same colour.
func (s Suit) Partner() Suit {
	return partners[s]
}

func (r Rank) String() string {
	if l, ok := rankLetters[r]; ok {
		return l
	}
	return "?"
}

// Valid reports whether r is one of the six concrete ranks.
func (r Rank) Valid() bool {
	_, ok := rankLetters[r]
	return ok
}

func (c Card) String() string {
	return c.Suit.Letter() + c.Rank.String()
}

// Valid reports whether both suit and rank are concrete.
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// IsRight reports whether c is the Jack of trump.
func (c Card) IsRight(trump Suit) bool {
	return c.Rank == Jack && c.Suit == trump
}

// IsLeft reports whether c is the Jack of trump's same-colour suit.
func (c Card) IsLeft(trump Suit) bool {
	return c.Rank == Jack && c.Suit != trump && c.Suit.Partner() == trump
}

// EffectiveSuit is trump for the left bower and the printed suit otherwise.
func (c Card) EffectiveSuit(trump Suit) Suit {
	if c.IsLeft(trump) {
		return trump
	}
	return c.Suit
}

// NewDeck returns all 24 suit × rank combinations in suit-major order.
func NewDeck() []Card {
	deck := make([]Card, 0, 24)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}
