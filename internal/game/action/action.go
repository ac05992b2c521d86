// Package action maps the 54 discrete euchre actions to and from cards.
//
// Ids are fixed: 0 Pass, 1 Pick, 2-5 CallH/CallD/CallS/CallC, 6-29 one Play
// per card and 30-53 one Discard per card. A card's id is
// rankIndex + suitIndex*6 (+24 for Discard) with suit order H D S C from 1
// and rank order A K Q J T 9 from 0. The mapping is held in lookup tables
// built once at init.
package action

import (
	"strings"

	"github.com/palemoky/euchre/internal/apperrors"
	"github.com/palemoky/euchre/internal/game/card"
)

// Action is one of the 54 discrete decisions an agent can take.
type Action uint8

// Kind groups actions by the phase they belong to.
type Kind int

const (
	KindPass Kind = iota
	KindPick
	KindCall
	KindPlay
	KindDiscard
)

const (
	Pass  Action = 0
	Pick  Action = 1
	CallH Action = 2
	CallD Action = 3
	CallS Action = 4
	CallC Action = 5
)

// Count is the size of the action space.
const Count = 54

const (
	firstPlay    Action = 6
	firstDiscard Action = 30
	discardShift        = 24
)

var suitIndex = map[card.Suit]int{
	card.Hearts:   1,
	card.Diamonds: 2,
	card.Spades:   3,
	card.Clubs:    4,
}

var rankIndex = map[card.Rank]int{
	card.Ace:   0,
	card.King:  1,
	card.Queen: 2,
	card.Jack:  3,
	card.Ten:   4,
	card.Nine:  5,
}

var callSuits = map[Action]card.Suit{
	CallH: card.Hearts,
	CallD: card.Diamonds,
	CallS: card.Spades,
	CallC: card.Clubs,
}

type entry struct {
	kind Kind
	card card.Card // zero for Pass, Pick and Call
	suit card.Suit // called suit for Call
	name string
}

var (
	table   [Count]entry
	byCard  = make(map[card.Card][2]Action) // [play, discard]
	byName  = make(map[string]Action, Count)
	bySuit  = make(map[card.Suit]Action, 4)
	allActs [Count]Action
)

func init() {
	table[Pass] = entry{kind: KindPass, name: "Pass"}
	table[Pick] = entry{kind: KindPick, name: "Pick"}
	for a, s := range callSuits {
		table[a] = entry{kind: KindCall, suit: s, name: "Call" + s.Letter()}
		bySuit[s] = a
	}

	for s, si := range suitIndex {
		for r, ri := range rankIndex {
			c := card.Card{Suit: s, Rank: r}
			play := Action(ri + si*6)
			discard := play + discardShift
			table[play] = entry{kind: KindPlay, card: c, name: c.String() + "Play"}
			table[discard] = entry{kind: KindDiscard, card: c, name: c.String() + "Discard"}
			byCard[c] = [2]Action{play, discard}
		}
	}

	for i := range table {
		a := Action(i)
		allActs[i] = a
		byName[strings.ToLower(table[i].name)] = a
	}
}

// All returns every action in id order.
func All() []Action {
	out := make([]Action, Count)
	copy(out, allActs[:])
	return out
}

// Valid reports whether a is inside the 0-53 id space.
func (a Action) Valid() bool {
	return int(a) < Count
}

// Kind reports which family a belongs to. Out-of-range ids report KindPass;
// check Valid first.
func (a Action) Kind() Kind {
	if !a.Valid() {
		return KindPass
	}
	return table[a].kind
}

func (a Action) String() string {
	if !a.Valid() {
		return "Invalid"
	}
	return table[a].name
}

func (a Action) IsCall() bool    { return a.Valid() && table[a].kind == KindCall }
func (a Action) IsPlay() bool    { return a.Valid() && table[a].kind == KindPlay }
func (a Action) IsDiscard() bool { return a.Valid() && table[a].kind == KindDiscard }

// HasCard reports whether a names a card, i.e. is a Play or a Discard.
func (a Action) HasCard() bool {
	return a.IsPlay() || a.IsDiscard()
}

// CalledSuit returns the suit named by a Call action.
func (a Action) CalledSuit() (card.Suit, bool) {
	if !a.IsCall() {
		return card.SuitUnset, false
	}
	return table[a].suit, true
}

// ToCard returns the card a Play or Discard action refers to.
func ToCard(a Action) (card.Card, error) {
	if !a.Valid() {
		return card.Card{}, apperrors.Wrap(apperrors.ErrInvalidMapping, "id %d out of range", uint8(a))
	}
	if !a.HasCard() {
		return card.Card{}, apperrors.Wrap(apperrors.ErrInvalidMapping, "%s", a)
	}
	return table[a].card, nil
}

// FromCard returns the Play (isPlay) or Discard action for c. It panics on
// an Unset suit or rank, which never appears in a live game.
func FromCard(c card.Card, isPlay bool) Action {
	acts, ok := byCard[c]
	if !ok {
		panic(apperrors.Wrap(apperrors.ErrUnsetSentinel, "card %v", c))
	}
	if isPlay {
		return acts[0]
	}
	return acts[1]
}

// CallFor returns the Call action naming s.
func CallFor(s card.Suit) Action {
	a, ok := bySuit[s]
	if !ok {
		panic(apperrors.Wrap(apperrors.ErrUnsetSentinel, "suit %v", s))
	}
	return a
}

// FromInt converts a raw id.
func FromInt(n int) (Action, error) {
	if n < 0 || n >= Count {
		return 0, apperrors.Wrap(apperrors.ErrInvalidMapping, "integer %d has no corresponding action", n)
	}
	return Action(n), nil
}

// Parse matches s case-insensitively against the canonical action names,
// ignoring surrounding whitespace.
func Parse(s string) (Action, error) {
	a, ok := byName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, apperrors.Wrap(apperrors.ErrUnknownAction, "%q", s)
	}
	return a, nil
}

// Cards maps a list of card actions to their cards, skipping the others.
func Cards(acts []Action) []card.Card {
	var out []card.Card
	for _, a := range acts {
		if c, err := ToCard(a); err == nil {
			out = append(out, c)
		}
	}
	return out
}
