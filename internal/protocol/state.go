// Package protocol encodes scoped views as protobuf messages so they can be
// handed to out-of-process agents or compared byte for byte.
package protocol

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/palemoky/euchre/internal/apperrors"
	"github.com/palemoky/euchre/internal/game"
	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/game/card"
)

// Field names of the encoded view.
const (
	fieldPhase          = "phase"
	fieldCurrentActor   = "current_actor"
	fieldDealer         = "dealer"
	fieldHand           = "hand"
	fieldCaller         = "caller"
	fieldFlippedCard    = "flipped_card"
	fieldFlippedChoice  = "flipped_choice"
	fieldTrump          = "trump"
	fieldLedSuit        = "led_suit"
	fieldOrder          = "order"
	fieldCenter         = "center"
	fieldPreviousPlayed = "previous_played"
	fieldTricks         = "tricks"
	fieldLegalActions   = "legal_actions"
)

var marshalOpts = proto.MarshalOptions{Deterministic: true}

// EncodeState serialises s as a google.protobuf.Struct. Unset optionals are
// left out; the same view always yields the same bytes.
func EncodeState(s *game.ScopedState) ([]byte, error) {
	st, err := ToStruct(s)
	if err != nil {
		return nil, err
	}
	return marshalOpts.Marshal(st)
}

// ToStruct converts s to a structpb.Struct.
func ToStruct(s *game.ScopedState) (*structpb.Struct, error) {
	m := map[string]any{
		fieldPhase:         int(s.Phase),
		fieldCurrentActor:  s.CurrentActor,
		fieldDealer:        s.Dealer,
		fieldHand:          cardList(s.Hand),
		fieldFlippedCard:   s.FlippedCard.String(),
		fieldFlippedChoice: int(s.FlippedChoice),
		fieldOrder:         intList(s.Order),
		fieldCenter:        cardList(s.Center),
		fieldTricks:        intList(s.Tricks[:]),
	}
	if s.Caller != nil {
		m[fieldCaller] = *s.Caller
	}
	if s.Trump != nil {
		m[fieldTrump] = s.Trump.Letter()
	}
	if s.LedSuit != nil {
		m[fieldLedSuit] = s.LedSuit.Letter()
	}

	played := make([]any, len(s.PreviousPlayed))
	for i, cards := range s.PreviousPlayed {
		played[i] = cardList(cards)
	}
	m[fieldPreviousPlayed] = played

	acts := make([]any, len(s.LegalActions))
	for i, a := range s.LegalActions {
		acts[i] = int(a)
	}
	m[fieldLegalActions] = acts

	return structpb.NewStruct(m)
}

// DecodeState parses bytes produced by EncodeState.
func DecodeState(data []byte) (*game.ScopedState, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(data, &st); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidState, "%v", err)
	}
	return FromStruct(&st)
}

// FromStruct is the inverse of ToStruct.
func FromStruct(st *structpb.Struct) (*game.ScopedState, error) {
	d := decoder{fields: st.GetFields()}
	s := &game.ScopedState{
		Phase:         game.Phase(d.int(fieldPhase)),
		CurrentActor:  d.int(fieldCurrentActor),
		Dealer:        d.int(fieldDealer),
		Hand:          d.cards(d.list(fieldHand)),
		FlippedCard:   d.card(d.fields[fieldFlippedCard].GetStringValue()),
		FlippedChoice: game.FlippedChoice(d.int(fieldFlippedChoice)),
		Order:         d.ints(d.list(fieldOrder)),
		Center:        d.cards(d.list(fieldCenter)),
	}
	if _, ok := d.fields[fieldCaller]; ok {
		caller := d.int(fieldCaller)
		s.Caller = &caller
	}
	s.Trump = d.suit(fieldTrump)
	s.LedSuit = d.suit(fieldLedSuit)

	for i, v := range d.list(fieldPreviousPlayed) {
		if i >= len(s.PreviousPlayed) {
			d.fail("too many seats in %s", fieldPreviousPlayed)
			break
		}
		s.PreviousPlayed[i] = d.cards(v.GetListValue().GetValues())
	}
	for i, n := range d.ints(d.list(fieldTricks)) {
		if i < len(s.Tricks) {
			s.Tricks[i] = n
		}
	}
	for _, n := range d.ints(d.list(fieldLegalActions)) {
		a, err := action.FromInt(n)
		if err != nil {
			d.err = err
			break
		}
		s.LegalActions = append(s.LegalActions, a)
	}

	if d.err != nil {
		return nil, d.err
	}
	return s, nil
}

func cardList(cards []card.Card) []any {
	if cards == nil {
		return nil
	}
	out := make([]any, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

func intList(ns []int) []any {
	out := make([]any, len(ns))
	for i, n := range ns {
		out[i] = n
	}
	return out
}

// decoder keeps the first error so FromStruct reads straight through.
type decoder struct {
	fields map[string]*structpb.Value
	err    error
}

func (d *decoder) fail(format string, args ...any) {
	if d.err == nil {
		d.err = apperrors.Wrap(apperrors.ErrInvalidState, format, args...)
	}
}

func (d *decoder) int(name string) int {
	v, ok := d.fields[name]
	if !ok {
		d.fail("missing %s", name)
		return 0
	}
	return int(v.GetNumberValue())
}

func (d *decoder) list(name string) []*structpb.Value {
	return d.fields[name].GetListValue().GetValues()
}

func (d *decoder) ints(vals []*structpb.Value) []int {
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v.GetNumberValue())
	}
	return out
}

func (d *decoder) card(name string) card.Card {
	c, err := card.Parse(name)
	if err != nil && d.err == nil {
		d.err = err
	}
	return c
}

func (d *decoder) cards(vals []*structpb.Value) []card.Card {
	if len(vals) == 0 {
		return nil
	}
	out := make([]card.Card, len(vals))
	for i, v := range vals {
		out[i] = d.card(v.GetStringValue())
	}
	return out
}

func (d *decoder) suit(name string) *card.Suit {
	v, ok := d.fields[name]
	if !ok {
		return nil
	}
	s, err := card.ParseSuit(v.GetStringValue())
	if err != nil {
		if d.err == nil {
			d.err = err
		}
		return nil
	}
	return &s
}
