package card

import (
	"strings"

	"github.com/palemoky/euchre/internal/apperrors"
)

// ParseSuit reads a suit letter such as "H", case-insensitively.
func ParseSuit(s string) (Suit, error) {
	for suit, l := range suitLetters {
		if strings.EqualFold(l, s) {
			return suit, nil
		}
	}
	return SuitUnset, apperrors.Wrap(apperrors.ErrInvalidCard, "suit %q", s)
}

// Parse reads a two-letter card name such as "HA" or "c9".
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, apperrors.Wrap(apperrors.ErrInvalidCard, "%q", s)
	}
	suit, err := ParseSuit(s[:1])
	if err != nil {
		return Card{}, err
	}
	for rank, l := range rankLetters {
		if strings.EqualFold(l, s[1:]) {
			return Card{Suit: suit, Rank: rank}, nil
		}
	}
	return Card{}, apperrors.Wrap(apperrors.ErrInvalidCard, "rank in %q", s)
}
