// Package apperrors defines the typed errors shared by the engine, the
// agents and the orchestration layer.
package apperrors

import (
	"errors"
	"fmt"
)

// Error code ranges: 1xxx configuration, 2xxx encoding, 3xxx invariant.
const (
	ErrCodeAgentCount      = 1001
	ErrCodeDealerRange     = 1002
	ErrCodeInvalidConfig   = 1003
	ErrCodeInvalidMapping  = 2001
	ErrCodeUnknownAction   = 2002
	ErrCodeInvalidCard     = 2003
	ErrCodeInvalidState    = 2004
	ErrCodeIllegalAction   = 3001
	ErrCodeGameOver        = 3002
	ErrCodeCardNotInHand   = 3003
	ErrCodeUnsetSentinel   = 3004
	ErrCodeDeckExhausted   = 3005
	ErrCodeInputExhausted  = 4001
	ErrCodePromptCancelled = 4002
)

// ErrorMessages maps error codes to their default messages.
var ErrorMessages = map[int]string{
	ErrCodeAgentCount:      "euchre needs exactly 4 agents",
	ErrCodeDealerRange:     "dealer seat must be between 0 and 3",
	ErrCodeInvalidConfig:   "invalid configuration",
	ErrCodeInvalidMapping:  "action has no card mapping",
	ErrCodeUnknownAction:   "unknown action",
	ErrCodeInvalidCard:     "invalid card name",
	ErrCodeInvalidState:    "invalid encoded state",
	ErrCodeIllegalAction:   "action is not legal in the current phase",
	ErrCodeGameOver:        "game is already over",
	ErrCodeCardNotInHand:   "card not in hand",
	ErrCodeUnsetSentinel:   "unset suit or rank in live game state",
	ErrCodeDeckExhausted:   "deck has too few cards",
	ErrCodeInputExhausted:  "agent input exhausted",
	ErrCodePromptCancelled: "prompt cancelled",
}

// GameError carries a stable code plus a human readable message.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Is matches any GameError with the same code, so wrapped detail errors
// still compare equal to the sentinels below.
func (e *GameError) Is(target error) bool {
	var t *GameError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinel errors, one per code.
var (
	ErrAgentCount      = newError(ErrCodeAgentCount)
	ErrDealerRange     = newError(ErrCodeDealerRange)
	ErrInvalidConfig   = newError(ErrCodeInvalidConfig)
	ErrInvalidMapping  = newError(ErrCodeInvalidMapping)
	ErrUnknownAction   = newError(ErrCodeUnknownAction)
	ErrInvalidCard     = newError(ErrCodeInvalidCard)
	ErrInvalidState    = newError(ErrCodeInvalidState)
	ErrIllegalAction   = newError(ErrCodeIllegalAction)
	ErrGameOver        = newError(ErrCodeGameOver)
	ErrCardNotInHand   = newError(ErrCodeCardNotInHand)
	ErrUnsetSentinel   = newError(ErrCodeUnsetSentinel)
	ErrDeckExhausted   = newError(ErrCodeDeckExhausted)
	ErrInputExhausted  = newError(ErrCodeInputExhausted)
	ErrPromptCancelled = newError(ErrCodePromptCancelled)
)

func newError(code int) *GameError {
	return &GameError{Code: code, Message: ErrorMessages[code]}
}

// Wrap returns a copy of base whose message carries extra detail.
func Wrap(base *GameError, format string, args ...any) *GameError {
	return &GameError{
		Code:    base.Code,
		Message: fmt.Sprintf("%s: %s", base.Message, fmt.Sprintf(format, args...)),
	}
}

// Code extracts the code of a GameError anywhere in err's chain, or 0.
func Code(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return 0
}

// IsConfig reports whether err is a configuration error; these are fatal and
// raised before any game starts.
func IsConfig(err error) bool {
	c := Code(err)
	return c >= 1000 && c < 2000
}

// IsEncoding reports whether err is a recoverable encoding or parse error.
func IsEncoding(err error) bool {
	c := Code(err)
	return c >= 2000 && c < 3000
}

// IsInvariant reports whether err signals a caller bug.
func IsInvariant(err error) bool {
	c := Code(err)
	return c >= 3000 && c < 4000
}
