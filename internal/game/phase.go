package game

// Phase tags where the round is; it alone decides which actions are legal.
type Phase int

const (
	PhaseBiddingFlip Phase = iota // first bidding pass: pick up or pass the flip
	PhaseDiscarding               // dealer with six cards must discard
	PhaseBiddingCall              // flip turned down: call a suit or pass
	PhaseLeading                  // trump set, no card led yet
	PhaseFollowing                // a card has been led this trick
	PhaseOver                     // round scored
)

var phaseNames = map[Phase]string{
	PhaseBiddingFlip: "bidding (flip)",
	PhaseDiscarding:  "discarding",
	PhaseBiddingCall: "bidding (call)",
	PhaseLeading:     "leading",
	PhaseFollowing:   "following",
	PhaseOver:        "over",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// FlippedChoice records what happened to the flipped kitty card.
type FlippedChoice int

const (
	FlipUndecided FlippedChoice = iota
	PickedUp
	TurnedDown
)

var flippedChoiceNames = map[FlippedChoice]string{
	FlipUndecided: "undecided",
	PickedUp:      "picked up",
	TurnedDown:    "turned down",
}

func (f FlippedChoice) String() string {
	return flippedChoiceNames[f]
}
