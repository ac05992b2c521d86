// Package env runs complete games between four agents.
package env

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/palemoky/euchre/internal/agent"
	"github.com/palemoky/euchre/internal/apperrors"
	"github.com/palemoky/euchre/internal/game"
	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/game/player"
	"github.com/palemoky/euchre/internal/logger"
	"github.com/palemoky/euchre/internal/protocol"
)

// Recorder receives every finished game. *storage.RedisStore is one.
type Recorder interface {
	RecordResult(ctx context.Context, id uuid.UUID, scores [player.Seats]int) (bool, error)
}

// Config is a validated table. Build it with NewConfig.
type Config struct {
	Agents   []agent.Agent
	Dealer   *int
	Seed     *uint64
	Verbose  bool
	Recorder Recorder
}

// NewConfig checks the agent count and the dealer seat.
func NewConfig(agents []agent.Agent, dealer *int, seed *uint64, verbose bool) (Config, error) {
	if len(agents) != player.Seats {
		return Config{}, apperrors.Wrap(apperrors.ErrAgentCount, "got %d agents", len(agents))
	}
	if dealer != nil && (*dealer < 0 || *dealer >= player.Seats) {
		return Config{}, apperrors.Wrap(apperrors.ErrDealerRange, "dealer %d", *dealer)
	}
	return Config{Agents: agents, Dealer: dealer, Seed: seed, Verbose: verbose}, nil
}

// Turn is one decision: who acted, what they chose and the encoded view
// they chose it from.
type Turn struct {
	Seat   int
	Action action.Action
	View   []byte
}

type Result struct {
	ID         uuid.UUID
	Scores     [player.Seats]int
	Transcript []Turn
}

// Summary totals a batch of games.
type Summary struct {
	Games  int
	Points [player.Seats]int
	Wins   [2]int
}

// Env owns the games it runs. It is not safe for concurrent use.
type Env struct {
	cfg  Config
	rng  *rand.Rand
	seed *uint64
}

func New(cfg Config) *Env {
	e := &Env{cfg: cfg}
	if cfg.Seed != nil {
		seed := *cfg.Seed
		e.seed = &seed
		e.rng = game.NewRand(cfg.Seed)
	}
	return e
}

// Seed is the seed the next game will be dealt from, nil for entropy.
func (e *Env) Seed() *uint64 {
	if e.seed == nil {
		return nil
	}
	s := *e.seed
	return &s
}

// Reset moves to the next game's seed. Seeded envs draw it from their own
// generator so a batch replays exactly.
func (e *Env) Reset() {
	if e.rng == nil {
		return
	}
	next := e.rng.Uint64()
	e.seed = &next
}

// Run plays one game to the end. ctx is checked between turns.
func (e *Env) Run(ctx context.Context) (Result, error) {
	res := Result{ID: uuid.New()}
	entry := logger.WithGame(res.ID.String())

	g, err := game.New(game.Options{Dealer: e.cfg.Dealer, Seed: e.seed})
	if err != nil {
		return res, err
	}
	entry.WithField("dealer", g.Dealer()).Debug("game started")

	state := g.State()
	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		seat := state.CurrentActor
		a, err := e.cfg.Agents[seat].DecideAction(state)
		if err != nil {
			return res, fmt.Errorf("seat %d: %w", seat, err)
		}
		if !state.CanPlay(a) {
			return res, apperrors.Wrap(apperrors.ErrIllegalAction, "seat %d chose %s, legal %v", seat, a, state.LegalActions)
		}

		view, err := protocol.EncodeState(state)
		if err != nil {
			return res, err
		}
		res.Transcript = append(res.Transcript, Turn{Seat: seat, Action: a, View: view})
		e.logTurn(entry, state, a)

		if state, _, err = g.Step(a); err != nil {
			return res, err
		}
	}

	res.Scores, _ = g.Scores()
	entry.WithField("scores", res.Scores).Info("game over")

	if e.cfg.Recorder != nil {
		if _, err := e.cfg.Recorder.RecordResult(ctx, res.ID, res.Scores); err != nil {
			return res, fmt.Errorf("record result: %w", err)
		}
	}
	return res, nil
}

func (e *Env) logTurn(entry *logrus.Entry, state *game.ScopedState, a action.Action) {
	fields := entry.WithFields(logrus.Fields{
		"seat":   state.CurrentActor,
		"phase":  state.Phase.String(),
		"action": a.String(),
	})
	if e.cfg.Verbose {
		fields.Info("turn")
	} else {
		fields.Debug("turn")
	}
}

// Simulate plays n games back to back, resetting between them.
func (e *Env) Simulate(ctx context.Context, n int) (Summary, error) {
	var sum Summary
	for range n {
		res, err := e.Run(ctx)
		if err != nil {
			return sum, err
		}
		sum.Games++
		for seat, pts := range res.Scores {
			sum.Points[seat] += pts
		}
		for team := range sum.Wins {
			if res.Scores[team] > 0 {
				sum.Wins[team]++
			}
		}
		e.Reset()
	}
	return sum, nil
}
