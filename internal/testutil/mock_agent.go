//go:build !production

// Package testutil holds testify mocks for the env's collaborators.
package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/euchre/internal/game"
	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/game/player"
)

// MockAgent implements agent.Agent.
type MockAgent struct {
	mock.Mock
}

func (m *MockAgent) DecideAction(state *game.ScopedState) (action.Action, error) {
	args := m.Called(state)
	return args.Get(0).(action.Action), args.Error(1)
}

// MockRecorder implements env.Recorder.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordResult(ctx context.Context, id uuid.UUID, scores [player.Seats]int) (bool, error) {
	args := m.Called(ctx, id, scores)
	return args.Bool(0), args.Error(1)
}
