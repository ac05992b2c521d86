// Package storage keeps running totals of finished games in Redis.
package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/euchre/internal/game/player"
)

const (
	gamesKey  = "euchre:games"
	pointsKey = "euchre:points"
	winsKey   = "euchre:wins"

	teams = 2
)

// Totals is the aggregate over every recorded game.
type Totals struct {
	Games  int64
	Points [player.Seats]int64
	Wins   [teams]int64
}

// RedisStore records game results. Only aggregates are stored; the
// individual game ids are kept to make recording idempotent.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping checks the connection.
func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

// RecordResult adds one game's scores to the totals. It reports false
// without touching the totals when id was already recorded.
func (rs *RedisStore) RecordResult(ctx context.Context, id uuid.UUID, scores [player.Seats]int) (bool, error) {
	added, err := rs.client.SAdd(ctx, gamesKey, id.String()).Result()
	if err != nil {
		return false, fmt.Errorf("record game %s: %w", id, err)
	}
	if added == 0 {
		return false, nil
	}

	pipe := rs.client.TxPipeline()
	for seat, pts := range scores {
		if pts != 0 {
			pipe.HIncrBy(ctx, pointsKey, seatField(seat), int64(pts))
		}
	}
	for team := range teams {
		// Partners always share a score, so the first seat decides.
		if scores[team] > 0 {
			pipe.HIncrBy(ctx, winsKey, teamField(team), 1)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		// Let a retry count the game again.
		rs.client.SRem(context.WithoutCancel(ctx), gamesKey, id.String())
		return false, fmt.Errorf("update totals: %w", err)
	}
	return true, nil
}

// LoadTotals reads the current aggregate.
func (rs *RedisStore) LoadTotals(ctx context.Context) (Totals, error) {
	var t Totals

	pipe := rs.client.Pipeline()
	games := pipe.SCard(ctx, gamesKey)
	points := pipe.HGetAll(ctx, pointsKey)
	wins := pipe.HGetAll(ctx, winsKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return t, fmt.Errorf("load totals: %w", err)
	}

	t.Games = games.Val()
	for seat := range player.Seats {
		n, err := parseCount(points.Val(), seatField(seat))
		if err != nil {
			return t, err
		}
		t.Points[seat] = n
	}
	for team := range teams {
		n, err := parseCount(wins.Val(), teamField(team))
		if err != nil {
			return t, err
		}
		t.Wins[team] = n
	}
	return t, nil
}

// Reset removes every recorded game and total.
func (rs *RedisStore) Reset(ctx context.Context) error {
	return rs.client.Del(ctx, gamesKey, pointsKey, winsKey).Err()
}

func seatField(seat int) string { return "seat:" + strconv.Itoa(seat) }

func teamField(team int) string { return "team:" + strconv.Itoa(team) }

func parseCount(fields map[string]string, name string) (int64, error) {
	v, ok := fields[name]
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad counter %s=%q: %w", name, v, err)
	}
	return n, nil
}
