package logic

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/mitsuha/legacy-api/internal/models"
)

// MockStore implements Store with overridable func fields.
type MockStore struct {
	UserByIDFunc      func(ctx context.Context, id int) (*models.Player, error)
	UserByNameFunc    func(ctx context.Context, name string) (*models.Player, error)
	StatsByUserFunc   func(ctx context.Context, userID int) ([]models.ModeStats, error)
	BeatmapByIDFunc   func(ctx context.Context, id int) (*models.Beatmap, error)
	BeatmapScoresFunc func(ctx context.Context, q ScoreQuery) ([]models.ScoreRecord, error)
	TopPlaysFunc      func(ctx context.Context, userID, mode, limit int) ([]models.TopPlay, error)
	APIKeyExistsFunc  func(ctx context.Context, key string) (bool, error)
}

func (m *MockStore) UserByID(ctx context.Context, id int) (*models.Player, error) {
	if m.UserByIDFunc != nil {
		return m.UserByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) UserByName(ctx context.Context, name string) (*models.Player, error) {
	if m.UserByNameFunc != nil {
		return m.UserByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockStore) StatsByUser(ctx context.Context, userID int) ([]models.ModeStats, error) {
	if m.StatsByUserFunc != nil {
		return m.StatsByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockStore) BeatmapByID(ctx context.Context, id int) (*models.Beatmap, error) {
	if m.BeatmapByIDFunc != nil {
		return m.BeatmapByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) BeatmapScores(ctx context.Context, q ScoreQuery) ([]models.ScoreRecord, error) {
	if m.BeatmapScoresFunc != nil {
		return m.BeatmapScoresFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockStore) TopPlays(ctx context.Context, userID, mode, limit int) ([]models.TopPlay, error) {
	if m.TopPlaysFunc != nil {
		return m.TopPlaysFunc(ctx, userID, mode, limit)
	}
	return nil, nil
}

func (m *MockStore) APIKeyExists(ctx context.Context, key string) (bool, error) {
	if m.APIKeyExistsFunc != nil {
		return m.APIKeyExistsFunc(ctx, key)
	}
	return false, nil
}

// MockRedis implements RedisClient over a fixed key/member -> position map.
// Members absent from the map rank as redis.Nil.
type MockRedis struct {
	Positions map[string]map[string]int64
	Err       error
	Calls     []string
}

func (m *MockRedis) ZRevRank(ctx context.Context, key, member string) *redis.IntCmd {
	m.Calls = append(m.Calls, key)
	cmd := redis.NewIntCmd(ctx)
	if m.Err != nil {
		cmd.SetErr(m.Err)
		return cmd
	}
	if members, ok := m.Positions[key]; ok {
		if pos, ok := members[member]; ok {
			cmd.SetVal(pos)
			return cmd
		}
	}
	cmd.SetErr(redis.Nil)
	return cmd
}
