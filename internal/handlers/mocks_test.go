package handlers

import (
	"context"

	"github.com/mitsuha/legacy-api/internal/logic"
	"github.com/mitsuha/legacy-api/internal/models"
)

// MockStore implements logic.Store with func fields.
type MockStore struct {
	UserByIDFunc      func(ctx context.Context, id int) (*models.Player, error)
	UserByNameFunc    func(ctx context.Context, name string) (*models.Player, error)
	StatsByUserFunc   func(ctx context.Context, userID int) ([]models.ModeStats, error)
	BeatmapByIDFunc   func(ctx context.Context, id int) (*models.Beatmap, error)
	BeatmapScoresFunc func(ctx context.Context, q logic.ScoreQuery) ([]models.ScoreRecord, error)
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

func (m *MockStore) BeatmapScores(ctx context.Context, q logic.ScoreQuery) ([]models.ScoreRecord, error) {
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

// MockIdentity implements logic.IdentityService.
type MockIdentity struct {
	ResolveFunc func(ctx context.Context, token, typeHint string) (*models.Player, error)
}

func (m *MockIdentity) Resolve(ctx context.Context, token, typeHint string) (*models.Player, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, token, typeHint)
	}
	return nil, logic.ErrNotFound
}

// MockRanks implements logic.RankService and records FillRanks calls.
type MockRanks struct {
	RankFunc      func(ctx context.Context, playerID, mode int, country string) (int, int, error)
	FillRanksFunc func(ctx context.Context, playerID int, country string, stats []models.ModeStats) error
	FillCalls     int
}

func (m *MockRanks) Rank(ctx context.Context, playerID, mode int, country string) (int, int, error) {
	if m.RankFunc != nil {
		return m.RankFunc(ctx, playerID, mode, country)
	}
	return 0, 0, nil
}

func (m *MockRanks) FillRanks(ctx context.Context, playerID int, country string, stats []models.ModeStats) error {
	m.FillCalls++
	if m.FillRanksFunc != nil {
		return m.FillRanksFunc(ctx, playerID, country, stats)
	}
	return nil
}

// MockScores implements logic.ScoreService.
type MockScores struct {
	ScoresForBeatmapFunc func(ctx context.Context, mapMD5 string, mods *int, mode int, userID *int) ([]models.ScoreRecord, error)
	TopPlaysFunc         func(ctx context.Context, userID, mode, limit int) ([]models.TopPlay, error)
}

func (m *MockScores) ScoresForBeatmap(ctx context.Context, mapMD5 string, mods *int, mode int, userID *int) ([]models.ScoreRecord, error) {
	if m.ScoresForBeatmapFunc != nil {
		return m.ScoresForBeatmapFunc(ctx, mapMD5, mods, mode, userID)
	}
	return nil, nil
}

func (m *MockScores) TopPlays(ctx context.Context, userID, mode, limit int) ([]models.TopPlay, error) {
	if m.TopPlaysFunc != nil {
		return m.TopPlaysFunc(ctx, userID, mode, limit)
	}
	return nil, nil
}

// MockUpstream implements logic.UpstreamAPI.
type MockUpstream struct {
	PlayerStatsFunc  func(ctx context.Context, id int) (*models.UpstreamPlayerInfo, error)
	PlayerScoresFunc func(ctx context.Context, id int, scope string, mode, limit int) (*models.UpstreamPlayerScores, error)
	ReplayBytesFunc  func(ctx context.Context, scoreID int64) ([]byte, error)
}

func (m *MockUpstream) PlayerStats(ctx context.Context, id int) (*models.UpstreamPlayerInfo, error) {
	if m.PlayerStatsFunc != nil {
		return m.PlayerStatsFunc(ctx, id)
	}
	return nil, logic.ErrUpstream
}

func (m *MockUpstream) PlayerScores(ctx context.Context, id int, scope string, mode, limit int) (*models.UpstreamPlayerScores, error) {
	if m.PlayerScoresFunc != nil {
		return m.PlayerScoresFunc(ctx, id, scope, mode, limit)
	}
	return nil, logic.ErrUpstream
}

func (m *MockUpstream) ReplayBytes(ctx context.Context, scoreID int64) ([]byte, error) {
	if m.ReplayBytesFunc != nil {
		return m.ReplayBytesFunc(ctx, scoreID)
	}
	return nil, logic.ErrUpstream
}
