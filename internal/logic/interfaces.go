package logic

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/mitsuha/legacy-api/internal/models"
)

// Store is the narrow relational query contract the services consume.
// A miss is (nil, nil) / empty slice, never an error.
type Store interface {
	UserByID(ctx context.Context, id int) (*models.Player, error)
	UserByName(ctx context.Context, name string) (*models.Player, error)
	StatsByUser(ctx context.Context, userID int) ([]models.ModeStats, error)
	BeatmapByID(ctx context.Context, id int) (*models.Beatmap, error)
	BeatmapScores(ctx context.Context, q ScoreQuery) ([]models.ScoreRecord, error)
	TopPlays(ctx context.Context, userID, mode, limit int) ([]models.TopPlay, error)
	APIKeyExists(ctx context.Context, key string) (bool, error)
}

// ScoreQuery holds the beatmap-scores predicates. Nil pointer fields mean
// "no filter"; mods=0 is a meaningful filter (nomod only), so the sentinel
// lives in the pointer, not the value.
type ScoreQuery struct {
	MapMD5 string
	Mode   int
	Mods   *int
	UserID *int
}

// RedisClient is the ordered-index read contract.
type RedisClient interface {
	ZRevRank(ctx context.Context, key, member string) *redis.IntCmd
}

// UpstreamAPI is the rate-limited client contract for the remote stats
// service.
type UpstreamAPI interface {
	PlayerStats(ctx context.Context, id int) (*models.UpstreamPlayerInfo, error)
	PlayerScores(ctx context.Context, id int, scope string, mode, limit int) (*models.UpstreamPlayerScores, error)
	ReplayBytes(ctx context.Context, scoreID int64) ([]byte, error)
}

// IdentityService resolves an ambiguous user token into a player record.
type IdentityService interface {
	Resolve(ctx context.Context, token, typeHint string) (*models.Player, error)
}

// RankService computes leaderboard positions from the ordered index.
type RankService interface {
	Rank(ctx context.Context, playerID, mode int, country string) (global, country_ int, err error)
	FillRanks(ctx context.Context, playerID int, country string, stats []models.ModeStats) error
}

// ScoreService runs the filtered score queries.
type ScoreService interface {
	ScoresForBeatmap(ctx context.Context, mapMD5 string, mods *int, mode int, userID *int) ([]models.ScoreRecord, error)
	TopPlays(ctx context.Context, userID, mode, limit int) ([]models.TopPlay, error)
}
