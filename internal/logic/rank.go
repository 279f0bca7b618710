package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mitsuha/legacy-api/internal/models"
)

// Leaderboards are externally maintained descending sorted sets, one per
// mode plus one per mode+country. Only the ordering is persisted; rank is
// computed on read.
func leaderboardKey(mode int) string {
	return fmt.Sprintf("bancho:leaderboard:%d", mode)
}

func countryLeaderboardKey(mode int, country string) string {
	return fmt.Sprintf("bancho:leaderboard:%d:%s", mode, country)
}

type rankService struct {
	redis  RedisClient
	logger *zap.SugaredLogger
}

func NewRankService(rdb RedisClient, logger *zap.Logger) RankService {
	return &rankService{redis: rdb, logger: logger.Sugar()}
}

// Rank returns the 1-based global and country leaderboard positions of a
// player for one mode. A member absent from the index ranks 0; the wire
// shape has no null rank.
//
// This is the only place store-backed rank is computed. The upstream stats
// path carries its own rank fields and is deliberately never routed through
// here; the two sources are not reconciled.
func (s *rankService) Rank(ctx context.Context, playerID, mode int, country string) (int, int, error) {
	member := fmt.Sprintf("%d", playerID)

	global, err := s.revRank(ctx, leaderboardKey(mode), member)
	if err != nil {
		return 0, 0, err
	}

	countryRank, err := s.revRank(ctx, countryLeaderboardKey(mode, country), member)
	if err != nil {
		return 0, 0, err
	}

	return global, countryRank, nil
}

// FillRanks resolves ranks for every stats row in place, fanning out one
// goroutine per mode.
func (s *rankService) FillRanks(ctx context.Context, playerID int, country string, stats []models.ModeStats) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := range stats {
		row := &stats[i]
		g.Go(func() error {
			global, countryRank, err := s.Rank(ctx, playerID, row.Mode, country)
			if err != nil {
				// Treated as "not ranked" rather than failing the request.
				s.logger.Errorw("rank lookup failed",
					"player", playerID, "mode", row.Mode, "error", err)
				return nil
			}
			row.Rank = global
			row.CountryRank = countryRank
			return nil
		})
	}
	return g.Wait()
}

// revRank maps the 0-based sorted-set position onto the 1-based wire rank.
func (s *rankService) revRank(ctx context.Context, key, member string) (int, error) {
	pos, err := s.redis.ZRevRank(ctx, key, member).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return int(pos) + 1, nil
}
