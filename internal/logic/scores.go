package logic

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mitsuha/legacy-api/internal/models"
)

type scoreService struct {
	store  Store
	logger *zap.SugaredLogger
}

func NewScoreService(store Store, logger *zap.Logger) ScoreService {
	return &scoreService{store: store, logger: logger.Sugar()}
}

// ScoresForBeatmap returns the visible best scores on a beatmap for one
// mode. Mods and player filters apply only when their pointer is non-nil;
// mods=0 is a real filter (nomod only), not an absence. Ordering is
// whatever the store returns.
func (s *scoreService) ScoresForBeatmap(ctx context.Context, mapMD5 string, mods *int, mode int, userID *int) ([]models.ScoreRecord, error) {
	scores, err := s.store.BeatmapScores(ctx, ScoreQuery{
		MapMD5: mapMD5,
		Mode:   mode,
		Mods:   mods,
		UserID: userID,
	})
	if err != nil {
		s.logger.Errorw("beatmap scores query failed", "md5", mapMD5, "error", err)
		return nil, nil
	}
	return scores, nil
}

// TopPlays returns a player's best plays for one mode, best-first (pp desc
// then raw score desc), restricted to visible beatmaps. limit is assumed
// already clamped by the caller.
func (s *scoreService) TopPlays(ctx context.Context, userID, mode, limit int) ([]models.TopPlay, error) {
	plays, err := s.store.TopPlays(ctx, userID, mode, limit)
	if err != nil {
		s.logger.Errorw("top plays query failed", "user", userID, "error", err)
		return nil, nil
	}
	return plays, nil
}

// MapBeatmapScore renders a stored score row in the legacy get_scores
// shape. The historical API echoes the beatmap id in score_id.
func MapBeatmapScore(beatmapID int, score models.ScoreRecord) models.V1BeatmapScore {
	return models.V1BeatmapScore{
		ScoreID:         wireInt(beatmapID),
		Score:           wireInt64(score.Score),
		Username:        score.PlayerName,
		Count300:        wireInt(score.N300),
		Count100:        wireInt(score.N100),
		Count50:         wireInt(score.N50),
		CountMiss:       wireInt(score.NMiss),
		MaxCombo:        wireInt(score.MaxCombo),
		CountKatu:       wireInt(score.NKatu),
		CountGeki:       wireInt(score.NGeki),
		Perfect:         wireInt(score.Perfect),
		EnabledMods:     wireInt(score.Mods),
		UserID:          wireInt(score.PlayerID),
		Date:            wireTime(score.PlayTime),
		Rank:            score.Grade,
		PP:              wireFloat(score.PP),
		ReplayAvailable: wireBool(score.ReplayAvailable()),
	}
}

// MapTopPlay renders a top play in the legacy get_user_best shape.
func MapTopPlay(play models.TopPlay) models.V1UserBest {
	return models.V1UserBest{
		BeatmapID:       wireInt(play.BeatmapID),
		ScoreID:         wireInt64(play.ID),
		Score:           wireInt64(play.Score),
		MaxCombo:        wireInt(play.MaxCombo),
		Count50:         wireInt(play.N50),
		Count100:        wireInt(play.N100),
		Count300:        wireInt(play.N300),
		CountMiss:       wireInt(play.NMiss),
		CountKatu:       wireInt(play.NKatu),
		CountGeki:       wireInt(play.NGeki),
		Perfect:         wireInt(play.Perfect),
		EnabledMods:     wireInt(play.Mods),
		UserID:          wireInt(play.PlayerID),
		Date:            wireTime(play.PlayTime),
		Rank:            play.Grade,
		PP:              wireFloat(play.PP),
		ReplayAvailable: wireBool(play.ReplayAvailable()),
	}
}

// MapRecentScore renders an upstream score row in the legacy
// get_user_recent shape. The upstream timestamp is RFC 3339-ish; anything
// unparseable renders zero time rather than failing the row.
func MapRecentScore(playerID int, score models.UpstreamScore) models.V1UserRecent {
	return models.V1UserRecent{
		BeatmapID:   wireInt(score.Beatmap.ID),
		Score:       wireInt64(score.Score),
		MaxCombo:    wireInt(score.MaxCombo),
		Count50:     wireInt(score.N50),
		Count100:    wireInt(score.N100),
		Count300:    wireInt(score.N300),
		CountMiss:   wireInt(score.NMiss),
		CountKatu:   wireInt(score.NKatu),
		CountGeki:   wireInt(score.NGeki),
		Perfect:     wireInt(score.Perfect),
		EnabledMods: wireInt(score.Mods),
		UserID:      wireInt(playerID),
		Date:        wireTime(parseUpstreamTime(score.PlayTime)),
		Rank:        score.Grade,
	}
}

func parseUpstreamTime(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", wireTimeLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
