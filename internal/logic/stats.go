package logic

import (
	"strconv"
	"strings"

	"github.com/mitsuha/legacy-api/internal/models"
)

// Sentinel values for v1 user fields with no backing data. Level and event
// history are unimplemented on this backend; hit counts are not part of the
// per-mode aggregate rows at all, so they always render zero.
const (
	v1SentinelLevel = "727"
	v1ZeroCount     = "0"
)

// ModeStatsFor selects the stats row for one gamemode, returning a zeroed
// row when the player has never touched that mode.
func ModeStatsFor(stats []models.ModeStats, mode int) models.ModeStats {
	for _, row := range stats {
		if row.Mode == mode {
			return row
		}
	}
	return models.ModeStats{Mode: mode}
}

// ProjectV1User maps a player and their per-mode stats collection onto the
// v1 user wire block. Rank fields must already be populated by the rank
// resolver; this is a pure field mapping.
func ProjectV1User(player *models.Player, stats []models.ModeStats, mode int) models.V1User {
	row := ModeStatsFor(stats, mode)

	return models.V1User{
		UserID:       wireInt(player.ID),
		Username:     player.Name,
		JoinDate:     wireUnix(player.CreationTime),
		Count300:     v1ZeroCount,
		Count100:     v1ZeroCount,
		Count50:      v1ZeroCount,
		Playcount:    wireInt(row.Plays),
		RankedScore:  wireInt64(row.RankedScore),
		TotalScore:   wireInt64(row.TotalScore),
		PPRank:       wireInt(row.Rank),
		Level:        v1SentinelLevel,
		PPRaw:        wireFloat(row.PP),
		Accuracy:     wireFloat(row.Accuracy),
		CountRankSS:  wireInt(row.XCount),
		CountRankSSH: wireInt(row.XHCount),
		CountRankS:   wireInt(row.SCount),
		CountRankSH:  wireInt(row.SHCount),
		CountRankA:   wireInt(row.ACount),
		Country:      upperCountry(player.Country),
		TotalSeconds: wireInt(row.Playtime),
		PPCountry:    wireInt(row.CountryRank),
		Events:       []string{},
	}
}

// UpstreamModeStatsFor selects one mode block from an upstream player-info
// payload, which keys blocks by stringified mode index.
func UpstreamModeStatsFor(info *models.UpstreamPlayerInfo, mode int) models.UpstreamModeStats {
	if info == nil {
		return models.UpstreamModeStats{}
	}
	return info.Player.Stats[strconv.Itoa(mode)]
}

// ProjectV2Statistics maps an upstream mode block onto the v2 statistics
// object. Rank fields come verbatim from the upstream payload; they are a
// separate, non-reconciled source from the redis rank resolver.
func ProjectV2Statistics(row models.UpstreamModeStats) models.V2Statistics {
	return models.V2Statistics{
		Level: models.V2Level{
			Current:  models.SentinelLevel,
			Progress: models.SentinelLevelProgress,
		},
		GlobalRank:   row.Rank,
		PP:           row.PP,
		RankedScore:  row.RankedScore,
		HitAccuracy:  row.Accuracy,
		PlayCount:    row.Plays,
		PlayTime:     row.Playtime,
		TotalScore:   row.TotalScore,
		MaximumCombo: row.MaxCombo,
		IsRanked:     true,
		GradeCounts: models.V2GradeCounts{
			SS:  row.XCount,
			SSH: row.XHCount,
			S:   row.SCount,
			SH:  row.SHCount,
			A:   row.ACount,
		},
		CountryRank: row.CountryRank,
		Rank:        models.V2RankHighlight{Country: row.CountryRank},
	}
}

func upperCountry(code string) string {
	return strings.ToUpper(code)
}
