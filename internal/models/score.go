package models

import "time"

// Score status values as stored by the game server.
const (
	ScoreStatusBest = 2
)

// Visible beatmap statuses for top-play queries (ranked, approved).
var VisibleMapStatuses = []int{2, 3}

// Beatmap is the subset of the maps table this service reads.
type Beatmap struct {
	MD5   string `json:"md5"`
	ID    int    `json:"id"`
	SetID int    `json:"set_id"`
}

// ScoreRecord is a row from the scores table. PlayerName is only populated
// by the beatmap-scores query, which joins users.
type ScoreRecord struct {
	ID             int64     `json:"id"`
	MapMD5         string    `json:"map_md5"`
	PlayerID       int       `json:"userid"`
	PlayerName     string    `json:"name,omitempty"`
	Score          int64     `json:"score"`
	PP             float64   `json:"pp"`
	Accuracy       float64   `json:"acc"`
	MaxCombo       int       `json:"max_combo"`
	Mods           int       `json:"mods"`
	N300           int       `json:"n300"`
	N100           int       `json:"n100"`
	N50            int       `json:"n50"`
	NMiss          int       `json:"nmiss"`
	NGeki          int       `json:"ngeki"`
	NKatu          int       `json:"nkatu"`
	Grade          string    `json:"grade"`
	Status         int       `json:"status"`
	Mode           int       `json:"mode"`
	PlayTime       time.Time `json:"play_time"`
	TimeElapsed    int       `json:"time_elapsed"`
	Perfect        int       `json:"perfect"`
	OnlineChecksum string    `json:"online_checksum"`
}

// ReplayAvailable reports whether a replay exists for this score. The game
// server only writes a checksum when it stored the replay file.
func (s *ScoreRecord) ReplayAvailable() bool {
	return s.OnlineChecksum != ""
}

// TopPlay is a score joined with the id of the beatmap it was set on,
// ordered best-first (pp desc, then raw score desc).
type TopPlay struct {
	ScoreRecord
	BeatmapID int `json:"beatmap_id"`
}
