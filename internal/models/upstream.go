package models

// Payload shapes for the upstream bancho.py-style statistics API. The
// upstream keys per-mode stats by stringified mode index, including the
// extended variants (4-8) that the legacy surface never addresses.

// UpstreamModeStats is one gamemode block in a player-info payload. Unlike
// the relational stats rows, the upstream supplies its own rank fields.
type UpstreamModeStats struct {
	TotalScore  int64   `json:"tscore"`
	RankedScore int64   `json:"rscore"`
	PP          float64 `json:"pp"`
	Plays       int     `json:"plays"`
	Playtime    int     `json:"playtime"`
	Accuracy    float64 `json:"acc"`
	MaxCombo    int     `json:"max_combo"`
	XHCount     int     `json:"xh_count"`
	XCount      int     `json:"x_count"`
	SHCount     int     `json:"sh_count"`
	SCount      int     `json:"s_count"`
	ACount      int     `json:"a_count"`
	Rank        int     `json:"rank"`
	CountryRank int     `json:"country_rank"`
}

// UpstreamPlayerInfo is the /get_player_info response.
type UpstreamPlayerInfo struct {
	Status string `json:"status"`
	Player struct {
		Stats map[string]UpstreamModeStats `json:"stats"`
	} `json:"player"`
}

// UpstreamBeatmap is the beatmap object embedded in upstream score rows.
type UpstreamBeatmap struct {
	MD5      string  `json:"md5"`
	ID       int     `json:"id"`
	SetID    int     `json:"set_id"`
	Artist   string  `json:"artist"`
	Title    string  `json:"title"`
	Version  string  `json:"version"`
	Creator  string  `json:"creator"`
	Status   int     `json:"status"`
	Mode     int     `json:"mode"`
	MaxCombo int     `json:"max_combo"`
	BPM      float64 `json:"bpm"`
	Diff     float64 `json:"diff"`
}

// UpstreamScore is one row of a /get_player_scores response.
type UpstreamScore struct {
	ID          int64           `json:"id"`
	Score       int64           `json:"score"`
	PP          float64         `json:"pp"`
	Accuracy    float64         `json:"acc"`
	MaxCombo    int             `json:"max_combo"`
	Mods        int             `json:"mods"`
	N300        int             `json:"n300"`
	N100        int             `json:"n100"`
	N50         int             `json:"n50"`
	NMiss       int             `json:"nmiss"`
	NGeki       int             `json:"ngeki"`
	NKatu       int             `json:"nkatu"`
	Grade       string          `json:"grade"`
	Status      int             `json:"status"`
	Mode        int             `json:"mode"`
	PlayTime    string          `json:"play_time"`
	TimeElapsed int             `json:"time_elapsed"`
	Perfect     int             `json:"perfect"`
	Beatmap     UpstreamBeatmap `json:"beatmap"`
}

// UpstreamPlayerScores is the /get_player_scores response.
type UpstreamPlayerScores struct {
	Status string          `json:"status"`
	Scores []UpstreamScore `json:"scores"`
	Player struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
}
