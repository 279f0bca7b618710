package models

// Player is a row from the users table. Read-only to this service; the
// backing game server owns all writes.
type Player struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	SafeName       string `json:"safe_name"`
	Country        string `json:"country"`
	CreationTime   int64  `json:"creation_time"`
	LatestActivity int64  `json:"latest_activity"`
	APIKey         string `json:"-"`
	// Online presence is tracked by the realtime server, not the database.
	// Stays false until that integration exists.
	Online bool `json:"online"`
}

// ModeStats is a single gamemode's aggregate row from the stats table.
// Rank and CountryRank are zero until the rank resolver fills them in;
// they are not persisted columns.
type ModeStats struct {
	Mode        int     `json:"mode"`
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
