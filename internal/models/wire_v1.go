package models

// The v1 surface reproduces the historical query-parameter API, which
// renders every numeric field as a decimal string. These structs exist only
// at the serialization boundary; nothing internal computes on them.

// V1User is the get_user response element.
type V1User struct {
	UserID       string   `json:"user_id"`
	Username     string   `json:"username"`
	JoinDate     string   `json:"join_date"`
	Count300     string   `json:"count300"`
	Count100     string   `json:"count100"`
	Count50      string   `json:"count50"`
	Playcount    string   `json:"playcount"`
	RankedScore  string   `json:"ranked_score"`
	TotalScore   string   `json:"total_score"`
	PPRank       string   `json:"pp_rank"`
	Level        string   `json:"level"`
	PPRaw        string   `json:"pp_raw"`
	Accuracy     string   `json:"accuracy"`
	CountRankSS  string   `json:"count_rank_ss"`
	CountRankSSH string   `json:"count_rank_ssh"`
	CountRankS   string   `json:"count_rank_s"`
	CountRankSH  string   `json:"count_rank_sh"`
	CountRankA   string   `json:"count_rank_a"`
	Country      string   `json:"country"`
	TotalSeconds string   `json:"total_seconds_played"`
	PPCountry    string   `json:"pp_country_rank"`
	Events       []string `json:"events"`
}

// V1BeatmapScore is a get_scores response element.
type V1BeatmapScore struct {
	ScoreID         string `json:"score_id"`
	Score           string `json:"score"`
	Username        string `json:"username"`
	Count300        string `json:"count300"`
	Count100        string `json:"count100"`
	Count50         string `json:"count50"`
	CountMiss       string `json:"countmiss"`
	MaxCombo        string `json:"maxcombo"`
	CountKatu       string `json:"countkatu"`
	CountGeki       string `json:"countgeki"`
	Perfect         string `json:"perfect"`
	EnabledMods     string `json:"enabled_mods"`
	UserID          string `json:"user_id"`
	Date            string `json:"date"`
	Rank            string `json:"rank"`
	PP              string `json:"pp"`
	ReplayAvailable string `json:"replay_available"`
}

// V1UserBest is a get_user_best response element.
type V1UserBest struct {
	BeatmapID       string `json:"beatmap_id"`
	ScoreID         string `json:"score_id"`
	Score           string `json:"score"`
	MaxCombo        string `json:"maxcombo"`
	Count50         string `json:"count50"`
	Count100        string `json:"count100"`
	Count300        string `json:"count300"`
	CountMiss       string `json:"countmiss"`
	CountKatu       string `json:"countkatu"`
	CountGeki       string `json:"countgeki"`
	Perfect         string `json:"perfect"`
	EnabledMods     string `json:"enabled_mods"`
	UserID          string `json:"user_id"`
	Date            string `json:"date"`
	Rank            string `json:"rank"`
	PP              string `json:"pp"`
	ReplayAvailable string `json:"replay_available"`
}

// V1UserRecent is a get_user_recent response element. The historical shape
// omits score_id, pp and replay_available here.
type V1UserRecent struct {
	BeatmapID   string `json:"beatmap_id"`
	Score       string `json:"score"`
	MaxCombo    string `json:"maxcombo"`
	Count50     string `json:"count50"`
	Count100    string `json:"count100"`
	Count300    string `json:"count300"`
	CountMiss   string `json:"countmiss"`
	CountKatu   string `json:"countkatu"`
	CountGeki   string `json:"countgeki"`
	Perfect     string `json:"perfect"`
	EnabledMods string `json:"enabled_mods"`
	UserID      string `json:"user_id"`
	Date        string `json:"date"`
	Rank        string `json:"rank"`
}

// V1Replay is the get_replay response body.
type V1Replay struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
