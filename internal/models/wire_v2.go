package models

// The v2 surface mirrors the modern path-parameter API. Numbers and
// booleans are native JSON here, unlike v1.
//
// Several profile fields have no backing data in this deployment. They are
// rendered from the sentinel constants below so the gap stays visible
// instead of looking like real values.
const (
	SentinelLevel         = 727
	SentinelLevelProgress = 69
	SentinelKudosuAvail   = 420
	SentinelKudosuTotal   = 727
	SentinelMaxBlocks     = 50
	SentinelMaxFriends    = 250
)

// DefaultProfileOrder is the stock profile section ordering.
var DefaultProfileOrder = []string{
	"me", "recent_activity", "top_ranks", "medals",
	"historical", "beatmaps", "kudosu",
}

type V2Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type V2Cover struct {
	CustomURL string `json:"custom_url"`
	URL       string `json:"url"`
	ID        string `json:"id"`
}

type V2Kudosu struct {
	Available int `json:"available"`
	Total     int `json:"total"`
}

type V2Level struct {
	Current  int `json:"current"`
	Progress int `json:"progress"`
}

type V2GradeCounts struct {
	SS  int `json:"ss"`
	SSH int `json:"ssh"`
	S   int `json:"s"`
	SH  int `json:"sh"`
	A   int `json:"a"`
}

type V2RankHighlight struct {
	Country int `json:"country"`
}

type V2Statistics struct {
	Level                  V2Level         `json:"level"`
	GlobalRank             int             `json:"global_rank"`
	PP                     float64         `json:"pp"`
	RankedScore            int64           `json:"ranked_score"`
	HitAccuracy            float64         `json:"hit_accuracy"`
	PlayCount              int             `json:"play_count"`
	PlayTime               int             `json:"play_time"`
	TotalScore             int64           `json:"total_score"`
	TotalHits              int             `json:"total_hits"`
	MaximumCombo           int             `json:"maximum_combo"`
	ReplaysWatchedByOthers int             `json:"replays_watched_by_others"`
	IsRanked               bool            `json:"is_ranked"`
	GradeCounts            V2GradeCounts   `json:"grade_counts"`
	CountryRank            int             `json:"country_rank"`
	Rank                   V2RankHighlight `json:"rank"`
}

// V2User is the users/{user}/{mode} response body.
type V2User struct {
	AvatarURL    string `json:"avatar_url"`
	CountryCode  string `json:"country_code"`
	DefaultGroup string `json:"default_group"`
	ID           int    `json:"id"`
	IsActive     bool   `json:"is_active"`
	IsBot        bool   `json:"is_bot"`
	IsDeleted    bool   `json:"is_deleted"`
	IsOnline     bool   `json:"is_online"`
	IsSupporter  bool   `json:"is_supporter"`
	LastVisit    string `json:"last_visit"`
	PMFriendsOnly bool  `json:"pm_friends_only"`
	ProfileColour string `json:"profile_colour"`
	Username     string `json:"username"`
	CoverURL     string `json:"cover_url"`
	Discord      string `json:"discord"`
	HasSupported bool   `json:"has_supported"`
	Interests    string `json:"interests"`
	JoinDate     string `json:"join_date"`
	Kudosu       V2Kudosu `json:"kudosu"`
	Location     string   `json:"location"`
	MaxBlocks    int      `json:"max_blocks"`
	MaxFriends   int      `json:"max_friends"`
	Occupation   string   `json:"occupation"`
	Playmode     string   `json:"playmode"`
	Playstyle    []string `json:"playstyle"`
	PostCount    int      `json:"post_count"`
	ProfileOrder []string `json:"profile_order"`
	Title        string   `json:"title"`
	TitleURL     string   `json:"title_url"`
	Twitter      string   `json:"twitter"`
	Website      string   `json:"website"`
	Country      V2Country `json:"country"`
	Cover        V2Cover   `json:"cover"`

	AccountHistory           []struct{} `json:"account_history"`
	Badges                   []struct{} `json:"badges"`
	BeatmapPlaycountsCount   int        `json:"beatmap_playcounts_count"`
	CommentsCount            int        `json:"comments_count"`
	FavouriteBeatmapsetCount int        `json:"favourite_beatmapset_count"`
	FollowerCount            int        `json:"follower_count"`
	GraveyardBeatmapsetCount int        `json:"graveyard_beatmapset_count"`
	Groups                   []struct{} `json:"groups"`
	GuestBeatmapsetCount     int        `json:"guest_beatmapset_count"`
	LovedBeatmapsetCount     int        `json:"loved_beatmapset_count"`
	MappingFollowerCount     int        `json:"mapping_follower_count"`
	PendingBeatmapsetCount   int        `json:"pending_beatmapset_count"`
	PreviousUsernames        []string   `json:"previous_usernames"`
	RankedBeatmapsetCount    int        `json:"ranked_beatmapset_count"`
	ScoresBestCount          int        `json:"scores_best_count"`
	ScoresFirstCount         int        `json:"scores_first_count"`
	ScoresRecentCount        int        `json:"scores_recent_count"`

	Statistics V2Statistics `json:"statistics"`

	SupportLevel                     int  `json:"support_level"`
	RankedAndApprovedBeatmapsetCount int  `json:"ranked_and_approved_beatmapset_count"`
	UnrankedBeatmapsetCount          int  `json:"unranked_beatmapset_count"`
	IsRestricted                     bool `json:"is_restricted"`
}

// V2Error is the v2 error body.
type V2Error struct {
	Error string `json:"error"`
}

// V2ErrUserNotFound is the canonical v2 not-found body value.
const V2ErrUserNotFound = "Specified user couldn't be found."
