package handlers

import (
	"net/http"
	"strconv"

	"github.com/mitsuha/legacy-api/internal/logic"
	"github.com/mitsuha/legacy-api/internal/models"
)

// The v1 surface reproduces the historical query-parameter API. Misses and
// invalid input render an empty array; only upstream failures surface as
// error bodies. Mode and limit parameters normalize rather than reject.

type v1UserParams struct {
	User string `validate:"required"`
}

// modsSentinel disables the exact-mods filter.
const modsSentinel = -1

// parseModsFilter applies the historical mods normalization: non-numeric
// collapses to 0 (which IS a filter, nomod only); the -1 sentinel disables
// filtering.
func parseModsFilter(raw string) *int {
	mods := 0
	if logic.IsNumeric(raw) {
		if n, err := strconv.Atoi(raw); err == nil {
			mods = n
		}
	}
	if mods == modsSentinel {
		return nil
	}
	return &mods
}

// V1GetUser returns a player's per-mode stats block in the legacy shape.
// Ranks come from the leaderboard index, not the upstream API.
// @Summary Get user (v1)
// @Produce json
// @Router /api/v1/get_user [get]
func (h *Handler) V1GetUser(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	params := v1UserParams{User: q.Get("u")}
	if err := h.validate.Struct(params); err != nil {
		h.emptyList(w)
		return
	}
	mode := logic.NormalizeMode(q.Get("m"))

	player, err := h.identity.Resolve(ctx, params.User, q.Get("type"))
	if err != nil {
		h.emptyList(w)
		return
	}

	stats, err := h.store.StatsByUser(ctx, player.ID)
	if err != nil {
		h.logger.Errorw("stats query failed", "user", player.ID, "error", err)
		h.emptyList(w)
		return
	}

	if err := h.ranks.FillRanks(ctx, player.ID, player.Country, stats); err != nil {
		h.logger.Errorw("rank fill failed", "user", player.ID, "error", err)
	}

	h.jsonResponse(w, http.StatusOK, []models.V1User{
		logic.ProjectV1User(player, stats, mode),
	})
}

// V1GetScores returns the visible scores on a beatmap, optionally filtered
// to one player and one mods combination.
// @Summary Get beatmap scores (v1)
// @Produce json
// @Router /api/v1/get_scores [get]
func (h *Handler) V1GetScores(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	beatmapIDRaw := q.Get("b")
	beatmapID, err := strconv.Atoi(beatmapIDRaw)
	if err != nil {
		h.emptyList(w)
		return
	}
	mode := logic.NormalizeMode(q.Get("m"))
	mods := parseModsFilter(q.Get("mods"))

	beatmap, err := h.store.BeatmapByID(ctx, beatmapID)
	if err != nil {
		h.logger.Errorw("beatmap lookup failed", "beatmap", beatmapID, "error", err)
		h.emptyList(w)
		return
	}
	if beatmap == nil {
		h.emptyList(w)
		return
	}

	var userID *int
	if token := q.Get("u"); token != "" {
		player, err := h.identity.Resolve(ctx, token, q.Get("type"))
		if err != nil {
			h.emptyList(w)
			return
		}
		userID = &player.ID
	}

	scores, err := h.scores.ScoresForBeatmap(ctx, beatmap.MD5, mods, mode, userID)
	if err != nil {
		h.emptyList(w)
		return
	}

	out := make([]models.V1BeatmapScore, 0, len(scores))
	for _, score := range scores {
		out = append(out, logic.MapBeatmapScore(beatmap.ID, score))
	}
	h.jsonResponse(w, http.StatusOK, out)
}

// V1GetUserBest returns a player's top plays, best-first.
// @Summary Get user best plays (v1)
// @Produce json
// @Router /api/v1/get_user_best [get]
func (h *Handler) V1GetUserBest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	params := v1UserParams{User: q.Get("u")}
	if err := h.validate.Struct(params); err != nil {
		h.emptyList(w)
		return
	}
	mode := logic.NormalizeMode(q.Get("m"))
	limit := logic.ClampLimit(q.Get("limit"))

	player, err := h.identity.Resolve(ctx, params.User, q.Get("type"))
	if err != nil {
		h.emptyList(w)
		return
	}

	plays, err := h.scores.TopPlays(ctx, player.ID, mode, limit)
	if err != nil {
		h.emptyList(w)
		return
	}

	out := make([]models.V1UserBest, 0, len(plays))
	for _, play := range plays {
		out = append(out, logic.MapTopPlay(play))
	}
	h.jsonResponse(w, http.StatusOK, out)
}

// V1GetUserRecent returns a player's recent scores. This path reads the
// upstream stats API rather than the relational store.
// @Summary Get user recent scores (v1)
// @Produce json
// @Router /api/v1/get_user_recent [get]
func (h *Handler) V1GetUserRecent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	params := v1UserParams{User: q.Get("u")}
	if err := h.validate.Struct(params); err != nil {
		h.emptyList(w)
		return
	}
	mode := logic.NormalizeMode(q.Get("m"))
	limit := logic.ClampLimit(q.Get("limit"))

	player, err := h.identity.Resolve(ctx, params.User, q.Get("type"))
	if err != nil {
		h.emptyList(w)
		return
	}

	recent, err := h.upstream.PlayerScores(ctx, player.ID, "recent", mode, limit)
	if err != nil {
		h.logger.Errorw("upstream recent scores failed", "user", player.ID, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Stats backend is unavailable.")
		return
	}

	out := make([]models.V1UserRecent, 0, len(recent.Scores))
	for _, score := range recent.Scores {
		out = append(out, logic.MapRecentScore(recent.Player.ID, score))
	}
	h.jsonResponse(w, http.StatusOK, out)
}

// V1GetReplay locates a player's best score on a beatmap, fetches the raw
// replay container from the upstream and returns the transcoded event
// stream as base64.
// @Summary Get replay (v1)
// @Produce json
// @Router /api/v1/get_replay [get]
func (h *Handler) V1GetReplay(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	beatmapIDRaw := q.Get("b")
	beatmapID, err := strconv.Atoi(beatmapIDRaw)
	if err != nil {
		h.emptyList(w)
		return
	}
	if q.Get("s") != "" {
		// Direct score-id retrieval was never implemented on the
		// historical surface; preserved as an explicit empty response.
		h.emptyList(w)
		return
	}
	mode := logic.NormalizeMode(q.Get("m"))
	mods := parseModsFilter(q.Get("mods"))

	player, err := h.identity.Resolve(ctx, q.Get("u"), q.Get("type"))
	if err != nil {
		h.emptyList(w)
		return
	}

	beatmap, err := h.store.BeatmapByID(ctx, beatmapID)
	if err != nil || beatmap == nil {
		h.emptyList(w)
		return
	}

	scores, err := h.scores.ScoresForBeatmap(ctx, beatmap.MD5, mods, mode, &player.ID)
	if err != nil || len(scores) == 0 {
		h.emptyList(w)
		return
	}

	raw, err := h.upstream.ReplayBytes(ctx, scores[0].ID)
	if err != nil {
		h.logger.Errorw("replay fetch failed", "score", scores[0].ID, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Replay backend is unavailable.")
		return
	}

	content, err := logic.TranscodeReplay(raw)
	if err != nil {
		h.logger.Errorw("replay transcode failed", "score", scores[0].ID, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Replay could not be decoded.")
		return
	}

	h.jsonResponse(w, http.StatusOK, models.V1Replay{
		Content:  content,
		Encoding: "base64",
	})
}
