package handlers

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/mitsuha/legacy-api/internal/logic"
	"github.com/mitsuha/legacy-api/internal/models"
)

// V2GetUser returns a player profile in the modern path-parameter shape.
// Statistics, including both rank fields, come verbatim from the upstream
// stats API — a separate source from the v1 leaderboard-index ranks, and
// deliberately not reconciled with it.
// @Summary Get user (v2)
// @Produce json
// @Router /api/v2/users/{user}/{mode} [get]
func (h *Handler) V2GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := chi.URLParam(r, "user")
	modeName, modeIdx := logic.NormalizeModeName(chi.URLParam(r, "mode"))
	key := r.URL.Query().Get("key")

	player, err := logic.ResolveV2(ctx, h.identity, token, key)
	if err != nil {
		h.jsonResponse(w, http.StatusNotFound, models.V2Error{Error: models.V2ErrUserNotFound})
		return
	}

	info, err := h.upstream.PlayerStats(ctx, player.ID)
	if err != nil {
		h.logger.Errorw("upstream player stats failed", "user", player.ID, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Stats backend is unavailable.")
		return
	}

	countryCode := upperCountry(player.Country)
	coverURL := stockCoverURL()

	out := models.V2User{
		AvatarURL:    fmt.Sprintf("%s/%d", h.avatarBaseURL, player.ID),
		CountryCode:  countryCode,
		DefaultGroup: "default",
		ID:           player.ID,
		IsActive:     true,
		IsOnline:     player.Online,
		LastVisit:    time.Unix(player.LatestActivity, 0).UTC().Format(time.RFC3339),
		Username:     player.Name,
		CoverURL:     coverURL,
		HasSupported: true,
		JoinDate:     time.Unix(player.CreationTime, 0).UTC().Format(time.RFC3339),
		Kudosu: models.V2Kudosu{
			Available: models.SentinelKudosuAvail,
			Total:     models.SentinelKudosuTotal,
		},
		MaxBlocks:    models.SentinelMaxBlocks,
		MaxFriends:   models.SentinelMaxFriends,
		Playmode:     modeName,
		Playstyle:    []string{},
		ProfileOrder: models.DefaultProfileOrder,
		Country: models.V2Country{
			Code: countryCode,
			Name: countryName(player.Country),
		},
		Cover: models.V2Cover{
			CustomURL: coverURL,
			URL:       coverURL,
		},
		AccountHistory:    []struct{}{},
		Badges:            []struct{}{},
		Groups:            []struct{}{},
		PreviousUsernames: []string{},
		Statistics:        logic.ProjectV2Statistics(logic.UpstreamModeStatsFor(info, modeIdx)),
	}

	h.jsonResponse(w, http.StatusOK, out)
}

// stockCoverURL picks one of the stock profile cover images. Custom covers
// are not stored on this backend.
func stockCoverURL() string {
	return fmt.Sprintf("https://osu.ppy.sh/images/headers/profile-covers/c%d.jpg", rand.IntN(8)+1)
}

// countryName renders the English name for an ISO 3166-1 alpha-2 code,
// falling back to the code itself when it is unknown.
func countryName(code string) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return upperCountry(code)
	}
	if name := display.English.Regions().Name(region); name != "" {
		return name
	}
	return upperCountry(code)
}

func upperCountry(code string) string {
	return strings.ToUpper(code)
}
