package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/mitsuha/legacy-api/internal/models"
)

func TestV2GetUserMiss(t *testing.T) {
	srv := newTestServer(t, testDeps{}, false)

	var out models.V2Error
	status := getJSON(t, srv.URL+"/api/v2/users/ghost", &out)
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if out.Error != models.V2ErrUserNotFound {
		t.Errorf("error body = %q", out.Error)
	}
}

func TestV2GetUser(t *testing.T) {
	ranks := &MockRanks{}
	deps := testDeps{
		identity: &MockIdentity{
			ResolveFunc: func(ctx context.Context, token, typeHint string) (*models.Player, error) {
				return demoPlayer(), nil
			},
		},
		ranks: ranks,
		upstream: &MockUpstream{
			PlayerStatsFunc: func(ctx context.Context, id int) (*models.UpstreamPlayerInfo, error) {
				info := &models.UpstreamPlayerInfo{}
				info.Player.Stats = map[string]models.UpstreamModeStats{
					"1": {Plays: 100, PP: 1234.5, Rank: 42, CountryRank: 7},
				}
				return info, nil
			},
		},
	}
	srv := newTestServer(t, deps, false)

	var out models.V2User
	status := getJSON(t, srv.URL+"/api/v2/users/1001/taiko", &out)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	if out.ID != 1001 || out.Username != "Demo Player" {
		t.Errorf("identity fields wrong: %+v", out)
	}
	if out.Playmode != "taiko" {
		t.Errorf("playmode = %q", out.Playmode)
	}
	if out.CountryCode != "JP" || out.Country.Name != "Japan" {
		t.Errorf("country fields = (%q, %q)", out.CountryCode, out.Country.Name)
	}
	if !strings.HasSuffix(out.AvatarURL, "/1001") {
		t.Errorf("avatar_url = %q", out.AvatarURL)
	}

	// Both rank fields pass through from the upstream block; the leaderboard
	// index is never consulted on this path.
	if out.Statistics.GlobalRank != 42 || out.Statistics.CountryRank != 7 {
		t.Errorf("rank fields = (%d, %d), want (42, 7)",
			out.Statistics.GlobalRank, out.Statistics.CountryRank)
	}
	if ranks.FillCalls != 0 {
		t.Errorf("rank service consulted %d times, want 0", ranks.FillCalls)
	}

	if out.Statistics.PP != 1234.5 || out.Statistics.PlayCount != 100 {
		t.Errorf("statistics wrong: %+v", out.Statistics)
	}
	if out.Kudosu.Available != models.SentinelKudosuAvail || out.MaxFriends != models.SentinelMaxFriends {
		t.Errorf("placeholder fields wrong: %+v", out)
	}
}

func TestV2GetUserDefaultMode(t *testing.T) {
	deps := testDeps{
		identity: &MockIdentity{
			ResolveFunc: func(ctx context.Context, token, typeHint string) (*models.Player, error) {
				return demoPlayer(), nil
			},
		},
		upstream: &MockUpstream{
			PlayerStatsFunc: func(ctx context.Context, id int) (*models.UpstreamPlayerInfo, error) {
				return &models.UpstreamPlayerInfo{}, nil
			},
		},
	}
	srv := newTestServer(t, deps, false)

	var out models.V2User
	if status := getJSON(t, srv.URL+"/api/v2/users/1001", &out); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if out.Playmode != "osu" {
		t.Errorf("playmode = %q, want osu", out.Playmode)
	}
	// No stats block for the mode: statistics render zeroed with sentinel level.
	if out.Statistics.PlayCount != 0 || out.Statistics.Level.Current != models.SentinelLevel {
		t.Errorf("statistics wrong: %+v", out.Statistics)
	}
}

func TestV2GetUserUpstreamFailure(t *testing.T) {
	deps := testDeps{
		identity: &MockIdentity{
			ResolveFunc: func(ctx context.Context, token, typeHint string) (*models.Player, error) {
				return demoPlayer(), nil
			},
		},
	}
	srv := newTestServer(t, deps, false)

	var out map[string]string
	status := getJSON(t, srv.URL+"/api/v2/users/1001", &out)
	if status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", status)
	}
	if out["error"] == "" {
		t.Errorf("expected error body, got %v", out)
	}
}
