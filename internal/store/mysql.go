// Package store implements the narrow relational query contract over the
// game server's MySQL schema. Callers never see SQL; misses are nil/empty
// results and every query is bounded by the configured timeout.
package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/mitsuha/legacy-api/internal/logic"
	"github.com/mitsuha/legacy-api/internal/models"
)

const (
	userColumns  = "id, name, safe_name, country, creation_time, latest_activity, api_key"
	scoreColumns = "s.id, s.map_md5, s.userid, s.score, s.pp, s.acc, s.max_combo, s.mods, " +
		"s.n300, s.n100, s.n50, s.nmiss, s.ngeki, s.nkatu, s.grade, s.status, s.mode, " +
		"s.play_time, s.time_elapsed, s.perfect, s.online_checksum"
)

type MySQLStore struct {
	db           *sql.DB
	queryTimeout time.Duration
	logger       *zap.SugaredLogger
}

// New opens a pooled MySQL connection. The DSN must enable parseTime so
// DATETIME columns scan into time.Time.
func New(dsn string, queryTimeout time.Duration, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &MySQLStore{
		db:           db,
		queryTimeout: queryTimeout,
		logger:       logger.Sugar(),
	}, nil
}

func (s *MySQLStore) Close() error {
	return s.db.Close()
}

func (s *MySQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *MySQLStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

// UserByID returns the player with the given id, or nil on a miss.
func (s *MySQLStore) UserByID(ctx context.Context, id int) (*models.Player, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanPlayer(row)
}

// UserByName matches either the display name or the normalized safe name;
// both are first-class lookup keys.
func (s *MySQLStore) UserByName(ctx context.Context, name string) (*models.Player, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE name = ? OR safe_name = ?",
		name, SafeName(name))
	return scanPlayer(row)
}

// SafeName folds a display name into its normalized form: lower-cased with
// spaces collapsed to underscores, matching how the game server stores it.
func SafeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

func scanPlayer(row *sql.Row) (*models.Player, error) {
	var p models.Player
	err := row.Scan(&p.ID, &p.Name, &p.SafeName, &p.Country,
		&p.CreationTime, &p.LatestActivity, &p.APIKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// StatsByUser returns every per-mode stats row for a player.
func (s *MySQLStore) StatsByUser(ctx context.Context, userID int) ([]models.ModeStats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT mode, tscore, rscore, pp, plays, playtime, acc, max_combo,
		        xh_count, x_count, sh_count, s_count, a_count
		 FROM stats WHERE id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ModeStats
	for rows.Next() {
		var m models.ModeStats
		if err := rows.Scan(&m.Mode, &m.TotalScore, &m.RankedScore, &m.PP,
			&m.Plays, &m.Playtime, &m.Accuracy, &m.MaxCombo,
			&m.XHCount, &m.XCount, &m.SHCount, &m.SCount, &m.ACount); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// BeatmapByID returns the beatmap with the given id, or nil on a miss.
func (s *MySQLStore) BeatmapByID(ctx context.Context, id int) (*models.Beatmap, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var b models.Beatmap
	err := s.db.QueryRowContext(ctx,
		"SELECT md5, id, set_id FROM maps WHERE id = ?", id).
		Scan(&b.MD5, &b.ID, &b.SetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// BeatmapScores runs the filtered score query. The optional predicates are
// appended as named, parameterized conditions; values never enter the SQL
// text.
func (s *MySQLStore) BeatmapScores(ctx context.Context, q logic.ScoreQuery) ([]models.ScoreRecord, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args := buildBeatmapScoresQuery(q)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ScoreRecord
	for rows.Next() {
		var r models.ScoreRecord
		if err := rows.Scan(&r.PlayerName,
			&r.ID, &r.MapMD5, &r.PlayerID, &r.Score, &r.PP, &r.Accuracy,
			&r.MaxCombo, &r.Mods, &r.N300, &r.N100, &r.N50, &r.NMiss,
			&r.NGeki, &r.NKatu, &r.Grade, &r.Status, &r.Mode,
			&r.PlayTime, &r.TimeElapsed, &r.Perfect, &r.OnlineChecksum); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// buildBeatmapScoresQuery assembles the score query from its predicates.
func buildBeatmapScoresQuery(q logic.ScoreQuery) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT u.name, ")
	sb.WriteString(scoreColumns)
	sb.WriteString(" FROM scores s INNER JOIN users u ON s.userid = u.id")
	sb.WriteString(" WHERE s.map_md5 = ? AND s.status = ? AND s.mode = ?")
	args := []any{q.MapMD5, models.ScoreStatusBest, q.Mode}

	if q.UserID != nil {
		sb.WriteString(" AND s.userid = ?")
		args = append(args, *q.UserID)
	}
	if q.Mods != nil {
		sb.WriteString(" AND s.mods = ?")
		args = append(args, *q.Mods)
	}

	return sb.String(), args
}

// TopPlays returns a player's best plays, pp-then-score descending,
// restricted to visible beatmaps.
func (s *MySQLStore) TopPlays(ctx context.Context, userID, mode, limit int) ([]models.TopPlay, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+scoreColumns+", m.id AS beatmap_id"+
			" FROM scores s INNER JOIN maps m ON s.map_md5 = m.md5"+
			" WHERE s.userid = ? AND s.status = ? AND m.status IN (?, ?) AND s.mode = ?"+
			" ORDER BY s.pp DESC, s.score DESC LIMIT ?",
		userID, models.ScoreStatusBest,
		models.VisibleMapStatuses[0], models.VisibleMapStatuses[1],
		mode, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TopPlay
	for rows.Next() {
		var p models.TopPlay
		if err := rows.Scan(
			&p.ID, &p.MapMD5, &p.PlayerID, &p.Score, &p.PP, &p.Accuracy,
			&p.MaxCombo, &p.Mods, &p.N300, &p.N100, &p.N50, &p.NMiss,
			&p.NGeki, &p.NKatu, &p.Grade, &p.Status, &p.Mode,
			&p.PlayTime, &p.TimeElapsed, &p.Perfect, &p.OnlineChecksum,
			&p.BeatmapID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// APIKeyExists reports whether any player owns the given key. This is the
// entire authentication model of the legacy surface.
func (s *MySQLStore) APIKeyExists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE api_key = ?)", key).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
