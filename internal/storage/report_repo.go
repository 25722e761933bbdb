package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ReportRepo struct {
	db *sql.DB
}

func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

func (r *ReportRepo) Insert(ctx context.Context, rep Report) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO game_reports (game_id, raw_score, score, xp_awarded, reported_at)
		VALUES (?, ?, ?, ?, ?)
	`, rep.GameID, rep.RawScore, rep.Score, rep.XPAwarded, rep.ReportedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("report insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("report last insert id: %w", err)
	}
	return id, nil
}

// ListRecent returns up to limit reports, newest first.
func (r *ReportRepo) ListRecent(ctx context.Context, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, game_id, raw_score, score, xp_awarded, reported_at
		FROM game_reports
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("report list: %w", err)
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var rep Report
		if err := rows.Scan(&rep.ID, &rep.GameID, &rep.RawScore, &rep.Score, &rep.XPAwarded, &rep.ReportedAt); err != nil {
			return nil, fmt.Errorf("report scan: %w", err)
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report rows: %w", err)
	}
	return out, nil
}

// CountByGame returns journaled completions per game id.
func (r *ReportRepo) CountByGame(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT game_id, COUNT(*) FROM game_reports GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("report count: %w", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var game string
		var n int
		if err := rows.Scan(&game, &n); err != nil {
			return nil, fmt.Errorf("report count scan: %w", err)
		}
		out[game] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report count rows: %w", err)
	}
	return out, nil
}
