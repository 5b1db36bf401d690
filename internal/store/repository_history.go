package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// HistoryRow is one archived game as stored: identifier, the end timestamp
// that drives sort order, and the opaque record payload.
type HistoryRow struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Payload   json.RawMessage
}

// UpsertHistory inserts an archived game, replacing any record with the
// same identifier; import merges rely on that.
func (s *Store) UpsertHistory(ctx context.Context, row HistoryRow) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO score_history (id, started_at, ended_at, payload) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET started_at = EXCLUDED.started_at,
		                                ended_at = EXCLUDED.ended_at,
		                                payload = EXCLUDED.payload`,
		row.ID, row.StartedAt, row.EndedAt, row.Payload)
	return err
}

// ListHistory returns archived games newest-ended first.
func (s *Store) ListHistory(ctx context.Context, limit, offset int) ([]HistoryRow, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, started_at, ended_at, payload FROM score_history
		 ORDER BY ended_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HistoryRow, 0, limit)
	for rows.Next() {
		var r HistoryRow
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.EndedAt, &r.Payload); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) CountHistory(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT count(*) FROM score_history`).Scan(&n)
	return n, err
}

// HistoryExists reports whether a record identifier is already archived.
func (s *Store) HistoryExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.DB.QueryRowContext(ctx, `SELECT 1 FROM score_history WHERE id = $1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (s *Store) DeleteHistory(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM score_history WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
