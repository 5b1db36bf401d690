package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// SaveGame upserts the active-game snapshot for a slot. The payload is the
// session snapshot serialized by the caller; the store treats it as opaque.
func (s *Store) SaveGame(ctx context.Context, slot string, payload json.RawMessage) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO score_games (slot, payload, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		slot, payload)
	return err
}

func (s *Store) LoadGame(ctx context.Context, slot string) (json.RawMessage, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT payload FROM score_games WHERE slot = $1`, slot)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (s *Store) ClearGame(ctx context.Context, slot string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM score_games WHERE slot = $1`, slot)
	return err
}
