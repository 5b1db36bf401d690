package history

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"klaver-telraam/internal/game"
	"klaver-telraam/internal/store"

	"github.com/rs/zerolog/log"
)

const exportPageSize = 500

// Service is the archive collaborator: it owns storage, merge-by-identifier
// import, export, and the aggregate statistics. It has no opinion about the
// active game.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) List(ctx context.Context, limit, offset int) (*ListResponse, error) {
	total, err := s.store.CountHistory(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListHistory(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &ListResponse{
		Items:  decodeRows(rows),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidRequest
	}
	err := s.store.DeleteHistory(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Export returns the whole archive, newest-ended first.
func (s *Service) Export(ctx context.Context) ([]game.HistoryRecord, error) {
	out := []game.HistoryRecord{}
	for offset := 0; ; offset += exportPageSize {
		rows, err := s.store.ListHistory(ctx, exportPageSize, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, decodeRows(rows)...)
		if len(rows) < exportPageSize {
			return out, nil
		}
	}
}

// Import merges records into the archive by identifier: existing ids are
// overwritten, new ids added. Records without an id or end timestamp are
// skipped rather than failing the whole file.
func (s *Service) Import(ctx context.Context, recs []game.HistoryRecord) (*ImportResponse, error) {
	out := &ImportResponse{}
	for _, rec := range recs {
		if strings.TrimSpace(rec.ID) == "" || rec.EndedAt.IsZero() {
			out.Skipped++
			continue
		}
		exists, err := s.store.HistoryExists(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		err = s.store.UpsertHistory(ctx, store.HistoryRow{
			ID:        rec.ID,
			StartedAt: rec.StartedAt,
			EndedAt:   rec.EndedAt,
			Payload:   payload,
		})
		if err != nil {
			return nil, err
		}
		if exists {
			out.Updated++
		} else {
			out.Added++
		}
	}
	return out, nil
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	recs, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return computeStats(recs), nil
}

func decodeRows(rows []store.HistoryRow) []game.HistoryRecord {
	out := make([]game.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		var rec game.HistoryRecord
		if err := json.Unmarshal(row.Payload, &rec); err != nil {
			log.Warn().Err(err).Str("record_id", row.ID).Msg("undecodable history payload skipped")
			continue
		}
		out = append(out, rec)
	}
	return out
}
