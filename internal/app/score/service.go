package score

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"klaver-telraam/internal/game"
	"klaver-telraam/internal/store"

	"github.com/rs/zerolog/log"
)

// Service owns the single active game session. Edits from concurrent
// requests serialize through the mutex so every mutation runs the full
// normalize/derive/validate/aggregate pipeline to completion before the
// next one is let in. Persistence happens after the ledger has settled and
// never fails an edit; a broken store only costs the snapshot.
type Service struct {
	mu      sync.Mutex
	store   *store.Store
	slot    string
	session *game.Session
}

func NewService(st *store.Store, slot string) *Service {
	return &Service{store: st, slot: slot, session: game.NewSession()}
}

// Load restores the persisted session snapshot, if any. Called once at
// boot, before the service starts taking edits.
func (s *Service) Load(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	payload, err := s.store.LoadGame(ctx, s.slot)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	var sn game.Snapshot
	if err := json.Unmarshal(payload, &sn); err != nil {
		return err
	}
	s.mu.Lock()
	s.session = game.Restore(sn)
	s.mu.Unlock()
	return nil
}

func (s *Service) State() *StateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Service) Edit(ctx context.Context, req EditRequest) (*EditResponse, error) {
	edit, err := parseEdit(req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.session.Apply(edit)
	s.persistLocked(ctx)
	return s.editResponseLocked(res), nil
}

func (s *Service) IncrementBonus(ctx context.Context, req IncrementRequest) (*EditResponse, error) {
	team, ok := game.ParseTeam(req.Team)
	if !ok || req.Round < 1 || req.Round > game.RoundCount {
		return nil, ErrInvalidRequest
	}
	if req.Amount <= 0 || req.Amount%10 != 0 {
		return nil, ErrInvalidRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.session.IncrementBonus(team, req.Round, req.Amount)
	s.persistLocked(ctx)
	return s.editResponseLocked(res), nil
}

func (s *Service) SetName(ctx context.Context, req NameRequest) (*StateResponse, error) {
	team, ok := game.ParseTeam(req.Team)
	if !ok || req.Slot < 0 || req.Slot > 1 {
		return nil, ErrInvalidRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetPlayer(team, req.Slot, req.Value)
	s.persistLocked(ctx)
	return s.stateLocked(), nil
}

// NewGame archives the current game when it is complete, then resets to a
// fresh ledger. An archive write failure keeps the finished game on the
// table instead of silently dropping it.
func (s *Service) NewGame(ctx context.Context) (*NewGameResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &NewGameResponse{}
	if rec, ok := s.session.BuildRecord(store.NewID()); ok {
		if err := s.archiveRecord(ctx, rec); err != nil {
			log.Error().Err(err).Str("record_id", rec.ID).Msg("history archive failed")
			return nil, ErrArchiveFailed
		}
		out.ArchivedID = rec.ID
	}

	s.session.Reset()
	if s.store != nil {
		if err := s.store.ClearGame(ctx, s.slot); err != nil {
			log.Warn().Err(err).Msg("clear game snapshot failed")
		}
	}
	out.State = s.stateLocked()
	return out, nil
}

func (s *Service) archiveRecord(ctx context.Context, rec game.HistoryRecord) error {
	if s.store == nil {
		return nil
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.store.UpsertHistory(ctx, store.HistoryRow{
		ID:        rec.ID,
		StartedAt: rec.StartedAt,
		EndedAt:   rec.EndedAt,
		Payload:   payload,
	})
}

func (s *Service) persistLocked(ctx context.Context) {
	if s.store == nil {
		return
	}
	payload, err := json.Marshal(s.session.Snapshot())
	if err != nil {
		log.Error().Err(err).Msg("snapshot marshal failed")
		return
	}
	if err := s.store.SaveGame(ctx, s.slot, payload); err != nil {
		log.Warn().Err(err).Msg("game snapshot save failed")
	}
}

func parseEdit(req EditRequest) (game.Edit, error) {
	team, ok := game.ParseTeam(req.Team)
	if !ok {
		return game.Edit{}, ErrInvalidRequest
	}
	if req.Round < 1 || req.Round > game.RoundCount {
		return game.Edit{}, ErrInvalidRequest
	}
	var field game.FieldKind
	switch req.Field {
	case "score":
		field = game.FieldScore
	case "bonus":
		field = game.FieldBonus
	default:
		return game.Edit{}, ErrInvalidRequest
	}
	return game.Edit{
		Team:   team,
		Round:  req.Round,
		Field:  field,
		Value:  req.Value,
		Commit: req.Commit,
	}, nil
}

func (s *Service) editResponseLocked(res game.EditResult) *EditResponse {
	out := &EditResponse{State: s.stateLocked(), Celebrate: res.FreshWinner}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, string(w))
	}
	return out
}

func (s *Service) stateLocked() *StateResponse {
	sess := s.session
	totals := sess.Ledger.Aggregate()
	outcome := totals.Outcome()

	out := &StateResponse{
		Rounds:   make([]RoundState, game.RoundCount),
		Filled:   totals.Filled,
		Complete: totals.Complete(),
		Tie:      outcome.Tie,
	}
	for _, t := range []game.Team{game.TeamA, game.TeamB} {
		out.Teams[t] = TeamState{
			Name:    sess.TeamName(t),
			Players: sess.Players[t],
			Points:  totals.Teams[t].Points,
			Bonus:   totals.Teams[t].Bonus,
			Total:   totals.Teams[t].Combined(),
			Nat:     totals.Teams[t].Nat,
			Pit:     totals.Teams[t].Pit,
		}
	}
	if outcome.Complete && !outcome.Tie {
		out.Winner = sess.TeamName(outcome.Winner)
	}
	for round := 1; round <= game.RoundCount; round++ {
		e := &sess.Ledger.Entries[round-1]
		flags := sess.Ledger.ValidateRound(round)
		out.Rounds[round-1] = RoundState{
			Round:        round,
			Score:        e.Score,
			Bonus:        e.Bonus,
			Valid:        flags.Valid(),
			IllegalTie:   flags.IllegalTie,
			DoubleNat:    flags.DoubleNat,
			InvalidBonus: flags.InvalidBonus,
		}
	}
	if !sess.StartedAt.IsZero() {
		t := sess.StartedAt
		out.StartedAt = &t
	}
	if !sess.EndedAt.IsZero() {
		t := sess.EndedAt
		out.EndedAt = &t
	}
	return out
}
