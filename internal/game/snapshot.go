package game

import "time"

// RoundSnapshot carries one round's raw fields and side-effect memos
// verbatim. The memos must survive a reload so transitions keep being
// edge-triggered correctly across restarts.
type RoundSnapshot struct {
	Score      [2]string `json:"score"`
	Bonus      [2]string `json:"bonus"`
	PitApplied [2]bool   `json:"pit_applied"`
	PrevToken  [2]string `json:"prev_token"`
	NatMoved   [2]int    `json:"nat_moved"`
}

// Snapshot is the plain serializable form of a session handed to the
// persistence collaborator.
type Snapshot struct {
	Players   [2][2]string    `json:"players"`
	StartedAt *time.Time      `json:"started_at,omitempty"`
	EndedAt   *time.Time      `json:"ended_at,omitempty"`
	WinnerKey string          `json:"winner_key,omitempty"`
	Rounds    []RoundSnapshot `json:"rounds"`
}

func (s *Session) Snapshot() Snapshot {
	out := Snapshot{
		Players:   s.Players,
		WinnerKey: s.winnerKey,
		Rounds:    make([]RoundSnapshot, RoundCount),
	}
	if !s.StartedAt.IsZero() {
		t := s.StartedAt
		out.StartedAt = &t
	}
	if !s.EndedAt.IsZero() {
		t := s.EndedAt
		out.EndedAt = &t
	}
	for i := range s.Ledger.Entries {
		e := &s.Ledger.Entries[i]
		out.Rounds[i] = RoundSnapshot{
			Score:      e.Score,
			Bonus:      e.Bonus,
			PitApplied: e.PitApplied,
			PrevToken:  e.PrevToken,
			NatMoved:   e.NatMoved,
		}
	}
	return out
}

// Restore repopulates a session verbatim. Nothing is re-derived on load;
// derivation and side effects only ever run on new edits, otherwise a
// reload would double-apply transfers.
func Restore(sn Snapshot) *Session {
	s := NewSession()
	s.Players = sn.Players
	if sn.StartedAt != nil {
		s.StartedAt = *sn.StartedAt
	}
	if sn.EndedAt != nil {
		s.EndedAt = *sn.EndedAt
	}
	s.winnerKey = sn.WinnerKey
	for i := 0; i < len(sn.Rounds) && i < RoundCount; i++ {
		r := sn.Rounds[i]
		s.Ledger.Entries[i] = RoundEntry{
			Score:      r.Score,
			Bonus:      r.Bonus,
			PitApplied: r.PitApplied,
			PrevToken:  r.PrevToken,
			NatMoved:   r.NatMoved,
		}
	}
	return s
}
