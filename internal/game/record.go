package game

import (
	"fmt"
	"time"
)

// RoundLine is one row of the archived ledger copy.
type RoundLine struct {
	Round int       `json:"round"`
	Score [2]string `json:"score"`
	Bonus [2]string `json:"bonus"`
}

// HistoryRecord is the immutable snapshot archived when a complete game is
// closed out. Records are only ever deleted whole or replaced by identifier
// on import, never mutated.
type HistoryRecord struct {
	ID         string      `json:"id"`
	StartedAt  time.Time   `json:"started_at"`
	EndedAt    time.Time   `json:"ended_at"`
	Teams      [2]string   `json:"teams"`
	Points     [2]int      `json:"points"`
	Bonus      [2]int      `json:"bonus"`
	Totals     [2]int      `json:"totals"`
	NatCount   [2]int      `json:"nat_count"`
	PitCount   [2]int      `json:"pit_count"`
	Tie        bool        `json:"tie,omitempty"`
	WinnerLine string      `json:"winner_line"`
	Rounds     []RoundLine `json:"rounds"`
}

// BuildRecord produces the archive entry for the current game. It reports
// false unless the session is Complete with both timestamps stamped.
func (s *Session) BuildRecord(id string) (HistoryRecord, bool) {
	totals := s.Ledger.Aggregate()
	if !totals.Complete() || s.StartedAt.IsZero() || s.EndedAt.IsZero() {
		return HistoryRecord{}, false
	}
	outcome := totals.Outcome()

	rec := HistoryRecord{
		ID:        id,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		Teams:     [2]string{s.TeamName(TeamA), s.TeamName(TeamB)},
		Tie:       outcome.Tie,
		Rounds:    make([]RoundLine, RoundCount),
	}
	for _, t := range []Team{TeamA, TeamB} {
		rec.Points[t] = totals.Teams[t].Points
		rec.Bonus[t] = totals.Teams[t].Bonus
		rec.Totals[t] = totals.Teams[t].Combined()
		rec.NatCount[t] = totals.Teams[t].Nat
		rec.PitCount[t] = totals.Teams[t].Pit
	}
	if outcome.Tie {
		rec.WinnerLine = fmt.Sprintf("Tie: %s and %s", rec.Teams[TeamA], rec.Teams[TeamB])
	} else {
		rec.WinnerLine = fmt.Sprintf("Winner: %s", rec.Teams[outcome.Winner])
	}
	for round := 1; round <= RoundCount; round++ {
		e := &s.Ledger.Entries[round-1]
		rec.Rounds[round-1] = RoundLine{Round: round, Score: e.Score, Bonus: e.Bonus}
	}
	return rec, true
}
