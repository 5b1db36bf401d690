package game

import (
	"fmt"
	"strings"
	"time"
)

// FieldKind selects which raw field of a round an edit targets.
type FieldKind string

const (
	FieldScore FieldKind = "score"
	FieldBonus FieldKind = "bonus"
)

// Warning is a user-facing rejection trigger. The presentation layer owns
// the message text; the core only says when one fires.
type Warning string

const (
	WarnIllegalTie   Warning = "illegal_tie"
	WarnInvalidBonus Warning = "invalid_bonus"
)

// Edit is one field mutation tagged the way the presentation collaborator
// sends it. Commit marks a committed entry (field lost focus) as opposed to
// a live keystroke; bonus-invalidity warnings are gated to commit time.
type Edit struct {
	Team   Team
	Round  int
	Field  FieldKind
	Value  string
	Commit bool
}

// EditResult is the settled state after one edit has run the full pipeline.
type EditResult struct {
	Round       int
	Flags       RoundFlags
	Totals      Totals
	Outcome     Outcome
	Warnings    []Warning
	FreshWinner bool
}

var defaultTeamNames = [2]string{"Team A", "Team B"}

// Session wraps one ledger with team names, the game timestamps, and the
// one-shot winner announcement memo.
type Session struct {
	Ledger    Ledger
	Players   [2][2]string
	StartedAt time.Time
	EndedAt   time.Time

	winnerKey string
	now       func() time.Time
}

func NewSession() *Session {
	return &Session{now: time.Now}
}

// TeamName joins the team's non-blank player names with " & ", falling back
// to a default label when the first slot is blank.
func (s *Session) TeamName(t Team) string {
	first := strings.TrimSpace(s.Players[t][0])
	if first == "" {
		first = defaultTeamNames[t]
	}
	second := strings.TrimSpace(s.Players[t][1])
	if second == "" {
		return first
	}
	return first + " & " + second
}

// SetPlayer updates one of a team's two name slots. Name edits do not start
// the game clock.
func (s *Session) SetPlayer(t Team, slot int, name string) {
	if slot < 0 || slot > 1 {
		return
	}
	s.Players[t][slot] = name
}

// Apply runs one edit to completion: mutate, validate the affected round,
// re-aggregate, and walk the completion state machine. The end timestamp is
// stamped once on entering Complete and cleared the moment any edit makes
// the ledger incomplete or invalid again.
func (s *Session) Apply(e Edit) EditResult {
	if s.StartedAt.IsZero() {
		s.StartedAt = s.now()
		s.EndedAt = time.Time{}
	}

	switch e.Field {
	case FieldScore:
		s.Ledger.SetScore(e.Team, e.Round, e.Value)
	case FieldBonus:
		s.Ledger.SetBonus(e.Team, e.Round, e.Value)
	}
	return s.settle(e)
}

// IncrementBonus adds amount on top of the field's current valid value
// (invalid counts as 0) and runs the normal pipeline as a committed edit.
func (s *Session) IncrementBonus(t Team, round int, amount int) EditResult {
	cur := s.Ledger.BonusValue(t, round)
	return s.Apply(Edit{
		Team:   t,
		Round:  round,
		Field:  FieldBonus,
		Value:  fmt.Sprintf("%d", cur+amount),
		Commit: true,
	})
}

func (s *Session) settle(e Edit) EditResult {
	res := EditResult{
		Round:  e.Round,
		Flags:  s.Ledger.ValidateRound(e.Round),
		Totals: s.Ledger.Aggregate(),
	}

	// The tie rule is cross-field, not a parse error: notify immediately.
	if res.Flags.IllegalTie {
		res.Warnings = append(res.Warnings, WarnIllegalTie)
	}
	if e.Commit && e.Field == FieldBonus && res.Flags.InvalidBonus[e.Team] {
		res.Warnings = append(res.Warnings, WarnInvalidBonus)
	}

	if res.Totals.Complete() {
		if s.EndedAt.IsZero() {
			s.EndedAt = s.now()
		}
		res.Outcome = res.Totals.Outcome()
		res.FreshWinner = s.noteWinner(res.Totals, res.Outcome)
	} else {
		s.EndedAt = time.Time{}
		s.winnerKey = ""
	}
	return res
}

// noteWinner reports true the first time a given final standing is reached,
// so the celebratory side effect fires once per distinct result.
func (s *Session) noteWinner(t Totals, o Outcome) bool {
	name := "tie"
	if !o.Tie {
		name = s.TeamName(o.Winner)
	}
	key := fmt.Sprintf("%d|%d|%s", t.Teams[TeamA].Combined(), t.Teams[TeamB].Combined(), name)
	if key == s.winnerKey {
		return false
	}
	s.winnerKey = key
	return true
}

// Reset clears the session back to a fresh game.
func (s *Session) Reset() {
	now := s.now
	*s = Session{now: now}
}
