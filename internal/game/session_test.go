package game

import (
	"reflect"
	"strconv"
	"testing"
	"time"
)

func testClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func playFullGame(s *Session) {
	for r := 1; r <= RoundCount; r++ {
		s.Apply(Edit{Team: TeamA, Round: r, Field: FieldScore, Value: "90"})
	}
}

func TestSessionTimestamps(t *testing.T) {
	s := NewSession()
	s.now = testClock(time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC))

	if !s.StartedAt.IsZero() {
		t.Fatal("fresh session already started")
	}
	s.Apply(Edit{Team: TeamA, Round: 1, Field: FieldScore, Value: "90"})
	started := s.StartedAt
	if started.IsZero() {
		t.Fatal("first edit did not start the clock")
	}
	if !s.EndedAt.IsZero() {
		t.Fatal("incomplete game has an end timestamp")
	}

	playFullGame(s)
	ended := s.EndedAt
	if ended.IsZero() {
		t.Fatal("complete game has no end timestamp")
	}

	// Staying complete must not restamp.
	s.Apply(Edit{Team: TeamA, Round: 1, Field: FieldBonus, Value: "20"})
	if !s.EndedAt.Equal(ended) {
		t.Fatalf("end restamped: %v then %v", ended, s.EndedAt)
	}

	// Breaking completeness clears the end timestamp; completing again
	// stamps a fresh one.
	s.Apply(Edit{Team: TeamA, Round: 4, Field: FieldScore, Value: ""})
	if !s.EndedAt.IsZero() {
		t.Fatal("end timestamp not cleared")
	}
	res := s.Apply(Edit{Team: TeamA, Round: 4, Field: FieldScore, Value: "90"})
	if !res.Totals.Complete() || s.EndedAt.IsZero() || s.EndedAt.Equal(ended) {
		t.Fatalf("re-completion: complete=%v ended=%v", res.Totals.Complete(), s.EndedAt)
	}
	if s.StartedAt != started {
		t.Fatal("start timestamp moved")
	}
}

func TestSessionWinnerFiresOncePerStanding(t *testing.T) {
	s := NewSession()
	s.SetPlayer(TeamA, 0, "Ada")
	s.SetPlayer(TeamB, 0, "Bob")

	var res EditResult
	for r := 1; r <= RoundCount; r++ {
		res = s.Apply(Edit{Team: TeamA, Round: r, Field: FieldScore, Value: "90"})
	}
	if !res.FreshWinner {
		t.Fatal("first completion did not announce a winner")
	}
	if res.Outcome.Tie || res.Outcome.Winner != TeamA {
		t.Fatalf("outcome = %+v", res.Outcome)
	}

	// Same standing settled again: no re-announcement.
	res = s.Apply(Edit{Team: TeamA, Round: 1, Field: FieldScore, Value: "90"})
	if res.FreshWinner {
		t.Fatal("winner re-announced for the same standing")
	}

	// A different final standing announces again.
	res = s.Apply(Edit{Team: TeamA, Round: 1, Field: FieldScore, Value: "100"})
	if !res.FreshWinner {
		t.Fatal("changed standing did not re-announce")
	}
}

func TestSessionWarningPolicy(t *testing.T) {
	s := NewSession()
	s.Apply(Edit{Team: TeamA, Round: 1, Field: FieldScore, Value: "81"})

	// Live bonus keystrokes stay silent even when invalid.
	res := s.Apply(Edit{Team: TeamA, Round: 2, Field: FieldBonus, Value: "25"})
	for _, w := range res.Warnings {
		if w == WarnInvalidBonus {
			t.Fatal("live edit surfaced a bonus warning")
		}
	}
	// Commit surfaces it.
	res = s.Apply(Edit{Team: TeamA, Round: 2, Field: FieldBonus, Value: "25", Commit: true})
	if len(res.Warnings) != 1 || res.Warnings[0] != WarnInvalidBonus {
		t.Fatalf("warnings = %v, want invalid_bonus", res.Warnings)
	}

	// The tie rule warns immediately, commit or not.
	res = s.Apply(Edit{Team: TeamA, Round: 1, Field: FieldBonus, Value: "20"})
	if len(res.Warnings) != 0 {
		t.Fatalf("unequal 81-81 bonuses warned: %v", res.Warnings)
	}
	res = s.Apply(Edit{Team: TeamB, Round: 1, Field: FieldBonus, Value: "20"})
	if len(res.Warnings) != 1 || res.Warnings[0] != WarnIllegalTie {
		t.Fatalf("warnings = %v, want illegal_tie", res.Warnings)
	}
}

func TestSessionIncrementBonus(t *testing.T) {
	s := NewSession()
	s.Apply(Edit{Team: TeamA, Round: 3, Field: FieldBonus, Value: "20"})
	s.IncrementBonus(TeamA, 3, 50)
	if got := s.Ledger.Entries[2].Bonus[TeamA]; got != "70" {
		t.Fatalf("bonus = %q, want 70", got)
	}

	// Invalid current value counts as 0.
	s.Apply(Edit{Team: TeamB, Round: 3, Field: FieldBonus, Value: "15"})
	s.IncrementBonus(TeamB, 3, 20)
	if got := s.Ledger.Entries[2].Bonus[TeamB]; got != "20" {
		t.Fatalf("bonus = %q, want 20", got)
	}
}

func TestSessionTeamNames(t *testing.T) {
	s := NewSession()
	if got := s.TeamName(TeamA); got != "Team A" {
		t.Fatalf("default name = %q", got)
	}
	s.SetPlayer(TeamA, 0, "Ada")
	s.SetPlayer(TeamA, 1, "Alan")
	if got := s.TeamName(TeamA); got != "Ada & Alan" {
		t.Fatalf("name = %q", got)
	}
	s.SetPlayer(TeamB, 1, "Solo")
	if got := s.TeamName(TeamB); got != "Team B & Solo" {
		t.Fatalf("name = %q", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewSession()
	s.SetPlayer(TeamA, 0, "Ada")
	s.Apply(Edit{Team: TeamA, Round: 1, Field: FieldBonus, Value: "30"})
	s.Apply(Edit{Team: TeamA, Round: 1, Field: FieldScore, Value: "N"})
	s.Apply(Edit{Team: TeamB, Round: 2, Field: FieldScore, Value: "P"})

	restored := Restore(s.Snapshot())
	if !reflect.DeepEqual(restored.Ledger, s.Ledger) {
		t.Fatalf("ledger mismatch\nwant %+v\ngot  %+v", s.Ledger, restored.Ledger)
	}
	if restored.Players != s.Players || !restored.StartedAt.Equal(s.StartedAt) {
		t.Fatal("session header mismatch")
	}
	if restored.winnerKey != s.winnerKey {
		t.Fatalf("winner memo mismatch: %q vs %q", restored.winnerKey, s.winnerKey)
	}

	// Restore must not re-derive: leaving Pit afterwards reverses exactly
	// the one recorded +100, proving the flag survived instead of being
	// re-applied on load.
	if got := restored.Ledger.Entries[1].Bonus[TeamB]; got != strconv.Itoa(PitBonus) {
		t.Fatalf("bonus after restore = %q", got)
	}
	restored.Ledger.SetScore(TeamB, 2, "80")
	if got := restored.Ledger.Entries[1].Bonus[TeamB]; got != "" {
		t.Fatalf("bonus after leaving pit = %q, want empty", got)
	}
}

func TestBuildRecord(t *testing.T) {
	s := NewSession()
	s.now = testClock(time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC))
	s.SetPlayer(TeamA, 0, "Ada")
	s.SetPlayer(TeamB, 0, "Bob")

	if _, ok := s.BuildRecord("rec-1"); ok {
		t.Fatal("record produced for a fresh session")
	}

	playFullGame(s)
	s.Apply(Edit{Team: TeamB, Round: 5, Field: FieldBonus, Value: "40"})
	rec, ok := s.BuildRecord("rec-1")
	if !ok {
		t.Fatal("no record for a complete game")
	}
	if rec.ID != "rec-1" || rec.Teams != [2]string{"Ada", "Bob"} {
		t.Fatalf("header = %q %v", rec.ID, rec.Teams)
	}
	if rec.Points[TeamA] != 16*90 || rec.Bonus[TeamB] != 40 {
		t.Fatalf("points/bonus = %v/%v", rec.Points, rec.Bonus)
	}
	if rec.Totals[TeamA] != 16*90 || rec.Totals[TeamB] != 16*72+40 {
		t.Fatalf("totals = %v", rec.Totals)
	}
	if rec.Tie || rec.WinnerLine != "Winner: Ada" {
		t.Fatalf("winner line = %q (tie=%v)", rec.WinnerLine, rec.Tie)
	}
	if len(rec.Rounds) != RoundCount || rec.Rounds[4].Bonus[TeamB] != "40" {
		t.Fatalf("rounds = %+v", rec.Rounds[4])
	}
	if rec.StartedAt.IsZero() || rec.EndedAt.IsZero() {
		t.Fatal("record missing timestamps")
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	s.SetPlayer(TeamA, 0, "Ada")
	playFullGame(s)
	s.Reset()

	if !reflect.DeepEqual(s.Ledger, Ledger{}) {
		t.Fatal("ledger not cleared")
	}
	if s.Players != [2][2]string{} || !s.StartedAt.IsZero() || !s.EndedAt.IsZero() {
		t.Fatal("session header not cleared")
	}
	if s.winnerKey != "" {
		t.Fatal("winner memo not cleared")
	}
}
