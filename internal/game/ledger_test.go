package game

import (
	"strconv"
	"testing"
)

func TestSetScoreDerivesComplement(t *testing.T) {
	tests := []struct {
		name  string
		team  Team
		raw   string
		wantA string
		wantB string
	}{
		{name: "numeric for A", team: TeamA, raw: "100", wantA: "100", wantB: "62"},
		{name: "numeric for B", team: TeamB, raw: "40", wantA: "122", wantB: "40"},
		{name: "clamped numeric", team: TeamA, raw: "999", wantA: "162", wantB: "0"},
		{name: "nat for A", team: TeamA, raw: "N", wantA: "N", wantB: "162"},
		{name: "pit for A", team: TeamA, raw: "P", wantA: "P", wantB: "0"},
		{name: "pit for B", team: TeamB, raw: "pit", wantA: "0", wantB: "P"},
		{name: "empty clears both", team: TeamA, raw: "", wantA: "", wantB: ""},
		{name: "garbage clears both", team: TeamA, raw: "xyz", wantA: "", wantB: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Ledger
			l.SetScore(tt.team, 1, tt.raw)
			e := l.Entries[0]
			if e.Score[TeamA] != tt.wantA || e.Score[TeamB] != tt.wantB {
				t.Fatalf("scores = (%q, %q), want (%q, %q)", e.Score[TeamA], e.Score[TeamB], tt.wantA, tt.wantB)
			}
		})
	}
}

func TestSetScoreComplementSymmetry(t *testing.T) {
	for n := 0; n <= Total; n++ {
		var l Ledger
		l.SetScore(TeamA, 3, strconv.Itoa(n))
		got := NormalizeScore(l.Entries[2].Score[TeamB])
		if got.Kind != TokenNumber || got.Number != Total-n {
			t.Fatalf("n=%d: derived %+v, want %d", n, got, Total-n)
		}
	}
}

func TestSetScoreIgnoresOutOfRangeRound(t *testing.T) {
	var l Ledger
	l.SetScore(TeamA, 0, "50")
	l.SetScore(TeamA, RoundCount+1, "50")
	for i := range l.Entries {
		if l.Entries[i].Score[TeamA] != "" {
			t.Fatalf("round %d mutated", i+1)
		}
	}
}

func TestPitBonusAppliedOnce(t *testing.T) {
	var l Ledger
	l.SetScore(TeamA, 1, "P")
	if got := l.Entries[0].Bonus[TeamA]; got != "100" {
		t.Fatalf("bonus after pit = %q, want 100", got)
	}

	// Re-entering pit-equivalent strings without leaving the state must
	// not stack another +100.
	l.SetScore(TeamA, 1, "pit")
	l.SetScore(TeamA, 1, "P")
	if got := l.Entries[0].Bonus[TeamA]; got != "100" {
		t.Fatalf("bonus after repeated pit = %q, want 100", got)
	}

	l.SetScore(TeamA, 1, "90")
	if got := l.Entries[0].Bonus[TeamA]; got != "" {
		t.Fatalf("bonus after leaving pit = %q, want empty", got)
	}

	// Toggle back in and out twice: still exactly one application at a time.
	l.SetScore(TeamA, 1, "P")
	l.SetScore(TeamA, 1, "80")
	l.SetScore(TeamA, 1, "P")
	if got := l.Entries[0].Bonus[TeamA]; got != "100" {
		t.Fatalf("bonus after toggling = %q, want 100", got)
	}
}

func TestPitBonusStacksOnExistingBonus(t *testing.T) {
	var l Ledger
	l.SetBonus(TeamA, 2, "50")
	l.SetScore(TeamA, 2, "P")
	if got := l.Entries[1].Bonus[TeamA]; got != "150" {
		t.Fatalf("bonus = %q, want 150", got)
	}
	l.SetScore(TeamA, 2, "120")
	if got := l.Entries[1].Bonus[TeamA]; got != "50" {
		t.Fatalf("bonus after removal = %q, want 50", got)
	}
}

func TestNatTransferRoundTrip(t *testing.T) {
	var l Ledger
	l.SetBonus(TeamA, 1, "30")
	l.SetScore(TeamA, 1, "N")

	e := l.Entries[0]
	if e.Bonus[TeamA] != "" {
		t.Fatalf("nat team bonus = %q, want cleared", e.Bonus[TeamA])
	}
	if e.Bonus[TeamB] != "30" {
		t.Fatalf("opponent bonus = %q, want 30", e.Bonus[TeamB])
	}
	if e.NatMoved[TeamA] != 30 {
		t.Fatalf("recorded transfer = %d, want 30", e.NatMoved[TeamA])
	}

	l.SetScore(TeamA, 1, "70")
	e = l.Entries[0]
	if e.Bonus[TeamA] != "30" {
		t.Fatalf("restored bonus = %q, want 30", e.Bonus[TeamA])
	}
	if e.Bonus[TeamB] != "" {
		t.Fatalf("opponent bonus after reversal = %q, want empty", e.Bonus[TeamB])
	}
	if e.NatMoved[TeamA] != 0 {
		t.Fatalf("transfer memo not cleared: %d", e.NatMoved[TeamA])
	}
}

func TestNatTransferReversalIsAdditive(t *testing.T) {
	var l Ledger
	l.SetBonus(TeamA, 1, "30")
	l.SetBonus(TeamB, 1, "50")
	l.SetScore(TeamA, 1, "N")
	if got := l.Entries[0].Bonus[TeamB]; got != "80" {
		t.Fatalf("opponent bonus = %q, want 80", got)
	}

	// Bonus typed into the cleared field while Nat stands is kept.
	l.SetBonus(TeamA, 1, "20")
	l.SetScore(TeamA, 1, "60")
	e := l.Entries[0]
	if e.Bonus[TeamA] != "50" {
		t.Fatalf("bonus after reversal = %q, want 50 (20 typed + 30 restored)", e.Bonus[TeamA])
	}
	if e.Bonus[TeamB] != "50" {
		t.Fatalf("opponent bonus after reversal = %q, want 50", e.Bonus[TeamB])
	}
}

func TestNatTransferInvalidBonusMovesNothing(t *testing.T) {
	var l Ledger
	l.SetBonus(TeamA, 1, "25")
	l.SetScore(TeamA, 1, "N")

	e := l.Entries[0]
	if e.Bonus[TeamB] != "" {
		t.Fatalf("opponent bonus = %q, want empty", e.Bonus[TeamB])
	}
	if e.Bonus[TeamA] != "" {
		t.Fatalf("nat team bonus = %q, want cleared", e.Bonus[TeamA])
	}
	if e.NatMoved[TeamA] != 0 {
		t.Fatalf("recorded transfer = %d, want 0", e.NatMoved[TeamA])
	}
}

func TestNatTransferRepeatedEntryMovesOnce(t *testing.T) {
	var l Ledger
	l.SetBonus(TeamA, 1, "40")
	l.SetScore(TeamA, 1, "N")
	l.SetScore(TeamA, 1, "nat")
	l.SetScore(TeamA, 1, "N")

	e := l.Entries[0]
	if e.Bonus[TeamB] != "40" {
		t.Fatalf("opponent bonus = %q, want 40", e.Bonus[TeamB])
	}
	if e.NatMoved[TeamA] != 40 {
		t.Fatalf("recorded transfer = %d, want 40", e.NatMoved[TeamA])
	}
}
