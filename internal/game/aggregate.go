package game

// TeamTotals is one team's share of the ledger-wide aggregates.
type TeamTotals struct {
	Points int
	Bonus  int
	Nat    int
	Pit    int
}

func (t TeamTotals) Combined() int { return t.Points + t.Bonus }

// Totals is the full fold over all rounds. Filled means every round has a
// concrete score on both sides; AnyInvalid means at least one round fails
// validation. The game is Complete exactly when Filled && !AnyInvalid.
type Totals struct {
	Teams      [2]TeamTotals
	Filled     bool
	AnyInvalid bool
}

func (t Totals) Complete() bool { return t.Filled && !t.AnyInvalid }

// Outcome reports the winner of a complete ledger. Exact equality of the
// combined totals is a tie, reported as such rather than assigned to a team.
type Outcome struct {
	Complete bool
	Tie      bool
	Winner   Team
}

func (t Totals) Outcome() Outcome {
	if !t.Complete() {
		return Outcome{}
	}
	a := t.Teams[TeamA].Combined()
	b := t.Teams[TeamB].Combined()
	if a == b {
		return Outcome{Complete: true, Tie: true}
	}
	if a > b {
		return Outcome{Complete: true, Winner: TeamA}
	}
	return Outcome{Complete: true, Winner: TeamB}
}

// Aggregate folds all rounds into totals. Nat and Pit contribute through the
// same score path as numbers (0 and Total respectively); only valid bonuses
// count toward the bonus sums.
func (l *Ledger) Aggregate() Totals {
	out := Totals{Filled: true}
	for round := 1; round <= RoundCount; round++ {
		e := &l.Entries[round-1]
		if !l.ValidateRound(round).Valid() {
			out.AnyInvalid = true
		}
		for _, t := range []Team{TeamA, TeamB} {
			tok := NormalizeScore(e.Score[t])
			switch tok.Kind {
			case TokenNat:
				out.Teams[t].Nat++
			case TokenPit:
				out.Teams[t].Pit++
			}
			if pts, ok := tok.Points(); ok {
				out.Teams[t].Points += pts
			} else {
				out.Filled = false
			}
			if v, ok := ParseBonus(e.Bonus[t]); ok {
				out.Teams[t].Bonus += v
			}
		}
	}
	return out
}
