package game

// RoundFlags records every way a round can be invalid. All conditions are
// state, never control flow; the aggregator folds them into AnyInvalid.
type RoundFlags struct {
	IllegalTie   bool
	DoubleNat    bool
	InvalidBonus [2]bool
}

func (f RoundFlags) Valid() bool {
	return !f.IllegalTie && !f.DoubleNat && !f.InvalidBonus[TeamA] && !f.InvalidBonus[TeamB]
}

// ValidateRound applies the per-round rules:
//
//   - a bonus entry must be empty or a non-negative multiple of ten;
//   - both teams marked Nat in one round is illegal;
//   - an 81-81 split is illegal unless the two bonus values differ
//     (invalid bonuses count as 0 for the comparison).
//
// A round where either score is still unset cannot be judged for the tie
// rule and is provisionally valid on that front.
func (l *Ledger) ValidateRound(round int) RoundFlags {
	var f RoundFlags
	if !validRound(round) {
		return f
	}
	e := &l.Entries[round-1]

	bonus := [2]int{}
	for _, t := range []Team{TeamA, TeamB} {
		v, ok := ParseBonus(e.Bonus[t])
		if !ok {
			f.InvalidBonus[t] = true
		}
		bonus[t] = v
	}

	a := NormalizeScore(e.Score[TeamA])
	b := NormalizeScore(e.Score[TeamB])
	if a.Kind == TokenNat && b.Kind == TokenNat {
		f.DoubleNat = true
	}

	ap, aok := a.Points()
	bp, bok := b.Points()
	if aok && bok && ap == halfTotal && bp == halfTotal && bonus[TeamA] == bonus[TeamB] {
		f.IllegalTie = true
	}
	return f
}
