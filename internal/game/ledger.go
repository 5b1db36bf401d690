package game

import "strconv"

// RoundEntry holds the raw field contents for one round plus the memos the
// transition-triggered side effects need: the pit-bonus idempotency flags,
// the previous normalized token per score field, and the bonus amount moved
// to the opponent while a team is Nat.
type RoundEntry struct {
	Score      [2]string
	Bonus      [2]string
	PitApplied [2]bool
	PrevToken  [2]string
	NatMoved   [2]int
}

// Ledger is the fixed-length sequence of round entries. Rounds are numbered
// 1..RoundCount in the public API.
type Ledger struct {
	Entries [RoundCount]RoundEntry
}

func validRound(round int) bool { return round >= 1 && round <= RoundCount }

// SetScore runs one score edit to completion: normalize the raw value,
// write the canonical display form, derive the opponent's field against
// Total, and fire the Pit/Nat managers on the token transition. Out of
// range rounds are ignored.
func (l *Ledger) SetScore(team Team, round int, raw string) {
	if !validRound(round) {
		return
	}
	e := &l.Entries[round-1]
	opp := team.Opponent()
	tok := NormalizeScore(raw)

	switch tok.Kind {
	case TokenEmpty:
		e.Score[team] = ""
		e.Score[opp] = ""
	case TokenNat:
		e.Score[team] = "N"
		e.Score[opp] = strconv.Itoa(Total)
	case TokenPit:
		e.Score[team] = "P"
		e.Score[opp] = "0"
	case TokenNumber:
		e.Score[team] = strconv.Itoa(tok.Number)
		e.Score[opp] = strconv.Itoa(Total - tok.Number)
	}

	prev := e.PrevToken[team]
	now := tok.Display()

	if prev == "P" && now != "P" {
		e.removePitBonus(team)
	}
	if prev != "P" && now == "P" {
		e.applyPitBonus(team)
	}
	if prev == "N" && now != "N" {
		e.reverseNatTransfer(team)
	}
	if prev != "N" && now == "N" {
		e.applyNatTransfer(team)
	}

	// Updated only after all transition side effects have run.
	e.PrevToken[team] = now
}

// SetBonus stores the raw bonus entry verbatim; validation reads it lazily.
func (l *Ledger) SetBonus(team Team, round int, raw string) {
	if !validRound(round) {
		return
	}
	l.Entries[round-1].Bonus[team] = raw
}

// BonusValue is the valid bonus amount for a field, 0 when invalid or empty.
func (l *Ledger) BonusValue(team Team, round int) int {
	if !validRound(round) {
		return 0
	}
	v, _ := ParseBonus(l.Entries[round-1].Bonus[team])
	return v
}

func setBonusField(e *RoundEntry, team Team, v int) {
	if v <= 0 {
		e.Bonus[team] = ""
		return
	}
	e.Bonus[team] = strconv.Itoa(v)
}

func (e *RoundEntry) applyPitBonus(team Team) {
	if e.PitApplied[team] {
		return
	}
	setBonusField(e, team, bonusInt(e.Bonus[team])+PitBonus)
	e.PitApplied[team] = true
}

func (e *RoundEntry) removePitBonus(team Team) {
	if !e.PitApplied[team] {
		return
	}
	setBonusField(e, team, bonusInt(e.Bonus[team])-PitBonus)
	e.PitApplied[team] = false
}

// applyNatTransfer moves the team's valid bonus amount to the opponent and
// clears the team's field, recording the moved amount so the transfer can be
// undone. An invalid bonus transfers nothing. A round where the opponent is
// also Nat gets no side effects at all.
func (e *RoundEntry) applyNatTransfer(team Team) {
	opp := team.Opponent()
	if NormalizeScore(e.Score[opp]).Kind == TokenNat {
		return
	}
	amt, ok := ParseBonus(e.Bonus[team])
	if !ok {
		amt = 0
	}
	if amt > 0 {
		setBonusField(e, opp, bonusInt(e.Bonus[opp])+amt)
	}
	e.Bonus[team] = ""
	e.NatMoved[team] = amt
}

// reverseNatTransfer undoes exactly the recorded amount: the opponent loses
// it, the team gains it on top of whatever its field holds now.
func (e *RoundEntry) reverseNatTransfer(team Team) {
	amt := e.NatMoved[team]
	if amt > 0 {
		opp := team.Opponent()
		setBonusField(e, opp, bonusInt(e.Bonus[opp])-amt)
		setBonusField(e, team, bonusInt(e.Bonus[team])+amt)
	}
	e.NatMoved[team] = 0
}
