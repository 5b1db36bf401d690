package history

import "klaver-telraam/internal/game"

type teamStats struct {
	team        string
	bestPoints  int
	worstPoints int
	bestBonus   int
	natTotal    int
	pitTotal    int
}

// computeStats folds the archive into per-team extremes. Both sides of
// every record count; teams are keyed by display name.
func computeStats(recs []game.HistoryRecord) *StatsResponse {
	out := &StatsResponse{Games: len(recs)}
	if len(recs) == 0 {
		return out
	}

	byTeam := map[string]*teamStats{}
	order := []*teamStats{}
	note := func(team string, points, bonus, nat, pit int) {
		if team == "" {
			team = "Unknown"
		}
		s, ok := byTeam[team]
		if !ok {
			s = &teamStats{team: team, bestPoints: points, worstPoints: points, bestBonus: bonus}
			byTeam[team] = s
			order = append(order, s)
		} else {
			if points > s.bestPoints {
				s.bestPoints = points
			}
			if points < s.worstPoints {
				s.worstPoints = points
			}
			if bonus > s.bestBonus {
				s.bestBonus = bonus
			}
		}
		s.natTotal += nat
		s.pitTotal += pit
	}

	for _, rec := range recs {
		for _, t := range []game.Team{game.TeamA, game.TeamB} {
			note(rec.Teams[t], rec.Points[t], rec.Bonus[t], rec.NatCount[t], rec.PitCount[t])
		}
	}

	pick := func(better func(a, b *teamStats) bool) *teamStats {
		best := order[0]
		for _, s := range order[1:] {
			if better(s, best) {
				best = s
			}
		}
		return best
	}

	best := pick(func(a, b *teamStats) bool { return a.bestPoints > b.bestPoints })
	out.HighestPoints = &StatLine{Team: best.team, Value: best.bestPoints}
	worst := pick(func(a, b *teamStats) bool { return a.worstPoints < b.worstPoints })
	out.LowestPoints = &StatLine{Team: worst.team, Value: worst.worstPoints}
	bonus := pick(func(a, b *teamStats) bool { return a.bestBonus > b.bestBonus })
	out.MostBonus = &StatLine{Team: bonus.team, Value: bonus.bestBonus}
	nat := pick(func(a, b *teamStats) bool { return a.natTotal > b.natTotal })
	out.MostNat = &StatLine{Team: nat.team, Value: nat.natTotal}
	pit := pick(func(a, b *teamStats) bool { return a.pitTotal > b.pitTotal })
	out.MostPit = &StatLine{Team: pit.team, Value: pit.pitTotal}
	return out
}
