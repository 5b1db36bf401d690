package history

import "klaver-telraam/internal/game"

type ListResponse struct {
	Items  []game.HistoryRecord `json:"items"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

type ImportResponse struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// StatLine names the team holding one archive-wide extreme.
type StatLine struct {
	Team  string `json:"team"`
	Value int    `json:"value"`
}

type StatsResponse struct {
	Games         int       `json:"games"`
	HighestPoints *StatLine `json:"highest_points,omitempty"`
	LowestPoints  *StatLine `json:"lowest_points,omitempty"`
	MostBonus     *StatLine `json:"most_bonus,omitempty"`
	MostNat       *StatLine `json:"most_nat,omitempty"`
	MostPit       *StatLine `json:"most_pit,omitempty"`
}
