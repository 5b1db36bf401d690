package score

import "time"

// EditRequest is the wire form of one field edit: team "a"/"b", round
// 1..16, field "score"/"bonus". Commit marks a committed entry (the field
// lost focus) as opposed to a live keystroke.
type EditRequest struct {
	Team   string `json:"team"`
	Round  int    `json:"round"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Commit bool   `json:"commit"`
}

type IncrementRequest struct {
	Team   string `json:"team"`
	Round  int    `json:"round"`
	Amount int    `json:"amount"`
}

type NameRequest struct {
	Team  string `json:"team"`
	Slot  int    `json:"slot"`
	Value string `json:"value"`
}

type TeamState struct {
	Name    string    `json:"name"`
	Players [2]string `json:"players"`
	Points  int       `json:"points"`
	Bonus   int       `json:"bonus"`
	Total   int       `json:"total"`
	Nat     int       `json:"nat"`
	Pit     int       `json:"pit"`
}

type RoundState struct {
	Round        int       `json:"round"`
	Score        [2]string `json:"score"`
	Bonus        [2]string `json:"bonus"`
	Valid        bool      `json:"valid"`
	IllegalTie   bool      `json:"illegal_tie,omitempty"`
	DoubleNat    bool      `json:"double_nat,omitempty"`
	InvalidBonus [2]bool   `json:"invalid_bonus"`
}

type StateResponse struct {
	Teams     [2]TeamState `json:"teams"`
	Rounds    []RoundState `json:"rounds"`
	Filled    bool         `json:"filled"`
	Complete  bool         `json:"complete"`
	Tie       bool         `json:"tie,omitempty"`
	Winner    string       `json:"winner,omitempty"`
	StartedAt *time.Time   `json:"started_at,omitempty"`
	EndedAt   *time.Time   `json:"ended_at,omitempty"`
}

type EditResponse struct {
	State *StateResponse `json:"state"`
	// Warnings the presentation layer should surface for this edit,
	// already filtered by the live/commit notification policy.
	Warnings []string `json:"warnings,omitempty"`
	// Celebrate fires once per newly reached final standing.
	Celebrate bool `json:"celebrate,omitempty"`
}

type NewGameResponse struct {
	// ArchivedID is set when the finished game was written to the
	// history archive; empty when the game was discarded incomplete.
	ArchivedID string         `json:"archived_id,omitempty"`
	State      *StateResponse `json:"state"`
}
