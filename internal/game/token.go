package game

import (
	"strconv"
	"strings"
)

const (
	// Total is the per-round point pool both teams' scores sum to.
	Total = 162
	// RoundCount is the fixed length of a game.
	RoundCount = 16
	// PitBonus is the automatic bonus granted for a Pit round.
	PitBonus = 100

	halfTotal = Total / 2
)

// Team indexes the two sides of the table.
type Team int

const (
	TeamA Team = iota
	TeamB
)

func (t Team) Opponent() Team { return 1 - t }

func (t Team) String() string {
	if t == TeamA {
		return "a"
	}
	return "b"
}

// ParseTeam maps the wire form ("a"/"b") back to a Team.
func ParseTeam(s string) (Team, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return TeamA, true
	case "b":
		return TeamB, true
	}
	return 0, false
}

type TokenKind string

const (
	TokenEmpty  TokenKind = "empty"
	TokenNumber TokenKind = "number"
	TokenNat    TokenKind = "nat"
	TokenPit    TokenKind = "pit"
)

// Token is the semantic value of a raw score field.
type Token struct {
	Kind   TokenKind
	Number int
}

// NormalizeScore converts a raw user-entered score string into a Token.
// A leading n/N means Nat, a leading p/P means Pit, integers clamp into
// [0, Total]. Anything else is treated as unset. Idempotent over Display.
func NormalizeScore(raw string) Token {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Token{Kind: TokenEmpty}
	}
	switch s[0] {
	case 'n', 'N':
		return Token{Kind: TokenNat}
	case 'p', 'P':
		return Token{Kind: TokenPit}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Token{Kind: TokenEmpty}
	}
	if n < 0 {
		n = 0
	}
	if n > Total {
		n = Total
	}
	return Token{Kind: TokenNumber, Number: n}
}

// Display is the canonical string form written back into the field.
func (t Token) Display() string {
	switch t.Kind {
	case TokenNat:
		return "N"
	case TokenPit:
		return "P"
	case TokenNumber:
		return strconv.Itoa(t.Number)
	}
	return ""
}

// Points is the score the token contributes for its own team. The second
// return is false while the field is unset.
func (t Token) Points() (int, bool) {
	switch t.Kind {
	case TokenNat:
		return 0, true
	case TokenPit:
		return Total, true
	case TokenNumber:
		return t.Number, true
	}
	return 0, false
}

// ParseBonus classifies a raw bonus entry. Empty is valid with value 0;
// otherwise the entry must be a non-negative multiple of ten. Invalid
// entries report value 0.
func ParseBonus(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if n < 0 || n%10 != 0 {
		return 0, false
	}
	return n, true
}

// bonusInt is the literal integer content of a bonus field, 0 when the
// field does not parse at all. Pit adjustments work on this so an invalid
// entry survives an apply/remove round trip.
func bonusInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
