package game

// PieceType is one of the three canonical piece kinds.
type PieceType int

const (
	Rock PieceType = iota
	Paper
	Scissors
)

// PieceTypes lists every type in a fixed order, used by setup and
// type-balance scoring.
var PieceTypes = [3]PieceType{Rock, Paper, Scissors}

func (t PieceType) String() string {
	switch t {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "Unknown"
	}
}

// Piece is a playing piece. Pieces carry no identity beyond type and
// owner: a piece off the board and out of a player's unplaced
// inventory does not exist.
type Piece struct {
	Type  PieceType
	Owner int
}

// CombatOutcome is the result of resolving an attack.
type CombatOutcome int

const (
	AttackerWins CombatOutcome = iota
	DefenderWins
	CombatDraw
)

// ResolveCombat applies the cyclic dominance relation to the two piece
// types. Equal types draw; Rock beats Scissors, Paper beats Rock,
// Scissors beats Paper; every other unequal pairing favors the
// defender. Ownership never enters the outcome.
func ResolveCombat(attacker, defender PieceType) CombatOutcome {
	if attacker == defender {
		return CombatDraw
	}
	if beats(attacker, defender) {
		return AttackerWins
	}
	return DefenderWins
}

func beats(a, b PieceType) bool {
	return (a == Rock && b == Scissors) ||
		(a == Paper && b == Rock) ||
		(a == Scissors && b == Paper)
}

// Category tags a move result so the presentation layer can pick a
// sound or sprite. The engine assigns it no gameplay meaning.
type Category int

const (
	CategoryNone Category = iota
	CategoryRock
	CategoryPaper
	CategoryScissors
	CategoryDraw
)

func categoryFor(t PieceType) Category {
	switch t {
	case Rock:
		return CategoryRock
	case Paper:
		return CategoryPaper
	case Scissors:
		return CategoryScissors
	default:
		return CategoryNone
	}
}
