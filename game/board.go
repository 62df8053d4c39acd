package game

// Cell addresses a board square.
type Cell struct {
	Row int
	Col int
}

// Move is a single-step move order from one cell to another.
type Move struct {
	From Cell
	To   Cell
}

// PieceAt pairs a piece with its position, as returned by PlayerPieces.
type PieceAt struct {
	Cell
	Piece Piece
}

// directions in scan order: right, down, left, up.
var directions = [4]Cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Board is an N×N grid of optional pieces. It is owned exclusively by
// the game state; AI code only ever touches detached snapshots.
type Board struct {
	size int
	grid []*Piece // row-major, nil marks an empty cell
}

func NewBoard(size int) *Board {
	return &Board{
		size: size,
		grid: make([]*Piece, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

// At returns the piece at (row, col) by value. The second return is
// false for an empty or out-of-bounds cell.
func (b *Board) At(row, col int) (Piece, bool) {
	if !b.InBounds(row, col) {
		return Piece{}, false
	}
	p := b.grid[b.index(row, col)]
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// Place puts a piece on an empty in-bounds cell. It never overwrites.
func (b *Board) Place(row, col int, piece Piece) bool {
	if !b.InBounds(row, col) {
		return false
	}
	if b.grid[b.index(row, col)] != nil {
		return false
	}
	p := piece
	b.grid[b.index(row, col)] = &p
	return true
}

// MoveResult reports what an accepted move did. Removed holds zero,
// one, or two pieces: two on a draw, where both combatants leave the
// board. Category is presentation-only.
type MoveResult struct {
	Combat   bool
	Outcome  CombatOutcome
	Removed  []Piece
	Category Category
}

// MovePiece relocates a piece one orthogonal step, resolving combat
// when the destination holds an enemy. It fails with no mutation when
// either endpoint is out of bounds, the source is empty, the step is
// not exactly one orthogonal cell, or the destination holds a piece of
// the same owner.
func (b *Board) MovePiece(from, to Cell) (MoveResult, bool) {
	if !b.InBounds(from.Row, from.Col) || !b.InBounds(to.Row, to.Col) {
		return MoveResult{}, false
	}
	src := b.grid[b.index(from.Row, from.Col)]
	if src == nil {
		return MoveResult{}, false
	}
	if manhattan(from, to) != 1 {
		return MoveResult{}, false
	}

	dst := b.grid[b.index(to.Row, to.Col)]
	if dst == nil {
		b.grid[b.index(to.Row, to.Col)] = src
		b.grid[b.index(from.Row, from.Col)] = nil
		return MoveResult{}, true
	}
	if dst.Owner == src.Owner {
		return MoveResult{}, false
	}

	switch outcome := ResolveCombat(src.Type, dst.Type); outcome {
	case AttackerWins:
		captured := *dst
		b.grid[b.index(to.Row, to.Col)] = src
		b.grid[b.index(from.Row, from.Col)] = nil
		return MoveResult{
			Combat:   true,
			Outcome:  outcome,
			Removed:  []Piece{captured},
			Category: categoryFor(src.Type),
		}, true
	case DefenderWins:
		lost := *src
		b.grid[b.index(from.Row, from.Col)] = nil
		return MoveResult{
			Combat:   true,
			Outcome:  outcome,
			Removed:  []Piece{lost},
			Category: categoryFor(dst.Type),
		}, true
	default:
		// Mutual elimination on a draw: both the origin and the target
		// cell are cleared.
		attacker, defender := *src, *dst
		b.grid[b.index(from.Row, from.Col)] = nil
		b.grid[b.index(to.Row, to.Col)] = nil
		return MoveResult{
			Combat:   true,
			Outcome:  CombatDraw,
			Removed:  []Piece{attacker, defender},
			Category: CategoryDraw,
		}, true
	}
}

// PlayerPieces returns every piece of one owner in row-major order.
func (b *Board) PlayerPieces(owner int) []PieceAt {
	var pieces []PieceAt
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			p := b.grid[b.index(row, col)]
			if p != nil && p.Owner == owner {
				pieces = append(pieces, PieceAt{Cell: Cell{row, col}, Piece: *p})
			}
		}
	}
	return pieces
}

// PieceCount tallies one owner's pieces on the board.
func (b *Board) PieceCount(owner int) int {
	count := 0
	for _, p := range b.grid {
		if p != nil && p.Owner == owner {
			count++
		}
	}
	return count
}

// TotalPieces tallies all pieces on the board.
func (b *Board) TotalPieces() int {
	count := 0
	for _, p := range b.grid {
		if p != nil {
			count++
		}
	}
	return count
}

func manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
