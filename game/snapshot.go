package game

// SnapCell is one snapshot cell. Owner 0 marks an empty cell.
type SnapCell struct {
	Type  PieceType
	Owner int
}

// BoardSnapshot is a detached, behavior-free copy of board contents
// used as search-tree state. It is a flat value-semantics array, cheap
// to clone per branch, and never aliases the live board.
type BoardSnapshot struct {
	Size  int
	Cells []SnapCell // row-major
}

// Snapshot copies the board contents into a detached snapshot.
func (b *Board) Snapshot() BoardSnapshot {
	snap := BoardSnapshot{
		Size:  b.size,
		Cells: make([]SnapCell, len(b.grid)),
	}
	for i, p := range b.grid {
		if p != nil {
			snap.Cells[i] = SnapCell{Type: p.Type, Owner: p.Owner}
		}
	}
	return snap
}

func (s BoardSnapshot) Clone() BoardSnapshot {
	cells := make([]SnapCell, len(s.Cells))
	copy(cells, s.Cells)
	return BoardSnapshot{Size: s.Size, Cells: cells}
}

func (s BoardSnapshot) InBounds(row, col int) bool {
	return row >= 0 && row < s.Size && col >= 0 && col < s.Size
}

func (s BoardSnapshot) index(row, col int) int {
	return row*s.Size + col
}

// At returns the cell at (row, col); the second return is false for an
// empty or out-of-bounds cell.
func (s BoardSnapshot) At(row, col int) (SnapCell, bool) {
	if !s.InBounds(row, col) {
		return SnapCell{}, false
	}
	cell := s.Cells[s.index(row, col)]
	return cell, cell.Owner != 0
}

// Apply plays a move on the snapshot in place, resolving combat with
// the same rules as the live board. Callers simulate by cloning first;
// moves are assumed to come from LegalMoves.
func (s *BoardSnapshot) Apply(m Move) {
	from, to := s.index(m.From.Row, m.From.Col), s.index(m.To.Row, m.To.Col)
	attacker := s.Cells[from]
	defender := s.Cells[to]

	if defender.Owner == 0 {
		s.Cells[to] = attacker
		s.Cells[from] = SnapCell{}
		return
	}

	switch ResolveCombat(attacker.Type, defender.Type) {
	case AttackerWins:
		s.Cells[to] = attacker
		s.Cells[from] = SnapCell{}
	case DefenderWins:
		s.Cells[from] = SnapCell{}
	default: // draw removes both
		s.Cells[from] = SnapCell{}
		s.Cells[to] = SnapCell{}
	}
}

// LegalMoves re-derives one player's legal moves from the snapshot
// alone (ownership, adjacency, bounds), independent of the live
// engine. The order is stable: pieces row-major, destinations in scan
// order, which is what makes first-max tie-breaking reproducible.
func (s BoardSnapshot) LegalMoves(playerID int) []Move {
	var moves []Move
	for row := 0; row < s.Size; row++ {
		for col := 0; col < s.Size; col++ {
			cell := s.Cells[s.index(row, col)]
			if cell.Owner != playerID {
				continue
			}
			for _, d := range directions {
				r, c := row+d.Row, col+d.Col
				if !s.InBounds(r, c) {
					continue
				}
				if target := s.Cells[s.index(r, c)]; target.Owner == playerID {
					continue
				}
				moves = append(moves, Move{From: Cell{row, col}, To: Cell{r, c}})
			}
		}
	}
	return moves
}

// Owners returns the IDs of players with pieces on the snapshot, in
// ascending order.
func (s BoardSnapshot) Owners() []int {
	seen := [4]bool{} // player IDs are 1..3
	for _, cell := range s.Cells {
		if cell.Owner > 0 && cell.Owner < len(seen) {
			seen[cell.Owner] = true
		}
	}
	var owners []int
	for id, ok := range seen {
		if ok {
			owners = append(owners, id)
		}
	}
	return owners
}

// PieceCount tallies one owner's pieces on the snapshot.
func (s BoardSnapshot) PieceCount(owner int) int {
	count := 0
	for _, cell := range s.Cells {
		if cell.Owner == owner {
			count++
		}
	}
	return count
}

// TypeCounts tallies one owner's pieces by type, indexed by PieceType.
func (s BoardSnapshot) TypeCounts(owner int) [3]int {
	var counts [3]int
	for _, cell := range s.Cells {
		if cell.Owner == owner {
			counts[cell.Type]++
		}
	}
	return counts
}
