package game

// Static evaluation weights. Material dominates; type balance and
// board control refine it.
const (
	materialWeight  = 10
	balanceWeight   = 5
	centerBonus     = 3
	adjacencyWeight = 2
)

// EvaluatePosition scores a snapshot from one player's perspective:
// material advantage over all opponents, type balance (minimum count
// across the three owned types), control of the four center cells,
// and pairwise adjacency matchups across the whole board. Higher is
// better for playerID.
func EvaluatePosition(s BoardSnapshot, playerID int) int {
	return materialWeight*materialScore(s, playerID) +
		balanceWeight*typeBalanceScore(s, playerID) +
		centerScore(s, playerID) +
		adjacencyScore(s, playerID)
}

// materialScore is own piece count minus the sum of all opponents'.
func materialScore(s BoardSnapshot, playerID int) int {
	score := 0
	for _, cell := range s.Cells {
		switch {
		case cell.Owner == playerID:
			score++
		case cell.Owner != 0:
			score--
		}
	}
	return score
}

// typeBalanceScore is the minimum count across the three owned types:
// zero as soon as any type is depleted, rewarding a mixed force.
func typeBalanceScore(s BoardSnapshot, playerID int) int {
	counts := s.TypeCounts(playerID)
	minCount := counts[0]
	for _, c := range counts[1:] {
		if c < minCount {
			minCount = c
		}
	}
	return minCount
}

// centerScore grants a bonus per center cell occupied by the player.
func centerScore(s BoardSnapshot, playerID int) int {
	score := 0
	for _, cell := range centerCells(s.Size) {
		if c, ok := s.At(cell.Row, cell.Col); ok && c.Owner == playerID {
			score += centerBonus
		}
	}
	return score
}

// centerCells returns the up-to-four cells nearest the board middle.
func centerCells(size int) []Cell {
	var cells []Cell
	for row := (size - 1) / 2; row <= size/2; row++ {
		for col := (size - 1) / 2; col <= size/2; col++ {
			cells = append(cells, Cell{row, col})
		}
	}
	return cells
}

// adjacencyScore tallies every own piece's orthogonal contact with
// enemy pieces: favorable matchups score up, unfavorable ones down,
// equal types cancel out.
func adjacencyScore(s BoardSnapshot, playerID int) int {
	score := 0
	for row := 0; row < s.Size; row++ {
		for col := 0; col < s.Size; col++ {
			own, ok := s.At(row, col)
			if !ok || own.Owner != playerID {
				continue
			}
			for _, d := range directions {
				enemy, occupied := s.At(row+d.Row, col+d.Col)
				if !occupied || enemy.Owner == playerID {
					continue
				}
				if beats(own.Type, enemy.Type) {
					score += adjacencyWeight
				} else if beats(enemy.Type, own.Type) {
					score -= adjacencyWeight
				}
			}
		}
	}
	return score
}
