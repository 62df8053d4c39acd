package searcher

import (
	"math"

	"rps/game"
)

// Per-move scoring weights for the single-ply heuristic.
const (
	captureScore    = 10
	lossScore       = -15
	drawScore       = -5
	balanceScore    = 5
	threatBonus     = 3
	threatenedMalus = -5
)

// Advanced scores every legal (piece, destination) pair one ply deep
// and plays the first move reaching the maximum score. Candidate order
// is stable (pieces row-major, destinations in scan order), so ties
// break deterministically.
type Advanced struct{}

func NewAdvanced() *Advanced {
	return &Advanced{}
}

func (s *Advanced) ChooseMove(gs *game.GameState, playerID int) (game.Move, bool) {
	cands := candidates(gs, playerID)
	if len(cands) == 0 {
		return game.Move{}, false
	}

	var best game.Move
	bestScore := math.Inf(-1)
	for _, c := range cands {
		for _, dest := range c.dests {
			if score := scoreMove(gs, c, dest, playerID); score > bestScore {
				bestScore = score
				best = game.Move{From: c.from, To: dest}
			}
		}
	}
	return best, true
}

// scoreMove sums the additive components: combat outcome, centrality
// of the destination, type balance after the hypothetical move, and a
// threat scan of the destination's neighbors.
func scoreMove(gs *game.GameState, c candidate, dest game.Cell, playerID int) float64 {
	score := 0.0
	survives := true

	if target, occupied := gs.Board.At(dest.Row, dest.Col); occupied {
		switch game.ResolveCombat(c.piece.Type, target.Type) {
		case game.AttackerWins:
			score += captureScore
		case game.DefenderWins:
			score += lossScore
			survives = false
		default:
			score += drawScore
			survives = false
		}
	}

	score += centrality(gs.Board.Size(), dest)

	if balancedAfter(gs, c.piece, playerID, survives) {
		score += balanceScore
	}

	score += threatScan(gs, c.piece.Type, dest, playerID)

	return score
}

// centrality rewards proximity to the board center, highest at the
// middle and zero at the far corners.
func centrality(size int, dest game.Cell) float64 {
	center := float64(size-1) / 2
	dist := math.Abs(float64(dest.Row)-center) + math.Abs(float64(dest.Col)-center)
	return 2*center - dist
}

// balancedAfter reports whether the player keeps a non-zero count of
// all three piece types after the hypothetical move. Losing and
// drawing moves remove the mover itself.
func balancedAfter(gs *game.GameState, mover game.Piece, playerID int, survives bool) bool {
	var counts [3]int
	for _, pa := range gs.Board.PlayerPieces(playerID) {
		counts[pa.Piece.Type]++
	}
	if !survives {
		counts[mover.Type]--
	}
	return counts[game.Rock] > 0 && counts[game.Paper] > 0 && counts[game.Scissors] > 0
}

// threatScan inspects the four neighbors of the destination: enemies
// the mover would beat next turn score up, enemies that would beat the
// mover score down.
func threatScan(gs *game.GameState, moverType game.PieceType, dest game.Cell, playerID int) float64 {
	score := 0.0
	for _, d := range [4]game.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: -1, Col: 0}} {
		neighbor, occupied := gs.Board.At(dest.Row+d.Row, dest.Col+d.Col)
		if !occupied || neighbor.Owner == playerID {
			continue
		}
		switch game.ResolveCombat(moverType, neighbor.Type) {
		case game.AttackerWins:
			score += threatBonus
		case game.DefenderWins:
			score += threatenedMalus
		}
	}
	return score
}
