package searcher

import (
	"golang.org/x/exp/rand"

	"rps/game"
)

// riskChance is the fixed probability of taking a losing-or-draw move
// when a piece has neither a capture nor a safe cell available.
const riskChance = 0.2

// Basic is the greedy heuristic: walk candidate pieces in shuffled
// order and for each one prefer capture over safety over a calculated
// risk, falling back to a uniformly random move when nothing qualifies.
type Basic struct {
	rng *rand.Rand
}

// NewBasic builds a Basic strategy. Seed 0 seeds from the clock.
func NewBasic(seed uint64) *Basic {
	return &Basic{rng: newRand(seed)}
}

func (s *Basic) ChooseMove(gs *game.GameState, playerID int) (game.Move, bool) {
	cands := candidates(gs, playerID)
	if len(cands) == 0 {
		return game.Move{}, false
	}

	shuffled := make([]candidate, len(cands))
	copy(shuffled, cands)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, c := range shuffled {
		var capturing, safe, risky []game.Cell
		for _, d := range c.dests {
			target, occupied := gs.Board.At(d.Row, d.Col)
			switch {
			case !occupied:
				safe = append(safe, d)
			case game.ResolveCombat(c.piece.Type, target.Type) == game.AttackerWins:
				capturing = append(capturing, d)
			default:
				risky = append(risky, d)
			}
		}

		switch {
		case len(capturing) > 0:
			return game.Move{From: c.from, To: capturing[s.rng.Intn(len(capturing))]}, true
		case len(safe) > 0:
			return game.Move{From: c.from, To: safe[s.rng.Intn(len(safe))]}, true
		case s.rng.Float64() < riskChance:
			return game.Move{From: c.from, To: risky[s.rng.Intn(len(risky))]}, true
		}
	}

	// Last resort: any legal move.
	c := shuffled[s.rng.Intn(len(shuffled))]
	return game.Move{From: c.from, To: c.dests[s.rng.Intn(len(c.dests))]}, true
}
