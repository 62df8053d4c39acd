package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"rps/game"
)

// Random picks a uniformly random piece among those with legal moves,
// then a uniformly random destination. No look-ahead.
type Random struct {
	rng *rand.Rand
}

// NewRandom builds a Random strategy. Seed 0 seeds from the clock.
func NewRandom(seed uint64) *Random {
	return &Random{rng: newRand(seed)}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func (s *Random) ChooseMove(gs *game.GameState, playerID int) (game.Move, bool) {
	cands := candidates(gs, playerID)
	if len(cands) == 0 {
		return game.Move{}, false
	}
	c := cands[s.rng.Intn(len(cands))]
	return game.Move{From: c.from, To: c.dests[s.rng.Intn(len(c.dests))]}, true
}
