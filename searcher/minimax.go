package searcher

import (
	"math"
	"sync"

	"github.com/rs/zerolog/log"

	"rps/game"
)

// DefaultDepth is plies of look-ahead: own move plus the opponent's
// best response.
const DefaultDepth = 2

type Option func(*Minimax)

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines splits the search by top-level candidate move. The
// chosen move is identical to the sequential search: scores land in a
// slice indexed by candidate and the first maximum wins.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithCollector(c Collector) Option {
	return func(m *Minimax) {
		if c != nil {
			m.collector = c
		}
	}
}

// Minimax is the depth-limited adversarial search with alpha-beta
// pruning. It operates only on detached board snapshots; the live
// board and engine are never touched during search.
type Minimax struct {
	depth      int
	goroutines int
	collector  Collector
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		depth:      DefaultDepth,
		goroutines: 1,
		collector:  NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) ChooseMove(gs *game.GameState, playerID int) (game.Move, bool) {
	snap := gs.Board.Snapshot()
	moves := snap.LegalMoves(playerID)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	m.collector.Start(m.depth, m.goroutines)
	scores := make([]int, len(moves))
	if m.goroutines > 1 {
		m.scoreParallel(snap, moves, playerID, scores)
	} else {
		for i, mv := range moves {
			scores[i] = m.scoreRootMove(snap, mv, playerID)
		}
	}

	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}
	metrics := m.collector.Complete()
	log.Debug().
		Int("player", playerID).
		Int("depth", metrics.Depth).
		Int64("nodes", metrics.Nodes).
		Int64("cutoffs", metrics.Cutoffs).
		Int("score", scores[best]).
		Msg("minimax search complete")

	return moves[best], true
}

func (m *Minimax) scoreParallel(snap game.BoardSnapshot, moves []game.Move, playerID int, scores []int) {
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for w := 0; w < m.goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range task {
				scores[i] = m.scoreRootMove(snap, moves[i], playerID)
			}
		}()
	}
	wg.Wait()
}

func (m *Minimax) scoreRootMove(snap game.BoardSnapshot, mv game.Move, playerID int) int {
	child := snap.Clone()
	child.Apply(mv)
	return m.search(child, m.depth-1, playerID, math.MinInt/2, math.MaxInt/2, false)
}

// search alternates maximizing (the player) and minimizing (the
// opponents, pooled) by depth parity, terminating at depth 0 with the
// static evaluation. Branches prune once the minimizer's best is no
// better than the maximizer's guarantee on the path.
func (m *Minimax) search(snap game.BoardSnapshot, depth, playerID, alpha, beta int, maximizing bool) int {
	m.collector.AddNode()
	if depth <= 0 {
		m.collector.AddLeaf()
		return game.EvaluatePosition(snap, playerID)
	}

	var moves []game.Move
	if maximizing {
		moves = snap.LegalMoves(playerID)
	} else {
		moves = opponentMoves(snap, playerID)
	}
	if len(moves) == 0 {
		// A side with no legal move forfeits the ply; score the
		// position as it stands.
		m.collector.AddLeaf()
		return game.EvaluatePosition(snap, playerID)
	}

	if maximizing {
		best := math.MinInt / 2
		for _, mv := range moves {
			child := snap.Clone()
			child.Apply(mv)
			if v := m.search(child, depth-1, playerID, alpha, beta, false); v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				m.collector.AddCutoff()
				break
			}
		}
		return best
	}

	worst := math.MaxInt / 2
	for _, mv := range moves {
		child := snap.Clone()
		child.Apply(mv)
		if v := m.search(child, depth-1, playerID, alpha, beta, true); v < worst {
			worst = v
		}
		if worst < beta {
			beta = worst
		}
		if beta <= alpha {
			m.collector.AddCutoff()
			break
		}
	}
	return worst
}

// opponentMoves pools the legal moves of every opponent present on the
// snapshot, in ascending player order. With two players this is
// exactly the single opponent's move list.
func opponentMoves(snap game.BoardSnapshot, playerID int) []game.Move {
	var moves []game.Move
	for _, owner := range snap.Owners() {
		if owner != playerID {
			moves = append(moves, snap.LegalMoves(owner)...)
		}
	}
	return moves
}
