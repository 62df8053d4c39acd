package searcher

import (
	"fmt"

	"rps/game"
)

// Strategy selects one move for a player. The second return is false
// when the player has no legal move, in which case the caller forces a
// turn pass. Implementations never mutate the live game state.
type Strategy interface {
	ChooseMove(gs *game.GameState, playerID int) (game.Move, bool)
}

// candidate pairs an owned piece with its legal destinations. Pieces
// with no destination never become candidates - this is the exclusive
// search frontier shared by every strategy.
type candidate struct {
	from  game.Cell
	piece game.Piece
	dests []game.Cell
}

// candidates enumerates, in row-major piece order, every piece of the
// player that has at least one legal destination.
func candidates(gs *game.GameState, playerID int) []candidate {
	var cands []candidate
	for _, pa := range gs.Board.PlayerPieces(playerID) {
		dests := gs.ValidMoves(pa.Row, pa.Col)
		if len(dests) == 0 {
			continue
		}
		cands = append(cands, candidate{from: pa.Cell, piece: pa.Piece, dests: dests})
	}
	return cands
}

// AgentConfig names a strategy and its tunables, for config files and
// experiment records.
type AgentConfig struct {
	Name       string `yaml:"name"`
	Depth      int    `yaml:"depth"`
	Goroutines int    `yaml:"goroutines"`
	Seed       uint64 `yaml:"seed"`
}

// NewStrategy builds a strategy by name: "random", "basic",
// "advanced", or "minimax".
func NewStrategy(cfg AgentConfig) (Strategy, error) {
	switch cfg.Name {
	case "random":
		return NewRandom(cfg.Seed), nil
	case "basic":
		return NewBasic(cfg.Seed), nil
	case "advanced":
		return NewAdvanced(), nil
	case "minimax":
		var options []Option
		if cfg.Depth > 0 {
			options = append(options, WithDepth(cfg.Depth))
		}
		if cfg.Goroutines > 0 {
			options = append(options, WithGoroutines(cfg.Goroutines))
		}
		return NewMinimax(options...), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", cfg.Name)
	}
}
