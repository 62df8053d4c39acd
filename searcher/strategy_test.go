package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rps/game"
)

// emptyState builds a 2-player state with an empty board; tests place
// pieces by hand instead of using the random setup.
func emptyState(t *testing.T) *game.GameState {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 7
	gs, err := game.NewGameState(cfg, 2)
	require.NoError(t, err)
	gs.Phase = game.InProgressPhase
	return gs
}

func TestCandidatesExcludeBlockedPieces(t *testing.T) {
	gs := emptyState(t)
	// Corner piece fully boxed in by friendlies has no destinations.
	gs.Board.Place(0, 0, game.Piece{Type: game.Rock, Owner: 1})
	gs.Board.Place(0, 1, game.Piece{Type: game.Paper, Owner: 1})
	gs.Board.Place(1, 0, game.Piece{Type: game.Scissors, Owner: 1})

	cands := candidates(gs, 1)
	require.Len(t, cands, 2, "the boxed-in corner piece is not a candidate")
	for _, c := range cands {
		require.NotEqual(t, game.Cell{Row: 0, Col: 0}, c.from)
		require.NotEmpty(t, c.dests)
	}
}

func TestCandidatesEmptyForAbsentPlayer(t *testing.T) {
	gs := emptyState(t)
	require.Empty(t, candidates(gs, 2))
}

func TestNewStrategyByName(t *testing.T) {
	for _, name := range []string{"random", "basic", "advanced", "minimax"} {
		s, err := NewStrategy(AgentConfig{Name: name, Seed: 1})
		require.NoError(t, err)
		require.NotNil(t, s)
	}

	_, err := NewStrategy(AgentConfig{Name: "alphazero"})
	require.Error(t, err)
}
