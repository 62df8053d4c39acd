package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rps/game"
)

func TestAdvancedTakesWinningCapture(t *testing.T) {
	gs := emptyState(t)
	gs.Board.Place(2, 2, game.Piece{Type: game.Rock, Owner: 1})
	gs.Board.Place(2, 3, game.Piece{Type: game.Scissors, Owner: 2})

	move, ok := NewAdvanced().ChooseMove(gs, 1)
	require.True(t, ok)
	require.Equal(t, game.Move{
		From: game.Cell{Row: 2, Col: 2},
		To:   game.Cell{Row: 2, Col: 3},
	}, move)
}

func TestAdvancedAvoidsLosingAttack(t *testing.T) {
	gs := emptyState(t)
	gs.Board.Place(2, 2, game.Piece{Type: game.Rock, Owner: 1})
	gs.Board.Place(2, 3, game.Piece{Type: game.Paper, Owner: 2})

	move, ok := NewAdvanced().ChooseMove(gs, 1)
	require.True(t, ok)
	require.NotEqual(t, game.Cell{Row: 2, Col: 3}, move.To)
}

func TestAdvancedDeterministicTieBreak(t *testing.T) {
	gs := emptyState(t)
	gs.Board.Place(0, 0, game.Piece{Type: game.Rock, Owner: 1})
	gs.Board.Place(5, 5, game.Piece{Type: game.Paper, Owner: 2})

	s := NewAdvanced()
	first, ok := s.ChooseMove(gs, 1)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		move, ok := s.ChooseMove(gs, 1)
		require.True(t, ok)
		require.Equal(t, first, move, "first max must win every time")
	}
}

func TestAdvancedCentrality(t *testing.T) {
	size := 6
	center := centrality(size, game.Cell{Row: 2, Col: 2})
	corner := centrality(size, game.Cell{Row: 0, Col: 0})
	require.Greater(t, center, corner)
	require.Equal(t, 0.0, corner, "far corner scores zero")
}

func TestAdvancedNoCandidates(t *testing.T) {
	gs := emptyState(t)
	_, ok := NewAdvanced().ChooseMove(gs, 1)
	require.False(t, ok)
}
