package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rps/game"
)

func TestRandomNoMoves(t *testing.T) {
	gs := emptyState(t)
	s := NewRandom(1)

	_, ok := s.ChooseMove(gs, 1)
	require.False(t, ok, "a player without pieces has no move")

	// A board packed with own pieces leaves no destinations either.
	for row := 0; row < gs.Board.Size(); row++ {
		for col := 0; col < gs.Board.Size(); col++ {
			gs.Board.Place(row, col, game.Piece{Type: game.Rock, Owner: 1})
		}
	}
	_, ok = s.ChooseMove(gs, 1)
	require.False(t, ok)
}

func TestRandomChoosesLegalMove(t *testing.T) {
	gs := emptyState(t)
	gs.Board.Place(2, 2, game.Piece{Type: game.Rock, Owner: 1})
	gs.Board.Place(4, 4, game.Piece{Type: game.Paper, Owner: 1})
	s := NewRandom(99)

	for i := 0; i < 50; i++ {
		move, ok := s.ChooseMove(gs, 1)
		require.True(t, ok)
		_, occupied := gs.Board.At(move.From.Row, move.From.Col)
		require.True(t, occupied)
		require.Contains(t, gs.ValidMoves(move.From.Row, move.From.Col), move.To)
	}
}
