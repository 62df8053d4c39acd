package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluatePositionMaterial(t *testing.T) {
	b := NewBoard(6)
	b.Place(0, 0, Piece{Type: Rock, Owner: 1})
	b.Place(0, 2, Piece{Type: Rock, Owner: 1})
	b.Place(5, 5, Piece{Type: Rock, Owner: 2})
	snap := b.Snapshot()

	// +1 material for player 1, -1 for player 2; no balance, center, or
	// adjacency contributions in this position.
	require.Equal(t, 10, EvaluatePosition(snap, 1))
	require.Equal(t, -10, EvaluatePosition(snap, 2))
}

func TestEvaluatePositionMaterialSumsAllOpponents(t *testing.T) {
	b := NewBoard(6)
	b.Place(0, 0, Piece{Type: Rock, Owner: 1})
	b.Place(0, 2, Piece{Type: Rock, Owner: 2})
	b.Place(5, 5, Piece{Type: Rock, Owner: 3})
	snap := b.Snapshot()

	require.Equal(t, -10, EvaluatePosition(snap, 1), "1 own minus 2 enemies")
}

func TestEvaluatePositionTypeBalance(t *testing.T) {
	b := NewBoard(6)
	b.Place(0, 0, Piece{Type: Rock, Owner: 1})
	b.Place(0, 2, Piece{Type: Paper, Owner: 1})
	b.Place(0, 4, Piece{Type: Scissors, Owner: 1})
	snap := b.Snapshot()

	// Material 3*10 plus min type count 1*5.
	require.Equal(t, 35, EvaluatePosition(snap, 1))
}

func TestEvaluatePositionCenterControl(t *testing.T) {
	require.ElementsMatch(t,
		[]Cell{{2, 2}, {2, 3}, {3, 2}, {3, 3}},
		centerCells(6))

	b := NewBoard(6)
	b.Place(2, 2, Piece{Type: Rock, Owner: 1})
	snap := b.Snapshot()

	// Material 10 plus one center cell.
	require.Equal(t, 13, EvaluatePosition(snap, 1))
}

func TestEvaluatePositionAdjacency(t *testing.T) {
	b := NewBoard(6)
	b.Place(0, 0, Piece{Type: Rock, Owner: 1})
	b.Place(0, 1, Piece{Type: Scissors, Owner: 2})
	snap := b.Snapshot()

	// Material 0, favorable adjacency +2 for player 1.
	require.Equal(t, 2, EvaluatePosition(snap, 1))
	// From player 2's side the same contact is unfavorable.
	require.Equal(t, -2, EvaluatePosition(snap, 2))

	// Equal types cancel.
	b2 := NewBoard(6)
	b2.Place(0, 0, Piece{Type: Rock, Owner: 1})
	b2.Place(0, 1, Piece{Type: Rock, Owner: 2})
	require.Equal(t, 0, EvaluatePosition(b2.Snapshot(), 1))
}
