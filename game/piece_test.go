package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCombatTruthTable(t *testing.T) {
	// Full 3x3 table: equal types draw, one direction of each unequal
	// pair wins for the attacker, the other favors the defender.
	cases := []struct {
		attacker PieceType
		defender PieceType
		want     CombatOutcome
	}{
		{Rock, Rock, CombatDraw},
		{Rock, Paper, DefenderWins},
		{Rock, Scissors, AttackerWins},
		{Paper, Rock, AttackerWins},
		{Paper, Paper, CombatDraw},
		{Paper, Scissors, DefenderWins},
		{Scissors, Rock, DefenderWins},
		{Scissors, Paper, AttackerWins},
		{Scissors, Scissors, CombatDraw},
	}

	for _, tc := range cases {
		got := ResolveCombat(tc.attacker, tc.defender)
		require.Equalf(t, tc.want, got, "%v vs %v", tc.attacker, tc.defender)
	}
}

func TestResolveCombatAntisymmetric(t *testing.T) {
	for _, a := range PieceTypes {
		for _, b := range PieceTypes {
			if a == b {
				require.Equal(t, CombatDraw, ResolveCombat(a, b))
				continue
			}
			forward := ResolveCombat(a, b)
			backward := ResolveCombat(b, a)
			require.NotEqual(t, forward, backward, "%v vs %v must not mirror", a, b)
			require.NotEqual(t, CombatDraw, forward)
			require.NotEqual(t, CombatDraw, backward)
		}
	}
}

func TestCategoryForTypes(t *testing.T) {
	require.Equal(t, CategoryRock, categoryFor(Rock))
	require.Equal(t, CategoryPaper, categoryFor(Paper))
	require.Equal(t, CategoryScissors, categoryFor(Scissors))
}
