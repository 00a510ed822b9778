package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecideWinner(t *testing.T) {
	tests := []struct {
		Name     string
		States   [2]TerminalState
		Scores   [2]int
		Expected Player
	}{
		{"both in play", [2]TerminalState{Ongoing, Ongoing}, [2]int{3, 4}, NoPlayer},
		{"player one crashed", [2]TerminalState{Crashed, Ongoing}, [2]int{9, 1}, PlayerTwo},
		{"player two crashed", [2]TerminalState{Ongoing, Crashed}, [2]int{1, 9}, PlayerOne},
		{"both crashed, one longer", [2]TerminalState{Crashed, Crashed}, [2]int{10, 7}, PlayerOne},
		{"both crashed, two longer", [2]TerminalState{Crashed, Crashed}, [2]int{7, 10}, PlayerTwo},
		{"both crashed, tie", [2]TerminalState{Crashed, Crashed}, [2]int{5, 5}, PlayerTwo},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, decideWinner(test.States, test.Scores), test.Name)
	}
}

func TestPlayer_Other(t *testing.T) {
	require.Equal(t, PlayerTwo, PlayerOne.Other())
	require.Equal(t, PlayerOne, PlayerTwo.Other())
	require.Equal(t, NoPlayer, NoPlayer.Other())
	require.Equal(t, "player1", PlayerOne.String())
	require.Equal(t, "none", NoPlayer.String())
}
