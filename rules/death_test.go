package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckTerminal_WallCollision(t *testing.T) {
	points := []Point{
		{X: -1, Y: 1},
		{X: 30, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 30},
	}
	for _, p := range points {
		s := testSnake(DirectionRight, p)
		state, cause := s.CheckTerminal(nil)
		require.Equal(t, Crashed, state, "head %v", p)
		require.Equal(t, DeathCauseWallCollision, cause, "head %v", p)
	}
}

func TestCheckTerminal_EdgeCellsAreInside(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 29, Y: 0},
		{X: 0, Y: 29},
		{X: 29, Y: 29},
	}
	for _, p := range points {
		s := testSnake(DirectionRight, p)
		state, _ := s.CheckTerminal(nil)
		require.Equal(t, Ongoing, state, "head %v", p)
	}
}

func TestCheckTerminal_OtherSnakeCollision(t *testing.T) {
	s := testSnake(DirectionRight, Point{X: 5, Y: 5})
	state, cause := s.CheckTerminal([]Point{{X: 6, Y: 5}, {X: 5, Y: 5}})
	require.Equal(t, Crashed, state)
	require.Equal(t, DeathCauseSnakeCollision, cause)
}

func TestCheckTerminal_OtherHead(t *testing.T) {
	s := testSnake(DirectionRight, Point{X: 6, Y: 5}, Point{X: 5, Y: 5})
	state, cause := s.CheckTerminal([]Point{{X: 6, Y: 5}, {X: 7, Y: 5}})
	require.Equal(t, Crashed, state)
	require.Equal(t, DeathCauseSnakeCollision, cause)
}

func TestCheckTerminal_SelfCollisionIsNotACrash(t *testing.T) {
	s := testSnake(DirectionUp,
		Point{X: 4, Y: 4},
		Point{X: 3, Y: 4},
		Point{X: 3, Y: 3},
		Point{X: 4, Y: 3},
		Point{X: 4, Y: 4},
	)
	state, cause := s.CheckTerminal([]Point{{X: 10, Y: 10}})
	require.Equal(t, Ongoing, state)
	require.Empty(t, cause)
}
