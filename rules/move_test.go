package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnake_Advance(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  Point
	}{
		{Direction: DirectionUp, Expected: Point{X: 5, Y: 4}},
		{Direction: DirectionDown, Expected: Point{X: 5, Y: 6}},
		{Direction: DirectionLeft, Expected: Point{X: 4, Y: 5}},
		{Direction: DirectionRight, Expected: Point{X: 6, Y: 5}},
	}

	for _, test := range tests {
		s := testSnake(test.Direction, Point{X: 5, Y: 5}, Point{X: 5, Y: 5}, Point{X: 5, Y: 5})
		s.Advance()
		require.Equal(t, test.Expected, s.Head(), "Direction: %s", test.Direction)
		require.Equal(t, 3, s.Len(), "Direction: %s", test.Direction)
	}
}

func TestSnake_AdvanceDropsTail(t *testing.T) {
	s := testSnake(DirectionRight, Point{X: 3, Y: 1}, Point{X: 2, Y: 1}, Point{X: 1, Y: 1})
	s.Advance()
	require.Equal(t, []Point{{X: 4, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}}, s.Body())
}

func TestSnake_SetDirectionRejectsReversal(t *testing.T) {
	tests := []struct {
		Current   Direction
		Requested Direction
		Expected  Direction
	}{
		{DirectionRight, DirectionLeft, DirectionRight},
		{DirectionLeft, DirectionRight, DirectionLeft},
		{DirectionUp, DirectionDown, DirectionUp},
		{DirectionDown, DirectionUp, DirectionDown},
		{DirectionRight, DirectionUp, DirectionUp},
		{DirectionRight, DirectionDown, DirectionDown},
		{DirectionUp, DirectionLeft, DirectionLeft},
		{DirectionDown, DirectionRight, DirectionRight},
		{DirectionRight, DirectionRight, DirectionRight},
		{DirectionUp, DirectionNone, DirectionUp},
		{DirectionUp, Direction(7), DirectionUp},
		{DirectionLeft, Direction(-1), DirectionLeft},
	}

	for _, test := range tests {
		s := testSnake(test.Current, Point{X: 5, Y: 5})
		s.SetDirection(test.Requested)
		require.Equal(t, test.Expected, s.Direction(), "%s then %s", test.Current, test.Requested)
	}
}

func TestSnake_UnknownDirectionKeepsMoving(t *testing.T) {
	s := testSnake(DirectionRight, Point{X: 5, Y: 5}, Point{X: 4, Y: 5})
	s.SetDirection(Direction(7))
	s.Advance()
	require.Equal(t, Point{X: 6, Y: 5}, s.Head())
	require.False(t, Direction(7).Valid())
	require.False(t, DirectionNone.Valid())
	require.True(t, DirectionDown.Valid())
}

func TestSnake_ReversalAfterTurn(t *testing.T) {
	s := testSnake(DirectionRight, Point{X: 5, Y: 5})
	s.SetDirection(DirectionUp)
	s.SetDirection(DirectionDown)
	require.Equal(t, DirectionUp, s.Direction())
	s.SetDirection(DirectionLeft)
	require.Equal(t, DirectionLeft, s.Direction())
}

func TestInput_SetIgnoresUnknownPlayer(t *testing.T) {
	in := Input{}
	in.Set(PlayerTwo, DirectionDown)
	in.Set(NoPlayer, DirectionUp)
	require.Equal(t, DirectionNone, in.Move(PlayerOne))
	require.Equal(t, DirectionDown, in.Move(PlayerTwo))
	require.Equal(t, DirectionNone, in.Move(NoPlayer))
}
