package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegments(t *testing.T) {
	segs := Segments([]Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}})
	require.Equal(t, []Segment{
		{Point: Point{X: 3, Y: 1}, Prev: Point{}, Next: Point{X: -1, Y: 0}},
		{Point: Point{X: 2, Y: 1}, Prev: Point{X: 1, Y: 0}, Next: Point{X: 0, Y: 1}},
		{Point: Point{X: 2, Y: 2}, Prev: Point{X: 0, Y: -1}, Next: Point{}},
	}, segs)
}

func TestMatchSnapshot(t *testing.T) {
	m, _ := newTestMatch(DefaultSettings())
	snap := m.Snapshot()

	require.Equal(t, 0, snap.Turn)
	require.Equal(t, DefaultBoardWidth, snap.Width)
	require.Equal(t, DefaultCellSize, snap.CellSize)
	require.False(t, snap.Over)
	require.Equal(t, NoPlayer, snap.Winner)

	require.Equal(t, PlayerOne, snap.Snakes[0].Player)
	require.Equal(t, []Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, snap.Snakes[0].Body())
	require.Equal(t, DirectionRight, snap.Snakes[0].Heading)
	require.Equal(t, PlayerTwo, snap.Snakes[1].Player)
	require.Equal(t, []Point{{X: 28, Y: 28}, {X: 28, Y: 28}}, snap.Snakes[1].Body())
	require.Equal(t, DirectionLeft, snap.Snakes[1].Heading)

	for _, f := range snap.Food {
		require.Equal(t, Point{}, f.Position)
		require.Equal(t, FoodNormal, f.Type)
	}
}

func TestMatchSnapshotIsACopy(t *testing.T) {
	m, _ := newTestMatch(DefaultSettings())
	snap := m.Snapshot()
	snap.Snakes[0].Segments[0].X = 20
	snap.Food[0].Position = Point{X: 9, Y: 9}

	require.Equal(t, Point{X: 1, Y: 1}, m.Snake(PlayerOne).Head())
	require.Equal(t, Point{}, m.Food(0).Position)
}

func TestSettingsPixels(t *testing.T) {
	x, y := DefaultSettings().Pixels(Point{X: 2, Y: 3})
	require.Equal(t, 60, x)
	require.Equal(t, 90, y)
}
