package render

import (
	"testing"

	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	"github.com/stretchr/testify/require"
)

func pts(coords ...int) []rules.Point {
	var out []rules.Point
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, rules.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func glyphs(pieces []Piece) string {
	var out []rune
	for _, p := range pieces {
		out = append(out, p.Glyph())
	}
	return string(out)
}

func TestPieces(t *testing.T) {
	tests := []struct {
		name   string
		body   []rules.Point
		glyphs string
	}{
		{"corner", pts(3, 1, 2, 1, 2, 2, 2, 3), "▶╔║╹"},
		{"up", pts(1, 1, 1, 2, 1, 3), "▲║╹"},
		{"left", pts(1, 1, 2, 1, 3, 1), "◀═╸"},
		{"left then down", pts(1, 3, 1, 2, 2, 2), "▼╔╸"},
		{"fresh snake", pts(1, 1, 1, 1), "■▪"},
		{"grown", pts(3, 1, 2, 1, 1, 1, 1, 1), "▶══▪"},
		{"stacked head", pts(4, 4, 4, 4, 4, 5), "▲║╹"},
		{"single", pts(2, 2), "■"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := Pieces(tt.body, rules.DirectionNone)
			require.Len(t, pieces, len(tt.body))
			require.Equal(t, tt.glyphs, glyphs(pieces))
		})
	}
}

func TestPiecesParts(t *testing.T) {
	pieces := Pieces(pts(3, 1, 2, 1, 2, 2, 2, 3), rules.DirectionNone)
	require.Equal(t, PartHead, pieces[0].Part)
	require.Equal(t, OrientRight, pieces[0].Orientation)
	require.Equal(t, PartCorner, pieces[1].Part)
	require.Equal(t, OrientDownRight, pieces[1].Orientation)
	require.Equal(t, PartStraight, pieces[2].Part)
	require.Equal(t, OrientVertical, pieces[2].Orientation)
	require.Equal(t, PartTail, pieces[3].Part)
	require.Equal(t, OrientDown, pieces[3].Orientation)
	require.Equal(t, rules.Point{X: 2, Y: 3}, pieces[3].Point)
}

func TestPiecesHeading(t *testing.T) {
	tests := []struct {
		name    string
		body    []rules.Point
		heading rules.Direction
		glyphs  string
	}{
		{"fresh snake", pts(1, 1, 1, 1), rules.DirectionRight, "▶▪"},
		{"single", pts(2, 2), rules.DirectionDown, "▼"},
		{"matches offsets", pts(1, 1, 2, 1, 3, 1), rules.DirectionLeft, "◀═╸"},
		{"unknown heading", pts(1, 1, 2, 1, 3, 1), rules.Direction(9), "◀═╸"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.glyphs, glyphs(Pieces(tt.body, tt.heading)))
		})
	}
}

func TestSkinColor(t *testing.T) {
	for _, s := range rules.Skins {
		require.Contains(t, skinColors, s)
	}
	require.Equal(t, SkinColor(rules.SkinGreen), SkinColor(rules.Skin(42)))
}

func TestFoodGlyph(t *testing.T) {
	for _, f := range []rules.FoodType{rules.FoodNormal, rules.FoodSlow, rules.FoodFast, rules.FoodSilver, rules.FoodGolden} {
		ch, _ := FoodGlyph(f)
		require.NotEqual(t, '?', ch, f.String())
	}
	_, silver := FoodGlyph(rules.FoodSilver)
	_, golden := FoodGlyph(rules.FoodGolden)
	require.NotEqual(t, silver, golden)
}
