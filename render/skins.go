package render

import (
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	termbox "github.com/nsf/termbox-go"
)

var skinColors = map[rules.Skin]termbox.Attribute{
	rules.SkinGreen:  termbox.ColorGreen,
	rules.SkinWhite:  termbox.ColorWhite,
	rules.SkinBlue:   termbox.ColorBlue,
	rules.SkinRed:    termbox.ColorRed,
	rules.SkinYellow: termbox.ColorYellow,
}

// SkinColor is the terminal color of a skin. Unknown skins draw green.
func SkinColor(s rules.Skin) termbox.Attribute {
	if c, ok := skinColors[s]; ok {
		return c
	}
	return termbox.ColorGreen
}

type foodGlyph struct {
	ch rune
	fg termbox.Attribute
}

var foodGlyphs = map[rules.FoodType]foodGlyph{
	rules.FoodNormal: {'●', termbox.ColorRed},
	rules.FoodSlow:   {'*', termbox.ColorCyan},
	rules.FoodFast:   {'!', termbox.ColorMagenta},
	rules.FoodSilver: {'◆', termbox.ColorWhite | termbox.AttrBold},
	rules.FoodGolden: {'◆', termbox.ColorYellow | termbox.AttrBold},
}

// FoodGlyph returns the character and color a food is drawn with.
func FoodGlyph(t rules.FoodType) (rune, termbox.Attribute) {
	g, ok := foodGlyphs[t]
	if !ok {
		return '?', defaultColor
	}
	return g.ch, g.fg
}
