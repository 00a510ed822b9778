package rules

// Skin is the look picked by a player on the selection screen, 1 to 5.
type Skin int

const (
	// SkinGreen is the default look of player one
	SkinGreen Skin = iota + 1
	// SkinWhite is the second choice
	SkinWhite
	// SkinBlue is the third choice
	SkinBlue
	// SkinRed is the fourth choice
	SkinRed
	// SkinYellow is the fifth choice
	SkinYellow
)

var skinColors = map[Skin]string{
	SkinGreen:  "#628f49",
	SkinWhite:  "#e8e8e8",
	SkinBlue:   "#1e4fcd",
	SkinRed:    "#8f4949",
	SkinYellow: "#cdcb1e",
}

var skinNames = map[Skin]string{
	SkinGreen:  "green",
	SkinWhite:  "white",
	SkinBlue:   "blue",
	SkinRed:    "red",
	SkinYellow: "yellow",
}

// Skins lists the selectable skins in menu order.
var Skins = []Skin{SkinGreen, SkinWhite, SkinBlue, SkinRed, SkinYellow}

// Valid reports whether s is one of the five skins.
func (s Skin) Valid() bool {
	_, ok := skinColors[s]
	return ok
}

// Color returns the hex color of the skin, green for unknown skins.
func (s Skin) Color() string {
	if c, ok := skinColors[s]; ok {
		return c
	}
	return skinColors[SkinGreen]
}

func (s Skin) String() string {
	if n, ok := skinNames[s]; ok {
		return n
	}
	return "unknown"
}
