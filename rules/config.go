package rules

const (
	// DefaultSpeedModifier is the number of ticks between two steps of a snake
	// that is not under any food effect.
	DefaultSpeedModifier = 8
	// CounterModulus is where the per snake tick counter wraps.
	CounterModulus = 64
	// EffectDuration is the number of ticks a slow or fast effect adds.
	EffectDuration = 400
	// MaxEffectStack is how many effects the game was meant to stack. It is
	// not enforced: effects stack without a limit.
	MaxEffectStack = 3
	// DefaultBoardWidth is the board width in cells.
	DefaultBoardWidth = 30
	// DefaultBoardHeight is the board height in cells.
	DefaultBoardHeight = 30
	// DefaultCellSize is the side of a cell in pixels.
	DefaultCellSize = 30
)

// Settings bundles the tunables of a match.
type Settings struct {
	Width          int
	Height         int
	CellSize       int
	SpeedModifier  int
	CounterModulus int
	EffectDuration int
}

// DefaultSettings returns the settings of the original game: a 900x900 pixel
// board made of 30 pixel cells.
func DefaultSettings() Settings {
	return Settings{
		Width:          DefaultBoardWidth,
		Height:         DefaultBoardHeight,
		CellSize:       DefaultCellSize,
		SpeedModifier:  DefaultSpeedModifier,
		CounterModulus: CounterModulus,
		EffectDuration: EffectDuration,
	}
}

// withDefaults fills zero values so a partially populated Settings is usable.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Width <= 0 {
		s.Width = d.Width
	}
	if s.Height <= 0 {
		s.Height = d.Height
	}
	if s.CellSize <= 0 {
		s.CellSize = d.CellSize
	}
	if s.SpeedModifier <= 0 {
		s.SpeedModifier = d.SpeedModifier
	}
	if s.CounterModulus <= 0 {
		s.CounterModulus = d.CounterModulus
	}
	if s.EffectDuration <= 0 {
		s.EffectDuration = d.EffectDuration
	}
	return s
}

// Pixels returns the pixel origin of a cell.
func (s Settings) Pixels(p Point) (int, int) {
	return p.X * s.CellSize, p.Y * s.CellSize
}

// StartPositions returns where the two snakes spawn and which way they face.
func (s Settings) StartPositions() ([2]Point, [2]Direction) {
	return [2]Point{
			{X: 1, Y: 1},
			{X: s.Width - 2, Y: s.Height - 2},
		}, [2]Direction{
			DirectionRight,
			DirectionLeft,
		}
}
