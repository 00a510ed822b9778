package rules

// Direction is one of the four unit steps a snake can take. DirectionNone is
// used by inputs to say that no key was pressed.
type Direction int

const (
	// DirectionNone means no movement request
	DirectionNone Direction = iota
	// DirectionUp moves towards row 0
	DirectionUp
	// DirectionDown moves away from row 0
	DirectionDown
	// DirectionLeft moves towards column 0
	DirectionLeft
	// DirectionRight moves away from column 0
	DirectionRight
)

var directionNames = map[Direction]string{
	DirectionNone:  "none",
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return "unknown"
}

// Vector returns the one cell step for the direction.
func (d Direction) Vector() Point {
	switch d {
	case DirectionUp:
		return Point{X: 0, Y: -1}
	case DirectionDown:
		return Point{X: 0, Y: 1}
	case DirectionLeft:
		return Point{X: -1, Y: 0}
	case DirectionRight:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Valid reports whether d is one of the four steps.
func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionNone
}

// Horizontal reports whether the direction moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Input carries the pending movement request of each player for one tick.
type Input struct {
	Moves [2]Direction
}

// Set records the movement request for a player.
func (in *Input) Set(p Player, d Direction) {
	if !p.Valid() {
		return
	}
	in.Moves[p.index()] = d
}

// Move returns the movement request for a player.
func (in Input) Move(p Player) Direction {
	if !p.Valid() {
		return DirectionNone
	}
	return in.Moves[p.index()]
}
