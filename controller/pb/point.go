package pb

import "github.com/jrissiusp/SnakeGameMultiplayer/rules"

// Point is a board cell as recorded in a frame.
type Point struct {
	X int `json:"X"`
	Y int `json:"Y"`
}

// Equal checks if 2 points are the same x,y coordinate
func (p *Point) Equal(other *Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func toPoint(p rules.Point) *Point {
	return &Point{X: p.X, Y: p.Y}
}
