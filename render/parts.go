package render

import "github.com/jrissiusp/SnakeGameMultiplayer/rules"

// Part is the role a segment plays in the body drawing.
type Part int

// Parts of a snake body
const (
	PartHead Part = iota
	PartStraight
	PartCorner
	PartTail
)

// Orientation is the way a part faces. Heads and tails face one of the four
// directions, straight parts lie on an axis and corners join two sides.
type Orientation int

// Orientations
const (
	OrientNone Orientation = iota
	OrientUp
	OrientDown
	OrientLeft
	OrientRight
	OrientVertical
	OrientHorizontal
	OrientUpLeft
	OrientUpRight
	OrientDownLeft
	OrientDownRight
)

// Piece is a classified body segment.
type Piece struct {
	rules.Point
	Part        Part
	Orientation Orientation
}

type pieceKey struct {
	part   Part
	orient Orientation
}

var pieceGlyphs = map[pieceKey]rune{
	{PartHead, OrientUp}:    '▲',
	{PartHead, OrientDown}:  '▼',
	{PartHead, OrientLeft}:  '◀',
	{PartHead, OrientRight}: '▶',
	{PartHead, OrientNone}:  '■',

	{PartStraight, OrientVertical}:   '║',
	{PartStraight, OrientHorizontal}: '═',
	{PartStraight, OrientNone}:       '■',

	{PartCorner, OrientUpLeft}:    '╝',
	{PartCorner, OrientUpRight}:   '╚',
	{PartCorner, OrientDownLeft}:  '╗',
	{PartCorner, OrientDownRight}: '╔',

	{PartTail, OrientUp}:    '╻',
	{PartTail, OrientDown}:  '╹',
	{PartTail, OrientLeft}:  '╺',
	{PartTail, OrientRight}: '╸',
	{PartTail, OrientNone}:  '▪',
}

// Glyph returns the character used to draw the piece.
func (p Piece) Glyph() rune {
	if r, ok := pieceGlyphs[pieceKey{p.Part, p.Orientation}]; ok {
		return r
	}
	return '■'
}

var directionOrient = map[rules.Direction]Orientation{
	rules.DirectionUp:    OrientUp,
	rules.DirectionDown:  OrientDown,
	rules.DirectionLeft:  OrientLeft,
	rules.DirectionRight: OrientRight,
}

func offsetDirection(offset rules.Point) rules.Direction {
	for d := range directionOrient {
		if d.Vector().Equal(offset) {
			return d
		}
	}
	return rules.DirectionNone
}

func axis(d rules.Direction) Orientation {
	switch d {
	case rules.DirectionUp, rules.DirectionDown:
		return OrientVertical
	case rules.DirectionLeft, rules.DirectionRight:
		return OrientHorizontal
	}
	return OrientNone
}

func corner(a, b rules.Direction) Orientation {
	vertical, horizontal := a, b
	if a.Horizontal() {
		vertical, horizontal = b, a
	}
	switch {
	case vertical == rules.DirectionUp && horizontal == rules.DirectionLeft:
		return OrientUpLeft
	case vertical == rules.DirectionUp && horizontal == rules.DirectionRight:
		return OrientUpRight
	case vertical == rules.DirectionDown && horizontal == rules.DirectionLeft:
		return OrientDownLeft
	case vertical == rules.DirectionDown && horizontal == rules.DirectionRight:
		return OrientDownRight
	}
	return OrientNone
}

// Pieces classifies every segment of a body, head first. A valid heading
// decides where the head faces. Without one the head faces away from the
// first distinct segment behind it, since stacked segments left behind by
// growth have zero offsets.
func Pieces(body []rules.Point, heading rules.Direction) []Piece {
	segs := rules.Segments(body)
	pieces := make([]Piece, len(segs))
	for i, seg := range segs {
		p := Piece{Point: seg.Point}
		prev := offsetDirection(seg.Prev)
		next := offsetDirection(seg.Next)

		switch {
		case i == 0:
			p.Part = PartHead
			if heading.Valid() {
				p.Orientation = directionOrient[heading]
				break
			}
			for j := 0; next == rules.DirectionNone && j < len(segs); j++ {
				next = offsetDirection(segs[j].Next)
			}
			if next != rules.DirectionNone {
				p.Orientation = directionOrient[next.Opposite()]
			}
		case i == len(segs)-1:
			p.Part = PartTail
			if prev != rules.DirectionNone {
				p.Orientation = directionOrient[prev.Opposite()]
			}
		case prev == rules.DirectionNone || next == rules.DirectionNone:
			p.Part = PartStraight
			p.Orientation = axis(prev)
			if p.Orientation == OrientNone {
				p.Orientation = axis(next)
			}
		case prev.Horizontal() == next.Horizontal():
			p.Part = PartStraight
			p.Orientation = axis(prev)
		default:
			p.Part = PartCorner
			p.Orientation = corner(prev, next)
		}
		pieces[i] = p
	}
	return pieces
}
