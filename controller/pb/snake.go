package pb

import "github.com/jrissiusp/SnakeGameMultiplayer/rules"

// Snake is a snake as recorded in a frame.
type Snake struct {
	ID            string          `json:"ID"`
	Name          string          `json:"Name"`
	Color         string          `json:"Color"`
	Skin          int             `json:"Skin"`
	Body          []*Point        `json:"Body"`
	Heading       rules.Direction `json:"Heading,omitempty"`
	Score         int             `json:"Score"`
	SpeedModifier int             `json:"SpeedModifier"`
	EffectTicks   int             `json:"EffectTicks"`
	Death         *Death          `json:"Death,omitempty"`
}

// Death records when and why a snake crashed.
type Death struct {
	Turn  int64  `json:"Turn"`
	Cause string `json:"Cause"`
}

// Head returns the first point in the body
func (s *Snake) Head() *Point {
	if len(s.Body) == 0 {
		return nil
	}
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() *Point {
	if len(s.Body) == 0 {
		return nil
	}
	return s.Body[len(s.Body)-1]
}
