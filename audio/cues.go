// Package audio plays short synthesized cues for match events.
package audio

import "github.com/jrissiusp/SnakeGameMultiplayer/rules"

// Cue is one of the sounds the game can play.
type Cue int

const (
	// CueEat plays when a snake eats a food without an effect
	CueEat Cue = iota
	// CueFreeze plays when a slow food lands on the opponent
	CueFreeze
	// CueShock plays when a fast food lands on the opponent
	CueShock
	// CueChoose plays on menu selections
	CueChoose
	// CueWin plays when a match ends
	CueWin
)

var cueNames = [...]string{"eat", "freeze", "shock", "choose", "win"}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// CueForEvent maps a match event to the cue it should play.
func CueForEvent(e rules.Event) (Cue, bool) {
	switch e.Kind {
	case rules.EventFoodEaten:
		switch e.Food {
		case rules.FoodSlow:
			return CueFreeze, true
		case rules.FoodFast:
			return CueShock, true
		default:
			return CueEat, true
		}
	case rules.EventMatchEnded:
		return CueWin, true
	}
	return 0, false
}
