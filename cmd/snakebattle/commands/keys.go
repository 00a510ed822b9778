package commands

import (
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	termbox "github.com/nsf/termbox-go"
)

var playerOneKeys = map[rune]rules.Direction{
	'w': rules.DirectionUp,
	's': rules.DirectionDown,
	'a': rules.DirectionLeft,
	'd': rules.DirectionRight,
	'W': rules.DirectionUp,
	'S': rules.DirectionDown,
	'A': rules.DirectionLeft,
	'D': rules.DirectionRight,
}

var playerTwoKeys = map[termbox.Key]rules.Direction{
	termbox.KeyArrowUp:    rules.DirectionUp,
	termbox.KeyArrowDown:  rules.DirectionDown,
	termbox.KeyArrowLeft:  rules.DirectionLeft,
	termbox.KeyArrowRight: rules.DirectionRight,
}

// steer maps a key press to a movement request.
func steer(ev termbox.Event) (rules.Player, rules.Direction, bool) {
	if ev.Type != termbox.EventKey {
		return rules.NoPlayer, rules.DirectionNone, false
	}
	if ev.Ch != 0 {
		if d, ok := playerOneKeys[ev.Ch]; ok {
			return rules.PlayerOne, d, true
		}
		return rules.NoPlayer, rules.DirectionNone, false
	}
	if d, ok := playerTwoKeys[ev.Key]; ok {
		return rules.PlayerTwo, d, true
	}
	return rules.NoPlayer, rules.DirectionNone, false
}
