package rules

import "strconv"

// Player identifies one of the two snakes. The zero value means nobody.
type Player int

const (
	// NoPlayer is used when there is no winner yet
	NoPlayer Player = iota
	// PlayerOne controls the first snake
	PlayerOne
	// PlayerTwo controls the second snake
	PlayerTwo
)

// Players lists both players in tick order.
var Players = [2]Player{PlayerOne, PlayerTwo}

// Valid reports whether p is one of the two players.
func (p Player) Valid() bool { return p == PlayerOne || p == PlayerTwo }

func (p Player) index() int { return int(p) - 1 }

// Other returns the opponent of p.
func (p Player) Other() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

func (p Player) String() string {
	if !p.Valid() {
		return "none"
	}
	return "player" + strconv.Itoa(int(p))
}

// decideWinner returns the winner for the terminal states of both snakes, or
// NoPlayer while both are still in play. When both crash on the same tick the
// larger score wins and a tie goes to player two.
func decideWinner(states [2]TerminalState, scores [2]int) Player {
	one, two := states[0] == Crashed, states[1] == Crashed
	switch {
	case one && two:
		if scores[0] > scores[1] {
			return PlayerOne
		}
		return PlayerTwo
	case one:
		return PlayerTwo
	case two:
		return PlayerOne
	}
	return NoPlayer
}
