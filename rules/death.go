package rules

// TerminalState is evaluated for every snake once per tick.
type TerminalState int

const (
	// Ongoing means the snake is still in play
	Ongoing TerminalState = iota
	// Crashed means the snake hit a wall or the other snake
	Crashed
)

func (t TerminalState) String() string {
	if t == Crashed {
		return "crashed"
	}
	return "ongoing"
}

func deathByBodyCollision(head, body Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head Point, width, height int) bool {
	return (head.X < 0) || (head.X >= width) || (head.Y < 0) || (head.Y >= height)
}
