package rules

const (
	// DeathCauseSnakeCollision is the death reason when a head runs into the other snake
	DeathCauseSnakeCollision = "snake-collision"
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
)
