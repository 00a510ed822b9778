package rules

// GameStatus is the lifecycle state of a recorded match.
type GameStatus string

const (
	// GameStatusStopped represents a match that was abandoned before it ended
	GameStatusStopped GameStatus = "stopped"
	// GameStatusRunning represents a running match
	GameStatusRunning GameStatus = "running"
	// GameStatusError represents a match that ended because of an error
	GameStatusError GameStatus = "error"
	// GameStatusComplete represents a match that has a winner
	GameStatusComplete GameStatus = "complete"
)
