package rules

// EventKind names the feedback events a tick can produce.
type EventKind string

const (
	// EventFoodEaten is emitted when a snake consumes a food
	EventFoodEaten EventKind = "food-eaten"
	// EventMatchEnded is emitted once, on the tick the match ends
	EventMatchEnded EventKind = "match-ended"
)

// Event is a discrete signal for the presentation layer: which sound to play,
// which banner to show. The core never acts on events itself.
type Event struct {
	Kind   EventKind `json:"kind"`
	Player Player    `json:"player,omitempty"`
	Food   FoodType  `json:"food,omitempty"`
	Effect Effect    `json:"effect,omitempty"`
	Winner Player    `json:"winner,omitempty"`
}
