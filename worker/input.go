package worker

import (
	"sync"

	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
)

// Input collects direction requests from the keyboard goroutine. The runner
// drains it once per tick, the latest request of each player wins.
type Input struct {
	lock    sync.Mutex
	pending rules.Input
}

// Set records the latest requested direction for p.
func (in *Input) Set(p rules.Player, d rules.Direction) {
	in.lock.Lock()
	defer in.lock.Unlock()

	in.pending.Set(p, d)
}

// Drain returns the pending requests and clears them.
func (in *Input) Drain() rules.Input {
	in.lock.Lock()
	defer in.lock.Unlock()

	out := in.pending
	in.pending = rules.Input{}
	return out
}
