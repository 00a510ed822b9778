package rules

// Match owns the two snakes and the two foods of one game. It is not safe for
// concurrent use; the host loop calls Tick and Snapshot from one goroutine.
type Match struct {
	settings Settings
	rng      Rand

	snakes [2]*Snake
	food   [2]*Food
	states [2]TerminalState
	causes [2]string

	turn   int
	winner Player
	over   bool
}

// NewMatch places both snakes at their start positions and spawns both foods.
func NewMatch(settings Settings, rng Rand) *Match {
	settings = settings.withDefaults()
	starts, dirs := settings.StartPositions()

	m := &Match{
		settings: settings,
		rng:      rng,
	}
	for i := range m.snakes {
		m.snakes[i] = NewSnake(starts[i], dirs[i], settings)
	}
	for i := range m.food {
		f := &Food{}
		f.Spawn(rng, settings, m.snakes[0].body, m.snakes[1].body)
		m.food[i] = f
	}
	return m
}

// Settings returns the settings the match runs with.
func (m *Match) Settings() Settings { return m.settings }

// Snake returns the snake of player p.
func (m *Match) Snake(p Player) *Snake {
	if !p.Valid() {
		return nil
	}
	return m.snakes[p.index()]
}

// Food returns one of the two foods, i is 0 or 1.
func (m *Match) Food(i int) *Food {
	if i < 0 || i >= len(m.food) {
		return nil
	}
	return m.food[i]
}

// Turn returns the number of ticks run so far.
func (m *Match) Turn() int { return m.turn }

// Over reports whether at least one snake crashed.
func (m *Match) Over() bool { return m.over }

// Winner returns the winning player once the match is over.
func (m *Match) Winner() Player { return m.winner }
