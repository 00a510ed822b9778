package rules

// Segment is one body cell with the offsets to its neighbours. Prev points
// towards the head and is zero for the head, Next points towards the tail and
// is zero for the tail. Stacked segments, as left by Grow, also read as zero.
type Segment struct {
	Point
	Prev Point `json:"prev"`
	Next Point `json:"next"`
}

// SnakeState is the read-only view of a snake for one frame.
type SnakeState struct {
	Player        Player        `json:"player"`
	Segments      []Segment     `json:"segments"`
	Heading       Direction     `json:"heading"`
	Score         int           `json:"score"`
	SpeedModifier int           `json:"speedModifier"`
	EffectTicks   int           `json:"effectTicks"`
	State         TerminalState `json:"state"`
	Cause         string        `json:"cause,omitempty"`
}

// Body returns the plain positions, head first.
func (s SnakeState) Body() []Point {
	body := make([]Point, len(s.Segments))
	for i, seg := range s.Segments {
		body[i] = seg.Point
	}
	return body
}

// Snapshot is everything a presentation layer needs to draw one frame.
type Snapshot struct {
	Turn     int           `json:"turn"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	CellSize int           `json:"cellSize"`
	Snakes   [2]SnakeState `json:"snakes"`
	Food     [2]Food       `json:"food"`
	Over     bool          `json:"over"`
	Winner   Player        `json:"winner"`
}

// Snapshot copies the current state of the match.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		Turn:     m.turn,
		Width:    m.settings.Width,
		Height:   m.settings.Height,
		CellSize: m.settings.CellSize,
		Over:     m.over,
		Winner:   m.winner,
	}
	for i, p := range Players {
		s := m.snakes[i]
		snap.Snakes[i] = SnakeState{
			Player:        p,
			Segments:      Segments(s.body),
			Heading:       s.heading,
			Score:         s.score,
			SpeedModifier: s.speedModifier,
			EffectTicks:   s.effectTicks,
			State:         m.states[i],
			Cause:         m.causes[i],
		}
	}
	for i, f := range m.food {
		snap.Food[i] = *f
	}
	return snap
}

// Segments pairs every body cell with the offsets to its neighbours.
func Segments(body []Point) []Segment {
	segs := make([]Segment, len(body))
	for i, p := range body {
		segs[i].Point = p
		if i > 0 {
			segs[i].Prev = body[i-1].Sub(p)
		}
		if i < len(body)-1 {
			segs[i].Next = body[i+1].Sub(p)
		}
	}
	return segs
}
