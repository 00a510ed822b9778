package rules

import "math"

// Snake is one player's snake. The body is ordered head first, tail last.
type Snake struct {
	body      []Point
	direction Direction
	// heading is the direction of the last step actually taken, direction may
	// already point elsewhere until the next step fires.
	heading Direction

	speedModifier int
	effectTicks   int
	counter       int
	score         int

	settings Settings
}

// NewSnake creates a snake with its head at start. Like in the original game
// a fresh snake grows once, so it starts two segments long with a score of 1.
func NewSnake(start Point, direction Direction, settings Settings) *Snake {
	settings = settings.withDefaults()
	s := &Snake{
		body:          []Point{start},
		direction:     direction,
		heading:       direction,
		speedModifier: settings.SpeedModifier,
		settings:      settings,
	}
	s.Grow()
	return s
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	return s.body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() Point {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Point {
	body := make([]Point, len(s.body))
	copy(body, s.body)
	return body
}

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.body) }

// Score returns the number of growth events.
func (s *Snake) Score() int { return s.score }

// Direction returns the direction the next step will take.
func (s *Snake) Direction() Direction { return s.direction }

// SpeedModifier returns the number of ticks between two steps.
func (s *Snake) SpeedModifier() int { return s.speedModifier }

// EffectTicks returns how long the current speed effect still lasts.
func (s *Snake) EffectTicks() int { return s.effectTicks }

// SetDirection changes the direction unless the request would reverse the
// snake onto itself. Rejected requests are dropped silently.
func (s *Snake) SetDirection(d Direction) {
	if !d.Valid() {
		return
	}
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Advance moves the snake one cell: the tail is removed and a new head is
// prepended. The length does not change.
func (s *Snake) Advance() {
	head := s.Head().Add(s.direction)
	s.body = append([]Point{head}, s.body[:len(s.body)-1]...)
	s.heading = s.direction
}

// Grow appends a copy of the tail. The next Advance leaves it in place, which
// makes the snake one segment longer.
func (s *Snake) Grow() {
	s.body = append(s.body, s.Tail())
	s.score++
}

// CheckFoodCollision reports whether the head is on the food.
func (s *Snake) CheckFoodCollision(f *Food) bool {
	return s.Head().Equal(f.Position)
}

// CheckTerminal evaluates the head against the board bounds and the body of
// the other snake. A snake never collides with itself.
func (s *Snake) CheckTerminal(other []Point) (TerminalState, string) {
	head := s.Head()
	if deathByOutOfBounds(head, s.settings.Width, s.settings.Height) {
		return Crashed, DeathCauseWallCollision
	}
	for _, b := range other {
		if deathByBodyCollision(head, b) {
			return Crashed, DeathCauseSnakeCollision
		}
	}
	return Ongoing, ""
}

// ApplySpeedEffect applies a slow or fast effect. Slow doubles the modifier,
// fast halves it (never below 1); both extend the effect duration. Effects
// stack without a cap. The modifier saturates instead of overflowing; any
// value past the counter modulus already means one step per counter wrap.
func (s *Snake) ApplySpeedEffect(e Effect) {
	switch e {
	case EffectSlow:
		if s.speedModifier <= math.MaxInt/2 {
			s.speedModifier *= 2
		}
	case EffectFast:
		s.speedModifier /= 2
		if s.speedModifier < 1 {
			s.speedModifier = 1
		}
	default:
		return
	}
	s.effectTicks += s.settings.EffectDuration
}

// step runs the timing part of a tick and reports whether the snake moved.
func (s *Snake) step() bool {
	if s.effectTicks == 0 {
		s.speedModifier = s.settings.SpeedModifier
	}

	moved := false
	if s.counter%s.speedModifier == 0 {
		s.Advance()
		moved = true
	}
	s.counter = (s.counter + 1) % s.settings.CounterModulus

	if s.effectTicks > 0 {
		s.effectTicks--
	}
	return moved
}
