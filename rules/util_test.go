package rules

// seqRand replays values in order, wrapping around. Each value is reduced
// modulo n so the same sequence can feed positions and type draws.
type seqRand struct {
	values []int
	i      int
}

func (r *seqRand) Intn(n int) int {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v % n
}

func (r *seqRand) reset(values ...int) {
	r.values = values
	r.i = 0
}

func testSnake(dir Direction, body ...Point) *Snake {
	return &Snake{
		body:          body,
		direction:     dir,
		heading:       dir,
		speedModifier: DefaultSpeedModifier,
		score:         len(body) - 1,
		settings:      DefaultSettings(),
	}
}

// newTestMatch builds a match whose food spawns at (0,0) until rng is reset.
func newTestMatch(settings Settings) (*Match, *seqRand) {
	rng := &seqRand{values: []int{0}}
	return NewMatch(settings, rng), rng
}
