package rules

// FoodType is the kind of pickup. The zero value is FoodNormal.
type FoodType int

const (
	// FoodNormal grows the eater by one
	FoodNormal FoodType = iota
	// FoodSlow grows the eater by one and slows the other snake down
	FoodSlow
	// FoodFast grows the eater by one and speeds the other snake up
	FoodFast
	// FoodSilver grows the eater by three
	FoodSilver
	// FoodGolden grows the eater by five
	FoodGolden
)

// Effect is what a food does to the opponent of the eater.
type Effect int

const (
	// EffectNone leaves the opponent alone
	EffectNone Effect = iota
	// EffectSlow doubles the opponent's speed modifier
	EffectSlow
	// EffectFast halves the opponent's speed modifier
	EffectFast
)

type foodKind struct {
	name   string
	growth int
	effect Effect
	// upper is the inclusive upper bound of the type draw.
	upper int
}

// foodKinds is ordered by draw threshold. A draw of 99 matches no kind.
var foodKinds = []struct {
	t FoodType
	foodKind
}{
	{FoodNormal, foodKind{name: "normal", growth: 1, effect: EffectNone, upper: 70}},
	{FoodSlow, foodKind{name: "slow", growth: 1, effect: EffectSlow, upper: 80}},
	{FoodFast, foodKind{name: "fast", growth: 1, effect: EffectFast, upper: 90}},
	{FoodSilver, foodKind{name: "silver", growth: 3, effect: EffectNone, upper: 97}},
	{FoodGolden, foodKind{name: "golden", growth: 5, effect: EffectNone, upper: 98}},
}

// foodTypeDraw is the exclusive upper bound of the type draw.
const foodTypeDraw = 100

func (t FoodType) kind() foodKind {
	for _, k := range foodKinds {
		if k.t == t {
			return k.foodKind
		}
	}
	return foodKind{name: "unknown"}
}

func (t FoodType) String() string { return t.kind().name }

// Growth returns how many segments the eater gains.
func (t FoodType) Growth() int { return t.kind().growth }

// Effect returns what eating the food does to the opponent.
func (t FoodType) Effect() Effect { return t.kind().effect }

func (e Effect) String() string {
	switch e {
	case EffectSlow:
		return "slow"
	case EffectFast:
		return "fast"
	}
	return "none"
}

// drawFoodType maps a draw in [0,100) to a type. A draw of 99 keeps prev.
func drawFoodType(draw int, prev FoodType) FoodType {
	for _, k := range foodKinds {
		if draw <= k.upper {
			return k.t
		}
	}
	return prev
}

// Rand is the source of randomness used for food placement. *rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Food is the single active pickup at a position.
type Food struct {
	Position Point
	Type     FoodType
}

// Spawn moves the food to a random cell and draws a new type. The candidate
// cell is tried once: if either body occupies it the food keeps its previous
// position. The type is drawn regardless.
func (f *Food) Spawn(rng Rand, settings Settings, occupiedA, occupiedB []Point) {
	settings = settings.withDefaults()
	pos := Point{
		X: rng.Intn(settings.Width),
		Y: rng.Intn(settings.Height),
	}
	if !containsPoint(occupiedA, pos) && !containsPoint(occupiedB, pos) {
		f.Position = pos
	}
	f.Type = drawFoodType(rng.Intn(foodTypeDraw), f.Type)
}

// Consume grows the eater by the food's growth and applies the food's effect
// to the other snake. It returns the consumed type.
func (f *Food) Consume(snake, other *Snake) FoodType {
	k := f.Type.kind()
	for i := 0; i < k.growth; i++ {
		snake.Grow()
	}
	other.ApplySpeedEffect(k.effect)
	return f.Type
}
