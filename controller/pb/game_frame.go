package pb

import "github.com/jrissiusp/SnakeGameMultiplayer/rules"

// GameFrame is the recorded state of a match after one tick.
type GameFrame struct {
	Turn   int64         `json:"Turn"`
	Snakes []*Snake      `json:"Snakes"`
	Food   []*Food       `json:"Food"`
	Events []rules.Event `json:"Events,omitempty"`
	Winner int           `json:"Winner,omitempty"`
}

// Food is a pickup as recorded in a frame.
type Food struct {
	X    int            `json:"X"`
	Y    int            `json:"Y"`
	Type rules.FoodType `json:"Type"`
}

// NewGameFrame converts a match snapshot into a frame. Player details come
// from the game header when it has them.
func NewGameFrame(game *Game, snap rules.Snapshot, events []rules.Event) *GameFrame {
	frame := &GameFrame{
		Turn:   int64(snap.Turn),
		Events: events,
		Winner: int(snap.Winner),
	}

	for i, s := range snap.Snakes {
		snake := &Snake{
			Heading:       s.Heading,
			Score:         s.Score,
			SpeedModifier: s.SpeedModifier,
			EffectTicks:   s.EffectTicks,
		}
		if game != nil && i < len(game.Players) {
			p := game.Players[i]
			snake.ID = p.ID
			snake.Name = p.Name
			snake.Skin = p.Skin
			snake.Color = p.Color
		}
		for _, b := range s.Body() {
			snake.Body = append(snake.Body, toPoint(b))
		}
		if s.State == rules.Crashed {
			snake.Death = &Death{Turn: int64(snap.Turn), Cause: s.Cause}
		}
		frame.Snakes = append(frame.Snakes, snake)
	}

	for _, f := range snap.Food {
		frame.Food = append(frame.Food, &Food{X: f.Position.X, Y: f.Position.Y, Type: f.Type})
	}
	return frame
}

// AliveSnakes returns all the alive snakes
func (gt *GameFrame) AliveSnakes() []*Snake {
	snakes := []*Snake{}

	for _, s := range gt.Snakes {
		if s.Death == nil {
			snakes = append(snakes, s)
		}
	}

	return snakes
}

// DeadSnakes returns all the dead snakes
func (gt *GameFrame) DeadSnakes() []*Snake {
	snakes := []*Snake{}

	for _, s := range gt.Snakes {
		if s.Death != nil {
			snakes = append(snakes, s)
		}
	}

	return snakes
}
