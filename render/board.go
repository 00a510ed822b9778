package render

import (
	"errors"
	"fmt"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	termbox "github.com/nsf/termbox-go"
)

const (
	boardLeft = 2
	boardTop  = 2
)

// Frame draws a frame of a match and flushes the canvas.
func Frame(c Canvas, game *pb.Game, frame *pb.GameFrame) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	if game == nil {
		return errors.New("received nil game")
	}
	if err := c.Clear(); err != nil {
		return err
	}

	renderTitle(c, boardLeft, boardTop, game, int(frame.Turn))
	box(c, boardLeft, boardTop, game.Width, game.Height)

	originX, originY := boardLeft+1, boardTop+1
	renderFood(c, originX, originY, frame.Food)
	for _, s := range frame.Snakes {
		renderSnake(c, originX, originY, s)
	}

	sideX := originX + game.Width + 3
	row := boardTop
	for _, s := range frame.Snakes {
		row = renderSidebar(c, sideX, row, s)
	}
	if frame.Winner != 0 {
		tbprint(c, sideX, row, termbox.ColorDefault|termbox.AttrBold, bgColor,
			fmt.Sprintf("%s wins!", playerName(game, frame.Winner)))
		// Both crashed: the scores decided it.
		if len(frame.Snakes) > 0 && len(frame.AliveSnakes()) == 0 {
			tbprint(c, sideX, row+1, defaultColor, defaultColor, "both crashed, decided on score")
		}
	}

	return c.Flush()
}

func renderTitle(c Canvas, left, top int, game *pb.Game, turn int) {
	title := fmt.Sprintf("Snake Battle - Turn %d", turn)
	if game.CellSize > 0 {
		settings := rules.Settings{CellSize: game.CellSize}
		w, h := settings.Pixels(rules.Point{X: game.Width, Y: game.Height})
		title = fmt.Sprintf("%s - %dx%d px", title, w, h)
	}
	tbprint(c, left, top-1, defaultColor, defaultColor, title)
}

func renderFood(c Canvas, left, top int, food []*pb.Food) {
	for _, f := range food {
		ch, fg := FoodGlyph(f.Type)
		c.SetCell(left+f.X, top+f.Y, ch, fg, bgColor)
	}
}

func renderSnake(c Canvas, left, top int, s *pb.Snake) {
	body := make([]rules.Point, len(s.Body))
	for i, b := range s.Body {
		body[i] = rules.Point{X: b.X, Y: b.Y}
	}

	color := SkinColor(rules.Skin(s.Skin))
	if s.Death != nil {
		color |= termbox.AttrReverse
	}

	// Tail first so stacked cells show the piece closest to the head.
	pieces := Pieces(body, s.Heading)
	for i := len(pieces) - 1; i >= 0; i-- {
		p := pieces[i]
		fg := color
		if p.Part == PartHead {
			fg |= termbox.AttrBold
		}
		c.SetCell(left+p.X, top+p.Y, p.Glyph(), fg, bgColor)
	}
}

func renderSidebar(c Canvas, x, y int, s *pb.Snake) int {
	color := SkinColor(rules.Skin(s.Skin))
	c.SetCell(x, y, '■', color, bgColor)
	tbprint(c, x+2, y, defaultColor, defaultColor, fmt.Sprintf("%s  score %d", s.Name, s.Score))
	y++

	speed := fmt.Sprintf("speed 1/%d", s.SpeedModifier)
	if s.EffectTicks > 0 {
		effect := "fast"
		if s.SpeedModifier > rules.DefaultSpeedModifier {
			effect = "slow"
		}
		speed = fmt.Sprintf("%s (%s, %d ticks)", speed, effect, s.EffectTicks)
	}
	tbprint(c, x+2, y, defaultColor, defaultColor, speed)
	y++

	if s.Death != nil {
		tbprint(c, x+2, y, termbox.ColorRed, defaultColor, fmt.Sprintf("crashed: %s", s.Death.Cause))
		y++
	}
	return y + 1
}

func playerName(game *pb.Game, player int) string {
	if i := player - 1; i >= 0 && i < len(game.Players) && game.Players[i].Name != "" {
		return game.Players[i].Name
	}
	return fmt.Sprintf("Player %d", player)
}
