package render

import (
	"fmt"

	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	termbox "github.com/nsf/termbox-go"
)

// StartScreen draws the title screen.
func StartScreen(c Canvas) error {
	if err := c.Clear(); err != nil {
		return err
	}
	_, h := c.Size()
	mid := h / 2

	tbprintCentered(c, mid-3, termbox.ColorGreen|termbox.AttrBold, bgColor, "S N A K E   B A T T L E")
	tbprintCentered(c, mid, defaultColor, bgColor, "Press SPACE to start")
	tbprintCentered(c, mid+2, defaultColor, bgColor, "Player 1: W A S D    Player 2: arrow keys")
	tbprintCentered(c, mid+3, defaultColor, bgColor, "Esc quits")
	return c.Flush()
}

// SkinScreen draws the skin selection for a player.
func SkinScreen(c Canvas, p rules.Player) error {
	if err := c.Clear(); err != nil {
		return err
	}
	_, h := c.Size()
	top := h/2 - len(rules.Skins)/2 - 2

	num := 1
	if p == rules.PlayerTwo {
		num = 2
	}
	tbprintCentered(c, top, defaultColor|termbox.AttrBold, bgColor,
		fmt.Sprintf("Player %d, choose your skin (1-%d)", num, len(rules.Skins)))

	w, _ := c.Size()
	left := w/2 - 6
	for i, s := range rules.Skins {
		y := top + 2 + i
		tbprint(c, left, y, defaultColor, bgColor, fmt.Sprintf("%d", i+1))
		fill(c, left+2, y, 3, 1, termbox.Cell{Ch: '█', Fg: SkinColor(s)})
		tbprint(c, left+6, y, SkinColor(s), bgColor, s.String())
	}
	return c.Flush()
}

// WinScreen draws the result of a match.
func WinScreen(c Canvas, winner rules.Player, scores [2]int) error {
	if err := c.Clear(); err != nil {
		return err
	}
	_, h := c.Size()
	mid := h / 2

	title := "DRAW"
	switch winner {
	case rules.PlayerOne:
		title = "PLAYER 1 WINS"
	case rules.PlayerTwo:
		title = "PLAYER 2 WINS"
	}
	tbprintCentered(c, mid-2, termbox.ColorYellow|termbox.AttrBold, bgColor, title)
	tbprintCentered(c, mid, defaultColor, bgColor,
		fmt.Sprintf("Player 1: %d    Player 2: %d", scores[0], scores[1]))
	tbprintCentered(c, mid+2, defaultColor, bgColor, "SPACE plays again, ENTER quits")
	return c.Flush()
}
