package render

import (
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

func fill(c Canvas, x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			c.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(c Canvas, x, y int, fg, bg termbox.Attribute, msg string) {
	for _, r := range msg {
		c.SetCell(x, y, r, fg, bg)
		x += runewidth.RuneWidth(r)
	}
}

// tbprintCentered prints msg centered on line y.
func tbprintCentered(c Canvas, y int, fg, bg termbox.Attribute, msg string) {
	w, _ := c.Size()
	x := (w - runewidth.StringWidth(msg)) / 2
	if x < 0 {
		x = 0
	}
	tbprint(c, x, y, fg, bg, msg)
}

func box(c Canvas, left, top, width, height int) {
	right := left + width + 1
	bottom := top + height + 1
	for i := top + 1; i < bottom; i++ {
		c.SetCell(left, i, '│', defaultColor, bgColor)
		c.SetCell(right, i, '│', defaultColor, bgColor)
	}

	c.SetCell(left, top, '┌', defaultColor, bgColor)
	c.SetCell(left, bottom, '└', defaultColor, bgColor)
	c.SetCell(right, top, '┐', defaultColor, bgColor)
	c.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(c, left+1, top, width, 1, termbox.Cell{Ch: '─'})
	fill(c, left+1, bottom, width, 1, termbox.Cell{Ch: '─'})
}
