// Package render draws recorded and live matches on a terminal.
package render

import (
	"strings"

	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
)

// Canvas is a grid of character cells.
type Canvas interface {
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Size() (int, int)
	Clear() error
	Flush() error
}

// Termbox draws to the terminal. termbox.Init must have been called.
type Termbox struct{}

// SetCell sets one cell of the back buffer.
func (Termbox) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

// Size returns the terminal size.
func (Termbox) Size() (int, int) { return termbox.Size() }

// Clear blanks the back buffer.
func (Termbox) Clear() error { return termbox.Clear(defaultColor, bgColor) }

// Flush shows the back buffer.
func (Termbox) Flush() error { return termbox.Flush() }

// Buffer is an in-memory canvas. Writes outside of it are dropped.
type Buffer struct {
	Width, Height int
	Cells         []termbox.Cell
	Flushes       int
}

// NewBuffer creates a blank buffer of w by h cells.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{Width: w, Height: h}
	_ = b.Clear()
	return b
}

// SetCell implements Canvas.
func (b *Buffer) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Cells[y*b.Width+x] = termbox.Cell{Ch: ch, Fg: fg, Bg: bg}
}

// Size implements Canvas.
func (b *Buffer) Size() (int, int) { return b.Width, b.Height }

// Clear implements Canvas.
func (b *Buffer) Clear() error {
	b.Cells = make([]termbox.Cell, b.Width*b.Height)
	for i := range b.Cells {
		b.Cells[i].Ch = ' '
	}
	return nil
}

// Flush implements Canvas.
func (b *Buffer) Flush() error {
	b.Flushes++
	return nil
}

// Cell returns the cell at x, y.
func (b *Buffer) Cell(x, y int) termbox.Cell {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return termbox.Cell{}
	}
	return b.Cells[y*b.Width+x]
}

// Row returns the characters of line y with trailing blanks trimmed.
func (b *Buffer) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < b.Width; x++ {
		sb.WriteRune(b.Cell(x, y).Ch)
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns all rows joined by newlines.
func (b *Buffer) String() string {
	rows := make([]string, b.Height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}
