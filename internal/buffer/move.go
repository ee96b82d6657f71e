package buffer

import (
	"fmt"

	"github.com/fedit/fedit/internal/text"
)

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Modifier flags for Move.
type Modifier uint8

const (
	// Extend grows the selection instead of clearing it.
	Extend Modifier = 1 << iota
	// Jump moves to the line edge horizontally, or the document edge
	// vertically.
	Jump
)

// PreviousPoint is one grapheme before the cursor, wrapping to the end of
// the previous line.
func (b *Buffer) PreviousPoint() (text.Point, bool) {
	switch {
	case b.cursor.X > 0:
		return text.Pt(b.cursor.X-1, b.cursor.Y), true
	case b.cursor.Y > 0:
		return text.Pt(b.lines[b.cursor.Y-1].Len(), b.cursor.Y-1), true
	}
	return text.Point{}, false
}

// NextPoint is one grapheme after the cursor, wrapping to the start of the
// next line.
func (b *Buffer) NextPoint() (text.Point, bool) {
	switch {
	case b.cursor.X < b.lines[b.cursor.Y].Len():
		return text.Pt(b.cursor.X+1, b.cursor.Y), true
	case b.cursor.Y < len(b.lines)-1:
		return text.Pt(0, b.cursor.Y+1), true
	}
	return text.Point{}, false
}

// MoveCursorTo places the cursor at p. With extend the selection grows to
// p, otherwise it is cleared. p must lie inside the document.
func (b *Buffer) MoveCursorTo(p text.Point, extend bool) {
	if !b.contains(p) {
		panic(fmt.Sprintf("buffer: move to %s outside document (%d lines)", p, len(b.lines)))
	}
	b.moveTo(p, extend)
	b.preferredWidth = b.lines[p.Y].WidthTo(p.X)
}

func (b *Buffer) moveTo(p text.Point, extend bool) {
	if extend {
		b.extendSelection(b.cursor, p)
	} else {
		b.selection = nil
	}
	b.setCursor(p)
}

// Move steps the cursor in dir. Vertical moves aim for the display column
// remembered from the last horizontal move, so the cursor keeps its visual
// position across tabs and wide characters.
func (b *Buffer) Move(dir Direction, mods Modifier) {
	old := b.cursor
	line := b.lines[old.Y]
	next := old
	last := len(b.lines) - 1

	switch dir {
	case Up, Down:
		switch {
		case mods&Jump != 0 && dir == Up:
			next = text.Pt(0, 0)
			b.preferredWidth = 0
		case mods&Jump != 0:
			next = text.Pt(b.lines[last].Len(), last)
			b.preferredWidth = 0
		default:
			y := old.Y - 1
			if dir == Down {
				y = old.Y + 1
			}
			y = max(0, min(y, last))
			if y != old.Y {
				target := b.lines[y]
				x, ok := target.XAtWidth(b.preferredWidth)
				if !ok {
					x = target.Len()
				}
				next = text.Pt(x, y)
			}
		}
	case Left, Right:
		switch {
		case mods&Jump != 0 && dir == Left:
			if old.X > 0 {
				next = text.Pt(0, old.Y)
			} else if old.Y > 0 {
				next = text.Pt(b.lines[old.Y-1].Len(), old.Y-1)
			}
		case mods&Jump != 0:
			if old.X < line.Len() {
				next = text.Pt(line.Len(), old.Y)
			} else if old.Y < last {
				next = text.Pt(0, old.Y+1)
			}
		case dir == Left:
			if p, ok := b.PreviousPoint(); ok {
				next = p
			}
		default:
			if p, ok := b.NextPoint(); ok {
				next = p
			}
		}
		b.preferredWidth = b.lines[next.Y].WidthTo(next.X)
	}

	b.moveTo(next, mods&Extend != 0)
}

// ClickAt moves the cursor to a screen cell relative to the viewport. The
// horizontal offset only applies to the cursor line, which is the only one
// drawn scrolled.
func (b *Buffer) ClickAt(col, row int) {
	y := max(0, min(row+b.offset.Y, len(b.lines)-1))
	goal := max(col, 0)
	if y == b.cursor.Y {
		goal += b.offset.X
	} else {
		b.offset.X = 0
	}
	line := b.lines[y]
	x, ok := line.XAtWidth(goal)
	if !ok {
		x = line.Len()
	}
	b.selection = nil
	b.setCursor(text.Pt(x, y))
	b.preferredWidth = goal
}

// AdjustOffset scrolls the viewport so the cursor stays visible in a
// width x height area. The horizontal offset is in display columns.
func (b *Buffer) AdjustOffset(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if b.cursor.Y < b.offset.Y {
		b.offset.Y = b.cursor.Y
	} else if b.cursor.Y >= b.offset.Y+height {
		b.offset.Y = b.cursor.Y - height + 1
	}

	target := b.CurrentLine().WidthTo(b.cursor.X)
	if target < b.offset.X {
		b.offset.X = target
	} else if target >= b.offset.X+width {
		b.offset.X = target - width + 1
	}
}
