package buffer

import (
	"github.com/fedit/fedit/internal/logger"
	"github.com/fedit/fedit/internal/text"
)

// extendSelection keeps the existing anchor, or starts a new selection at
// from, and moves the active end to to.
func (b *Buffer) extendSelection(from, to text.Point) {
	if b.selection == nil {
		b.selection = &Selection{Anchor: from, Active: to}
		return
	}
	b.selection.Active = to
}

// SelectionRange returns the selection in document order, clamped to the
// current content.
func (b *Buffer) SelectionRange() (text.Point, text.Point, bool) {
	if b.selection == nil {
		return text.Point{}, text.Point{}, false
	}
	a, z := b.selection.Range()
	return b.clamp(a), b.clamp(z), true
}

// rowSpan is the grapheme range [from, to) of row y covered by [a, z).
func (b *Buffer) rowSpan(a, z text.Point, y int) (int, int, bool) {
	if y < a.Y || y > z.Y {
		return 0, 0, false
	}
	n := b.lines[y].Len()
	switch {
	case a.Y == z.Y:
		return a.X, z.X, true
	case y == a.Y:
		return a.X, n, true
	case y == z.Y:
		return 0, z.X, true
	default:
		return 0, n, true
	}
}

// Copy stores the selected span in the clipboard, one line per covered row.
// It reports false when nothing is selected.
func (b *Buffer) Copy() bool {
	a, z, ok := b.SelectionRange()
	if !ok {
		return false
	}
	lines := make([]text.Line, 0, z.Y-a.Y+1)
	for y := a.Y; y <= z.Y; y++ {
		from, to, _ := b.rowSpan(a, z, y)
		lines = append(lines, b.lines[y].Slice(from, to))
	}
	b.clipboard = lines
	logger.Debug("copied", "from", a.String(), "to", z.String(), "lines", len(lines))
	return true
}

// HighlightFor returns the selected grapheme range on row y for drawing.
func (b *Buffer) HighlightFor(y int) (int, int, bool) {
	a, z, ok := b.SelectionRange()
	if !ok || y < 0 || y >= len(b.lines) {
		return 0, 0, false
	}
	return b.rowSpan(a, z, y)
}
