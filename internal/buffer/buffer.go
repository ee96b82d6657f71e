// Package buffer is the editable document: grapheme lines, a cursor, an
// optional selection, a clipboard and a linear undo history.
//
// Every content change goes through ApplyAction. Editing operations build a
// forward action, apply it, derive the inverse from the resulting state and
// record both on the undo stack. Boundary conditions are no-ops; a call that
// would break the cursor or content invariants panics.
//
// A Buffer is not safe for concurrent use.
package buffer

import (
	"fmt"
	"strings"

	"github.com/fedit/fedit/internal/history"
	"github.com/fedit/fedit/internal/text"
)

// DefaultHistoryLimit bounds the undo stack when Options leaves it unset.
const DefaultHistoryLimit = 1000

type Options struct {
	// HistoryLimit caps the undo stack. Zero selects DefaultHistoryLimit,
	// a negative value keeps unbounded history.
	HistoryLimit int
}

// Selection is an unordered pair of points. Anchor stays where the
// selection began; Active follows the cursor.
type Selection struct {
	Anchor text.Point
	Active text.Point
}

// Range returns the selection endpoints in document order.
func (s Selection) Range() (text.Point, text.Point) {
	return text.Order(s.Anchor, s.Active)
}

type Buffer struct {
	lines          []text.Line
	cursor         text.Point
	offset         text.Point
	preferredWidth int
	selection      *Selection
	clipboard      []text.Line
	undo           *history.UndoStack
}

func New(opt Options) *Buffer {
	limit := opt.HistoryLimit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	return &Buffer{
		lines: []text.Line{{}},
		undo:  history.NewUndoStack(limit),
	}
}

// NewFromText builds a buffer from newline-separated text.
func NewFromText(s string, opt Options) *Buffer {
	b := New(opt)
	b.lines = splitLines(s)
	return b
}

// SetText replaces the whole document, resetting cursor, selection and
// history. The clipboard survives.
func (b *Buffer) SetText(s string) {
	b.lines = splitLines(s)
	b.cursor = text.Point{}
	b.offset = text.Point{}
	b.preferredWidth = 0
	b.selection = nil
	b.undo = history.NewUndoStack(b.undo.Limit())
}

// splitLines drops a single trailing newline, so "a\n" loads as one line.
func splitLines(s string) []text.Line {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	parts := strings.Split(s, "\n")
	lines := make([]text.Line, len(parts))
	for i, p := range parts {
		lines[i] = text.NewLine(p)
	}
	return lines
}

// Text joins the lines with "\n" exactly as stored.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Lines returns copies of the document lines.
func (b *Buffer) Lines() []text.Line {
	out := make([]text.Line, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.Clone()
	}
	return out
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns row y. It panics when y is out of range.
func (b *Buffer) Line(y int) text.Line {
	return b.lines[y]
}

func (b *Buffer) CurrentLine() text.Line {
	return b.lines[b.cursor.Y]
}

// CharacterAt returns the grapheme at p, if any.
func (b *Buffer) CharacterAt(p text.Point) (string, bool) {
	if p.Y < 0 || p.Y >= len(b.lines) {
		return "", false
	}
	return b.lines[p.Y].Grapheme(p.X)
}

func (b *Buffer) Cursor() text.Point { return b.cursor }

func (b *Buffer) Offset() text.Point { return b.offset }

func (b *Buffer) Selection() (Selection, bool) {
	if b.selection == nil {
		return Selection{}, false
	}
	return *b.selection, true
}

func (b *Buffer) ClearSelection() { b.selection = nil }

// Clipboard returns the last copied span.
func (b *Buffer) Clipboard() ([]text.Line, bool) {
	if b.clipboard == nil {
		return nil, false
	}
	return append([]text.Line(nil), b.clipboard...), true
}

func (b *Buffer) History() *history.UndoStack { return b.undo }

// contains reports whether p addresses a cursor position in the document.
func (b *Buffer) contains(p text.Point) bool {
	return p.Y >= 0 && p.Y < len(b.lines) && p.X >= 0 && p.X <= b.lines[p.Y].Len()
}

func (b *Buffer) mustContain(p text.Point, what string) {
	if !b.contains(p) {
		panic(fmt.Sprintf("buffer: %s %s outside document (%d lines)", what, p, len(b.lines)))
	}
}

// clamp pulls a possibly stale point back inside the document.
func (b *Buffer) clamp(p text.Point) text.Point {
	p.Y = max(0, min(p.Y, len(b.lines)-1))
	p.X = max(0, min(p.X, b.lines[p.Y].Len()))
	return p
}

func (b *Buffer) checkInvariants() {
	if len(b.lines) == 0 {
		panic("buffer: content is empty")
	}
	b.mustContain(b.cursor, "cursor")
}
