package buffer

import (
	"github.com/fedit/fedit/internal/history"
	"github.com/fedit/fedit/internal/logger"
	"github.com/fedit/fedit/internal/text"
)

// record applies redo and pushes it with the inverse built by undoFor from
// the state after the edit.
func (b *Buffer) record(redo history.Action, undoFor func(before text.Point) history.Action) {
	before := b.cursor
	b.ApplyAction(redo)
	b.undo.Add(redo, undoFor(before))
}

// InsertCharacter types r at the cursor. When r merges with the grapheme to
// its left into a single cluster (combining marks, emoji modifiers) that
// grapheme is rewritten in place and no history entry is made.
func (b *Buffer) InsertCharacter(r rune) {
	g := string(r)
	if b.cursor.X > 0 {
		line := &b.lines[b.cursor.Y]
		prev, _ := line.Grapheme(b.cursor.X - 1)
		if text.Combines(prev, g) {
			line.SetGrapheme(b.cursor.X-1, prev+g)
			logger.Debug("combined grapheme", "at", b.cursor.String())
			return
		}
	}

	start := b.cursor
	b.record(history.Insert(start, text.LineOf(g)), func(text.Point) history.Action {
		return history.Remove(start, text.Pt(start.X+1, start.Y))
	})
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	b.record(history.Insert(b.cursor, text.Line{}, text.Line{}), func(before text.Point) history.Action {
		return history.Remove(before, b.cursor)
	})
}

// DeleteBackward removes the grapheme, or line break, before the cursor.
// It reports false at the start of the document.
func (b *Buffer) DeleteBackward() bool {
	start, ok := b.PreviousPoint()
	if !ok {
		logger.Debug("delete backward at document start")
		return false
	}

	// Capture what is about to disappear: one grapheme, or the line break
	// when start sits at the end of the previous row.
	var undo history.Action
	if start.Y < b.cursor.Y {
		undo = history.Insert(start, text.Line{}, text.Line{})
	} else {
		g, _ := b.CharacterAt(start)
		undo = history.Insert(start, text.LineOf(g))
	}

	redo := history.Remove(start, b.cursor)
	b.ApplyAction(redo)
	b.undo.Add(redo, undo)
	return true
}

// Paste inserts the clipboard at the cursor. It reports false when nothing
// has been copied.
func (b *Buffer) Paste() bool {
	if b.clipboard == nil {
		logger.Debug("paste with empty clipboard")
		return false
	}
	payload := append([]text.Line(nil), b.clipboard...)
	b.record(history.Insert(b.cursor, payload...), func(before text.Point) history.Action {
		return history.Remove(before, b.cursor)
	})
	logger.Debug("pasted", "lines", len(payload), "cursor", b.cursor.String())
	return true
}

// Undo reverts the most recent applied edit.
func (b *Buffer) Undo() bool {
	a, ok := b.undo.Undo()
	if !ok {
		return false
	}
	b.ApplyAction(a)
	logger.Debug("undo", "action", a.String(), "index", b.undo.Index())
	return true
}

// Redo re-applies the most recently undone edit.
func (b *Buffer) Redo() bool {
	a, ok := b.undo.Redo()
	if !ok {
		return false
	}
	b.ApplyAction(a)
	logger.Debug("redo", "action", a.String(), "index", b.undo.Index())
	return true
}
