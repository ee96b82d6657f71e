package buffer

import (
	"fmt"

	"github.com/fedit/fedit/internal/history"
	"github.com/fedit/fedit/internal/text"
)

// ApplyAction is the only place document content changes. It moves the
// cursor to the end of an insert, or to the start of a remove.
func (b *Buffer) ApplyAction(a history.Action) {
	if err := a.Validate(); err != nil {
		panic(fmt.Sprintf("buffer: %v", err))
	}
	switch a.Kind {
	case history.KindInsert:
		b.applyInsert(a.Start, a.Payload)
	case history.KindRemove:
		b.applyRemove(a.Start, a.End)
	}
	b.checkInvariants()
}

func (b *Buffer) applyInsert(start text.Point, payload []text.Line) {
	if start.Y < 0 || start.Y >= len(b.lines) || start.X < 0 {
		panic(fmt.Sprintf("buffer: insert at %s outside document (%d lines)", start, len(b.lines)))
	}
	line := b.lines[start.Y]
	left, right := line, text.Line{}
	if start.X < line.Len() {
		left, right = line.Slice(0, start.X), line.Slice(start.X, line.Len())
	}

	if len(payload) == 1 {
		b.lines[start.Y] = text.Concat(left, payload[0], right)
		b.setCursor(text.Pt(left.Len()+payload[0].Len(), start.Y))
		return
	}

	n := len(payload)
	last := payload[n-1]
	replacement := make([]text.Line, 0, n)
	replacement = append(replacement, text.Concat(left, payload[0]))
	for _, mid := range payload[1 : n-1] {
		replacement = append(replacement, mid.Clone())
	}
	replacement = append(replacement, text.Concat(last, right))

	b.spliceLines(start.Y, start.Y+1, replacement)
	b.setCursor(text.Pt(last.Len(), start.Y+n-1))
}

func (b *Buffer) applyRemove(start, end text.Point) {
	b.mustContain(start, "remove start")
	b.mustContain(end, "remove end")

	if start.Y == end.Y {
		line := b.lines[start.Y]
		b.lines[start.Y] = text.Concat(line.Slice(0, start.X), line.Slice(end.X, line.Len()))
		b.setCursor(start)
		return
	}

	first, last := b.lines[start.Y], b.lines[end.Y]
	merged := text.Concat(first.Slice(0, start.X), last.Slice(end.X, last.Len()))
	b.spliceLines(start.Y, end.Y+1, []text.Line{merged})
	b.setCursor(start)
}

// spliceLines replaces lines [from, to) with repl.
func (b *Buffer) spliceLines(from, to int, repl []text.Line) {
	out := make([]text.Line, 0, len(b.lines)-(to-from)+len(repl))
	out = append(out, b.lines[:from]...)
	out = append(out, repl...)
	out = append(out, b.lines[to:]...)
	b.lines = out
}

func (b *Buffer) setCursor(p text.Point) {
	b.cursor = p
}
