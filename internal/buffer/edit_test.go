package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fedit/fedit/internal/text"
)

type snapshot struct {
	lines  []string
	cursor text.Point
}

func snap(b *Buffer) snapshot {
	return snapshot{lines: contents(b), cursor: b.Cursor()}
}

func TestTypeAndUndoScenario(t *testing.T) {
	b := newTestBuffer()
	b.InsertCharacter('H')
	b.InsertCharacter('i')
	require.Equal(t, []string{"Hi"}, contents(b))
	require.Equal(t, text.Pt(2, 0), b.Cursor())

	require.True(t, b.Undo())
	require.True(t, b.Undo())
	require.Equal(t, []string{""}, contents(b))
	require.Equal(t, text.Pt(0, 0), b.Cursor())
	require.False(t, b.Undo())
}

func TestNewlineScenario(t *testing.T) {
	b := newTestBuffer("Hi")
	b.cursor = text.Pt(2, 0)
	b.InsertNewline()
	require.Equal(t, []string{"Hi", ""}, contents(b))
	require.Equal(t, text.Pt(0, 1), b.Cursor())

	require.True(t, b.Undo())
	require.Equal(t, []string{"Hi"}, contents(b))
	require.Equal(t, text.Pt(2, 0), b.Cursor())
}

func TestDeleteBackwardScenario(t *testing.T) {
	b := newTestBuffer("Hi")
	b.cursor = text.Pt(2, 0)
	require.True(t, b.DeleteBackward())
	require.Equal(t, []string{"H"}, contents(b))
	require.Equal(t, text.Pt(1, 0), b.Cursor())

	require.True(t, b.Undo())
	require.Equal(t, []string{"Hi"}, contents(b))
	require.Equal(t, text.Pt(2, 0), b.Cursor())
}

func TestDeleteBackwardJoinsLines(t *testing.T) {
	b := newTestBuffer("ab", "cd")
	b.cursor = text.Pt(0, 1)
	require.True(t, b.DeleteBackward())
	require.Equal(t, []string{"abcd"}, contents(b))
	require.Equal(t, text.Pt(2, 0), b.Cursor())

	require.True(t, b.Undo())
	require.Equal(t, []string{"ab", "cd"}, contents(b))
	require.Equal(t, text.Pt(0, 1), b.Cursor())
}

func TestDeleteBackwardAtStartIsNoop(t *testing.T) {
	b := newTestBuffer("abc")
	require.False(t, b.DeleteBackward())
	require.Equal(t, []string{"abc"}, contents(b))
	require.Equal(t, 0, b.History().Len())
}

func TestDeleteBackwardRemovesWholeCluster(t *testing.T) {
	b := newTestBuffer("a\U0001F44D\U0001F3FD")
	b.cursor = text.Pt(2, 0)
	require.True(t, b.DeleteBackward())
	require.Equal(t, []string{"a"}, contents(b))
	require.True(t, b.Undo())
	require.Equal(t, []string{"a\U0001F44D\U0001F3FD"}, contents(b))
}

func TestCombiningInsertSkipsHistory(t *testing.T) {
	b := newTestBuffer()
	b.InsertCharacter('e')
	require.Equal(t, 1, b.History().Len())

	b.InsertCharacter('\u0301')
	require.Equal(t, 1, b.CurrentLine().Len())
	require.Equal(t, "e\u0301", b.CurrentLine().String())
	require.Equal(t, text.Pt(1, 0), b.Cursor())
	require.Equal(t, 1, b.History().Len())
	require.Equal(t, 1, b.History().Index())
}

func TestPasteRequiresClipboard(t *testing.T) {
	b := newTestBuffer("abc")
	require.False(t, b.Paste())
	require.Equal(t, 0, b.History().Len())
}

// Every undoable operation, from every cursor position of a few buffers,
// must be reverted exactly by Undo and restored exactly by Redo.
func TestUndoInverseAndRedo(t *testing.T) {
	buffers := [][]string{
		{""},
		{"Hi"},
		{"a\tb", "日本", ""},
		{"one", "two", "three"},
	}
	ops := map[string]func(b *Buffer){
		"insert char":    func(b *Buffer) { b.InsertCharacter('x') },
		"insert tab":     func(b *Buffer) { b.InsertCharacter('\t') },
		"insert newline": func(b *Buffer) { b.InsertNewline() },
		"delete back":    func(b *Buffer) { b.DeleteBackward() },
		"paste single": func(b *Buffer) {
			b.clipboard = text.Lines("zz")
			b.Paste()
		},
		"paste multi": func(b *Buffer) {
			b.clipboard = text.Lines("p", "", "q")
			b.Paste()
		},
	}

	for name, op := range ops {
		for _, lines := range buffers {
			base := newTestBuffer(lines...)
			for y := range base.lines {
				for x := 0; x <= base.lines[y].Len(); x++ {
					b := newTestBuffer(lines...)
					b.cursor = text.Pt(x, y)
					before := snap(b)
					op(b)
					if b.History().Len() == 0 {
						continue
					}
					after := snap(b)

					require.True(t, b.Undo(), "%s at %v", name, before.cursor)
					require.Equal(t, before, snap(b), "%s undo at %v in %q", name, before.cursor, lines)

					require.True(t, b.Redo(), "%s at %v", name, before.cursor)
					require.Equal(t, after, snap(b), "%s redo at %v in %q", name, before.cursor, lines)
				}
			}
		}
	}
}

func TestNewEditDiscardsRedo(t *testing.T) {
	b := newTestBuffer()
	b.InsertCharacter('A')
	b.InsertCharacter('B')
	require.Equal(t, 2, b.History().Index())

	require.True(t, b.Undo())
	require.Equal(t, 1, b.History().Index())
	b.InsertCharacter('C')

	require.False(t, b.Redo())
	nodes := b.History().Nodes()
	require.Len(t, nodes, 2)
	require.Equal(t, "A", nodes[0].Redo.Payload[0].String())
	require.Equal(t, "C", nodes[1].Redo.Payload[0].String())
	require.Equal(t, []string{"AC"}, contents(b))
}

func TestRedoAtEndIsNoop(t *testing.T) {
	b := newTestBuffer("x")
	require.False(t, b.Redo())
	b.InsertCharacter('y')
	require.False(t, b.Redo())
}
