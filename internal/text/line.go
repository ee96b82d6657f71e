// Package text holds the grapheme-level line model used by the buffer.
//
// A Line is indexed by grapheme cluster, never by byte or rune. Display
// columns are derived from the clusters on demand: most clusters take their
// terminal cell width, while a tab advances to the next tab stop measured
// from the width accumulated so far.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabStop is the column multiple a tab advances to.
const TabStop = 4

// Line is an ordered sequence of grapheme clusters.
type Line struct {
	graphemes []string
}

// NewLine segments s into grapheme clusters.
func NewLine(s string) Line {
	if s == "" {
		return Line{}
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return Line{graphemes: out}
}

// LineOf builds a line from clusters that are already segmented.
func LineOf(graphemes ...string) Line {
	if len(graphemes) == 0 {
		return Line{}
	}
	return Line{graphemes: append([]string(nil), graphemes...)}
}

// Lines segments every string in ss.
func Lines(ss ...string) []Line {
	out := make([]Line, len(ss))
	for i, s := range ss {
		out[i] = NewLine(s)
	}
	return out
}

func (l Line) Len() int { return len(l.graphemes) }

// Grapheme returns the cluster at index i.
func (l Line) Grapheme(i int) (string, bool) {
	if i < 0 || i >= len(l.graphemes) {
		return "", false
	}
	return l.graphemes[i], true
}

// Graphemes returns a copy of the clusters.
func (l Line) Graphemes() []string {
	return append([]string(nil), l.graphemes...)
}

func (l Line) String() string {
	return strings.Join(l.graphemes, "")
}

// Equal reports whether both lines hold the same clusters.
func (l Line) Equal(other Line) bool {
	if len(l.graphemes) != len(other.graphemes) {
		return false
	}
	for i, g := range l.graphemes {
		if g != other.graphemes[i] {
			return false
		}
	}
	return true
}

// Slice returns a copy of clusters [from, to).
func (l Line) Slice(from, to int) Line {
	if from == to {
		return Line{}
	}
	return Line{graphemes: append([]string(nil), l.graphemes[from:to]...)}
}

// Concat joins lines into a new line; the inputs are not modified.
func Concat(lines ...Line) Line {
	n := 0
	for _, l := range lines {
		n += len(l.graphemes)
	}
	if n == 0 {
		return Line{}
	}
	out := make([]string, 0, n)
	for _, l := range lines {
		out = append(out, l.graphemes...)
	}
	return Line{graphemes: out}
}

// SetGrapheme replaces the cluster at i in place.
func (l *Line) SetGrapheme(i int, g string) {
	l.graphemes[i] = g
}

// Width is the display width of the whole line.
func (l Line) Width() int {
	return l.WidthTo(len(l.graphemes))
}

// WidthTo returns the display width of clusters [0, index).
func (l Line) WidthTo(index int) int {
	if index > len(l.graphemes) {
		index = len(l.graphemes)
	}
	width := 0
	for _, g := range l.graphemes[:max(index, 0)] {
		width = Advance(width, g)
	}
	return width
}

// XAtWidth returns the smallest index whose cumulative width exceeds goal.
// It reports false when goal is at or past the end of the line.
func (l Line) XAtWidth(goal int) (int, bool) {
	width := 0
	for i, g := range l.graphemes {
		width = Advance(width, g)
		if width > goal {
			return i, true
		}
	}
	return 0, false
}

// Advance returns the column after drawing g at column width. Tabs move to
// the next tab stop.
func Advance(width int, g string) int {
	if g == "\t" {
		return width + TabStop - width%TabStop
	}
	return width + GraphemeWidth(g)
}

// GraphemeWidth is the number of terminal cells a single cluster occupies.
func GraphemeWidth(g string) int {
	w := runewidth.StringWidth(g)
	if w == 0 {
		if fallback := uniseg.StringWidth(g); fallback > w {
			w = fallback
		}
	}
	return w
}

// Combines reports whether appending next to prev still yields exactly one
// grapheme cluster, e.g. a base letter followed by a combining accent.
func Combines(prev, next string) bool {
	if prev == "" || next == "" {
		return false
	}
	return uniseg.GraphemeClusterCount(prev+next) == 1
}

// Clone returns a line that shares no storage with l.
func (l Line) Clone() Line {
	return LineOf(l.graphemes...)
}
