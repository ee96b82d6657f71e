package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/fedit/fedit/internal/text"
)

// Render draws the visible part of the buffer and the status line, then
// places the terminal cursor. The bottom row is reserved for status.
func (e *Editor) Render(s tcell.Screen) {
	width, height := s.Size()
	s.SetStyle(e.styleMain)
	s.Clear()
	if width <= 0 || height <= 0 {
		return
	}
	e.viewHeight = max(height-1, 0)
	e.buf.AdjustOffset(width, e.viewHeight)

	offset := e.buf.Offset()
	cursor := e.buf.Cursor()
	for row := 0; row < e.viewHeight; row++ {
		y := offset.Y + row
		if y >= e.buf.LineCount() {
			break
		}
		skip := 0
		if y == cursor.Y {
			skip = offset.X
		}
		e.drawLine(s, row, width, skip, y)
	}
	e.renderStatusline(s, width, height-1)

	if e.viewHeight == 0 {
		s.HideCursor()
		return
	}
	cx := e.buf.CurrentLine().WidthTo(cursor.X) - offset.X
	s.ShowCursor(cx, cursor.Y-offset.Y)
}

// drawLine draws document line y on screen row, skipping the first skip
// display columns.
func (e *Editor) drawLine(s tcell.Screen, row, width, skip, y int) {
	line := e.buf.Line(y)
	from, to, highlighted := e.buf.HighlightFor(y)
	col := 0
	for i := 0; i < line.Len(); i++ {
		g, _ := line.Grapheme(i)
		next := text.Advance(col, g)
		style := e.styleMain
		if highlighted && i >= from && i < to {
			style = e.styleSelection
		}
		x := col - skip
		col = next
		if x < 0 {
			continue
		}
		if x >= width {
			return
		}
		if g == "\t" {
			for c := x; c < next-skip && c < width; c++ {
				s.SetContent(c, row, ' ', nil, style)
			}
			continue
		}
		runes := []rune(g)
		s.SetContent(x, row, runes[0], runes[1:], style)
	}
}

func (e *Editor) renderStatusline(s tcell.Screen, width, y int) {
	left := e.statusLeft()
	right := ""
	if e.showGitBranch && e.gitBranch != "" {
		right = formatGitBranch(e.gitBranchSymbol, e.gitBranch) + " "
	}
	x := 0
	for _, r := range composeStatusLine(left, right, width) {
		if x >= width {
			break
		}
		s.SetContent(x, y, r, nil, e.styleStatus)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

// statusLeft is the fresh status message, or the file name and 1-based
// cursor position.
func (e *Editor) statusLeft() string {
	if e.statusFresh() {
		return e.statusMessage
	}
	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	c := e.buf.Cursor()
	return fmt.Sprintf(" %s • %d:%d ", name, c.Y+1, c.X+1)
}

func composeStatusLine(left, right string, width int) []rune {
	if width <= 0 {
		return nil
	}
	leftRunes := []rune(left)
	rightRunes := []rune(right)
	if len(leftRunes)+len(rightRunes) > width {
		if len(rightRunes) >= width {
			rightRunes = rightRunes[len(rightRunes)-width:]
			leftRunes = nil
		} else {
			leftRunes = truncate(leftRunes, width-len(rightRunes))
		}
	}
	line := make([]rune, 0, width)
	line = append(line, leftRunes...)
	for i := len(leftRunes) + len(rightRunes); i < width; i++ {
		line = append(line, ' ')
	}
	return append(line, rightRunes...)
}

// truncate shortens r to n runes, marking the cut with "..." when there
// is room for it.
func truncate(r []rune, n int) []rune {
	if len(r) <= n {
		return r
	}
	if n <= 3 {
		return r[:n]
	}
	return append(r[:n-3:n-3], '.', '.', '.')
}

func formatGitBranch(symbol, branch string) string {
	if symbol == "" {
		symbol = "git:"
	}
	if strings.HasSuffix(symbol, ":") || strings.HasSuffix(symbol, " ") {
		return symbol + branch
	}
	return symbol + " " + branch
}

// parseColor accepts "#RRGGBB", "default" or a tcell color name.
func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil || len(name) != 7 {
			return fallback
		}
		return tcell.NewHexColor(int32(v))
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c
	}
	return fallback
}
