package text

import "fmt"

// Point is a (column, row) coordinate. X counts grapheme clusters, Y counts
// lines. Points are plain values and must be re-validated after edits.
type Point struct {
	X int
	Y int
}

func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Compare orders points by row, then by column.
func (p Point) Compare(o Point) int {
	switch {
	case p.Y < o.Y:
		return -1
	case p.Y > o.Y:
		return 1
	case p.X < o.X:
		return -1
	case p.X > o.X:
		return 1
	}
	return 0
}

func (p Point) Less(o Point) bool { return p.Compare(o) < 0 }

// Order returns a and b sorted so that the first is not after the second.
func Order(a, b Point) (Point, Point) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
