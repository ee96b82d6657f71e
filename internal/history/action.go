// Package history describes buffer edits as data and keeps a linear undo log.
package history

import (
	"fmt"

	"github.com/fedit/fedit/internal/text"
)

type Kind int

const (
	KindInsert Kind = iota
	KindRemove
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindRemove:
		return "remove"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Action is a single reversible edit. Insert actions carry Payload; Remove
// actions carry an exclusive End and no content, so the inverse of a remove
// must be captured by the caller before the remove is applied.
type Action struct {
	Kind    Kind
	Start   text.Point
	End     text.Point
	Payload []text.Line
}

// Insert places payload at start. A payload of n lines splits the target
// line into n lines.
func Insert(start text.Point, payload ...text.Line) Action {
	return Action{Kind: KindInsert, Start: start, Payload: payload}
}

// Remove deletes [start, end).
func Remove(start, end text.Point) Action {
	return Action{Kind: KindRemove, Start: start, End: end}
}

// Validate reports actions no edit operation should ever build.
func (a Action) Validate() error {
	switch a.Kind {
	case KindInsert:
		if len(a.Payload) == 0 {
			return fmt.Errorf("insert at %s: empty payload", a.Start)
		}
	case KindRemove:
		if a.End.Less(a.Start) {
			return fmt.Errorf("remove %s..%s: end before start", a.Start, a.End)
		}
	default:
		return fmt.Errorf("unknown action kind %d", int(a.Kind))
	}
	return nil
}

func (a Action) String() string {
	if a.Kind == KindRemove {
		return fmt.Sprintf("remove %s..%s", a.Start, a.End)
	}
	return fmt.Sprintf("insert %d line(s) at %s", len(a.Payload), a.Start)
}
