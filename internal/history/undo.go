package history

// UndoNode pairs an edit with its exact inverse, both captured when the edit
// was made.
type UndoNode struct {
	Redo Action
	Undo Action
}

// UndoStack is a linear history. index counts the nodes currently applied.
// Adding a node discards everything at or past index, so history never
// branches.
type UndoStack struct {
	nodes []UndoNode
	index int
	limit int
}

// NewUndoStack returns a stack that keeps at most limit nodes, evicting the
// oldest. A limit <= 0 keeps everything.
func NewUndoStack(limit int) *UndoStack {
	return &UndoStack{limit: limit}
}

func (s *UndoStack) Add(redo, undo Action) {
	if s.index < len(s.nodes) {
		clear(s.nodes[s.index:])
		s.nodes = s.nodes[:s.index]
	}
	s.nodes = append(s.nodes, UndoNode{Redo: redo, Undo: undo})
	s.index++

	if s.limit > 0 && len(s.nodes) > s.limit {
		excess := len(s.nodes) - s.limit
		s.nodes = append([]UndoNode(nil), s.nodes[excess:]...)
		s.index -= excess
	}
}

// Undo steps back and returns the inverse action to apply.
func (s *UndoStack) Undo() (Action, bool) {
	if s.index == 0 {
		return Action{}, false
	}
	s.index--
	return s.nodes[s.index].Undo, true
}

// Redo steps forward and returns the action to re-apply.
func (s *UndoStack) Redo() (Action, bool) {
	if s.index == len(s.nodes) {
		return Action{}, false
	}
	s.index++
	return s.nodes[s.index-1].Redo, true
}

func (s *UndoStack) CanUndo() bool { return s.index > 0 }

func (s *UndoStack) CanRedo() bool { return s.index < len(s.nodes) }

func (s *UndoStack) Index() int { return s.index }

func (s *UndoStack) Len() int { return len(s.nodes) }

func (s *UndoStack) Limit() int { return s.limit }

// Nodes returns a copy of the recorded history.
func (s *UndoStack) Nodes() []UndoNode {
	return append([]UndoNode(nil), s.nodes...)
}
