package editor

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/fedit/fedit/internal/text"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.HandleKey(runeKey(r))
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), "ctrl+s"},
		{tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModCtrl), "ctrl+z"},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "tab"},
		{tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), "backspace"},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace"},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left"},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), "shift+right"},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModAlt), "alt+up"},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModAlt|tcell.ModShift), "alt+shift+down"},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModMeta|tcell.ModShift), "alt+shift+left"},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt+x"},
		{runeKey('q'), "q"},
	}
	for _, tt := range tests {
		if got := keyString(tt.ev); got != tt.want {
			t.Errorf("keyString(%v) = %q, want %q", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestTypingAndNewline(t *testing.T) {
	e := newTestEditor("")
	typeString(e, "ab")
	e.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	typeString(e, "c")
	e.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if got := e.Content(); got != "ab\nc\t" {
		t.Fatalf("content = %q, want %q", got, "ab\nc\t")
	}
	if !e.Dirty() {
		t.Fatalf("editor not dirty after typing")
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	e := newTestEditor("ab\ncd")
	e.SetCursor(1, 0)
	e.HandleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if got := e.Content(); got != "abcd" {
		t.Fatalf("content = %q, want %q", got, "abcd")
	}
	if got := e.buf.Cursor(); got != text.Pt(2, 0) {
		t.Fatalf("cursor = %v, want (2,0)", got)
	}
}

func TestUndoRedoKeys(t *testing.T) {
	e := newTestEditor("")
	typeString(e, "xy")
	e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	if got := e.Content(); got != "x" {
		t.Fatalf("after undo = %q, want %q", got, "x")
	}
	e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl))
	if got := e.Content(); got != "xy" {
		t.Fatalf("after redo = %q, want %q", got, "xy")
	}
	e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl))
	if e.statusMessage != "Nothing to redo" {
		t.Fatalf("status = %q, want %q", e.statusMessage, "Nothing to redo")
	}
}

func TestSelectCopyPaste(t *testing.T) {
	e := newTestEditor("hello")
	shiftRight := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift)
	e.HandleKey(shiftRight)
	e.HandleKey(shiftRight)
	e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	e.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModAlt))
	e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl))
	if got := e.Content(); got != "hellohe" {
		t.Fatalf("content = %q, want %q", got, "hellohe")
	}
}

func TestCopyWithoutSelection(t *testing.T) {
	e := newTestEditor("hello")
	e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if e.statusMessage != "Nothing selected" {
		t.Fatalf("status = %q", e.statusMessage)
	}
	if _, ok := e.buf.Clipboard(); ok {
		t.Fatalf("clipboard filled without selection")
	}
}

func TestJumpKeys(t *testing.T) {
	e := newTestEditor("one\ntwo\nthree")
	e.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModAlt))
	if got := e.buf.Cursor(); got != text.Pt(5, 2) {
		t.Fatalf("file_end cursor = %v, want (5,2)", got)
	}
	e.HandleKey(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if got := e.buf.Cursor(); got != text.Pt(0, 2) {
		t.Fatalf("home cursor = %v, want (0,2)", got)
	}
	e.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModAlt))
	if got := e.buf.Cursor(); got != text.Pt(0, 0) {
		t.Fatalf("file_start cursor = %v, want (0,0)", got)
	}
}

func TestQuitAndActionHook(t *testing.T) {
	e := newTestEditor("")
	var seen []string
	e.actionHook = func(action string) { seen = append(seen, action) }
	if e.HandleKey(runeKey('a')) {
		t.Fatalf("typing requested quit")
	}
	if !e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)) {
		t.Fatalf("ctrl+q did not quit")
	}
	if len(seen) != 1 || seen[0] != "quit" {
		t.Fatalf("actions = %v, want [quit]", seen)
	}
}

func TestCustomKeymap(t *testing.T) {
	e := newTestEditor("abc")
	e.keymap["ctrl+e"] = "line_end"
	e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlE, 0, tcell.ModCtrl))
	if got := e.buf.Cursor(); got != text.Pt(3, 0) {
		t.Fatalf("cursor = %v, want (3,0)", got)
	}
}

func TestUnboundCtrlKeyIsIgnored(t *testing.T) {
	e := newTestEditor("abc")
	e.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModCtrl))
	if e.Content() != "abc" {
		t.Fatalf("ctrl+k changed content: %q", e.Content())
	}
}

func TestMouseClickMovesCursor(t *testing.T) {
	e := newTestEditor("hello\nworld")
	e.viewHeight = 5
	e.HandleMouse(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
	if got := e.buf.Cursor(); got != text.Pt(3, 1) {
		t.Fatalf("cursor = %v, want (3,1)", got)
	}
	e.HandleMouse(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if got := e.buf.Cursor(); got != text.Pt(3, 1) {
		t.Fatalf("motion moved cursor to %v", got)
	}
	e.HandleMouse(tcell.NewEventMouse(0, 5, tcell.Button1, tcell.ModNone))
	if got := e.buf.Cursor(); got != text.Pt(3, 1) {
		t.Fatalf("status line click moved cursor to %v", got)
	}
}
