package editor

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/fedit/fedit/internal/buffer"
	"github.com/fedit/fedit/internal/logger"
)

// HandleKey applies one key event and reports whether the editor should
// quit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	key := keyString(ev)
	if action, ok := e.keymap[key]; ok {
		return e.execAction(action)
	}
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		e.buf.InsertCharacter(ev.Rune())
		e.dirty = true
		return false
	}
	if key != "" {
		logger.Debug("unbound key", "key", key)
	}
	return false
}

// HandleMouse moves the cursor on a primary click inside the text area.
func (e *Editor) HandleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	if e.viewHeight > 0 && y >= e.viewHeight {
		return
	}
	e.buf.ClickAt(x, y)
}

var moves = map[string]struct {
	dir  buffer.Direction
	mods buffer.Modifier
}{
	"move_left":         {buffer.Left, 0},
	"move_right":        {buffer.Right, 0},
	"move_up":           {buffer.Up, 0},
	"move_down":         {buffer.Down, 0},
	"select_left":       {buffer.Left, buffer.Extend},
	"select_right":      {buffer.Right, buffer.Extend},
	"select_up":         {buffer.Up, buffer.Extend},
	"select_down":       {buffer.Down, buffer.Extend},
	"line_start":        {buffer.Left, buffer.Jump},
	"line_end":          {buffer.Right, buffer.Jump},
	"file_start":        {buffer.Up, buffer.Jump},
	"file_end":          {buffer.Down, buffer.Jump},
	"select_line_start": {buffer.Left, buffer.Jump | buffer.Extend},
	"select_line_end":   {buffer.Right, buffer.Jump | buffer.Extend},
	"select_file_start": {buffer.Up, buffer.Jump | buffer.Extend},
	"select_file_end":   {buffer.Down, buffer.Jump | buffer.Extend},
}

func (e *Editor) execAction(action string) bool {
	if e.actionHook != nil {
		e.actionHook(action)
	}
	if m, ok := moves[action]; ok {
		e.buf.Move(m.dir, m.mods)
		return false
	}
	switch action {
	case "quit":
		return true
	case "save":
		_ = e.Save()
	case "copy":
		if !e.buf.Copy() {
			e.setStatus("Nothing selected")
		}
	case "paste":
		if e.buf.Paste() {
			e.dirty = true
		}
	case "undo":
		if e.buf.Undo() {
			e.dirty = true
		} else {
			e.setStatus("Nothing to undo")
		}
	case "redo":
		if e.buf.Redo() {
			e.dirty = true
		} else {
			e.setStatus("Nothing to redo")
		}
	case "backspace":
		if e.buf.DeleteBackward() {
			e.dirty = true
		}
	case "newline":
		e.buf.InsertNewline()
		e.dirty = true
	case "insert_tab":
		e.buf.InsertCharacter('\t')
		e.dirty = true
	default:
		logger.Warn("unknown action", "action", action)
	}
	return false
}

// keyString names an event the way keymap entries are written, e.g.
// "ctrl+s", "shift+left" or "alt+shift+up".
func keyString(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	switch ev.Key() {
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "del"
	case tcell.KeyEsc:
		return "esc"
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown:
		return arrowPrefix(mods) + arrowName(ev.Key())
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case mods&tcell.ModCtrl != 0:
			return "ctrl+" + string(unicode.ToLower(r))
		case mods&(tcell.ModAlt|tcell.ModMeta) != 0:
			return "alt+" + string(r)
		}
		return string(r)
	}
	return ctrlKeyName(ev.Key())
}

func arrowPrefix(mods tcell.ModMask) string {
	var b strings.Builder
	if mods&(tcell.ModAlt|tcell.ModMeta) != 0 {
		b.WriteString("alt+")
	}
	if mods&tcell.ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if mods&tcell.ModShift != 0 {
		b.WriteString("shift+")
	}
	return b.String()
}

func arrowName(k tcell.Key) string {
	switch k {
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	}
	return "down"
}

// ctrlKeyName maps the legacy control codes. Enter, tab and backspace share
// codes with ctrl+m, ctrl+i and ctrl+h and are matched first.
func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+key-tcell.KeyCtrlA))
	}
	return ""
}
