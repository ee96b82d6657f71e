// Package editor puts a buffer on a terminal: it maps tcell key and mouse
// events onto buffer operations, draws the visible lines and status line,
// and loads and saves the file being edited.
package editor

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fedit/fedit/internal/buffer"
	"github.com/fedit/fedit/internal/config"
	"github.com/fedit/fedit/internal/logger"
	"github.com/fedit/fedit/internal/text"
)

var ErrNoFilename = errors.New("no filename specified")

type Editor struct {
	buf      *buffer.Buffer
	filename string
	dirty    bool
	keymap   map[string]string

	statusMessage string
	statusTime    time.Time
	statusTimeout time.Duration

	gitBranch       string
	gitBranchSymbol string
	showGitBranch   bool

	styleMain      tcell.Style
	styleStatus    tcell.Style
	styleSelection tcell.Style

	viewHeight int
	now        func() time.Time

	// actionHook observes every dispatched action; tests use it.
	actionHook func(action string)
}

func New(cfg config.Config) *Editor {
	keymap := make(map[string]string, len(cfg.Keymap))
	for k, v := range cfg.Keymap {
		keymap[k] = v
	}
	mainFg := parseColor(cfg.Theme.Foreground, tcell.ColorDefault)
	mainBg := parseColor(cfg.Theme.Background, tcell.ColorDefault)
	statusFg := parseColor(cfg.Theme.StatuslineForeground, tcell.ColorWhite)
	statusBg := parseColor(cfg.Theme.StatuslineBackground, tcell.ColorDarkGray)
	selectionFg := parseColor(cfg.Theme.SelectionForeground, mainFg)
	selectionBg := parseColor(cfg.Theme.SelectionBackground, tcell.ColorBlue)
	return &Editor{
		buf:             buffer.New(buffer.Options{HistoryLimit: cfg.Editor.HistoryLimit}),
		keymap:          keymap,
		statusTimeout:   cfg.Editor.StatusDuration(),
		gitBranchSymbol: strings.TrimSpace(cfg.Editor.GitBranchSymbol),
		showGitBranch:   cfg.Editor.ShowGitBranch(),
		styleMain:       tcell.StyleDefault.Foreground(mainFg).Background(mainBg),
		styleStatus:     tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
		styleSelection:  tcell.StyleDefault.Foreground(selectionFg).Background(selectionBg),
		now:             time.Now,
	}
}

// OpenFile loads path into the buffer. A file that does not exist yet
// starts an empty buffer that will be saved under that name.
func (e *Editor) OpenFile(path string) error {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		e.buf.SetText(string(data))
		logger.Info("opened file", "path", path, "lines", e.buf.LineCount())
	case errors.Is(err, os.ErrNotExist):
		e.buf.SetText("")
		logger.Info("new file", "path", path)
	default:
		return fmt.Errorf("open %s: %w", path, err)
	}
	e.filename = path
	e.dirty = false
	return nil
}

// Save writes the buffer back exactly as stored and reports the outcome on
// the status line.
func (e *Editor) Save() error {
	if e.filename == "" {
		e.setStatus("No filename specified")
		return ErrNoFilename
	}
	if err := os.WriteFile(e.filename, []byte(e.buf.Text()), 0o644); err != nil {
		logger.Error("save failed", "path", e.filename, "error", err)
		e.setStatus(fmt.Sprintf("Error saving file: %v", err))
		return fmt.Errorf("save %s: %w", e.filename, err)
	}
	e.dirty = false
	logger.Info("saved file", "path", e.filename)
	e.setStatus("Saved to " + e.filename)
	return nil
}

func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

func (e *Editor) Filename() string { return e.filename }

func (e *Editor) Dirty() bool { return e.dirty }

func (e *Editor) Content() string { return e.buf.Text() }

// SetCursor moves the cursor to row/col clamped to the document, e.g. when
// restoring a saved session.
func (e *Editor) SetCursor(row, col int) {
	row = max(0, min(row, e.buf.LineCount()-1))
	col = max(0, min(col, e.buf.Line(row).Len()))
	e.buf.MoveCursorTo(text.Pt(col, row), false)
}

func (e *Editor) SetGitBranch(name string) {
	e.gitBranch = strings.TrimSpace(name)
}

func (e *Editor) SetStatusMessage(msg string) {
	e.setStatus(msg)
}

func (e *Editor) setStatus(msg string) {
	e.statusMessage = msg
	e.statusTime = e.now()
}

// statusFresh reports whether the last message is still worth showing.
func (e *Editor) statusFresh() bool {
	return e.statusMessage != "" && e.now().Sub(e.statusTime) < e.statusTimeout
}
