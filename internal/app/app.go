package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fedit/fedit/internal/config"
	"github.com/fedit/fedit/internal/editor"
	"github.com/fedit/fedit/internal/gitinfo"
	"github.com/fedit/fedit/internal/logger"
	"github.com/fedit/fedit/internal/session"
)

// App is the top-level runtime for fedit.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Editor.Debug); err != nil {
		return err
	}
	defer logger.Close()

	ed := editor.New(cfg)
	gitPath := ""
	openPath := ""
	if len(a.args) > 0 {
		openPath = a.args[0]
		if err := ed.OpenFile(openPath); err != nil {
			return err
		}
		gitPath = openPath
	}
	if gitPath == "" {
		if cwd, err := os.Getwd(); err == nil {
			gitPath = cwd
		}
	}
	ed.SetGitBranch(gitinfo.Branch(gitPath))

	sm, err := session.NewManager()
	if err != nil {
		logger.Warn("session unavailable", "error", err)
	}
	restoreCursor(ed, sm, openPath)
	defer func() {
		rememberCursor(ed, sm, openPath)
		if sm == nil {
			return
		}
		if err := sm.Save(); err != nil {
			logger.Warn("session save failed", "error", err)
		}
	}()

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.EnableMouse()
	defer s.Fini()

	stop := make(chan struct{})
	defer close(stop)
	go tick(s, stop, 250*time.Millisecond)

	loop(s, ed, gitPath)
	return nil
}

// tick wakes the event loop so expired status messages disappear without
// input.
func tick(s tcell.Screen, stop <-chan struct{}, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			_ = s.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// loop renders and dispatches events until the editor asks to quit.
func loop(s tcell.Screen, ed *editor.Editor, gitPath string) {
	lastGitCheck := time.Now()
	ed.Render(s)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ed.HandleKey(ev) {
				if ed.Dirty() {
					logger.Info("quit with unsaved changes", "path", ed.Filename())
				}
				return
			}
		case *tcell.EventMouse:
			ed.HandleMouse(ev)
		case *tcell.EventResize:
			s.Sync()
		}
		if gitPath != "" && time.Since(lastGitCheck) > 2*time.Second {
			lastGitCheck = time.Now()
			ed.SetGitBranch(gitinfo.Branch(gitPath))
		}
		ed.Render(s)
	}
}

func sessionKey(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func restoreCursor(ed *editor.Editor, sm *session.Manager, path string) {
	key := sessionKey(path)
	if sm == nil || key == "" {
		return
	}
	if st, ok := sm.FileState(key); ok {
		ed.SetCursor(st.CursorRow, st.CursorCol)
	}
}

func rememberCursor(ed *editor.Editor, sm *session.Manager, path string) {
	key := sessionKey(path)
	if sm == nil || key == "" {
		return
	}
	c := ed.Buffer().Cursor()
	sm.SetFileState(key, session.FileState{CursorRow: c.Y, CursorCol: c.X})
}
