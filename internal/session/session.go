// Package session remembers where the cursor was in each file between runs.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileState is the saved position for one file.
type FileState struct {
	CursorRow int `json:"cursor_row"`
	CursorCol int `json:"cursor_col"`
}

type Session struct {
	Files     map[string]FileState `json:"files"`
	LastSaved time.Time            `json:"last_saved"`
}

// Manager loads and saves the session file. It is used from the event loop
// only and does no locking.
type Manager struct {
	session Session
	path    string
	dirty   bool
}

// NewManager opens the session stored under the XDG state directory.
func NewManager() (*Manager, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return Open(path), nil
}

// Open loads the session at path. A missing or corrupt file starts empty.
func Open(path string) *Manager {
	m := &Manager{
		session: Session{Files: make(map[string]FileState)},
		path:    path,
	}
	m.load()
	return m
}

func Path() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "fedit", "session.json"), nil
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return
	}
	if s.Files == nil {
		s.Files = make(map[string]FileState)
	}
	m.session = s
}

// Save writes the session when something changed.
func (m *Manager) Save() error {
	if !m.dirty {
		return nil
	}
	m.session.LastSaved = time.Now()
	data, err := json.MarshalIndent(m.session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("session dir: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	m.dirty = false
	return nil
}

func (m *Manager) FileState(absPath string) (FileState, bool) {
	state, ok := m.session.Files[absPath]
	return state, ok
}

func (m *Manager) SetFileState(absPath string, state FileState) {
	if old, ok := m.session.Files[absPath]; ok && old == state {
		return
	}
	m.session.Files[absPath] = state
	m.dirty = true
}
