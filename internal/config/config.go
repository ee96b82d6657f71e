package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	// HistoryLimit caps undo history; negative means unbounded.
	HistoryLimit    int    `toml:"history-limit"`
	StatusTimeout   string `toml:"status-timeout"`
	GitBranch       *bool  `toml:"git-branch"`
	GitBranchSymbol string `toml:"git-branch-symbol"`
	Debug           bool   `toml:"debug"`
}

// StatusDuration parses StatusTimeout, falling back to three seconds.
func (o EditorOptions) StatusDuration() time.Duration {
	d, err := time.ParseDuration(o.StatusTimeout)
	if err != nil || d <= 0 {
		return 3 * time.Second
	}
	return d
}

// ShowGitBranch reports whether the status line shows the branch.
func (o EditorOptions) ShowGitBranch() bool {
	return o.GitBranch == nil || *o.GitBranch
}

type Theme struct {
	Theme                string `toml:"theme"`
	Foreground           string `toml:"foreground"`
	Background           string `toml:"background"`
	StatuslineForeground string `toml:"statusline-foreground"`
	StatuslineBackground string `toml:"statusline-background"`
	SelectionForeground  string `toml:"selection-foreground"`
	SelectionBackground  string `toml:"selection-background"`
}

type Config struct {
	Editor EditorOptions     `toml:"editor"`
	Theme  Theme             `toml:"theme"`
	Keymap map[string]string `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			HistoryLimit:    1000,
			StatusTimeout:   "3s",
			GitBranchSymbol: "git:",
		},
		Theme: Theme{
			Foreground:           "default",
			Background:           "default",
			StatuslineForeground: "#FFFFFF",
			StatuslineBackground: "#3A3A3A",
			SelectionForeground:  "#FFFFFF",
			SelectionBackground:  "#1F4E8C",
		},
		Keymap: map[string]string{
			"ctrl+q":          "quit",
			"ctrl+s":          "save",
			"ctrl+c":          "copy",
			"ctrl+v":          "paste",
			"ctrl+z":          "undo",
			"ctrl+y":          "redo",
			"left":            "move_left",
			"right":           "move_right",
			"up":              "move_up",
			"down":            "move_down",
			"shift+left":      "select_left",
			"shift+right":     "select_right",
			"shift+up":        "select_up",
			"shift+down":      "select_down",
			"home":            "line_start",
			"end":             "line_end",
			"alt+left":        "line_start",
			"alt+right":       "line_end",
			"alt+up":          "file_start",
			"alt+down":        "file_end",
			"alt+shift+left":  "select_line_start",
			"alt+shift+right": "select_line_end",
			"alt+shift+up":    "select_file_start",
			"alt+shift+down":  "select_file_end",
			"backspace":       "backspace",
			"enter":           "newline",
			"tab":             "insert_tab",
		},
	}
}

// Load reads config.toml on top of Default. A missing file is not an error.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if userCfg.Editor.HistoryLimit != 0 {
		cfg.Editor.HistoryLimit = userCfg.Editor.HistoryLimit
	}
	if userCfg.Editor.StatusTimeout != "" {
		cfg.Editor.StatusTimeout = userCfg.Editor.StatusTimeout
	}
	if userCfg.Editor.GitBranch != nil {
		cfg.Editor.GitBranch = userCfg.Editor.GitBranch
	}
	if userCfg.Editor.GitBranchSymbol != "" {
		cfg.Editor.GitBranchSymbol = userCfg.Editor.GitBranchSymbol
	}
	if userCfg.Editor.Debug {
		cfg.Editor.Debug = true
	}
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	for k, v := range userCfg.Keymap {
		cfg.Keymap[k] = v
	}

	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&dst.Foreground, src.Foreground)
	set(&dst.Background, src.Background)
	set(&dst.StatuslineForeground, src.StatuslineForeground)
	set(&dst.StatuslineBackground, src.StatuslineBackground)
	set(&dst.SelectionForeground, src.SelectionForeground)
	set(&dst.SelectionBackground, src.SelectionBackground)
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads theme/<name>.toml. Both bare keys and a [theme] table
// are accepted.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", name, err)
	}
	var wrap struct {
		Theme Theme `toml:"theme"`
	}
	meta, err := toml.Decode(string(data), &wrap)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", name, err)
	}
	if meta.IsDefined("theme") {
		return wrap.Theme, nil
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", name, err)
	}
	return t, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("FEDIT_CONFIG_HOME"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "fedit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fedit"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
