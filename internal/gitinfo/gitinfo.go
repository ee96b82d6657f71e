// Package gitinfo reads the current branch for the status line without
// shelling out to git.
package gitinfo

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotRepo = errors.New("not a git repository")

// Branch returns the checked out branch for the repository containing path,
// "detached:<sha>" for a detached HEAD, or "" outside a repository.
func Branch(path string) string {
	gitDir, err := findGitDir(path)
	if err != nil {
		return ""
	}
	branch, err := readHead(gitDir)
	if err != nil {
		return ""
	}
	return branch
}

// Root returns the work tree root for path, or "".
func Root(path string) string {
	gitDir, err := findGitDir(path)
	if err != nil {
		return ""
	}
	return filepath.Dir(gitDir)
}

// findGitDir walks up from path looking for .git, following "gitdir:"
// files used by worktrees and submodules.
func findGitDir(path string) (string, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, ".git")
		if info, err := os.Stat(candidate); err == nil {
			if info.IsDir() {
				return candidate, nil
			}
			if target, ok := readGitdirFile(candidate); ok {
				if !filepath.IsAbs(target) {
					target = filepath.Join(dir, target)
				}
				return target, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotRepo
		}
		dir = parent
	}
}

func readGitdirFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir:")
	return strings.TrimSpace(target), ok
}

func readHead(gitDir string) (string, error) {
	f, err := os.Open(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", errors.New("empty HEAD")
	}
	line := strings.TrimSpace(scanner.Text())
	if ref, ok := strings.CutPrefix(line, "ref:"); ok {
		return strings.TrimPrefix(strings.TrimSpace(ref), "refs/heads/"), nil
	}
	if len(line) >= 7 {
		return "detached:" + line[:7], nil
	}
	return "detached", nil
}
