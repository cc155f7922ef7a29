package worktree

import "path/filepath"

// DefaultContainer is the subdirectory of the .git directory that holds
// phantom's worktrees when no override is configured.
const DefaultContainer = "phantom"

// Layout locates a repository's phantom worktrees on disk.
// Worktrees live at <gitDir>/<container>/worktrees/<name>, outside the
// tracked tree but inside the repository's control directory.
type Layout struct {
	// Root is the main worktree's top-level directory.
	Root string

	// GitDir is the repository's common .git directory.
	GitDir string

	// Container is the subdirectory of GitDir holding the worktrees.
	// Empty means DefaultContainer.
	Container string
}

// NewLayout creates a Layout for the given repository root and common
// .git directory. An empty container selects DefaultContainer.
func NewLayout(root, gitDir, container string) Layout {
	if container == "" {
		container = DefaultContainer
	}
	return Layout{Root: root, GitDir: gitDir, Container: container}
}

// WorktreesDir returns the directory that contains all phantom worktrees.
func (l Layout) WorktreesDir() string {
	container := l.Container
	if container == "" {
		container = DefaultContainer
	}
	return filepath.Join(l.GitDir, container, "worktrees")
}

// PathFor returns the canonical path of the named worktree.
func (l Layout) PathFor(name string) string {
	return filepath.Join(l.WorktreesDir(), name)
}
