package worktree

import (
	"fmt"
	"strings"
)

// DisplayLine formats a worktree as a candidate line for interactive
// selection: "name (branch)" with a trailing "[dirty]" marker when the
// worktree has uncommitted changes.
func DisplayLine(w Worktree) string {
	line := fmt.Sprintf("%s (%s)", w.Name, w.Branch)
	if !w.IsClean {
		line += " [dirty]"
	}
	return line
}

// DisplayLines formats all worktrees for selection, in order.
func DisplayLines(worktrees []Worktree) []string {
	lines := make([]string, len(worktrees))
	for i, w := range worktrees {
		lines[i] = DisplayLine(w)
	}
	return lines
}

// Match maps a selected display line back to its worktree.
// The name is the first whitespace-separated field of the line.
func Match(worktrees []Worktree, line string) (Worktree, bool) {
	name, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	for _, w := range worktrees {
		if w.Name == name {
			return w, true
		}
	}
	return Worktree{}, false
}
