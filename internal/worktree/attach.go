package worktree

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/phantom-sh/phantom/internal/git"
)

// Attach creates a worktree checked out at the already-existing branch with
// the same name. Unlike Create it never creates a branch.
//
// Failure ordering: name validity and directory non-existence are checked
// before any git round-trip; branch existence is probed before the add so a
// missing branch is reported as *BranchNotFoundError rather than a generic
// git failure.
func Attach(ctx context.Context, l Layout, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	path, err := NotExists(l, name)
	if err != nil {
		return "", err
	}

	if !git.BranchExists(ctx, l.Root, name) {
		return "", &BranchNotFoundError{Branch: name}
	}

	if err := os.MkdirAll(l.WorktreesDir(), 0o755); err != nil {
		return "", fmt.Errorf("create worktrees directory: %w", err)
	}

	if err := git.AddWorktree(ctx, l.Root, path, name); err != nil {
		if strings.Contains(err.Error(), "already exists") && strings.Contains(err.Error(), path) {
			return "", &AlreadyExistsError{Name: name}
		}
		return "", &GitError{Op: "worktree add", Err: err}
	}

	return path, nil
}
