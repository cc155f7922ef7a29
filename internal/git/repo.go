package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Root returns the top-level directory of the repository containing dir.
// An empty dir means the current working directory.
func Root(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CommonDir returns the absolute path of the repository's common .git
// directory. Unlike --git-dir this resolves to the main repository's
// control directory even when dir is inside a linked worktree.
func CommonDir(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--path-format=absolute", "--git-common-dir")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return filepath.Clean(strings.TrimSpace(string(out))), nil
}

// CurrentBranch returns the branch checked out at path,
// or an empty string for a detached HEAD.
func CurrentBranch(ctx context.Context, path string) (string, error) {
	out, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// BranchExists reports whether a local branch with the given name exists.
func BranchExists(ctx context.Context, repoPath, branch string) bool {
	err := runGit(ctx, repoPath, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

// Status runs `git status --porcelain` at path and reports whether the
// worktree is dirty along with the number of changed files. Any non-empty
// output counts as dirty; each non-empty line is one changed file.
func Status(ctx context.Context, path string) (dirty bool, changedFiles int, err error) {
	out, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return false, 0, err
	}
	n := CountStatusLines(string(out))
	return n > 0, n, nil
}

// CountStatusLines counts the non-empty lines of porcelain status output.
func CountStatusLines(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
