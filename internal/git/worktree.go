package git

import (
	"context"
)

// AddWorktree creates a worktree at path checking out an existing branch.
func AddWorktree(ctx context.Context, repoPath, path, branch string) error {
	return runGit(ctx, repoPath, "worktree", "add", path, branch)
}

// AddWorktreeNewBranch creates a worktree at path on a new branch started
// at commitish.
func AddWorktreeNewBranch(ctx context.Context, repoPath, path, branch, commitish string) error {
	return runGit(ctx, repoPath, "worktree", "add", path, "-b", branch, commitish)
}

// RemoveWorktree removes the worktree at path. With force set, uncommitted
// changes and unclean states are discarded.
func RemoveWorktree(ctx context.Context, repoPath, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	return runGit(ctx, repoPath, args...)
}

// DeleteBranch force-deletes a local branch.
func DeleteBranch(ctx context.Context, repoPath, branch string) error {
	return runGit(ctx, repoPath, "branch", "-D", branch)
}
