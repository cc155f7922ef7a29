package worktree

import (
	"context"
	"fmt"
	"strings"

	"github.com/phantom-sh/phantom/internal/git"
)

// DeleteOptions controls worktree deletion.
type DeleteOptions struct {
	// Force deletes the worktree even when it has uncommitted changes.
	Force bool
}

// DeleteResult describes a successful deletion.
type DeleteResult struct {
	Message               string
	HasUncommittedChanges bool
	ChangedFiles          int
}

// Delete removes the named worktree and, best-effort, its branch.
//
// A dirty worktree blocks deletion unless opts.Force is set; nothing is
// mutated in that case. Worktree removal is the primary guarantee: once the
// directory is gone the operation reports success even if the subsequent
// branch deletion fails, which is folded into the message as a note.
// The branch deleted is the bare worktree name.
func Delete(ctx context.Context, l Layout, name string, opts DeleteOptions) (*DeleteResult, error) {
	path, err := Exists(l, name)
	if err != nil {
		return nil, err
	}

	// Probe for uncommitted changes. An unreachable or broken worktree is
	// treated as clean so it can still be deleted.
	dirty, changed, err := git.Status(ctx, path)
	if err != nil {
		dirty, changed = false, 0
	}

	if dirty && !opts.Force {
		return nil, &DirtyError{Name: name, ChangedFiles: changed}
	}

	if err := git.RemoveWorktree(ctx, l.Root, path, false); err != nil {
		if err := git.RemoveWorktree(ctx, l.Root, path, true); err != nil {
			return nil, &GitError{Op: "worktree remove", Err: err}
		}
	}

	var msg strings.Builder
	if dirty {
		fmt.Fprintf(&msg, "Warning: worktree '%s' had uncommitted changes (%d %s)\n",
			name, changed, plural(changed, "file", "files"))
	}
	fmt.Fprintf(&msg, "Deleted worktree '%s'", name)

	if err := git.DeleteBranch(ctx, l.Root, name); err != nil {
		fmt.Fprintf(&msg, "\nNote: could not delete branch '%s': %v", name, err)
	}

	return &DeleteResult{
		Message:               msg.String(),
		HasUncommittedChanges: dirty,
		ChangedFiles:          changed,
	}, nil
}
