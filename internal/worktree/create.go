package worktree

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/phantom-sh/phantom/internal/git"
)

// CreateOptions controls worktree creation.
type CreateOptions struct {
	// Branch is the name of the new branch. Empty means the worktree name.
	Branch string

	// Commitish is the starting point for the new branch. Empty means HEAD.
	Commitish string

	// CopyFiles lists repository-relative paths to copy into the new
	// worktree after creation.
	CopyFiles []string
}

// CreateResult describes a successful creation.
type CreateResult struct {
	Message string
	Path    string
	Branch  string

	// CopiedFiles and SkippedFiles report the post-create file copy.
	CopiedFiles  []string
	SkippedFiles []string

	// CopyErr records a file-copy failure. The worktree itself was still
	// created; the copy is not rolled back.
	CopyErr error
}

// Create makes a new worktree bound to a new branch.
//
// The directory pre-check is a fast path: if another invocation wins the
// race, git's own "worktree add" fails atomically and that failure is
// translated into an *AlreadyExistsError as well.
func Create(ctx context.Context, l Layout, name string, opts CreateOptions) (*CreateResult, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(l.WorktreesDir(), 0o755); err != nil {
		return nil, fmt.Errorf("create worktrees directory: %w", err)
	}

	path, err := NotExists(l, name)
	if err != nil {
		return nil, err
	}

	branch := opts.Branch
	if branch == "" {
		branch = name
	}
	commitish := opts.Commitish
	if commitish == "" {
		commitish = "HEAD"
	}

	if err := git.AddWorktreeNewBranch(ctx, l.Root, path, branch, commitish); err != nil {
		// Losing the check-then-act race still fails atomically inside git;
		// translate its path-collision error like our own pre-check.
		if strings.Contains(err.Error(), "already exists") && strings.Contains(err.Error(), path) {
			return nil, &AlreadyExistsError{Name: name}
		}
		return nil, &GitError{Op: "worktree add", Err: err}
	}

	res := &CreateResult{
		Message: fmt.Sprintf("Created worktree '%s' at %s", name, path),
		Path:    path,
		Branch:  branch,
	}

	if len(opts.CopyFiles) > 0 {
		copied, copyErr := CopyFiles(l.Root, path, opts.CopyFiles)
		res.CopiedFiles = copied.Copied
		res.SkippedFiles = copied.Skipped
		res.CopyErr = copyErr
	}

	return res, nil
}
