package worktree

import "fmt"

// InvalidNameError indicates a worktree name that fails the name grammar.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid worktree name %q: %s", e.Name, e.Reason)
}

// NotFoundError indicates the named worktree does not exist.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("worktree '%s' not found", e.Name)
}

// AlreadyExistsError indicates a worktree with the given name already exists.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("worktree '%s' already exists", e.Name)
}

// BranchNotFoundError indicates the branch to attach to does not exist.
type BranchNotFoundError struct {
	Branch string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch '%s' not found", e.Branch)
}

// DirtyError indicates a delete was blocked by uncommitted changes.
type DirtyError struct {
	Name         string
	ChangedFiles int
}

func (e *DirtyError) Error() string {
	return fmt.Sprintf("worktree '%s' has uncommitted changes (%d %s), use --force to delete",
		e.Name, e.ChangedFiles, plural(e.ChangedFiles, "file", "files"))
}

// GitError wraps a failed git invocation with the operation that ran it.
type GitError struct {
	Op  string
	Err error
}

func (e *GitError) Error() string {
	return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
}

func (e *GitError) Unwrap() error { return e.Err }

// CopyError indicates an unexpected I/O failure while copying a file
// into a new worktree.
type CopyError struct {
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("failed to copy %s: %v", e.Path, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
