package worktree

import (
	"context"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/phantom-sh/phantom/internal/git"
)

// DetachedBranch is the branch sentinel for worktrees in detached HEAD state.
const DetachedBranch = "(detached)"

// UnknownBranch is the branch sentinel used when the branch query failed.
const UnknownBranch = "unknown"

// Worktree is one enumerated phantom worktree with its status.
type Worktree struct {
	Name    string
	Path    string
	Branch  string
	IsClean bool
}

// ListResult holds the enumerated worktrees. Message is set instead of an
// error when there is nothing to list.
type ListResult struct {
	Worktrees []Worktree
	Message   string
}

// Names enumerates worktree names sorted lexically, without any git
// queries. Used for shell completion and machine-readable output.
func Names(l Layout) ([]string, error) {
	entries, err := os.ReadDir(l.WorktreesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// List enumerates all phantom worktrees sorted by name, fetching branch and
// clean/dirty status for each entry in parallel. Per-entry query failures
// degrade that entry to branch "unknown" / clean instead of failing the
// listing. A missing or empty worktrees directory yields an empty result
// with an explanatory message, not an error.
func List(ctx context.Context, l Layout) (*ListResult, error) {
	entries, err := os.ReadDir(l.WorktreesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return &ListResult{Message: "No worktrees found"}, nil
		}
		return nil, err
	}

	worktrees := make([]Worktree, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		worktrees = append(worktrees, Worktree{
			Name:    entry.Name(),
			Path:    l.PathFor(entry.Name()),
			Branch:  UnknownBranch,
			IsClean: true,
		})
	}

	if len(worktrees) == 0 {
		return &ListResult{Message: "No worktrees found"}, nil
	}

	// os.ReadDir sorts by filename already; keep the guarantee explicit.
	sort.Slice(worktrees, func(i, j int) bool { return worktrees[i].Name < worktrees[j].Name })

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8) // Bound concurrent git operations

	for i := range worktrees {
		w := &worktrees[i]
		g.Go(func() error {
			branch, err := git.CurrentBranch(ctx, w.Path)
			switch {
			case err != nil:
				w.Branch = UnknownBranch
			case branch == "":
				w.Branch = DetachedBranch
			default:
				w.Branch = branch
			}
			return nil // Per-entry failures are non-fatal
		})
		g.Go(func() error {
			dirty, _, err := git.Status(ctx, w.Path)
			w.IsClean = err != nil || !dirty
			return nil
		})
	}

	_ = g.Wait() // Always nil; the goroutines degrade instead of failing

	return &ListResult{Worktrees: worktrees}, nil
}
