// Package tmux opens worktree windows and panes inside an existing tmux
// session. It is a pure pass-through boundary: argument vectors are composed
// here and handed to the tmux binary, nothing from tmux is parsed.
package tmux

import (
	"context"
	"errors"
	"sort"

	"github.com/phantom-sh/phantom/internal/cmd"
)

// ErrNotInside indicates phantom is not running inside a tmux session.
var ErrNotInside = errors.New("not inside a tmux session: set $TMUX by starting tmux first")

// SplitDirection selects how the new pane or window is opened.
type SplitDirection string

const (
	// SplitNone opens a new window.
	SplitNone SplitDirection = "new"
	// SplitVertical splits the current pane top/bottom.
	SplitVertical SplitDirection = "vertical"
	// SplitHorizontal splits the current pane left/right.
	SplitHorizontal SplitDirection = "horizontal"
)

// Options describes the window or pane to create.
type Options struct {
	Direction SplitDirection
	Dir       string            // working directory for the new pane
	Env       map[string]string // environment injected via -e flags
	Title     string            // window name, only used for new windows
	Command   []string          // command and args to run inside
}

// InsideSessionFunc probes whether an active tmux session is available.
// Replaceable for tests.
var InsideSessionFunc = insideSession

// Execute opens the window or pane described by opts. The caller must be
// inside an active tmux session; otherwise ErrNotInside is returned without
// invoking tmux.
func Execute(ctx context.Context, opts Options) error {
	if !InsideSessionFunc() {
		return ErrNotInside
	}
	return cmd.RunContext(ctx, "", "tmux", Args(opts)...)
}

// Args composes the tmux argument vector for opts. Pure; exported for tests.
func Args(opts Options) []string {
	var args []string

	switch opts.Direction {
	case SplitVertical:
		args = append(args, "split-window", "-v")
	case SplitHorizontal:
		args = append(args, "split-window", "-h")
	default:
		args = append(args, "new-window")
		if opts.Title != "" {
			args = append(args, "-n", opts.Title)
		}
	}

	if opts.Dir != "" {
		args = append(args, "-c", opts.Dir)
	}

	// Sort keys so the composed argv is deterministic.
	keys := make([]string, 0, len(opts.Env))
	for k := range opts.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-e", k+"="+opts.Env[k])
	}

	return append(args, opts.Command...)
}
