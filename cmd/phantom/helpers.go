package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/phantom-sh/phantom/internal/config"
	"github.com/phantom-sh/phantom/internal/git"
	"github.com/phantom-sh/phantom/internal/log"
	"github.com/phantom-sh/phantom/internal/selector"
	"github.com/phantom-sh/phantom/internal/tmux"
	"github.com/phantom-sh/phantom/internal/ui"
	"github.com/phantom-sh/phantom/internal/worktree"
)

// repoLayout resolves the worktree layout for the repository containing the
// current working directory, applying the repo-local config when present.
// A malformed repo config is reported as a warning and otherwise ignored.
func repoLayout(ctx context.Context) (worktree.Layout, config.RepoConfig, error) {
	root, err := git.Root(ctx, "")
	if err != nil {
		return worktree.Layout{}, config.RepoConfig{}, err
	}

	gitDir, err := git.CommonDir(ctx, "")
	if err != nil {
		return worktree.Layout{}, config.RepoConfig{}, err
	}

	repoCfg, cfgErr := config.LoadRepo(root)
	if cfgErr != nil {
		log.FromContext(ctx).Warnf("%v", cfgErr)
	}

	container := cfg.Worktree.Directory
	if repoCfg.Worktree.Directory != "" {
		container = repoCfg.Worktree.Directory
	}

	return worktree.NewLayout(root, gitDir, container), repoCfg, nil
}

// selectWorktree runs interactive selection over all worktrees, preferring
// the external fuzzy finder and falling back to the built-in selector when
// the finder is not installed. ok is false when the user cancelled.
func selectWorktree(ctx context.Context, lay worktree.Layout) (worktree.Worktree, bool, error) {
	res, err := worktree.List(ctx, lay)
	if err != nil {
		return worktree.Worktree{}, false, err
	}
	if len(res.Worktrees) == 0 {
		return worktree.Worktree{}, false, fmt.Errorf("no worktrees found")
	}

	sel := selector.New(cfg.Selector.Command, cfg.Selector.Args...)
	if sel.Available() {
		line, ok, err := sel.Select(ctx, worktree.DisplayLines(res.Worktrees))
		if err != nil || !ok {
			return worktree.Worktree{}, false, err
		}
		w, ok := worktree.Match(res.Worktrees, line)
		if !ok {
			return worktree.Worktree{}, false, fmt.Errorf("selection %q does not match a worktree", line)
		}
		return w, true, nil
	}

	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		return ui.SelectWorktree(res.Worktrees)
	}

	return worktree.Worktree{}, false,
		fmt.Errorf("interactive selection unavailable: install %s or run in a terminal", cfg.Selector.Command)
}

// resolveTarget returns the target worktree from an explicit name argument
// or, with the interactive flag, from selection. ok is false when the user
// cancelled the selection.
func resolveTarget(ctx context.Context, lay worktree.Layout, args []string, interactive bool) (name, path string, ok bool, err error) {
	if len(args) > 0 && !interactive {
		name = args[0]
		path, err = worktree.Where(lay, name)
		return name, path, err == nil, err
	}

	w, ok, err := selectWorktree(ctx, lay)
	if err != nil || !ok {
		return "", "", false, err
	}
	return w.Name, w.Path, true, nil
}

// defaultShell picks the shell for interactive sessions.
func defaultShell() string {
	if cfg.Shell != "" {
		return cfg.Shell
	}
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}

// tmuxFlags groups the multiplexer flags shared by create, shell and exec.
type tmuxFlags struct {
	window     bool
	vertical   bool
	horizontal bool
}

func (f *tmuxFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.window, "tmux", false, "Open in a new tmux window")
	cmd.Flags().BoolVar(&f.vertical, "tmux-vertical", false, "Open in a vertical tmux split")
	cmd.Flags().BoolVar(&f.horizontal, "tmux-horizontal", false, "Open in a horizontal tmux split")
	cmd.MarkFlagsMutuallyExclusive("tmux", "tmux-vertical", "tmux-horizontal")
}

// direction returns the requested split direction, or ok=false when no
// tmux flag was given.
func (f *tmuxFlags) direction() (tmux.SplitDirection, bool) {
	switch {
	case f.window:
		return tmux.SplitNone, true
	case f.vertical:
		return tmux.SplitVertical, true
	case f.horizontal:
		return tmux.SplitHorizontal, true
	default:
		return "", false
	}
}
