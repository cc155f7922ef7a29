package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phantom-sh/phantom/internal/launch"
	"github.com/phantom-sh/phantom/internal/tmux"
)

func newShellCmd() *cobra.Command {
	var (
		interactive bool
		tf          tmuxFlags
	)

	cmd := &cobra.Command{
		Use:     "shell [<name>]",
		Short:   "Open an interactive shell in a worktree",
		Aliases: []string{"sh"},
		GroupID: GroupSession,
		Args:    cobra.MaximumNArgs(1),
		Long: `Open an interactive shell with the worktree as working directory.

The shell gets PHANTOM_NAME and PHANTOM_PATH in its environment. With a tmux
flag the shell opens in a new window or split instead (requires being inside
a tmux session).`,
		Example: `  phantom shell feature-x                # Shell in the worktree
  phantom shell --fzf                    # Pick the worktree first
  phantom shell feature-x --tmux         # New tmux window
  phantom shell feature-x --tmux-vertical`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 && !interactive {
				return fmt.Errorf("specify a worktree name or use --fzf")
			}

			lay, _, err := repoLayout(ctx)
			if err != nil {
				return err
			}

			name, path, ok, err := resolveTarget(ctx, lay, args, interactive)
			if err != nil || !ok {
				return err
			}

			if dir, ok := tf.direction(); ok {
				return tmux.Execute(ctx, tmux.Options{
					Direction: dir,
					Dir:       path,
					Env:       launch.EnvMap(name, path),
					Title:     name,
					Command:   []string{defaultShell()},
				})
			}

			return launch.Shell(ctx, path, name, cfg.Shell)
		},
	}

	cmd.Flags().BoolVar(&interactive, "fzf", false, "Pick the worktree interactively")
	tf.register(cmd)

	return cmd
}
