package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phantom-sh/phantom/internal/launch"
	"github.com/phantom-sh/phantom/internal/tmux"
)

func newExecCmd() *cobra.Command {
	var (
		interactive bool
		tf          tmuxFlags
	)

	cmd := &cobra.Command{
		Use:     "exec [<name>] -- <command> [args...]",
		Short:   "Run a command in a worktree",
		Aliases: []string{"e"},
		GroupID: GroupSession,
		Args:    cobra.MinimumNArgs(1),
		Long: `Run a command with the worktree as working directory.

The "--" separator is required: everything after it is the command, passed
as an argument vector (never through a shell) with the terminal inherited
and its flags left untouched. The command's exit code becomes phantom's
exit code. With a tmux flag the command runs in a new window or split
instead.`,
		Example: `  phantom exec feature-x -- npm test        # Run tests in the worktree
  phantom exec --fzf -- git log --oneline   # Pick the worktree first
  phantom exec feature-x --tmux -- npm run dev`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Flags before "--" belong to phantom, everything after is
			// the command verbatim.
			dash := cmd.ArgsLenAtDash()
			if dash < 0 {
				return fmt.Errorf("usage: phantom exec [<name>] -- <command> [args...]")
			}
			command := args[dash:]
			if len(command) == 0 {
				return fmt.Errorf("no command specified")
			}
			target := args[:dash]
			if len(target) == 0 && !interactive {
				return fmt.Errorf("specify a worktree name or use --fzf")
			}

			lay, _, err := repoLayout(ctx)
			if err != nil {
				return err
			}

			name, path, ok, err := resolveTarget(ctx, lay, target, interactive)
			if err != nil || !ok {
				return err
			}

			if dir, ok := tf.direction(); ok {
				return tmux.Execute(ctx, tmux.Options{
					Direction: dir,
					Dir:       path,
					Env:       launch.EnvMap(name, path),
					Title:     name,
					Command:   command,
				})
			}

			return launch.Command(ctx, path, name, command)
		},
	}

	cmd.Flags().BoolVar(&interactive, "fzf", false, "Pick the worktree interactively")
	tf.register(cmd)

	return cmd
}
