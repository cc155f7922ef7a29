package main

import (
	"github.com/spf13/cobra"

	"github.com/phantom-sh/phantom/internal/hooks"
	"github.com/phantom-sh/phantom/internal/launch"
	"github.com/phantom-sh/phantom/internal/log"
	"github.com/phantom-sh/phantom/internal/output"
	"github.com/phantom-sh/phantom/internal/tmux"
	"github.com/phantom-sh/phantom/internal/worktree"
)

func newCreateCmd() *cobra.Command {
	var (
		branch    string
		commitish string
		copyFiles []string
		openShell bool
		tf        tmuxFlags
	)

	cmd := &cobra.Command{
		Use:     "create <name>",
		Short:   "Create a new worktree",
		Aliases: []string{"c"},
		GroupID: GroupWorktree,
		Args:    cobra.ExactArgs(1),
		Long: `Create a new worktree bound to a new branch.

The worktree lives at .git/phantom/worktrees/<name> inside the repository.
The branch defaults to the worktree name and starts at HEAD unless
overridden. Files listed in phantom.config.json under postCreate.copyFiles
(or passed with --copy-file) are copied into the new worktree, and
postCreate.commands are run inside it.`,
		Example: `  phantom create feature-x                   # Branch feature-x from HEAD
  phantom create hotfix -b fix/crash -c v1.2  # Custom branch and start point
  phantom create feature-x --copy-file .env   # Copy untracked files over
  phantom create feature-x --shell            # Jump straight into it
  phantom create feature-x --tmux             # Open it in a tmux window`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			p := output.FromContext(ctx)
			name := args[0]

			lay, repoCfg, err := repoLayout(ctx)
			if err != nil {
				return err
			}

			files := append(repoCfg.PostCreate.CopyFiles, copyFiles...)

			res, err := worktree.Create(ctx, lay, name, worktree.CreateOptions{
				Branch:    branch,
				Commitish: commitish,
				CopyFiles: files,
			})
			if err != nil {
				return err
			}

			// The worktree exists at this point; copy and hook problems
			// are reported but never fail the command.
			if res.CopyErr != nil {
				l.Warnf("could not copy all files: %v", res.CopyErr)
			}
			for _, f := range res.SkippedFiles {
				l.Debug("skipped file", "path", f)
			}
			for _, f := range res.CopiedFiles {
				l.Debug("copied file", "path", f)
			}

			hooks.RunPostCreate(ctx, repoCfg.PostCreate.Commands, name, res.Path)

			p.Println(res.Message)

			if dir, ok := tf.direction(); ok {
				return tmux.Execute(ctx, tmux.Options{
					Direction: dir,
					Dir:       res.Path,
					Env:       launch.EnvMap(name, res.Path),
					Title:     name,
					Command:   []string{defaultShell()},
				})
			}
			if openShell {
				return launch.Shell(ctx, res.Path, name, cfg.Shell)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch name (default: worktree name)")
	cmd.Flags().StringVarP(&commitish, "commitish", "c", "", "Starting point for the new branch (default: HEAD)")
	cmd.Flags().StringArrayVar(&copyFiles, "copy-file", nil, "File to copy into the new worktree (repeatable)")
	cmd.Flags().BoolVarP(&openShell, "shell", "s", false, "Open a shell in the new worktree")
	tf.register(cmd)
	cmd.MarkFlagsMutuallyExclusive("shell", "tmux")
	cmd.MarkFlagsMutuallyExclusive("shell", "tmux-vertical")
	cmd.MarkFlagsMutuallyExclusive("shell", "tmux-horizontal")

	return cmd
}
