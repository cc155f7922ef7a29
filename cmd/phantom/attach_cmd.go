package main

import (
	"github.com/spf13/cobra"

	"github.com/phantom-sh/phantom/internal/output"
	"github.com/phantom-sh/phantom/internal/worktree"
)

func newAttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attach <branch>",
		Short:   "Create a worktree for an existing branch",
		GroupID: GroupWorktree,
		Args:    cobra.ExactArgs(1),
		Long: `Create a worktree checked out at an already-existing branch.

Unlike create, attach never creates a branch: the branch must exist and the
worktree takes its name from it.`,
		Example: `  phantom attach feature-x   # Check out existing branch feature-x`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			lay, _, err := repoLayout(ctx)
			if err != nil {
				return err
			}

			path, err := worktree.Attach(ctx, lay, name)
			if err != nil {
				return err
			}

			output.FromContext(ctx).Printf("Attached worktree '%s' at %s\n", name, path)
			return nil
		},
	}

	return cmd
}
