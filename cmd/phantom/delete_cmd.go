package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phantom-sh/phantom/internal/output"
	"github.com/phantom-sh/phantom/internal/worktree"
)

func newDeleteCmd() *cobra.Command {
	var (
		force       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "delete [<name>]",
		Short:   "Delete a worktree and its branch",
		Aliases: []string{"rm"},
		GroupID: GroupWorktree,
		Args:    cobra.MaximumNArgs(1),
		Long: `Delete a worktree, then best-effort delete its branch.

A worktree with uncommitted changes is protected: deletion fails and reports
the changed-file count unless --force is given. Without a name, --fzf picks
the worktree interactively.`,
		Example: `  phantom delete feature-x           # Delete a clean worktree
  phantom delete feature-x --force   # Discard uncommitted changes too
  phantom delete --fzf               # Pick interactively`,
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

			name, _, ok, err := resolveTarget(ctx, lay, args, interactive)
			if err != nil || !ok {
				return err
			}

			res, err := worktree.Delete(ctx, lay, name, worktree.DeleteOptions{Force: force})
			if err != nil {
				return err
			}

			output.FromContext(ctx).Println(res.Message)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even with uncommitted changes")
	cmd.Flags().BoolVar(&interactive, "fzf", false, "Pick the worktree interactively")

	return cmd
}
