package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/phantom-sh/phantom/internal/log"
	"github.com/phantom-sh/phantom/internal/output"
)

func newWhereCmd() *cobra.Command {
	var (
		interactive bool
		copyPath    bool
	)

	cmd := &cobra.Command{
		Use:     "where [<name>]",
		Short:   "Print the path of a worktree",
		GroupID: GroupWorktree,
		Args:    cobra.MaximumNArgs(1),
		Long: `Resolve a worktree name to its filesystem path.

Useful for cd'ing into a worktree: cd "$(phantom where feature-x)".`,
		Example: `  phantom where feature-x          # Print the path
  cd "$(phantom where feature-x)"  # Jump into it
  phantom where --fzf --copy       # Pick one, copy path to clipboard`,
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

			_, path, ok, err := resolveTarget(ctx, lay, args, interactive)
			if err != nil || !ok {
				return err
			}

			if copyPath {
				if err := clipboard.WriteAll(path); err != nil {
					log.FromContext(ctx).Warnf("could not copy to clipboard: %v", err)
				} else {
					log.FromContext(ctx).Println("Copied path to clipboard")
				}
			}

			output.FromContext(ctx).Println(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&interactive, "fzf", false, "Pick the worktree interactively")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Also copy the path to the clipboard")

	return cmd
}
