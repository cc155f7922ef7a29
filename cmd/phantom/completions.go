package main

import (
	"github.com/spf13/cobra"

	"github.com/phantom-sh/phantom/internal/worktree"
)

// completeWorktreeNames provides shell completion for worktree name arguments.
func completeWorktreeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	lay, _, err := repoLayout(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names, err := worktree.Names(lay)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
