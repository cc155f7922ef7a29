package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/phantom-sh/phantom/internal/log"
	"github.com/phantom-sh/phantom/internal/output"
	"github.com/phantom-sh/phantom/internal/ui"
	"github.com/phantom-sh/phantom/internal/worktree"
)

func newListCmd() *cobra.Command {
	var (
		namesOnly   bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List all worktrees",
		Aliases: []string{"ls"},
		GroupID: GroupWorktree,
		Args:    cobra.NoArgs,
		Long: `List all worktrees with their branch and clean/dirty status.

Branch and status are queried in parallel; a worktree whose queries fail is
shown with branch "unknown". --names prints bare names for scripting, --fzf
selects a worktree interactively and prints its name.`,
		Example: `  phantom list           # Table with branch and dirty markers
  phantom list --names    # One name per line
  phantom list --fzf      # Pick one, print its name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			lay, _, err := repoLayout(ctx)
			if err != nil {
				return err
			}

			if namesOnly {
				names, err := worktree.Names(lay)
				if err != nil {
					return err
				}
				for _, name := range names {
					p.Println(name)
				}
				return nil
			}

			if interactive {
				w, ok, err := selectWorktree(ctx, lay)
				if err != nil || !ok {
					return err
				}
				p.Println(w.Name)
				return nil
			}

			res, err := worktree.List(ctx, lay)
			if err != nil {
				return err
			}
			if res.Message != "" {
				log.FromContext(ctx).Println(res.Message)
				return nil
			}

			printWorktrees(p, res.Worktrees)
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print worktree names only")
	cmd.Flags().BoolVar(&interactive, "fzf", false, "Pick a worktree interactively and print its name")
	cmd.MarkFlagsMutuallyExclusive("names", "fzf")

	return cmd
}

// printWorktrees renders aligned name/branch/status columns, with colors
// when stdout is a terminal.
func printWorktrees(p *output.Printer, worktrees []worktree.Worktree) {
	styled := isatty.IsTerminal(os.Stdout.Fd())

	nameWidth := 0
	for _, w := range worktrees {
		if len(w.Name) > nameWidth {
			nameWidth = len(w.Name)
		}
	}

	for _, w := range worktrees {
		padding := strings.Repeat(" ", nameWidth-len(w.Name)+2)
		branch := fmt.Sprintf("(%s)", w.Branch)

		marker := ""
		if !w.IsClean {
			marker = " [dirty]"
			if styled {
				marker = " " + ui.Dirty()
			}
		}
		if styled {
			branch = ui.Dim(branch)
		}

		p.Printf("%s%s%s%s\n", w.Name, padding, branch, marker)
	}
}
