package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phantom-sh/phantom/internal/config"
	"github.com/phantom-sh/phantom/internal/git"
	"github.com/phantom-sh/phantom/internal/launch"
	"github.com/phantom-sh/phantom/internal/log"
	"github.com/phantom-sh/phantom/internal/output"
	"github.com/phantom-sh/phantom/internal/worktree"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg *config.Config
)

// Command group IDs for organizing help output
const (
	GroupWorktree = "worktree"
	GroupSession  = "session"
	GroupUtility  = "utility"
)

// Exit codes translated from the core error taxonomy.
const (
	exitGeneral    = 1
	exitValidation = 2
	exitNotFound   = 3
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "phantom",
	Short: "Git worktree manager",
	Long: `phantom manages named git worktrees living under the repository's
.git directory. Create isolated working copies per branch, jump into them
with a shell or tmux pane, and delete them when you're done.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Flags are parsed by now; attach the logger here.
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		cmd.SetContext(ctx)

		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load global config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the core error taxonomy to process exit codes. A child
// process that phantom launched and that exited non-zero passes its code
// through unchanged.
func exitCode(err error) int {
	var exitErr *launch.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var invalidName *worktree.InvalidNameError
	if errors.As(err, &invalidName) {
		return exitValidation
	}

	var notFound *worktree.NotFoundError
	var branchNotFound *worktree.BranchNotFoundError
	if errors.As(err, &notFound) || errors.As(err, &branchNotFound) {
		return exitNotFound
	}

	return exitGeneral
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupWorktree, Title: "Worktree Commands:"},
		&cobra.Group{ID: GroupSession, Title: "Session Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	// Worktree commands
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newAttachCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newWhereCmd())

	// Session commands
	rootCmd.AddCommand(newShellCmd())
	rootCmd.AddCommand(newExecCmd())
}
