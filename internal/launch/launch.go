package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/phantom-sh/phantom/internal/log"
)

// ExitError carries the normalized exit code of a finished child process.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

// SpawnError indicates the child process could not be started at all,
// e.g. the command was not found.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start command: %v", e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// EnvName and EnvPath identify the worktree to spawned processes.
const (
	EnvName = "PHANTOM_NAME"
	EnvPath = "PHANTOM_PATH"
)

// WorktreeEnv returns the parent environment extended with the worktree
// identification variables.
func WorktreeEnv(name, path string) []string {
	return append(os.Environ(),
		EnvName+"="+name,
		EnvPath+"="+path,
	)
}

// EnvMap returns the worktree identification variables as a map,
// for boundaries that take key-value pairs (tmux -e flags).
func EnvMap(name, path string) map[string]string {
	return map[string]string{
		EnvName: name,
		EnvPath: path,
	}
}

// Shell spawns an interactive shell inside the worktree at dir.
// Uses shell if non-empty, otherwise $SHELL, otherwise /bin/sh.
func Shell(ctx context.Context, dir, name, shell string) error {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return Command(ctx, dir, name, []string{shell})
}

// Command runs argv inside the worktree at dir, attached to the parent's
// standard streams. Blocks until the child exits.
func Command(ctx context.Context, dir, name string, argv []string) error {
	if len(argv) == 0 {
		return &SpawnError{Err: errors.New("no command specified")}
	}

	log.FromContext(ctx).Command(argv[0], argv[1:]...)

	c := exec.Command(argv[0], argv[1:]...)
	c.Dir = dir
	c.Env = WorktreeEnv(name, dir)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Start(); err != nil {
		return &SpawnError{Err: err}
	}

	err := c.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitCode(exitErr)}
	}
	return err
}

// exitCode maps a finished child's state to an exit code. Children killed
// by a signal synthesize 128+15 for SIGTERM and 128+1 for anything else.
func exitCode(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		if ws.Signal() == syscall.SIGTERM {
			return 128 + 15
		}
		return 128 + 1
	}
	return err.ExitCode()
}
