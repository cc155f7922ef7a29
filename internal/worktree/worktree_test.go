package worktree

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/phantom-sh/phantom/internal/git"
)

// requireGit skips the test when git is not installed.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// initRepo creates a git repo with an initial commit in a temp dir and
// returns its Layout. Symlinks are resolved for macOS (/var -> /private/var).
func initRepo(t *testing.T) Layout {
	t.Helper()
	requireGit(t)

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	cmds := [][]string{
		{"git", "init"},
		{"git", "config", "user.email", "test@test.com"},
		{"git", "config", "user.name", "Test User"},
		{"git", "config", "commit.gpgsign", "false"},
	}
	for _, args := range cmds {
		runInDir(t, dir, args)
	}

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runInDir(t, dir, []string{"git", "add", "README.md"})
	runInDir(t, dir, []string{"git", "commit", "-m", "Initial commit"})

	gitDir, err := git.CommonDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("failed to resolve git dir: %v", err)
	}

	return NewLayout(dir, gitDir, "")
}

func runInDir(t *testing.T, dir string, args []string) {
	t.Helper()
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
}
