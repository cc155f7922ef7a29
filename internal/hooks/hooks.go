// Package hooks runs the post-create commands configured in
// phantom.config.json inside a freshly created worktree.
package hooks

import (
	"context"
	"os"
	"os/exec"

	"github.com/phantom-sh/phantom/internal/launch"
	"github.com/phantom-sh/phantom/internal/log"
)

// RunPostCreate executes each command via `sh -c` inside the worktree at
// path, with the phantom environment injected. Failures are logged as
// warnings and do not stop the remaining commands: the worktree creation
// already succeeded and is the primary guarantee.
func RunPostCreate(ctx context.Context, commands []string, name, path string) {
	l := log.FromContext(ctx)

	for _, command := range commands {
		l.Printf("Running post-create command: %s\n", command)

		c := exec.CommandContext(ctx, "sh", "-c", command)
		c.Dir = path
		c.Env = launch.WorktreeEnv(name, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		if err := c.Run(); err != nil {
			l.Warnf("post-create command %q failed: %v", command, err)
		}
	}
}
