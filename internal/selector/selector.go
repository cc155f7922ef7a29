// Package selector drives an external fuzzy-finder (fzf by default) as a
// line selector: candidate lines go in on stdin, the chosen line comes back
// on stdout. User cancellation is not an error.
package selector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/phantom-sh/phantom/internal/log"
)

// Cancellation exit codes of common fuzzy finders: fzf exits 1 when nothing
// matched and 130 when interrupted (Esc or ctrl-c).
const (
	exitNoMatch     = 1
	exitInterrupted = 130
)

// Selector invokes an external line-selector binary.
type Selector struct {
	Command string
	Args    []string
}

// New creates a Selector. An empty command defaults to fzf.
func New(command string, args ...string) *Selector {
	if command == "" {
		command = "fzf"
	}
	return &Selector{Command: command, Args: args}
}

// Available reports whether the selector binary is on PATH.
func (s *Selector) Available() bool {
	_, err := exec.LookPath(s.Command)
	return err == nil
}

// Select feeds lines to the selector and returns the chosen line.
// ok is false when the user cancelled; that is not an error.
// Any exit status other than success or a known cancellation code is
// surfaced as an error (e.g. the binary is broken or missing).
func (s *Selector) Select(ctx context.Context, lines []string) (selection string, ok bool, err error) {
	log.FromContext(ctx).Command(s.Command, s.Args...)

	c := exec.CommandContext(ctx, s.Command, s.Args...)
	c.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")
	// The finder draws its UI on the terminal via stderr.
	c.Stderr = os.Stderr

	var out bytes.Buffer
	c.Stdout = &out

	runErr := c.Run()
	selection = strings.TrimSpace(out.String())

	if runErr == nil {
		if selection == "" {
			return "", false, nil
		}
		return selection, true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		switch exitErr.ExitCode() {
		case exitNoMatch, exitInterrupted:
			return "", false, nil
		}
	}
	return "", false, fmt.Errorf("selector %s failed: %w", s.Command, runErr)
}
