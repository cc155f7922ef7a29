package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/phantom-sh/phantom/internal/log"
)

// RunContext executes a command in dir (empty = inherited working directory)
// and returns stderr in the error message if it fails. The command is logged
// via the context logger when verbose mode is enabled.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return fmt.Errorf("%s", errMsg)
		}
		return err
	}
	return nil
}

// OutputContext executes a command in dir and returns stdout,
// with stderr in the error message if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, fmt.Errorf("%s", errMsg)
		}
		return nil, err
	}
	return out, nil
}
