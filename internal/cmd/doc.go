// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Design Notes
//
// phantom shells out to the git CLI rather than using a Go git library.
// This approach is simpler, more reliable, and ensures compatibility with
// user configurations (SSH keys, credential helpers, worktree extensions).
// Commands are always invoked with argument vectors, never through a shell,
// so unusual worktree names cannot cause quoting or injection issues.
package cmd
