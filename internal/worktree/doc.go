// Package worktree implements the phantom worktree lifecycle: creation,
// branch attach, deletion, enumeration and path resolution of named
// worktrees living under the repository's .git control directory.
//
// Every operation validates its inputs and returns typed errors
// (see errors.go) so callers can distinguish validation failures,
// missing or colliding worktrees, dirty-state protection and git
// failures. Non-fatal sub-steps (branch deletion after removal, file
// copies after creation) degrade into the success payload instead of
// failing the operation.
package worktree
