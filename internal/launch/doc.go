// Package launch spawns interactive shells and commands inside a worktree.
//
// Children run with the worktree as working directory, inherit the parent's
// standard streams and receive PHANTOM_NAME / PHANTOM_PATH in their
// environment. Exit status is normalized: a child killed by SIGTERM maps to
// exit code 143, any other signal to 129, and a failure to start at all is
// reported as a distinct *SpawnError.
package launch
