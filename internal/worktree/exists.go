package worktree

import "os"

// Exists resolves the named worktree's path and verifies the directory is
// present. Returns a *NotFoundError otherwise.
//
// The probe is a fast-path precondition only: the authoritative registry is
// git's own worktree list, and concurrent out-of-band modification can make
// the two drift (see the create path for how that is tolerated).
func Exists(l Layout, name string) (string, error) {
	path := l.PathFor(name)
	if !pathExists(path) {
		return "", &NotFoundError{Name: name}
	}
	return path, nil
}

// NotExists resolves the named worktree's path and verifies nothing is
// there yet. Returns an *AlreadyExistsError otherwise.
func NotExists(l Layout, name string) (string, error) {
	path := l.PathFor(name)
	if pathExists(path) {
		return "", &AlreadyExistsError{Name: name}
	}
	return path, nil
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
