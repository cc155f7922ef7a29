package worktree

// Where resolves a worktree name to its filesystem path.
func Where(l Layout, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return Exists(l, name)
}
