package worktree

import (
	"regexp"
	"strings"
)

// nameRe is the worktree name grammar. Names double as filesystem path
// segments and, by default, branch names.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9\-_./]+$`)

// ValidateName checks a worktree name against the name grammar.
// Returns an *InvalidNameError describing the first violation found.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidNameError{Name: name, Reason: "name cannot be empty"}
	}
	if !nameRe.MatchString(name) {
		return &InvalidNameError{
			Name:   name,
			Reason: "only letters, digits, '-', '_', '.' and '/' are allowed",
		}
	}
	if strings.Contains(name, "..") {
		return &InvalidNameError{Name: name, Reason: "name cannot contain '..'"}
	}
	return nil
}
