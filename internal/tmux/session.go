package tmux

import (
	"os"
	"os/exec"
	"strings"
)

// insideSession reports whether an active tmux session is usable: the $TMUX
// marker is set and the tmux binary is on PATH.
func insideSession() bool {
	if strings.TrimSpace(os.Getenv("TMUX")) == "" {
		return false
	}
	_, err := exec.LookPath("tmux")
	return err == nil
}
