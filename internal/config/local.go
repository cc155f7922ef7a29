package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// RepoConfigName is the per-repository config file, looked up at the
// repository root.
const RepoConfigName = "phantom.config.json"

// PostCreate describes what happens after a worktree is created.
type PostCreate struct {
	// CopyFiles lists repository-relative files to copy into the new
	// worktree (typically ignored files like .env).
	CopyFiles []string `json:"copyFiles"`

	// Commands lists shell commands to run inside the new worktree.
	Commands []string `json:"commands"`
}

// RepoConfig is the per-repository configuration.
type RepoConfig struct {
	Worktree   WorktreeJSON `json:"worktree"`
	PostCreate PostCreate   `json:"postCreate"`
}

// WorktreeJSON mirrors WorktreeConfig for the JSON config file.
type WorktreeJSON struct {
	Directory string `json:"directory"`
}

// LoadRepo reads the repository-local config from root. A missing file is
// not an error and yields the zero config. A malformed or invalid file
// yields the zero config together with an error so the caller can warn.
func LoadRepo(root string) (RepoConfig, error) {
	var cfg RepoConfig

	path := filepath.Join(root, RepoConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", RepoConfigName, err)
	}

	// Tolerate comments and trailing commas in the JSON file.
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return RepoConfig{}, fmt.Errorf("malformed %s: %w", RepoConfigName, err)
	}

	if err := validateRepo(cfg); err != nil {
		return RepoConfig{}, fmt.Errorf("invalid %s: %w", RepoConfigName, err)
	}

	return cfg, nil
}

func validateRepo(cfg RepoConfig) error {
	for _, f := range cfg.PostCreate.CopyFiles {
		if f == "" {
			return fmt.Errorf("postCreate.copyFiles contains an empty path")
		}
		if filepath.IsAbs(f) {
			return fmt.Errorf("postCreate.copyFiles entries must be relative, got %q", f)
		}
		if clean := filepath.Clean(f); clean == ".." || strings.HasPrefix(clean, "../") {
			return fmt.Errorf("postCreate.copyFiles entries must stay inside the repository, got %q", f)
		}
	}
	for _, c := range cfg.PostCreate.Commands {
		if c == "" {
			return fmt.Errorf("postCreate.commands contains an empty command")
		}
	}
	return nil
}
