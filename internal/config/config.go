package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// WorktreeConfig holds worktree layout settings.
type WorktreeConfig struct {
	// Directory is the subdirectory of .git that holds the worktrees.
	Directory string `toml:"directory"`
}

// SelectorConfig holds the external fuzzy-finder settings.
type SelectorConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// Config holds the global phantom configuration.
type Config struct {
	Worktree WorktreeConfig `toml:"worktree"`
	Selector SelectorConfig `toml:"selector"`
	Shell    string         `toml:"shell"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Worktree: WorktreeConfig{Directory: "phantom"},
		Selector: SelectorConfig{Command: "fzf"},
	}
}

// Path returns the global config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "phantom", "config.toml"), nil
}

// Load reads the global config file, falling back to defaults when the file
// does not exist. A malformed file returns the defaults together with an
// error so the caller can warn without aborting.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("malformed config %s: %w", path, err)
	}

	if cfg.Worktree.Directory == "" {
		cfg.Worktree.Directory = "phantom"
	}
	if cfg.Selector.Command == "" {
		cfg.Selector.Command = "fzf"
	}

	return cfg, nil
}
