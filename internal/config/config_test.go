package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Worktree.Directory != "phantom" {
		t.Errorf("Worktree.Directory = %q, want %q", cfg.Worktree.Directory, "phantom")
	}
	if cfg.Selector.Command != "fzf" {
		t.Errorf("Selector.Command = %q, want %q", cfg.Selector.Command, "fzf")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME only applies to unix")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if cfg.Worktree.Directory != "phantom" {
		t.Errorf("Worktree.Directory = %q, want default", cfg.Worktree.Directory)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME only applies to unix")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "phantom"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "shell = \"zsh\"\n\n[worktree]\ndirectory = \"garden\"\n\n[selector]\ncommand = \"sk\"\n"
	if err := os.WriteFile(filepath.Join(dir, "phantom", "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if cfg.Shell != "zsh" {
		t.Errorf("Shell = %q, want %q", cfg.Shell, "zsh")
	}
	if cfg.Worktree.Directory != "garden" {
		t.Errorf("Worktree.Directory = %q, want %q", cfg.Worktree.Directory, "garden")
	}
	if cfg.Selector.Command != "sk" {
		t.Errorf("Selector.Command = %q, want %q", cfg.Selector.Command, "sk")
	}
}

func TestLoad_MalformedFallsBackToDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME only applies to unix")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "phantom"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "phantom", "config.toml"), []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Error("Load() = nil, want error for malformed config")
	}
	if cfg.Worktree.Directory != "phantom" {
		t.Errorf("Worktree.Directory = %q, want default on error", cfg.Worktree.Directory)
	}
}
