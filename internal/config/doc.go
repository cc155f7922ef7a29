// Package config loads phantom's configuration.
//
// Two sources exist:
//
//   - a global ~/.config/phantom/config.toml with tool defaults
//     (worktree container directory, selector binary, shell), and
//   - a repo-local phantom.config.json at the repository root with
//     per-project post-create behavior.
//
// Both files are optional. A malformed file is reported to the caller so it
// can be surfaced as a warning; defaults are used in its place.
package config
