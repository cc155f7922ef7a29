// Package git wraps the git CLI for phantom.
//
// All operations shell out to the git binary with argument vectors and
// return captured output or an error carrying git's stderr text. Output
// parsing is deliberately minimal: porcelain status lines are counted,
// single-line outputs are trimmed, nothing else is interpreted.
package git
