package worktree

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CopyResult reports which of the requested files were copied into a new
// worktree and which were skipped.
type CopyResult struct {
	Copied  []string
	Skipped []string
}

// CopyFiles copies the given repository-relative paths from srcDir into
// dstDir. Missing sources and non-regular files (directories, symlinks,
// devices) are recorded as skipped rather than failing the call.
// A path that would resolve outside srcDir or dstDir aborts with a
// *CopyError, as does any other I/O failure.
func CopyFiles(srcDir, dstDir string, paths []string) (CopyResult, error) {
	var res CopyResult
	for _, rel := range paths {
		clean, err := containedPath(rel)
		if err != nil {
			return res, &CopyError{Path: rel, Err: err}
		}
		src := filepath.Join(srcDir, clean)

		info, err := os.Lstat(src)
		if err != nil || !info.Mode().IsRegular() {
			res.Skipped = append(res.Skipped, rel)
			continue
		}

		dst := filepath.Join(dstDir, clean)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return res, &CopyError{Path: rel, Err: err}
		}
		if err := copyFile(src, dst, info.Mode().Perm()); err != nil {
			return res, &CopyError{Path: rel, Err: err}
		}
		res.Copied = append(res.Copied, rel)
	}
	return res, nil
}

// containedPath cleans a copy-file entry and rejects anything that would
// escape the directory it is joined to. The same `..` rule worktree names
// follow applies here.
func containedPath(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", errors.New("path must be relative")
	}
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.New("path escapes the repository")
	}
	return clean, nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
