package worktree

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreate_RoundTrip(t *testing.T) {
	t.Parallel()

	l := initRepo(t)
	ctx := context.Background()

	res, err := Create(ctx, l, "feature-x", CreateOptions{})
	if err != nil {
		t.Fatalf("Create() = %v, want nil", err)
	}

	wantPath := filepath.Join(l.Root, ".git", "phantom", "worktrees", "feature-x")
	if res.Path != wantPath {
		t.Errorf("Create() path = %q, want %q", res.Path, wantPath)
	}
	if !strings.Contains(res.Message, "Created worktree 'feature-x'") {
		t.Errorf("Create() message = %q, want creation notice", res.Message)
	}

	if _, err := Exists(l, "feature-x"); err != nil {
		t.Errorf("Exists() after Create = %v, want nil", err)
	}

	path, err := Where(l, "feature-x")
	if err != nil {
		t.Fatalf("Where() = %v, want nil", err)
	}
	if path != wantPath {
		t.Errorf("Where() = %q, want %q", path, wantPath)
	}
}

func TestCreate_AlreadyExists(t *testing.T) {
	t.Parallel()

	l := initRepo(t)
	ctx := context.Background()

	if _, err := Create(ctx, l, "feature-x", CreateOptions{}); err != nil {
		t.Fatalf("first Create() = %v, want nil", err)
	}

	_, err := Create(ctx, l, "feature-x", CreateOptions{})
	var exists *AlreadyExistsError
	if !errors.As(err, &exists) {
		t.Errorf("second Create() error = %v, want *AlreadyExistsError", err)
	}
}

func TestCreate_InvalidName(t *testing.T) {
	t.Parallel()

	l := initRepo(t)

	_, err := Create(context.Background(), l, "../escape", CreateOptions{})
	var invalid *InvalidNameError
	if !errors.As(err, &invalid) {
		t.Errorf("Create() error = %v, want *InvalidNameError", err)
	}
}

func TestCreate_CopiesFiles(t *testing.T) {
	t.Parallel()

	l := initRepo(t)
	ctx := context.Background()

	// .env is untracked: it only reaches the worktree via the copy step.
	if err := os.WriteFile(filepath.Join(l.Root, ".env"), []byte("SECRET=1"), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := Create(ctx, l, "feature-x", CreateOptions{
		CopyFiles: []string{".env", "missing.txt"},
	})
	if err != nil {
		t.Fatalf("Create() = %v, want nil", err)
	}
	if res.CopyErr != nil {
		t.Fatalf("CopyErr = %v, want nil", res.CopyErr)
	}

	if len(res.CopiedFiles) != 1 || res.CopiedFiles[0] != ".env" {
		t.Errorf("CopiedFiles = %v, want [.env]", res.CopiedFiles)
	}
	if len(res.SkippedFiles) != 1 || res.SkippedFiles[0] != "missing.txt" {
		t.Errorf("SkippedFiles = %v, want [missing.txt]", res.SkippedFiles)
	}

	if _, err := os.Stat(filepath.Join(res.Path, ".env")); err != nil {
		t.Errorf(".env not copied into worktree: %v", err)
	}
}

func TestCreate_CustomBranch(t *testing.T) {
	t.Parallel()

	l := initRepo(t)
	ctx := context.Background()

	res, err := Create(ctx, l, "hotfix", CreateOptions{Branch: "fix/crash"})
	if err != nil {
		t.Fatalf("Create() = %v, want nil", err)
	}
	if res.Branch != "fix/crash" {
		t.Errorf("Create() branch = %q, want %q", res.Branch, "fix/crash")
	}
}

func TestAttach(t *testing.T) {
	t.Parallel()

	l := initRepo(t)
	ctx := context.Background()

	runInDir(t, l.Root, []string{"git", "branch", "feature-y"})

	path, err := Attach(ctx, l, "feature-y")
	if err != nil {
		t.Fatalf("Attach() = %v, want nil", err)
	}
	if want := l.PathFor("feature-y"); path != want {
		t.Errorf("Attach() path = %q, want %q", path, want)
	}
	if _, err := Exists(l, "feature-y"); err != nil {
		t.Errorf("Exists() after Attach = %v, want nil", err)
	}
}

func TestAttach_BranchNotFound(t *testing.T) {
	t.Parallel()

	l := initRepo(t)

	_, err := Attach(context.Background(), l, "no-such-branch")
	var notFound *BranchNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Attach() error = %v, want *BranchNotFoundError", err)
	}
}

func TestDelete_Clean(t *testing.T) {
	t.Parallel()

	l := initRepo(t)
	ctx := context.Background()

	if _, err := Create(ctx, l, "feature-x", CreateOptions{}); err != nil {
		t.Fatal(err)
	}

	res, err := Delete(ctx, l, "feature-x", DeleteOptions{})
	if err != nil {
		t.Fatalf("Delete() = %v, want nil", err)
	}
	if res.HasUncommittedChanges {
		t.Error("HasUncommittedChanges = true, want false")
	}
	if !strings.Contains(res.Message, "Deleted worktree 'feature-x'") {
		t.Errorf("Delete() message = %q, want deletion notice", res.Message)
	}

	if _, err := Exists(l, "feature-x"); err == nil {
		t.Error("worktree directory still exists after Delete")
	}
}

func TestDelete_DirtyBlockedWithoutForce(t *testing.T) {
	t.Parallel()

	l := initRepo(t)
	ctx := context.Background()

	res, err := Create(ctx, l, "wip", CreateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(res.Path, "scratch.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = Delete(ctx, l, "wip", DeleteOptions{})
	var dirty *DirtyError
	if !errors.As(err, &dirty) {
		t.Fatalf("Delete() error = %v, want *DirtyError", err)
	}
	if dirty.ChangedFiles != 1 {
		t.Errorf("DirtyError.ChangedFiles = %d, want 1", dirty.ChangedFiles)
	}

	// No mutation happened: the worktree is still there.
	if _, err := Exists(l, "wip"); err != nil {
		t.Errorf("worktree gone after blocked delete: %v", err)
	}
}

func TestDelete_DirtyForced(t *testing.T) {
	t.Parallel()

	l := initRepo(t)
	ctx := context.Background()

	res, err := Create(ctx, l, "wip", CreateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(res.Path, "scratch.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	del, err := Delete(ctx, l, "wip", DeleteOptions{Force: true})
	if err != nil {
		t.Fatalf("Delete(force) = %v, want nil", err)
	}
	if !del.HasUncommittedChanges {
		t.Error("HasUncommittedChanges = false, want true")
	}
	if del.ChangedFiles != 1 {
		t.Errorf("ChangedFiles = %d, want 1", del.ChangedFiles)
	}
	if !strings.HasPrefix(del.Message, "Warning:") {
		t.Errorf("Delete(force) message = %q, want warning prefix", del.Message)
	}
	if !strings.Contains(del.Message, "1 file") {
		t.Errorf("Delete(force) message = %q, want changed-file count", del.Message)
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	l := initRepo(t)

	_, err := Delete(context.Background(), l, "ghost", DeleteOptions{})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Delete() error = %v, want *NotFoundError", err)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	l := initRepo(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha"} {
		if _, err := Create(ctx, l, name, CreateOptions{}); err != nil {
			t.Fatal(err)
		}
	}

	// Dirty up one of them.
	if err := os.WriteFile(filepath.Join(l.PathFor("alpha"), "scratch.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := List(ctx, l)
	if err != nil {
		t.Fatalf("List() = %v, want nil", err)
	}
	if len(res.Worktrees) != 2 {
		t.Fatalf("List() count = %d, want 2", len(res.Worktrees))
	}

	// Sorted by name.
	if res.Worktrees[0].Name != "alpha" || res.Worktrees[1].Name != "zeta" {
		t.Errorf("List() order = %v, want [alpha zeta]", []string{res.Worktrees[0].Name, res.Worktrees[1].Name})
	}

	alpha, zeta := res.Worktrees[0], res.Worktrees[1]
	if alpha.IsClean {
		t.Error("alpha.IsClean = true, want false")
	}
	if alpha.Branch != "alpha" {
		t.Errorf("alpha.Branch = %q, want %q", alpha.Branch, "alpha")
	}
	if !zeta.IsClean {
		t.Error("zeta.IsClean = false, want true")
	}
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	l := NewLayout(root, filepath.Join(root, ".git"), "")

	res, err := List(context.Background(), l)
	if err != nil {
		t.Fatalf("List() = %v, want nil", err)
	}
	if len(res.Worktrees) != 0 {
		t.Errorf("List() worktrees = %v, want none", res.Worktrees)
	}
	if res.Message == "" {
		t.Error("List() message empty, want explanatory text")
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	l := initRepo(t)
	ctx := context.Background()

	if names, err := Names(l); err != nil || len(names) != 0 {
		t.Errorf("Names() on fresh repo = %v, %v; want empty, nil", names, err)
	}

	if _, err := Create(ctx, l, "feature-x", CreateOptions{}); err != nil {
		t.Fatal(err)
	}

	names, err := Names(l)
	if err != nil {
		t.Fatalf("Names() = %v, want nil", err)
	}
	if len(names) != 1 || names[0] != "feature-x" {
		t.Errorf("Names() = %v, want [feature-x]", names)
	}
}
