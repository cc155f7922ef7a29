package selector

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// fakeSelector writes a shell script that stands in for the fuzzy finder.
func fakeSelector(t *testing.T, script string) *Selector {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-finder")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return New(path)
}

var lines = []string{
	"feature-x (feature-x)",
	"wip (wip) [dirty]",
}

func TestSelect_Selection(t *testing.T) {
	t.Parallel()

	// Picks the second candidate line.
	s := fakeSelector(t, `sed -n '2p'`)

	got, ok, err := s.Select(context.Background(), lines)
	if err != nil {
		t.Fatalf("Select() = %v, want nil", err)
	}
	if !ok {
		t.Fatal("Select() ok = false, want true")
	}
	if want := "wip (wip) [dirty]"; got != want {
		t.Errorf("Select() = %q, want %q", got, want)
	}
}

func TestSelect_EmptyOutputIsCancellation(t *testing.T) {
	t.Parallel()

	s := fakeSelector(t, `cat > /dev/null; exit 0`)

	_, ok, err := s.Select(context.Background(), lines)
	if err != nil {
		t.Fatalf("Select() = %v, want nil", err)
	}
	if ok {
		t.Error("Select() ok = true, want false for empty output")
	}
}

func TestSelect_CancellationExitCodes(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"1", "130"} {
		s := fakeSelector(t, `cat > /dev/null; exit `+code)

		_, ok, err := s.Select(context.Background(), lines)
		if err != nil {
			t.Errorf("Select() with exit %s = %v, want nil", code, err)
		}
		if ok {
			t.Errorf("Select() with exit %s ok = true, want false", code)
		}
	}
}

func TestSelect_OtherExitCodeIsError(t *testing.T) {
	t.Parallel()

	s := fakeSelector(t, `cat > /dev/null; exit 2`)

	_, _, err := s.Select(context.Background(), lines)
	if err == nil {
		t.Error("Select() = nil, want error for exit code 2")
	}
}

func TestSelect_MissingBinaryIsError(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), "does-not-exist"))

	if s.Available() {
		t.Error("Available() = true, want false")
	}
	if _, _, err := s.Select(context.Background(), lines); err == nil {
		t.Error("Select() = nil, want error for missing binary")
	}
}

func TestNew_DefaultsToFzf(t *testing.T) {
	t.Parallel()

	if got := New("").Command; got != "fzf" {
		t.Errorf("New(\"\").Command = %q, want %q", got, "fzf")
	}
}
