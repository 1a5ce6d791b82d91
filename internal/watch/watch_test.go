package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunReportsSourceChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{dir}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()
	w.Debounce = 20 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(paths []string) { changes <- paths })
	}()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	target := filepath.Join(dir, "a.js")
	if err := os.WriteFile(target, []byte("let a;"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	select {
	case paths := <-changes:
		if len(paths) != 1 || paths[0] != target {
			t.Fatalf("changed paths wrong. expected=[%s], got=%v", target, paths)
		}
	case <-ctx.Done():
		t.Fatalf("no change reported")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run should stop with context.Canceled, got=%v", err)
	}
}

func TestNewMissingRoot(t *testing.T) {
	if _, err := New([]string{filepath.Join(t.TempDir(), "nope")}, nil); err == nil {
		t.Fatalf("missing root should fail")
	}
}
