package watch_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcin-skalski/gitagotchi/internal/watch"
)

func TestWatcherNotifiesOnGitChange(t *testing.T) {
	repo := t.TempDir()
	gitDir := filepath.Join(repo, ".git")
	if err := os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755); err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := watch.New(repo, logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	// A ref update is what lands when a commit is made.
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("no notification after .git write")
	}
}

func TestWatcherMissingGitDir(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := watch.New(t.TempDir(), logger); err == nil {
		t.Fatal("New succeeded without a .git dir, want error")
	}
}
