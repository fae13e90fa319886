// Package watch notifies the display when the monitored repository gains
// a commit, so a feed shows up without waiting for the next poll tick.
package watch

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher coalesces filesystem events under a repository's .git directory
// into a single notification channel. Best-effort: the 1-second refresh
// cadence covers anything the watcher misses.
type Watcher struct {
	fsw    *fsnotify.Watcher
	logger *slog.Logger
	events chan struct{}
	done   chan struct{}
}

// New starts watching repoPath's .git metadata. HEAD and the local branch
// refs are what move on a commit.
func New(repoPath string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	gitDir := filepath.Join(repoPath, ".git")
	if err := fsw.Add(gitDir); err != nil {
		fsw.Close()
		return nil, err
	}
	// refs/heads may not exist in a fresh repo; that is fine.
	heads := filepath.Join(gitDir, "refs", "heads")
	if _, err := os.Stat(heads); err == nil {
		if err := fsw.Add(heads); err != nil {
			logger.Debug("watch refs/heads failed", "err", err)
		}
	}

	w := &Watcher{
		fsw:    fsw,
		logger: logger,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Events delivers a single pending notification per burst of changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default: // notification already pending
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Debug("repo watcher error", "err", err)
		}
	}
}
