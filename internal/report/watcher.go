package report

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/worktrack/go-work-balance/internal/core/model"
	"github.com/worktrack/go-work-balance/internal/util"
)

// FileWatcher watches the log directory for entry file changes.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	events  chan model.FileEvent
}

// NewFileWatcher watches the given paths, recursively adding directories.
func NewFileWatcher(paths []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		events:  make(chan model.FileEvent, 100),
	}

	for _, path := range paths {
		if err := fw.addPath(path); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) addPath(path string) error {
	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if info.IsDir() {
			return fw.watcher.Add(p)
		}

		return nil
	})
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			// Only log files are relevant
			if filepath.Ext(event.Name) == ".jsonl" {
				fw.events <- model.FileEvent{
					Path:      event.Name,
					Operation: event.Op.String(),
				}
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

// Events returns the channel of observed file changes.
func (fw *FileWatcher) Events() <-chan model.FileEvent {
	return fw.events
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

// debounceDelay coalesces bursts of file events into one re-render.
const debounceDelay = 300 * time.Millisecond

// Watch renders the report, then re-renders it whenever a log file changes,
// until an interrupt signal arrives. Each re-render starts from a fresh
// Reporter so the parser memo never serves stale content.
func Watch(config *Config) error {
	render := func() error {
		fmt.Print(util.ClearScreen + util.MoveCursorHome)
		return New(config).Run()
	}

	if err := render(); err != nil {
		return err
	}

	watcher, err := NewFileWatcher([]string{config.LogDir})
	if err != nil {
		return fmt.Errorf("failed to watch log directory: %w", err)
	}
	defer watcher.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var debounce *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case event := <-watcher.Events():
			util.LogDebug(fmt.Sprintf("Log file changed: %s (%s)", event.Path, event.Operation))
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				debounceCh = debounce.C
			} else {
				debounce.Reset(debounceDelay)
			}

		case <-debounceCh:
			debounce = nil
			debounceCh = nil
			if err := render(); err != nil {
				util.LogError("Re-render failed: " + err.Error())
			}

		case <-sigCh:
			util.LogInfo("Watch mode stopped")
			return nil
		}
	}
}
