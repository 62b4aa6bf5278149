// Package watcher observes the daytally data directories so the TUI can
// refresh its read models when another process rewrites them.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/daytally-io/daytally/internal/config"
)

// EventType represents the type of file system event.
type EventType int

// Event types for file system changes.
const (
	EventLedgerChanged EventType = iota
	EventTasksChanged
	EventSettingsChanged
)

// Event represents a relevant file system change.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches the ledger, tasks and settings files.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}

	ledgerDir string
	tasksDir  string
	globalDir string

	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a watcher over the global daytally directories.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ledgerDir, err := config.LedgerDir()
	if err != nil {
		return nil, err
	}
	tasksDir, err := config.TasksDir()
	if err != nil {
		return nil, err
	}
	globalDir, err := config.GlobalDir()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 100),
		done:       make(chan struct{}),
		ledgerDir:  ledgerDir,
		tasksDir:   tasksDir,
		globalDir:  globalDir,
		debounce:   make(map[string]*time.Timer),
	}, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start adds the watches and begins processing events.
func (w *Watcher) Start() error {
	for _, dir := range []string{w.globalDir, w.tasksDir, w.ledgerDir} {
		if err := w.fsWatcher.Add(dir); err != nil {
			log.Printf("[watcher] failed to watch %s: %v", dir, err)
		}
	}

	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[watcher] error: %v", err)
		}
	}
}

// handleEvent filters and debounces a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, and rename events. Rename matters: atomic saves
	// (write tmp, rename to target) surface as Rename on the target file.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if filepath.Ext(event.Name) != ".yaml" {
		return
	}

	w.debounceEvent(event.Name, func() {
		w.emit(event.Name)
	})
}

// debounceEvent collapses bursts of events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(100*time.Millisecond, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

func (w *Watcher) emit(path string) {
	dir := filepath.Dir(path)

	var eventType EventType
	switch {
	case dir == w.ledgerDir:
		eventType = EventLedgerChanged
	case dir == w.tasksDir:
		eventType = EventTasksChanged
	case dir == w.globalDir && filepath.Base(path) == config.SettingsFileName:
		eventType = EventSettingsChanged
	default:
		return
	}

	select {
	case w.eventsChan <- Event{Type: eventType, Path: path}:
	case <-w.done:
	}
}
