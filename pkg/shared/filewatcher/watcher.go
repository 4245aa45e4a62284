package filewatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents a file change event
type ChangeEvent struct {
	Path      string    // Path to the changed file
	Timestamp time.Time // Time of the change
	Error     error     // Error if any occurred during watching
}

// ChangeListener is an interface for receiving file change notifications
type ChangeListener interface {
	OnFileChange(event ChangeEvent)
}

// Watcher monitors a single file and notifies listeners with debounce support
type Watcher struct {
	watcher       *fsnotify.Watcher
	listeners     []ChangeListener
	filePath      string
	debounceDelay time.Duration
	mu            sync.RWMutex
}

// NewWatcher creates a new file watcher with the specified debounce delay
func NewWatcher(filePath string, debounceDelay time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := fsWatcher.Add(absPath); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("failed to add file to watcher: %w", err)
	}

	return &Watcher{
		watcher:       fsWatcher,
		listeners:     make([]ChangeListener, 0),
		filePath:      absPath,
		debounceDelay: debounceDelay,
	}, nil
}

// AddListener adds a listener to receive file change notifications
func (w *Watcher) AddListener(listener ChangeListener) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, listener)
}

// Start begins watching for file changes
// This is a blocking call and should typically be run in a goroutine
func (w *Watcher) Start(ctx context.Context) error {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Editors often write through temp files, so match on the resolved path
			eventPath, err := filepath.Abs(event.Name)
			if err != nil || eventPath != w.filePath {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			// Debounce rapid-fire save events
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceDelay, func() {
				w.notifyListeners(ChangeEvent{
					Path:      w.filePath,
					Timestamp: time.Now(),
				})
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}

			w.notifyListeners(ChangeEvent{
				Path:      w.filePath,
				Timestamp: time.Now(),
				Error:     err,
			})
		}
	}
}

// Close stops the watcher and releases resources
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// notifyListeners sends the event to all registered listeners
func (w *Watcher) notifyListeners(event ChangeEvent) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, listener := range w.listeners {
		listener.OnFileChange(event)
	}
}
