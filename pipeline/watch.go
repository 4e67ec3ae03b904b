package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// eventChannelBuffer is the size of the watch event channel.
	eventChannelBuffer = 500

	// DefaultDebounceDelay is how long changes are collected before processing.
	DefaultDebounceDelay = 500 * time.Millisecond
)

// ContentHash returns the hex sha256 of content.
func ContentHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// WatchOperation indicates the type of file operation.
type WatchOperation string

// WatchOpCreate, WatchOpModify, and WatchOpDelete enumerate the watch operations.
const (
	WatchOpCreate WatchOperation = "create"
	WatchOpModify WatchOperation = "modify"
	WatchOpDelete WatchOperation = "delete"
)

// WatchEvent represents a change to an eligible document.
type WatchEvent struct {
	// Path is the file path relative to the input directory.
	Path string

	// Operation is the type of change.
	Operation WatchOperation
}

// Watcher watches the input directory for document changes and emits
// debounced, content-deduplicated events.
type Watcher struct {
	source   *Source
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	hashMu sync.RWMutex
	hashes map[string]string

	events chan WatchEvent

	droppedEvents atomic.Int64
}

// NewWatcher creates a watcher over the directory of source.
func NewWatcher(source *Source, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounceDelay
	}

	return &Watcher{
		source:   source,
		debounce: debounce,
		watcher:  fsw,
		logger:   logger,
		pending:  make(map[string]fsnotify.Op),
		hashes:   make(map[string]string),
		events:   make(chan WatchEvent, eventChannelBuffer),
	}, nil
}

// Events returns the channel of watch events. It is closed when the watcher stops.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start begins watching the input directory recursively.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.source.Dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Document watcher started",
		"input", w.source.Dir,
		"debounce", w.debounce)
	return nil
}

// Stop stops the watcher.
// The events channel is closed by processEvents when it exits.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// SetHash records the content hash of a document.
func (w *Watcher) SetHash(path, hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = hash
}

// GetHash returns the recorded hash of a document.
func (w *Watcher) GetHash(path string) (string, bool) {
	w.hashMu.RLock()
	defer w.hashMu.RUnlock()
	hash, ok := w.hashes[path]
	return hash, ok
}

// DroppedEvents returns the number of events dropped due to channel overflow.
func (w *Watcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}

func hiddenDir(base string) bool {
	return strings.HasPrefix(base, ".") && base != "."
}

func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && hiddenDir(d.Name()) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.handleNewDirectory(event.Name)
			return
		}
	}

	rel, err := w.source.Rel(event.Name)
	if err != nil || !w.source.Eligible(rel) {
		return
	}

	w.pendingMu.Lock()
	w.pending[rel] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Document change detected", "path", rel, "op", event.Op.String())
}

func (w *Watcher) handleNewDirectory(path string) {
	if hiddenDir(filepath.Base(path)) {
		return
	}
	if err := w.watcher.Add(path); err != nil {
		w.logger.Warn("Failed to watch new directory", "path", path, "error", err)
	} else {
		w.logger.Debug("Added watch for new directory", "path", path)
	}
}

func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := make([]string, 0, len(w.pending))
	for rel := range w.pending {
		toProcess = append(toProcess, rel)
	}
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()
	sort.Strings(toProcess)

	for _, rel := range toProcess {
		if ctx.Err() != nil {
			return
		}

		content, err := os.ReadFile(filepath.Join(w.source.Dir, rel))
		if errors.Is(err, fs.ErrNotExist) {
			w.hashMu.Lock()
			delete(w.hashes, rel)
			w.hashMu.Unlock()
			w.sendEvent(WatchEvent{Path: rel, Operation: WatchOpDelete})
			continue
		}
		if err != nil {
			w.logger.Warn("Failed to read file for hash check", "path", rel, "error", err)
			continue
		}

		newHash := ContentHash(content)
		oldHash, hadHash := w.GetHash(rel)
		if hadHash && oldHash == newHash {
			continue
		}
		w.SetHash(rel, newHash)

		op := WatchOpModify
		if !hadHash {
			op = WatchOpCreate
		}
		w.sendEvent(WatchEvent{Path: rel, Operation: op})
	}
}

func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event", "path", event.Path, "op", event.Operation)
	default:
		dropped := w.droppedEvents.Add(1)
		w.logger.Warn("Event channel full, dropping event",
			"path", event.Path,
			"total_dropped", dropped)
	}
}

// Watch runs one full batch and then converts changed documents until ctx is
// cancelled. Conversions happen one at a time on the calling goroutine.
// The watch is registered before the batch starts; documents the batch
// already converted are dropped by their content hash.
func (d *Driver) Watch(ctx context.Context, debounce time.Duration) (*Summary, error) {
	if err := d.source.checkDir(); err != nil {
		return nil, err
	}

	w, err := NewWatcher(d.source, debounce, d.logger)
	if err != nil {
		return nil, err
	}
	defer w.Stop()

	d.hashes = w
	defer func() { d.hashes = nil }()

	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	summary, err := d.Run(ctx)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return summary, nil
	}

	for event := range w.Events() {
		if event.Operation == WatchOpDelete {
			d.logger.Info("Document removed", "document", event.Path)
			continue
		}
		start := time.Now()
		summary.add(d.ProcessFile(ctx, event.Path))
		summary.Duration += time.Since(start)
		if err := d.metrics.WriteTextfile(d.textfile); err != nil {
			d.logger.Warn("Failed to write metrics", "path", d.textfile, "error", err)
		}
	}
	return summary, nil
}
