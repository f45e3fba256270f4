// Package watch re-analyses DSSR documents as they change on disk.
//
// Each created or modified document in the watched directory is run
// through the pipeline after a quiet period, and its text report is
// written next to it as <name>.tetrads.txt.
package watch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/tetrado/pkg/cache"
	"github.com/matzehuels/tetrado/pkg/pipeline"
	"github.com/matzehuels/tetrado/pkg/report"
)

const (
	// ReportSuffix replaces the document extension in report file names.
	ReportSuffix = ".tetrads.txt"

	eventBuffer     = 64
	defaultDebounce = 500 * time.Millisecond
)

// Config configures a Watcher.
type Config struct {
	// Debounce is the quiet period before pending changes are processed.
	Debounce time.Duration
	// Extensions lists the document extensions to react to.
	Extensions []string
	// Initial analyses documents already present when Run starts.
	Initial bool
}

// Event reports one processed document.
type Event struct {
	Path       string
	ReportPath string
	Result     *pipeline.Result
	Err        error
}

// Watcher watches one directory.
type Watcher struct {
	dir        string
	cfg        Config
	opts       pipeline.Options
	runner     *pipeline.Runner
	logger     *log.Logger
	extensions map[string]bool

	fsw *fsnotify.Watcher

	pendingMu sync.Mutex
	pending   map[string]struct{}

	// hashes suppresses re-analysis when a write leaves content unchanged.
	hashes map[string]string

	events  chan Event
	dropped atomic.Int64
}

// New creates a watcher for dir. Nothing is watched until Run.
func New(dir string, runner *pipeline.Runner, opts pipeline.Options, cfg Config, logger *log.Logger) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "watch", Path: dir, Err: os.ErrInvalid}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}

	extensions := make(map[string]bool)
	if len(cfg.Extensions) == 0 {
		extensions[".json"] = true
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[strings.ToLower(ext)] = true
	}

	return &Watcher{
		dir:        dir,
		cfg:        cfg,
		opts:       opts,
		runner:     runner,
		logger:     logger,
		extensions: extensions,
		fsw:        fsw,
		pending:    make(map[string]struct{}),
		hashes:     make(map[string]string),
		events:     make(chan Event, eventBuffer),
	}, nil
}

// Events returns processed documents. The channel is closed when Run
// returns. Events are dropped rather than blocking when nobody reads.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Dropped returns the number of events discarded for lack of a reader.
func (w *Watcher) Dropped() int64 {
	return w.dropped.Load()
}

// ReportPath returns where the report for the document at path is written.
func ReportPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ReportSuffix
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)
	defer w.fsw.Close()

	if err := w.fsw.Add(w.dir); err != nil {
		return err
	}
	w.logger.Info("watching", "dir", w.dir, "debounce", w.cfg.Debounce)

	if w.cfg.Initial {
		w.queueExisting()
		w.flush(ctx)
	}

	ticker := time.NewTicker(w.cfg.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "err", err)

		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) watched(path string) bool {
	if strings.HasSuffix(path, ReportSuffix) {
		return false
	}
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !w.watched(ev.Name) {
		return
	}
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		w.pendingMu.Lock()
		delete(w.pending, ev.Name)
		w.pendingMu.Unlock()
		delete(w.hashes, ev.Name)
		return
	}
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}

	w.pendingMu.Lock()
	w.pending[ev.Name] = struct{}{}
	w.pendingMu.Unlock()
	w.logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
}

func (w *Watcher) queueExisting() {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.logger.Warn("scan failed", "dir", w.dir, "err", err)
		return
	}
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	for _, e := range entries {
		path := filepath.Join(w.dir, e.Name())
		if !e.IsDir() && w.watched(path) {
			w.pending[path] = struct{}{}
		}
	}
}

// flush processes pending documents in name order.
func (w *Watcher) flush(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	sort.Strings(paths)
	for _, path := range paths {
		if ctx.Err() != nil {
			return
		}
		w.process(ctx, path)
	}
}

func (w *Watcher) process(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		w.emit(Event{Path: path, Err: err})
		return
	}

	hash := cache.Hash(data)
	if w.hashes[path] == hash {
		return
	}
	w.hashes[path] = hash

	ev := Event{Path: path}
	res, err := w.runner.Analyze(ctx, pipeline.Input{Name: path, Data: data}, w.opts)
	if err != nil {
		w.logger.Warn("analysis failed", "path", path, "err", err)
		ev.Err = err
		w.emit(ev)
		return
	}
	ev.Result = res

	var buf bytes.Buffer
	if err := report.WriteText(&buf, res.Analysis); err != nil {
		ev.Err = err
		w.emit(ev)
		return
	}
	ev.ReportPath = ReportPath(path)
	if err := os.WriteFile(ev.ReportPath, buf.Bytes(), 0o644); err != nil {
		ev.Err = err
	} else {
		w.logger.Info("report written", "path", ev.ReportPath, "tetrads", len(res.Analysis.Tetrads))
	}
	w.emit(ev)
}

func (w *Watcher) emit(ev Event) {
	select {
	case w.events <- ev:
	default:
		w.dropped.Add(1)
	}
}
