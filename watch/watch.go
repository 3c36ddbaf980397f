// Package watch regenerates modules when their sources change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/enumgen/config"
	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/logger"
	"github.com/teranos/enumgen/sourcefs"
)

// DefaultDebounce groups editor save bursts into one pass
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc regenerates the named modules
type ChangeFunc func(ctx context.Context, modules []string) error

// Options configures a Watcher
type Options struct {
	Modules  []config.Module
	Ext      string   // source extension, without the dot
	Outputs  []string // generated files; changes to them are ignored
	Debounce time.Duration
	OnChange ChangeFunc
}

// Watcher watches every directory under the module roots
type Watcher struct {
	opts    Options
	watcher *fsnotify.Watcher
	outputs map[string]bool
	log     *zap.SugaredLogger

	// watched directories; only touched by New and the Run loop
	dirs map[string]bool

	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer
	runMu   sync.Mutex // one regeneration at a time
}

// New creates a watcher and registers the module directories. A module
// root that does not exist yet is skipped with a warning.
func New(opts Options) (*Watcher, error) {
	if opts.OnChange == nil {
		return nil, errors.New("watch: OnChange is required")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		opts:    opts,
		watcher: fw,
		outputs: make(map[string]bool, len(opts.Outputs)),
		log:     logger.Named("watch"),
		pending: make(map[string]bool),
		dirs:    make(map[string]bool),
	}
	for _, out := range opts.Outputs {
		w.outputs[filepath.Clean(out)] = true
	}

	for _, m := range opts.Modules {
		if err := w.addTree(m.Root); err != nil {
			if sourcefs.IsNotExist(err) {
				w.log.Warnw("Module root does not exist, not watching", logger.FieldModule, m.Name, logger.FieldRoot, m.Root)
				continue
			}
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	dirs, err := sourcefs.Dirs(root)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
		w.dirs[filepath.Clean(dir)] = true
	}
	w.log.Debugw("Watching tree", logger.FieldRoot, root, logger.FieldCount, len(dirs))
	return nil
}

// Run processes events until ctx is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() && w.inModule(event.Name) {
			if err := w.addTree(event.Name); err != nil {
				w.log.Warnw("Failed to watch new directory", logger.FieldPath, event.Name, logger.FieldError, err)
			}
		}
	}

	modules := w.Affected(event)
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.forget(event.Name)
	}
	if len(modules) == 0 {
		return
	}
	w.log.Infow("Change detected", logger.FieldFile, event.Name, "op", event.Op.String())
	w.schedule(ctx, modules)
}

// Affected returns the modules whose sources event touches, sorted.
// Generated outputs, hidden paths and other extensions are ignored.
func (w *Watcher) Affected(event fsnotify.Event) []string {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return nil
	}

	path := filepath.Clean(event.Name)
	if w.outputs[path] {
		return nil
	}
	isSource := strings.HasSuffix(path, "."+w.opts.Ext)
	// removing or renaming a directory drops all the sources below it
	isDirGone := w.dirs[path] && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename))
	if !isSource && !isDirGone {
		return nil
	}

	var names []string
	for _, m := range w.opts.Modules {
		if rel, ok := within(m.Root, path); ok && !isHidden(rel) {
			names = append(names, m.Name)
		}
	}
	sort.Strings(names)
	return names
}

// forget drops a removed directory and everything below it
func (w *Watcher) forget(path string) {
	path = filepath.Clean(path)
	for dir := range w.dirs {
		if _, ok := within(path, dir); ok {
			delete(w.dirs, dir)
		}
	}
}

func (w *Watcher) schedule(ctx context.Context, modules []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, m := range modules {
		w.pending[m] = true
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.opts.Debounce, func() { w.flush(ctx) })
}

func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	modules := make([]string, 0, len(w.pending))
	for m := range w.pending {
		modules = append(modules, m)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	if len(modules) == 0 || ctx.Err() != nil {
		return
	}
	sort.Strings(modules)

	w.runMu.Lock()
	defer w.runMu.Unlock()
	if err := w.opts.OnChange(ctx, modules); err != nil {
		w.log.Errorw("Regeneration failed", logger.FieldModule, strings.Join(modules, ","), logger.FieldError, err)
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) inModule(path string) bool {
	for _, m := range w.opts.Modules {
		if rel, ok := within(m.Root, path); ok && !isHidden(rel) {
			return true
		}
	}
	return false
}

// within returns path relative to root when path is root or below it
func within(root, path string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// isHidden matches the source glob: nothing below a dot-entry is scanned
func isHidden(rel string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(seg, ".") && seg != "." {
			return true
		}
	}
	return false
}
