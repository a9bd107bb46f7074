package registry

import (
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"flcore/fllog"
)

// Watch installs an fsnotify watch on the install root. On every
// change to a file underneath it, the registry's own caches are
// invalidated via Invalidate() - the same reset SetInstallPath uses -
// before the caller's onChange hook (if any) is called, so a caller
// that just wants staleness handled automatically can pass nil.
// Grounded on the same fsnotify-driven directory watch style the
// teacher's save-file watcher used, generalised from a flat directory
// to a recursive tree.
//
// The returned Watcher must be closed by the caller when done.
func (r *Registry) Watch(onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fsw: fsw, log: r.log, registry: r}
	if err := w.addTree(r.Root()); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run(onChange)
	return w, nil
}

// Watcher watches an install root for changes, invalidating its
// Registry's caches whenever one occurs.
type Watcher struct {
	fsw      *fsnotify.Watcher
	log      fllog.Logger
	registry *Registry
}

// Close stops watching and releases the underlying OS resources.
func (w *Watcher) Close() error { return w.fsw.Close() }

func (w *Watcher) run(onChange func()) {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				w.registry.Invalidate()
				if onChange != nil {
					onChange()
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("install root watch error", "error", err)
		}
	}
}

// addTree adds every directory under root to the watch, since
// fsnotify (unlike some platforms' native APIs) does not watch
// recursively on its own.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsw.Add(path)
		}
		return nil
	})
}
