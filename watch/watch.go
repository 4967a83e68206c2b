// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch reloads data files into a catalog when they change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/databrowse/catalog"
	"cogentcore.org/databrowse/loader"
	"github.com/fsnotify/fsnotify"
)

// Watcher loads data files into a group of a catalog, and reloads
// them when they are written or replaced. Reloading replaces the
// store of the data node and calls [catalog.Catalog.Updated], so
// that views of it are rebound.
//
// The catalog is only modified by [Watcher.Add] and [Watcher.Run],
// on the goroutine that calls them.
type Watcher struct {
	// Catalog receives the loaded stores.
	Catalog *catalog.Catalog

	// Location is the catalog group path for the stores.
	Location string

	fsw *fsnotify.Watcher

	// files maps absolute file names to catalog paths.
	files map[string]string

	// dirs are the watched directories, with the number of files in each.
	dirs map[string]int
}

// New returns a new watcher adding stores to the group
// at location in the catalog.
func New(cat *catalog.Catalog, location string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{Catalog: cat, Location: location, fsw: fsw}
	w.files = make(map[string]string)
	w.dirs = make(map[string]int)
	return w, nil
}

// Add loads the named file into the catalog, and watches it.
// The directory of the file is watched, so that files replaced
// by a rename are still seen.
func (w *Watcher) Add(filename string) error {
	fn, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if _, has := w.files[fn]; has {
		return w.Reload(fn)
	}
	nd, err := w.load(fn)
	if err != nil {
		return err
	}
	dir := filepath.Dir(fn)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %q: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[fn] = nd.Path()
	return nil
}

// Files returns the number of watched files.
func (w *Watcher) Files() int { return len(w.files) }

// Path returns the catalog path of the watched file, or "" if
// it is not watched.
func (w *Watcher) Path(filename string) string {
	fn, err := filepath.Abs(filename)
	if err != nil {
		return ""
	}
	return w.files[fn]
}

func (w *Watcher) load(fn string) (*catalog.Node, error) {
	s, err := loader.Open(fn)
	if err != nil {
		return nil, err
	}
	return w.Catalog.AddData(s, w.Location)
}

// Reload reloads the named watched file into the catalog,
// and reports its node as updated.
func (w *Watcher) Reload(filename string) error {
	fn, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if _, has := w.files[fn]; !has {
		return fmt.Errorf("watch: %q is not watched", filename)
	}
	nd, err := w.load(fn)
	if err != nil {
		return err
	}
	w.files[fn] = nd.Path()
	slog.Info("watch: reloaded", "file", fn, "path", nd.Path())
	return w.Catalog.Updated(nd.Path())
}

// Apply handles one file system event, reloading the file if it is
// watched and was written or created. It returns true if the file
// was reloaded.
func (w *Watcher) Apply(ev fsnotify.Event) (bool, error) {
	fn, err := filepath.Abs(ev.Name)
	if err != nil {
		return false, err
	}
	if _, has := w.files[fn]; !has {
		return false, nil
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false, nil
	}
	if err := w.Reload(fn); err != nil {
		return false, err
	}
	return true, nil
}

// Run applies file system events until ctx is done or the watcher
// is closed. Files that fail to load are logged and keep their
// previous store.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if _, err := w.Apply(ev); err != nil {
				slog.Warn("watch: reload failed", "file", ev.Name, "err", err)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "err", err)
		}
	}
}

// Events returns the channel of file system events, for callers
// that multiplex them with other input and pass them to [Watcher.Apply].
func (w *Watcher) Events() <-chan fsnotify.Event { return w.fsw.Events }

// Errors returns the channel of watch errors.
func (w *Watcher) Errors() <-chan error { return w.fsw.Errors }

// Close stops watching all files.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
