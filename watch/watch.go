// Package watch keeps the last valid theme of a source file and reloads it when the file changes.
//
// Reloads are serialized. A reload that fails to load or validate is reported
// and leaves the previously accepted theme in place.
package watch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/mo"
	"github.com/tailtheme/tailtheme/log"
	"github.com/tailtheme/tailtheme/theme"
)

// DefaultDebounce is used when Options.Debounce is not positive.
const DefaultDebounce = 100 * time.Millisecond

// Options tune a Reloader.
type Options struct {
	// Format of the source. Empty infers it from the extension.
	Format theme.Format
	// Debounce is how long a burst of file events must settle before reloading.
	Debounce time.Duration
	// OnReload is called by Watch after every accepted reload.
	OnReload func(theme.Config)
	// OnError is called by Watch for rejected reloads and watcher errors.
	OnError func(error)
}

// Reloader holds the last valid theme loaded from a file.
type Reloader struct {
	path    string
	base    theme.BaseFamilies
	options Options

	mu      sync.Mutex
	current atomic.Pointer[theme.Config]
}

// New returns a Reloader for the theme at path, validated against base.
// Nothing is loaded until Reload is called.
func New(path string, base theme.BaseFamilies, options Options) *Reloader {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if options.Debounce <= 0 {
		options.Debounce = DefaultDebounce
	}

	return &Reloader{path: path, base: base, options: options}
}

// Path returns the absolute path of the watched source.
func (r *Reloader) Path() string {
	return r.path
}

// Current returns a copy of the last accepted theme, if any.
func (r *Reloader) Current() mo.Option[theme.Config] {
	if cfg := r.current.Load(); cfg != nil {
		return mo.Some(cfg.Clone())
	}
	return mo.None[theme.Config]()
}

// Reload loads and validates the source. On success the result replaces the current theme.
// On failure the current theme is kept and the error is returned.
func (r *Reloader) Reload() (theme.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := theme.LoadFile(r.path, r.options.Format)
	if err == nil {
		cfg, err = theme.Validate(cfg, r.base)
	}
	if err != nil {
		log.Warnf("watch: keeping previous theme, reload of %s failed: %v", r.path, err)
		return theme.Config{}, err
	}

	stored := cfg.Clone()
	r.current.Store(&stored)
	log.Infof("watch: reloaded %s", r.path)

	return cfg, nil
}

// Watch reloads the source whenever it changes until ctx is done.
// The parent directory is watched so that editors replacing the file by rename are noticed.
func (r *Reloader) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(r.path)); err != nil {
		return err
	}

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			if filepath.Clean(ev.Name) != r.path || ev.Op == fsnotify.Chmod {
				continue
			}
			log.Debugf("watch: received file system event %v", ev)
			settle = time.After(r.options.Debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			log.Errorf("watch: fsnotify error: %v", err)
			r.report(err)
		case <-settle:
			settle = nil

			cfg, err := r.Reload()
			if err != nil {
				r.report(err)
				continue
			}
			if r.options.OnReload != nil {
				r.options.OnReload(cfg)
			}
		}
	}
}

func (r *Reloader) report(err error) {
	if r.options.OnError != nil {
		r.options.OnError(err)
	}
}
