package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/SubhankarA8415/portfolio/internal/pkg/logger"
)

const reloadDebounce = 300 * time.Millisecond

// Store hands out the current portfolio. Readers never see a partially
// loaded value: a reload swaps the whole pointer.
type Store struct {
	path    string
	log     *logger.Logger
	current atomic.Pointer[Portfolio]
}

// NewStore loads path (or the embedded default when path is empty).
func NewStore(path string, log *logger.Logger) (*Store, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path, log: log}
	s.current.Store(p)
	return s, nil
}

// Portfolio returns the current portfolio. Callers must not modify it.
func (s *Store) Portfolio() *Portfolio {
	return s.current.Load()
}

// Reload re-reads the content file. On error the previous portfolio stays.
func (s *Store) Reload() error {
	p, err := Load(s.path)
	if err != nil {
		return err
	}
	s.current.Store(p)
	return nil
}

// Watch reloads the content file whenever it changes until ctx is done.
// Editors often replace files instead of writing them, so the parent
// directory is watched and events are filtered by name.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return fmt.Errorf("nothing to watch: using embedded content")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", s.path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	s.log.Info("watching content for changes", "path", abs)

	var timer *time.Timer
	reload := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			if err := s.Reload(); err != nil {
				s.log.Warn("content reload failed, keeping previous content", "error", err)
				continue
			}
			s.log.Info("content reloaded", "path", abs)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watcher error", "error", err)
		}
	}
}
