// Package jsonfile implements the flat-file storage engine: one JSON file
// per collection, each holding a JSON array of records.
//
// There is deliberately no file locking. Concurrent writers to the same
// collection race and the last full-collection overwrite wins; at this
// site's traffic that is an accepted trade-off, and the repository
// interfaces keep the hazard contained here should it ever need fixing.
package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/zyraworkhub/zyra/core"
)

const tmpFilePattern = ".zyra-*.tmp"

// Store reads and writes named JSON collections under a single directory.
// Reads go through an in-process cache invalidated by an fsnotify watcher,
// so externally seeded files are picked up without restarting.
type Store struct {
	dir    string
	logger core.Logger

	mu      sync.RWMutex // guards cache; collection files themselves stay unlocked
	cache   map[string][]byte
	watcher *fsnotify.Watcher
}

// Open lazily creates dir and starts the change watcher. A watcher setup
// failure disables caching but not the store.
func Open(dir string, logger core.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data directory %s", dir)
	}
	s := &Store{
		dir:    dir,
		logger: logger,
	}

	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		err = watcher.Add(dir)
	}
	if err != nil {
		logger.Warn(fmt.Sprintf("data watcher unavailable, caching disabled: %v", err))
		return s, nil
	}
	s.cache = make(map[string][]byte)
	s.watcher = watcher
	go s.watch()
	return s, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// readRaw returns the raw file contents; ok is false when the file does not
// exist or cannot be read.
func (s *Store) readRaw(collection string) ([]byte, bool) {
	if s.cache != nil {
		s.mu.RLock()
		raw, hit := s.cache[collection]
		s.mu.RUnlock()
		if hit {
			return raw, true
		}
	}

	raw, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error(fmt.Sprintf("reading data file %s.json: %v", collection, err), err)
		}
		return nil, false
	}

	if s.cache != nil {
		s.mu.Lock()
		s.cache[collection] = raw
		s.mu.Unlock()
	}
	return raw, true
}

// writeRaw replaces the collection file contents via a temp file + rename,
// so a crash mid-write never leaves a torn file behind.
func (s *Store) writeRaw(collection string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, tmpFilePattern)
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err = os.Rename(tmp.Name(), s.path(collection)); err != nil {
		return errors.Wrapf(err, "replacing %s.json", collection)
	}

	s.Invalidate(collection)
	return nil
}

// Invalidate drops the cached contents of a collection.
func (s *Store) Invalidate(collection string) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	delete(s.cache, collection)
	s.mu.Unlock()
}

func (s *Store) watch() {
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Base(ev.Name)
			if !strings.HasSuffix(name, ".json") {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				s.Invalidate(strings.TrimSuffix(name, ".json"))
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn(fmt.Sprintf("data watcher: %v", err))
		}
	}
}
