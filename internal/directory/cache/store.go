package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const entryExt = ".json"

// Store errors.
var (
	ErrNotFound   = errors.New("cache entry not found")
	ErrExpired    = errors.New("cache entry expired")
	ErrInvalidKey = errors.New("cache key cannot be empty")
	ErrDisabled   = errors.New("cache is disabled")
	ErrFull       = errors.New("cache size limit reached")
)

// Store is a directory of JSON page entries. Safe for concurrent use.
type Store struct {
	settings Settings
	mu       sync.RWMutex
}

// NewStore opens the store described by s, creating its directory.
// A disabled Settings yields a store whose operations return ErrDisabled.
func NewStore(s Settings) (*Store, error) {
	if !s.Enabled {
		return &Store{settings: s}, nil
	}
	if s.Dir == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if s.TTL <= 0 {
		s.TTL = DefaultTTL
	}
	if err := os.MkdirAll(s.Dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Store{settings: s}, nil
}

// Enabled reports whether the store caches anything.
func (s *Store) Enabled() bool {
	return s != nil && s.settings.Enabled
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.settings.Dir
}

// Get returns the entry for key. Expired entries are removed and reported
// as ErrExpired.
func (s *Store) Get(key string) (*Entry, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	if key == "" {
		return nil, ErrInvalidKey
	}

	s.mu.RLock()
	path := s.path(key)
	data, err := os.ReadFile(path)
	s.mu.RUnlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var entry Entry
	if err = json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}
	if entry.Expired() {
		s.mu.Lock()
		_ = os.Remove(path)
		s.mu.Unlock()
		return nil, ErrExpired
	}
	return &entry, nil
}

// Set writes data under key, replacing any previous entry.
// The write goes through a temp file and rename so readers never see a
// partial entry.
func (s *Store) Set(key, category string, data json.RawMessage) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	if key == "" {
		return ErrInvalidKey
	}

	raw, err := json.Marshal(newEntry(key, category, data, s.settings.TTL))
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if limit := int64(s.settings.MaxSizeMB) * 1024 * 1024; limit > 0 {
		size, sizeErr := s.sizeLocked()
		if sizeErr != nil {
			return sizeErr
		}
		if size+int64(len(raw)) > limit {
			return fmt.Errorf("%w: %d bytes used of %d", ErrFull, size, limit)
		}
	}

	path := s.path(key)
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, raw, 0600); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename cache file: %w", err)
	}
	return nil
}

// Delete removes the entry for key. Missing entries are not an error.
func (s *Store) Delete(key string) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	if !s.Enabled() {
		return ErrDisabled
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.entryFilesLocked()
	if err != nil {
		return err
	}
	for _, f := range files {
		if rmErr := os.Remove(f); rmErr != nil && !os.IsNotExist(rmErr) {
			return fmt.Errorf("failed to remove cache file %s: %w", f, rmErr)
		}
	}
	return nil
}

// CleanupExpired removes expired and unreadable entries and returns how
// many were removed.
func (s *Store) CleanupExpired() (int, error) {
	if !s.Enabled() {
		return 0, ErrDisabled
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.entryFilesLocked()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, f := range files {
		data, readErr := os.ReadFile(f)
		if readErr != nil {
			continue
		}
		var entry Entry
		if json.Unmarshal(data, &entry) != nil || entry.Expired() {
			if os.Remove(f) == nil {
				removed++
			}
		}
	}
	return removed, nil
}

// Count returns the number of stored entries, expired ones included.
func (s *Store) Count() (int, error) {
	if !s.Enabled() {
		return 0, ErrDisabled
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	files, err := s.entryFilesLocked()
	return len(files), err
}

// Size returns the total bytes of stored entries.
func (s *Store) Size() (int64, error) {
	if !s.Enabled() {
		return 0, ErrDisabled
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sizeLocked()
}

func (s *Store) sizeLocked() (int64, error) {
	files, err := s.entryFilesLocked()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, f := range files {
		if info, statErr := os.Stat(f); statErr == nil {
			total += info.Size()
		}
	}
	return total, nil
}

func (s *Store) entryFilesLocked() ([]string, error) {
	entries, err := os.ReadDir(s.settings.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), entryExt) {
			continue
		}
		files = append(files, filepath.Join(s.settings.Dir, e.Name()))
	}
	return files, nil
}

// path maps a key to its file. Keys are hex digests, but any path
// separators are replaced so a key can never escape the directory.
func (s *Store) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.settings.Dir, safe+entryExt)
}
