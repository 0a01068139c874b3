// Package prefs persists client-only UI preferences (theme and language).
// Storage problems never surface to callers: reads fall back to defaults and
// writes are logged and dropped.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Key names a persisted preference.
type Key string

const (
	KeyTheme    Key = "theme"
	KeyLanguage Key = "language"
)

// Store is a string-valued key-value store.
type Store interface {
	// Get returns the stored value, or false when it is absent or unreadable.
	Get(key Key) (string, bool)
	// Set writes a value. Failures are swallowed.
	Set(key Key, value string)
}

// FileStore keeps preferences in a small YAML document.
type FileStore struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFileStore returns a store backed by the YAML file at path. The file and
// its directory are created on first write.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Get(key Key) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		s.logger.Warn("failed to read preferences, using defaults", "path", s.path, "error", err)
		return "", false
	}
	v, ok := values[string(key)]
	return v, ok
}

func (s *FileStore) Set(key Key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(key, value); err != nil {
		s.logger.Warn("failed to persist preference", "key", key, "path", s.path, "error", err)
	}
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return values, nil
}

func (s *FileStore) write(key Key, value string) error {
	values, err := s.read()
	if err != nil {
		// A corrupt file is replaced rather than blocking every later write.
		values = map[string]string{}
	}
	values[string(key)] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[Key]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[Key]string{}}
}

func (s *MemoryStore) Get(key Key) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key Key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}
