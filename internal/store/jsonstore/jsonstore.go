package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSON-backed key-value storage: one pretty-printed file per key under a
// single directory. Human-readable, portable. No locking; fine for a local
// single-user app with exactly one writer.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily on the
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store writes under.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the value stored under key into v and reports whether it was
// found. Absent files and unparsable data both report false so callers can
// substitute their default; corrupt data must never surface as an error.
func (s *Store) Load(key string, v any) bool {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false
	}
	return true
}

// Save serializes v and writes it under key, replacing any previous value.
// Files are owner-only, matching the 0700 data directory.
func (s *Store) Save(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path(key), b, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
