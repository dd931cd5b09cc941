// Package cache provides single-slot stores for the last fetched trivia
// record. Every save overwrites the slot; there is no history.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ddanielcruz/numbertrivia/internal/trivia"
)

// FileStore keeps the cached record as a single JSON file. Writes go through
// a temp file and rename so a concurrent read never observes a partial
// record; the mutex serializes the file operations themselves.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ trivia.CacheStore = (*FileStore)(nil)

// NewFileStore creates a new FileStore persisting to the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Last returns the cached record. It fails when the file does not exist or
// does not decode into a usable record.
func (s *FileStore) Last(_ context.Context) (trivia.TriviaRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record trivia.TriviaRecord
	contents, err := os.ReadFile(s.path)
	if err != nil {
		return record, fmt.Errorf("os.ReadFile > %w", err)
	}
	if err := json.Unmarshal(contents, &record); err != nil {
		return trivia.TriviaRecord{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if !record.Valid() {
		return trivia.TriviaRecord{}, fmt.Errorf("corrupt cached trivia in %s", s.path)
	}
	return record, nil
}

// Save overwrites the slot with record.
func (s *FileStore) Save(_ context.Context, record trivia.TriviaRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".trivia-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	if _, err := tmp.Write(contents); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("tmp.Write > %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("tmp.Close > %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}
