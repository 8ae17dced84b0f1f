package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
	"github.com/jackzhaolt/plane-ticket-query/internal/errors"
	"github.com/jackzhaolt/plane-ticket-query/internal/logging"
)

// FileStore keeps one JSON file per key under a cache directory
type FileStore struct {
	dir string
	now func() time.Time
}

// NewFileStore creates a file-backed store, creating the directory if
// needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Cache("create cache directory", err)
	}
	return &FileStore{dir: dir, now: time.Now}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get loads a cached flight list.
// Missing files, stale entries, and undecodable payloads all report
// absent. Stale files are removed opportunistically.
func (s *FileStore) Get(_ context.Context, key string, ttl time.Duration) ([]types.Flight, bool) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		logging.Warn("discarding corrupt cache entry",
			zap.String("key", key), zap.Error(err))
		_ = os.Remove(s.path(key))
		return nil, false
	}

	if e.expired(ttl, s.now()) {
		_ = os.Remove(s.path(key))
		return nil, false
	}

	return e.Flights, true
}

// Put writes a flight list, replacing any previous entry for the key
func (s *FileStore) Put(_ context.Context, key string, flights []types.Flight) error {
	e := entry{
		ID:        uuid.NewString(),
		Flights:   flights,
		CreatedAt: s.now(),
	}

	raw, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return errors.Cache("encode cache entry", err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return errors.Cache("write cache entry", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return errors.Cache("publish cache entry", err)
	}
	return nil
}

// Close implements Store; file handles are not held open
func (s *FileStore) Close() error {
	return nil
}
