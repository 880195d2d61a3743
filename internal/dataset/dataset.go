// Package dataset owns the normalized record set of the current upload.
// It is the only dataset state that outlives a single request; everything
// downstream recomputes from it on every call.
package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/parser"
)

// Dataset is one normalized upload plus its ingestion diagnostics.
type Dataset struct {
	UploadID string              `json:"uploadId"`
	FileName string              `json:"fileName"`
	Hash     string              `json:"hash"`
	Records  []model.TaskRecord  `json:"-"`
	Missing  []parser.Field      `json:"missingFields"`
	LoadedAt time.Time           `json:"loadedAt"`
}

// Store holds the current dataset and a normalization cache keyed on file
// content identity. Normalization is pure, so re-uploading the same bytes
// reuses the previous result.
type Store struct {
	mu      sync.RWMutex
	current *Dataset
	cache   map[string]*Dataset
}

// NewStore creates an empty dataset store.
func NewStore() *Store {
	return &Store{cache: make(map[string]*Dataset)}
}

// ContentHash is the cache key for an upload's raw bytes.
func ContentHash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Cached returns the previously normalized dataset for the given content
// hash, if any.
func (s *Store) Cached(hash string) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.cache[hash]
	return ds, ok
}

// maxCachedDatasets bounds the session normalization cache.
const maxCachedDatasets = 8

// SetCurrent installs a dataset as the active one and caches it under its
// content hash. Each hash is immutable; when the cache is full an arbitrary
// older entry makes room.
func (s *Store) SetCurrent(ds *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ds
	if ds == nil || ds.Hash == "" {
		return
	}
	if _, ok := s.cache[ds.Hash]; !ok && len(s.cache) >= maxCachedDatasets {
		for hash := range s.cache {
			delete(s.cache, hash)
			break
		}
	}
	s.cache[ds.Hash] = ds
}

// Current returns the active dataset, or false when nothing was uploaded yet.
func (s *Store) Current() (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

// Records returns the active record set; empty when nothing was uploaded.
// Downstream code never needs a nil check beyond "is the set empty".
func (s *Store) Records() []model.TaskRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return []model.TaskRecord{}
	}
	return s.current.Records
}
