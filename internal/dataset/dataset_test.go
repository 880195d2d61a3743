package dataset

import (
	"fmt"
	"testing"
	"time"
)

func newDataset(hash string) *Dataset {
	return &Dataset{
		UploadID: "u-" + hash,
		FileName: hash + ".xlsx",
		Hash:     hash,
		LoadedAt: time.Now(),
	}
}

func TestCurrentAndCachedRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if _, ok := s.Current(); ok {
		t.Fatal("Current reported a dataset on an empty store")
	}
	if got := s.Records(); got == nil || len(got) != 0 {
		t.Fatalf("Records = %v, want empty non-nil slice", got)
	}

	ds := newDataset(ContentHash([]byte("contenido")))
	s.SetCurrent(ds)

	cur, ok := s.Current()
	if !ok || cur.UploadID != ds.UploadID {
		t.Fatalf("Current = %+v, want %+v", cur, ds)
	}
	cached, ok := s.Cached(ds.Hash)
	if !ok || cached.UploadID != ds.UploadID {
		t.Fatalf("Cached(%q) = %+v, want the stored dataset", ds.Hash, cached)
	}
}

func TestContentHashStable(t *testing.T) {
	t.Parallel()

	a := ContentHash([]byte("mismos bytes"))
	b := ContentHash([]byte("mismos bytes"))
	if a != b {
		t.Fatalf("ContentHash not stable: %q vs %q", a, b)
	}
	if a == ContentHash([]byte("otros bytes")) {
		t.Fatal("ContentHash collided for different inputs")
	}
}

func TestCacheStaysBounded(t *testing.T) {
	t.Parallel()

	s := NewStore()
	for i := 0; i < maxCachedDatasets*3; i++ {
		s.SetCurrent(newDataset(ContentHash([]byte(fmt.Sprintf("archivo-%d", i)))))
	}

	s.mu.RLock()
	size := len(s.cache)
	s.mu.RUnlock()
	if size > maxCachedDatasets {
		t.Fatalf("cache holds %d entries, want at most %d", size, maxCachedDatasets)
	}

	// The latest upload is always retrievable, eviction or not.
	last := ContentHash([]byte(fmt.Sprintf("archivo-%d", maxCachedDatasets*3-1)))
	if _, ok := s.Cached(last); !ok {
		t.Fatal("latest dataset missing from the cache")
	}
}
