package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"stockpick/internal/domain"
)

// Bucket names
var (
	bucketEntries = []byte("entries")
	bucketClips   = []byte("clips")
)

// ProjectStore persists media library entries and timeline clips in BoltDB.
// With an empty directory it runs memory-only (no persistence), which is
// what the tests and ephemeral sessions use.
type ProjectStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewProjectStore opens (or creates) the project database under dir.
func NewProjectStore(dir string) (*ProjectStore, error) {
	if dir == "" {
		// Memory-only mode (no persistence)
		return &ProjectStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "stockpick.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketEntries, bucketClips} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ProjectStore{db: db, cache: make(map[string][]byte)}, nil
}

// Close releases the underlying database.
func (s *ProjectStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *ProjectStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *ProjectStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *ProjectStore) delete(bucket []byte, key string) {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// list collects every value in a bucket into out, which must be a func
// appending one decoded value per raw record.
func (s *ProjectStore) list(bucket []byte, decode func(data []byte)) {
	if s.db != nil {
		s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucket)
			if b == nil {
				return nil
			}
			return b.ForEach(func(k, v []byte) error {
				decode(v)
				return nil
			})
		})
		return
	}

	// Memory-only mode: scan the cache by bucket prefix
	prefix := string(bucket) + ":"
	s.mu.RLock()
	defer s.mu.RUnlock()
	for k, v := range s.cache {
		if strings.HasPrefix(k, prefix) {
			decode(v)
		}
	}
}

// === Media entries ===

// SaveEntry persists a media library entry keyed by its ID.
func (s *ProjectStore) SaveEntry(entry *domain.MediaEntry) error {
	return s.set(bucketEntries, entry.ID, entry)
}

// GetEntry loads one entry by ID.
func (s *ProjectStore) GetEntry(id string) (*domain.MediaEntry, bool) {
	var entry domain.MediaEntry
	if !s.get(bucketEntries, id, &entry) {
		return nil, false
	}
	return &entry, true
}

// ListEntries returns all entries ordered by AddedAt, then ID.
func (s *ProjectStore) ListEntries() []*domain.MediaEntry {
	var entries []*domain.MediaEntry
	s.list(bucketEntries, func(data []byte) {
		var e domain.MediaEntry
		if json.Unmarshal(data, &e) == nil {
			entries = append(entries, &e)
		}
	})
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AddedAt != entries[j].AddedAt {
			return entries[i].AddedAt < entries[j].AddedAt
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// DeleteEntry removes an entry.
func (s *ProjectStore) DeleteEntry(id string) {
	s.delete(bucketEntries, id)
}

// === Timeline clips ===

// SaveClip persists a timeline clip keyed by its ID.
func (s *ProjectStore) SaveClip(clip *domain.TimelineClip) error {
	return s.set(bucketClips, clip.ID, clip)
}

// ListClips returns all clips ordered by start position, then ID.
func (s *ProjectStore) ListClips() []*domain.TimelineClip {
	var clips []*domain.TimelineClip
	s.list(bucketClips, func(data []byte) {
		var c domain.TimelineClip
		if json.Unmarshal(data, &c) == nil {
			clips = append(clips, &c)
		}
	})
	sort.Slice(clips, func(i, j int) bool {
		if clips[i].StartMs != clips[j].StartMs {
			return clips[i].StartMs < clips[j].StartMs
		}
		return clips[i].ID < clips[j].ID
	})
	return clips
}

// DeleteClip removes a clip.
func (s *ProjectStore) DeleteClip(id string) {
	s.delete(bucketClips, id)
}
