package cooldown

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store maps actor IDs to the epoch milliseconds of their last use
type Store interface {
	LastUsed(actorID uuid.UUID) (int64, bool)
	Record(actorID uuid.UUID, atMillis int64)
	Remove(actorID uuid.UUID)
	Len() int
}

// MemoryStore keeps every actor it has seen. Entries are never evicted, so
// memory grows with the number of distinct actors over the process lifetime.
// That is acceptable for an online-player population, not for arbitrary IDs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]int64
}

// NewMemoryStore creates an empty unbounded store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[uuid.UUID]int64)}
}

func (s *MemoryStore) LastUsed(actorID uuid.UUID) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.entries[actorID]
	return at, ok
}

func (s *MemoryStore) Record(actorID uuid.UUID, atMillis int64) {
	s.mu.Lock()
	s.entries[actorID] = atMillis
	s.mu.Unlock()
}

func (s *MemoryStore) Remove(actorID uuid.UUID) {
	s.mu.Lock()
	delete(s.entries, actorID)
	s.mu.Unlock()
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// LRUStore is a bounded store with time-based expiration.
// An evicted or expired actor reads as "never used".
type LRUStore struct {
	lru *expirable.LRU[uuid.UUID, int64]
}

// NewLRUStore creates a store holding at most size actors, each for ttl after
// its last use. A ttl of zero disables expiration.
func NewLRUStore(size int, ttl time.Duration) *LRUStore {
	return &LRUStore{
		lru: expirable.NewLRU[uuid.UUID, int64](size, nil, ttl),
	}
}

func (s *LRUStore) LastUsed(actorID uuid.UUID) (int64, bool) {
	return s.lru.Get(actorID)
}

func (s *LRUStore) Record(actorID uuid.UUID, atMillis int64) {
	s.lru.Add(actorID, atMillis)
}

func (s *LRUStore) Remove(actorID uuid.UUID) {
	s.lru.Remove(actorID)
}

func (s *LRUStore) Len() int {
	return s.lru.Len()
}
