package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/portionwise/backend/internal/domain"
)

// storedSnapshot is a single persisted record with expiration
type storedSnapshot struct {
	Payload    []byte
	Expiration time.Time
}

// MemoryStore is a thread-safe in-memory snapshot store with TTL support
type MemoryStore struct {
	data  map[string]storedSnapshot
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory snapshot store
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		data: make(map[string]storedSnapshot),
	}

	// Start cleanup goroutine to remove expired entries every 10 minutes
	go s.cleanupExpired()

	return s
}

// Get retrieves a client's last-used input. A record that cannot be decoded
// is treated as a miss so callers fall back to the default input.
func (s *MemoryStore) Get(ctx context.Context, key string) (*domain.PortionInput, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[key]
	if !exists {
		return nil, domain.ErrSnapshotMiss
	}

	// Check if expired
	if time.Now().After(item.Expiration) {
		return nil, domain.ErrSnapshotMiss
	}

	var input domain.PortionInput
	if err := json.Unmarshal(item.Payload, &input); err != nil {
		return nil, domain.ErrSnapshotMiss
	}

	return &input, nil
}

// Set stores a client's last-used input with TTL. The record is serialized
// to JSON so the memory store round-trips values exactly like the Redis one.
func (s *MemoryStore) Set(ctx context.Context, key string, input *domain.PortionInput, ttl time.Duration) error {
	if input == nil {
		return domain.ErrInvalidRequest
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = storedSnapshot{
		Payload:    payload,
		Expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a client's snapshot
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

// Exists checks if a snapshot exists for the key and is not expired
func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[key]
	if !exists {
		return false, nil
	}

	if time.Now().After(item.Expiration) {
		return false, nil
	}

	return true, nil
}

// cleanupExpired removes expired entries from the store periodically
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, item := range s.data {
			if now.After(item.Expiration) {
				delete(s.data, key)
			}
		}
		s.mutex.Unlock()
	}
}

// Size returns the current number of snapshots (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Clear removes all snapshots from the store
func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data = make(map[string]storedSnapshot)
}
