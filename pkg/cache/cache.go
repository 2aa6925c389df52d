// Package cache provides an in-memory TTL store for fetched comment
// lists, so repeated embeds of the same discussion do not hammer the
// upstream platforms.
package cache

import (
	"sync"
	"time"

	"github.com/metrue/discussing/pkg/models"
)

type entry struct {
	comments []models.Comment
	expires  time.Time
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func New() *Store {
	return &Store{
		entries: make(map[string]entry),
	}
}

// Get returns the cached comment list for key, or false when the key is
// unknown or its entry has expired. Expired entries are dropped lazily.
func (s *Store) Get(key string) ([]models.Comment, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expires) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.comments, true
}

// Set stores comments under key for the given lifetime. A non-positive
// lifetime is a no-op.
func (s *Store) Set(key string, comments []models.Comment, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{comments: comments, expires: time.Now().Add(ttl)}
}

// Len reports the number of entries currently held, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
