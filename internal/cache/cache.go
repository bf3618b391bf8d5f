package cache

import (
	"sort"
	"time"
)

const (
	// DefaultTTL is how long an entry stays valid after creation.
	DefaultTTL = 30 * 24 * time.Hour
	// DefaultMaxEntries bounds the store size before recency eviction.
	DefaultMaxEntries = 500
)

// Entry is one cached set of messages for a fingerprint.
type Entry struct {
	Messages     []string  `json:"messages"`
	CreatedAt    time.Time `json:"createdAt"`
	LastAccessed time.Time `json:"lastAccessed"`
}

// expired reports whether the entry's TTL has elapsed at the given instant.
// Validity depends only on timestamps, never on access order.
func (e Entry) expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(e.CreatedAt) > ttl
}

// Stats reports the entry count and the cumulative hit/miss counters. The
// counters reset only on Clear or process restart.
type Stats struct {
	Entries int `json:"entries"`
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
}

// Store is a bounded, TTL-expiring map from fingerprint to messages.
type Store struct {
	entries    map[string]*Entry
	ttl        time.Duration
	maxEntries int
	hits       int
	misses     int
	now        func() time.Time
}

// New creates a Store. Non-positive ttl or maxEntries fall back to the
// defaults.
func New(ttl time.Duration, maxEntries int) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Store{
		entries:    make(map[string]*Entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the messages stored for key. Expired entries are purged on
// lookup and count as misses. A hit refreshes the entry's last-accessed time.
func (s *Store) Get(key string) ([]string, bool) {
	e, ok := s.entries[key]
	if !ok {
		s.misses++
		return nil, false
	}
	if e.expired(s.now(), s.ttl) {
		delete(s.entries, key)
		s.misses++
		return nil, false
	}
	e.LastAccessed = s.now()
	s.hits++
	return e.Messages, true
}

// Put inserts or overwrites the entry for key, then evicts
// least-recently-accessed entries until the store is back at its bound.
func (s *Store) Put(key string, messages []string) {
	now := s.now()
	s.entries[key] = &Entry{
		Messages:     messages,
		CreatedAt:    now,
		LastAccessed: now,
	}
	s.evict()
}

// evict removes the least-recently-accessed entries (ties broken by oldest
// creation) until the count is within maxEntries.
func (s *Store) evict() {
	excess := len(s.entries) - s.maxEntries
	if excess <= 0 {
		return
	}

	type keyed struct {
		key string
		e   *Entry
	}
	all := make([]keyed, 0, len(s.entries))
	for k, e := range s.entries {
		all = append(all, keyed{k, e})
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].e.LastAccessed.Equal(all[j].e.LastAccessed) {
			return all[i].e.LastAccessed.Before(all[j].e.LastAccessed)
		}
		return all[i].e.CreatedAt.Before(all[j].e.CreatedAt)
	})
	for _, k := range all[:excess] {
		delete(s.entries, k.key)
	}
}

// Clear removes every entry and resets the counters.
func (s *Store) Clear() {
	s.entries = make(map[string]*Entry)
	s.hits = 0
	s.misses = 0
}

// Stats returns the current entry count and cumulative counters.
func (s *Store) Stats() Stats {
	return Stats{
		Entries: len(s.entries),
		Hits:    s.hits,
		Misses:  s.misses,
	}
}
