package faqstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// DefaultMemoryStoreKeys caps the distinct queries a MemoryStore tracks.
const DefaultMemoryStoreKeys = 10000

// MemoryStore is an in-memory implementation of the FAQ statistics store for
// tests/dev and the fallback when Valkey is not configured. Once more than
// maxKeys distinct queries are tracked the least counted ones are dropped.
type MemoryStore struct {
	mu         sync.RWMutex
	maxKeys    int
	answered   map[string]int64
	unanswered map[string]int64
	displays   map[string]string
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithLimit(DefaultMemoryStoreKeys)
}

// NewMemoryStoreWithLimit constructs a store that tracks at most maxKeys
// distinct queries. Non-positive values use DefaultMemoryStoreKeys.
func NewMemoryStoreWithLimit(maxKeys int) *MemoryStore {
	if maxKeys <= 0 {
		maxKeys = DefaultMemoryStoreKeys
	}
	return &MemoryStore{
		maxKeys:    maxKeys,
		answered:   make(map[string]int64),
		unanswered: make(map[string]int64),
		displays:   make(map[string]string),
	}
}

// IncrementQuery bumps the counter for a canonical query and records the
// first display string seen for it.
func (s *MemoryStore) IncrementQuery(_ context.Context, canonical, display string, answered bool) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if answered {
		s.answered[canonical]++
	} else {
		s.unanswered[canonical]++
	}
	if _, exists := s.displays[canonical]; !exists {
		s.displays[canonical] = display
		if len(s.displays) > s.maxKeys {
			s.prune(canonical)
		}
	}
	return nil
}

// prune drops the least counted queries, never keep, until a tenth of the
// capacity is free again. Ties go to the lexically smaller query.
func (s *MemoryStore) prune(keep string) {
	target := s.maxKeys - s.maxKeys/10
	type entry struct {
		canonical string
		total     int64
	}
	entries := make([]entry, 0, len(s.displays))
	for canonical := range s.displays {
		if canonical == keep {
			continue
		}
		entries = append(entries, entry{canonical: canonical, total: s.answered[canonical] + s.unanswered[canonical]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].total == entries[j].total {
			return entries[i].canonical < entries[j].canonical
		}
		return entries[i].total < entries[j].total
	})
	for _, e := range entries {
		if len(s.displays) <= target {
			break
		}
		delete(s.answered, e.canonical)
		delete(s.unanswered, e.canonical)
		delete(s.displays, e.canonical)
	}
}

// TopQueries returns the most frequent answered queries.
func (s *MemoryStore) TopQueries(_ context.Context, limit int) ([]faq.TrendingQuery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.top(s.answered, limit), nil
}

// TopUnanswered returns the most frequent queries nothing matched.
func (s *MemoryStore) TopUnanswered(_ context.Context, limit int) ([]faq.TrendingQuery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.top(s.unanswered, limit), nil
}

func (s *MemoryStore) top(counts map[string]int64, limit int) []faq.TrendingQuery {
	if limit <= 0 {
		limit = len(counts)
	}
	items := make([]faq.TrendingQuery, 0, len(counts))
	for canonical, count := range counts {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, faq.TrendingQuery{Query: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Query < items[j].Query
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

var _ faq.Store = (*MemoryStore)(nil)
