package history

import (
	"context"
	"sync"

	"github.com/supchaser/genbatch/internal/app/models"
)

const DefaultLimit = 200

// MemoryStore keeps the newest entries first, dropping the oldest ones once
// the limit is reached.
type MemoryStore struct {
	entries []models.HistoryEntry
	limit   int
	mu      sync.Mutex
}

func CreateMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &MemoryStore{
		entries: make([]models.HistoryEntry, 0),
		limit:   limit,
	}
}

func (s *MemoryStore) Add(ctx context.Context, entry models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]models.HistoryEntry{entry}, s.entries...)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}

	return nil
}

func (s *MemoryStore) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}

	out := make([]models.HistoryEntry, limit)
	copy(out, s.entries[:limit])
	return out, nil
}
