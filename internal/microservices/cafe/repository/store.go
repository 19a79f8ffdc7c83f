package repository

import (
	"sync"

	"cafe-bot/internal/microservices/cafe/domain/dao"
)

// StoreInterface: эфемерное хранилище: только append, живёт пока жив процесс.
type StoreInterface interface {
	Append(kind dao.Kind, record any)
	List(kind dao.Kind) []any
	Count(kind dao.Kind) int
}

type MemoryStore struct {
	mu      sync.RWMutex
	records map[dao.Kind][]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[dao.Kind][]any)}
}

func (s *MemoryStore) Append(kind dao.Kind, record any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[kind] = append(s.records[kind], record)
}

// List returns a copy in insertion order.
func (s *MemoryStore) List(kind dao.Kind) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]any, len(s.records[kind]))
	copy(out, s.records[kind])
	return out
}

func (s *MemoryStore) Count(kind dao.Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[kind])
}

// ListAs narrows List to one record type, skipping anything else.
func ListAs[T any](s StoreInterface, kind dao.Kind) []T {
	all := s.List(kind)
	out := make([]T, 0, len(all))
	for _, r := range all {
		if v, ok := r.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
