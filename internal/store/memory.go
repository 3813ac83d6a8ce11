package store

import (
	"context"
	"sync"

	"campusq/internal/models"
)

// MemoryStore is an in-process RowStore with the same version semantics
// as the database-backed one. Used in tests and for running without a
// database.
type MemoryStore struct {
	mu     sync.RWMutex
	queues map[string]models.Queue
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{queues: make(map[string]models.Queue)}
}

func cloneQueue(q models.Queue) models.Queue {
	services := make([]string, len(q.Services))
	copy(services, q.Services)
	items := make([]models.Entry, len(q.Items))
	copy(items, q.Items)
	q.Services = services
	q.Items = items
	return q
}

func (s *MemoryStore) Insert(ctx context.Context, q *models.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.Version = 1
	s.queues[q.ID] = cloneQueue(*q)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.queues[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneQueue(q)
	return &out, nil
}

func (s *MemoryStore) Save(ctx context.Context, q *models.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.queues[q.ID]
	if !ok {
		return ErrNotFound
	}
	if cur.Version != q.Version {
		return ErrConflict
	}
	q.Version++
	s.queues[q.ID] = cloneQueue(*q)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.queues[id]
	delete(s.queues, id)
	return ok, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	queues := make([]models.Queue, 0, len(s.queues))
	for _, q := range s.queues {
		queues = append(queues, cloneQueue(q))
	}
	return queues, nil
}

func (s *MemoryStore) DeleteCreatedBefore(ctx context.Context, cutoff int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := 0
	for id, q := range s.queues {
		if q.CreatedAt < cutoff {
			delete(s.queues, id)
			deleted++
		}
	}
	return deleted, nil
}
