package receipts

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type MemStore struct {
	mu    sync.RWMutex
	m     map[string]ScoreRecord
	newID func() string
}

func NewMemStore() *MemStore {
	return &MemStore{
		m:     map[string]ScoreRecord{},
		newID: uuid.NewString,
	}
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) Submit(ctx context.Context, rec ScoreRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A collision on a random 128-bit id is not a designed case, but the
	// write-once guarantee holds regardless.
	id := s.newID()
	for _, taken := s.m[id]; taken; _, taken = s.m[id] {
		id = s.newID()
	}

	s.m[id] = rec
	return id, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (ScoreRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.m[id]
	return rec, ok, nil
}

func (s *MemStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m), nil
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }
