package memory

import (
	"context"
	"encoding/json"
	"sync"

	"servix/backend/internal/domain"
	"servix/backend/internal/store"
)

// Store holds the snapshot as encoded JSON so that dev and test runs
// exercise the same serialization round-trip as the durable backends.
type Store struct {
	mu      sync.RWMutex
	payload []byte
}

func New() *Store {
	return &Store{}
}

func (s *Store) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	payload := s.payload
	s.mu.RUnlock()

	if payload == nil {
		return nil, store.ErrSnapshotNotFound
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Store) Save(ctx context.Context, snap *domain.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.payload = payload
	s.mu.Unlock()
	return nil
}
