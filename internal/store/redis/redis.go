package redis

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"servix/backend/internal/domain"
	"servix/backend/internal/store"
)

const snapshotKey = "servix:snapshot"

// Store keeps the application snapshot in a single Redis key. The
// snapshot never expires; every Save overwrites the previous value.
type Store struct {
	client *goredis.Client
}

func New(addr string, password string, db int) *Store {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Store{client: client}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Load(ctx context.Context) (*domain.Snapshot, error) {
	val, err := s.client.Get(ctx, snapshotKey).Result()
	if err == goredis.Nil {
		return nil, store.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Store) Save(ctx context.Context, snap *domain.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey, payload, 0).Err()
}
