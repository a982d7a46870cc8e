package store

import (
	"context"
	"errors"

	"servix/backend/internal/domain"
)

// ErrSnapshotNotFound is returned by Load when the backing slot has
// never been written.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore is a durable slot holding one serialized application
// snapshot. Save always rewrites the whole document.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}
