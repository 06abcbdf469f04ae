package ports

import (
	"context"

	"sandbox-wallet/internal/core/domain"
)

// SnapshotStore persists the single serialized wallet record. The engine is
// the only writer; last-writer-wins semantics are acceptable.
type SnapshotStore interface {
	// Load returns the stored snapshot, or nil, nil when none exists.
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snapshot *domain.Snapshot) error
	Clear(ctx context.Context) error
}
