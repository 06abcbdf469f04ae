package redis

import (
	"context"
	"fmt"

	"sandbox-wallet/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SnapshotStore implements ports.SnapshotStore on a single Redis key, the
// server-side analog of the browser storage slot the wallet state originally
// lived in. Writes have no TTL; the record survives until Clear.
type SnapshotStore struct {
	client *goredis.Client
	key    string
}

// NewSnapshotStore creates a Redis-backed snapshot store.
func NewSnapshotStore(client *goredis.Client, key string) *SnapshotStore {
	return &SnapshotStore{client: client, key: key}
}

// Load returns the stored snapshot, or nil, nil when none exists.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis snapshot load: %w", err)
	}
	return domain.DecodeSnapshot(data)
}

// Save overwrites the stored snapshot.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := domain.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis snapshot save: %w", err)
	}
	return nil
}

// Clear deletes the stored snapshot. Clearing an absent record is not an
// error.
func (s *SnapshotStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis snapshot clear: %w", err)
	}
	return nil
}
