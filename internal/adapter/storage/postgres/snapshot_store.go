package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sandbox-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SnapshotStore implements ports.SnapshotStore on a single-row table. The
// slot key distinguishes deployments sharing one database.
//
// Schema:
//
//	CREATE TABLE wallet_snapshots (
//	    slot       TEXT PRIMARY KEY,
//	    data       JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL
//	);
type SnapshotStore struct {
	pool Pool
	slot string
}

// NewSnapshotStore creates a PostgreSQL-backed snapshot store.
func NewSnapshotStore(pool Pool, slot string) *SnapshotStore {
	return &SnapshotStore{pool: pool, slot: slot}
}

// Load returns the stored snapshot, or nil, nil when none exists.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	query := `SELECT data FROM wallet_snapshots WHERE slot = $1`

	var data []byte
	err := s.pool.QueryRow(ctx, query, s.slot).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return domain.DecodeSnapshot(data)
}

// Save upserts the stored snapshot.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := domain.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	query := `INSERT INTO wallet_snapshots (slot, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`

	if _, err := s.pool.Exec(ctx, query, s.slot, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Clear deletes the stored snapshot. Clearing an absent record is not an
// error.
func (s *SnapshotStore) Clear(ctx context.Context) error {
	query := `DELETE FROM wallet_snapshots WHERE slot = $1`

	if _, err := s.pool.Exec(ctx, query, s.slot); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
