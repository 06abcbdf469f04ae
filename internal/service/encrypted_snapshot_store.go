package service

import (
	"context"

	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// EncryptedSnapshotStore wraps a SnapshotStore and encrypts the private key
// before the record reaches durable storage. Every other snapshot field is
// passed through unchanged so the record stays inspectable.
type EncryptedSnapshotStore struct {
	inner ports.SnapshotStore
	enc   ports.EncryptionService
	log   zerolog.Logger
}

// NewEncryptedSnapshotStore wraps inner with at-rest encryption of the
// private key.
func NewEncryptedSnapshotStore(inner ports.SnapshotStore, enc ports.EncryptionService, log zerolog.Logger) *EncryptedSnapshotStore {
	return &EncryptedSnapshotStore{
		inner: inner,
		enc:   enc,
		log:   log.With().Str("component", "encrypted_snapshot_store").Logger(),
	}
}

// Load reads the stored snapshot and decrypts its private key. A record whose
// key does not decrypt is treated as a legacy plaintext record and returned
// as is; key validity is checked by the restore path.
func (s *EncryptedSnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	snap, err := s.inner.Load(ctx)
	if err != nil || snap == nil {
		return snap, err
	}

	plaintext, err := s.enc.Decrypt(snap.PrivateKey)
	if err != nil {
		s.log.Warn().Msg("snapshot key is not ciphertext, reading as legacy plaintext record")
		return snap, nil
	}
	snap.PrivateKey = plaintext
	return snap, nil
}

// Save encrypts the private key and delegates. The caller's snapshot is not
// mutated.
func (s *EncryptedSnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	ciphertext, err := s.enc.Encrypt(snapshot.PrivateKey)
	if err != nil {
		return err
	}
	sealed := *snapshot
	sealed.PrivateKey = ciphertext
	return s.inner.Save(ctx, &sealed)
}

// Clear delegates to the wrapped store.
func (s *EncryptedSnapshotStore) Clear(ctx context.Context) error {
	return s.inner.Clear(ctx)
}
