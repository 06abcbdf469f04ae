// Package verification implements a simulated KYC provider. Submissions and
// phrase verifications mutate an in-memory per-address record; nothing ever
// reaches a real reviewer.
package verification

import (
	"context"
	"strings"
	"sync"
	"time"

	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/tyler-smith/go-bip39"
)

type record struct {
	tier      domain.VerificationTier
	documents []domain.VerificationDocument
	updatedAt time.Time
}

type simulatedVerifier struct {
	latency time.Duration

	mu      sync.Mutex
	records map[string]*record
}

// New creates a simulated verification service. latency is applied to calls
// that would hit a real provider; pass 0 for immediate responses in tests.
func New(latency time.Duration) ports.VerificationService {
	return &simulatedVerifier{
		latency: latency,
		records: make(map[string]*record),
	}
}

func (v *simulatedVerifier) pause(ctx context.Context) error {
	if v.latency <= 0 {
		return nil
	}
	t := time.NewTimer(v.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (v *simulatedVerifier) recordFor(address string) *record {
	key := strings.ToLower(address)
	r, ok := v.records[key]
	if !ok {
		r = &record{tier: domain.TierNone, updatedAt: time.Now()}
		v.records[key] = r
	}
	return r
}

func (v *simulatedVerifier) Limits(ctx context.Context, tier domain.VerificationTier) (domain.TransactionLimits, error) {
	return domain.LimitsForTier(tier), nil
}

func (v *simulatedVerifier) CheckStatus(ctx context.Context, address string) (*ports.VerificationStatus, error) {
	if err := v.pause(ctx); err != nil {
		return nil, apperror.ErrVerificationFailure(err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	r := v.recordFor(address)
	docs := make([]domain.VerificationDocument, len(r.documents))
	copy(docs, r.documents)
	return &ports.VerificationStatus{
		Tier:      r.tier,
		Documents: docs,
		UpdatedAt: r.updatedAt,
	}, nil
}

func (v *simulatedVerifier) Submit(ctx context.Context, req ports.SubmitVerificationRequest) (*ports.SubmitResult, error) {
	if err := v.pause(ctx); err != nil {
		return nil, apperror.ErrVerificationFailure(err)
	}
	if req.Address == "" {
		return nil, apperror.Validation("Address is required")
	}
	if len(req.Document) == 0 {
		return nil, apperror.Validation("Document file is required")
	}

	v.mu.Lock()
	r := v.recordFor(req.Address)
	r.tier = domain.TierPending
	r.documents = append(r.documents, domain.VerificationDocument{
		ID:          "doc_" + uuid.NewString(),
		Type:        req.DocumentType,
		Status:      "pending",
		SubmittedAt: time.Now(),
	})
	r.updatedAt = time.Now()
	v.mu.Unlock()

	return &ports.SubmitResult{
		Success: true,
		Message: "Verification request submitted successfully. Please allow 1-2 business days for review.",
	}, nil
}

func (v *simulatedVerifier) GeneratePhrase(ctx context.Context) (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	return phrase, nil
}

func (v *simulatedVerifier) ValidatePhrase(ctx context.Context, phrase string) (bool, error) {
	return bip39.IsMnemonicValid(phrase), nil
}

func (v *simulatedVerifier) VerifyWithPhrase(ctx context.Context, address, phrase string) (*ports.PhraseVerifyResult, error) {
	if err := v.pause(ctx); err != nil {
		return nil, apperror.ErrVerificationFailure(err)
	}

	if !bip39.IsMnemonicValid(phrase) {
		return &ports.PhraseVerifyResult{
			Success: false,
			Message: "Invalid recovery phrase. Please try again.",
		}, nil
	}

	v.mu.Lock()
	r := v.recordFor(address)
	// A phrase check never downgrades a reviewed tier.
	if r.tier == domain.TierNone || r.tier == domain.TierPending {
		r.tier = domain.TierBasic
	}
	r.updatedAt = time.Now()
	v.mu.Unlock()

	return &ports.PhraseVerifyResult{
		Success: true,
		Message: "Recovery phrase verified successfully. Your account has been upgraded to basic verification.",
		NewTier: domain.TierBasic,
	}, nil
}
