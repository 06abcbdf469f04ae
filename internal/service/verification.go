package service

import (
	"context"

	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"

	"github.com/shopspring/decimal"
)

// SubmitVerification forwards a KYC submission for the active wallet. On
// acceptance the profile moves to pending and keeps the submitted identity
// details for later review.
func (e *walletEngine) SubmitVerification(ctx context.Context, req ports.SubmitVerificationRequest) (*ports.SubmitResult, error) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.RLock()
	if e.wallet == nil {
		e.mu.RUnlock()
		return nil, apperror.ErrNoWallet()
	}
	req.Address = e.wallet.Address
	e.mu.RUnlock()

	result, err := e.verifier.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	if result.Success {
		e.mu.Lock()
		e.profile.Tier = domain.TierPending
		info := req.Info
		e.profile.PersonalInfo = &info
		e.profile.Email = req.Email
		e.profile.Phone = req.Phone
		e.mu.Unlock()
	}
	return result, nil
}

// VerificationLimits returns the USD caps for a tier.
func (e *walletEngine) VerificationLimits(ctx context.Context, tier domain.VerificationTier) (domain.TransactionLimits, error) {
	return e.verifier.Limits(ctx, tier)
}

// CheckTransactionAllowed evaluates a USD amount against the current
// profile without consuming anything.
func (e *walletEngine) CheckTransactionAllowed(usdAmount decimal.Decimal) domain.LimitCheck {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.profile.CheckLimits(usdAmount)
}

// GenerateRecoveryPhrase returns a fresh mnemonic.
func (e *walletEngine) GenerateRecoveryPhrase(ctx context.Context) (string, error) {
	return e.verifier.GeneratePhrase(ctx)
}

// VerifyRecoveryPhrase checks mnemonic well-formedness only.
func (e *walletEngine) VerifyRecoveryPhrase(ctx context.Context, phrase string) (bool, error) {
	return e.verifier.ValidatePhrase(ctx, phrase)
}

// VerifyWithRecoveryPhrase proves ownership through a mnemonic. Success
// promotes the profile tier; this path coexists with the document flow.
func (e *walletEngine) VerifyWithRecoveryPhrase(ctx context.Context, phrase string) (*ports.PhraseVerifyResult, error) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.RLock()
	if e.wallet == nil {
		e.mu.RUnlock()
		return nil, apperror.ErrNoWallet()
	}
	address := e.wallet.Address
	e.mu.RUnlock()

	result, err := e.verifier.VerifyWithPhrase(ctx, address, phrase)
	if err != nil {
		return nil, err
	}

	if result.Success {
		e.mu.Lock()
		e.profile.Tier = result.NewTier
		e.profile.RecoveryPhraseVerified = true
		e.mu.Unlock()
	}
	return result, nil
}

// PaymentMethods returns the cached funding sources.
func (e *walletEngine) PaymentMethods() []domain.PaymentMethod {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.PaymentMethod, len(e.paymentMethods))
	copy(out, e.paymentMethods)
	return out
}

// CashOutMethods returns the cached cash-out destinations.
func (e *walletEngine) CashOutMethods() []domain.CashOutMethod {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.CashOutMethod, len(e.cashOutMethods))
	copy(out, e.cashOutMethods)
	return out
}

// AddPaymentMethod registers a funding source with the gateway and caches
// it.
func (e *walletEngine) AddPaymentMethod(ctx context.Context, methodType, provider string, details map[string]string) (*domain.PaymentMethod, error) {
	pm, err := e.gateway.AddPaymentMethod(ctx, methodType, provider, details)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.paymentMethods = append(e.paymentMethods, *pm)
	e.mu.Unlock()
	return pm, nil
}

// AddCashOutMethod registers a cash-out destination with the gateway and
// caches it.
func (e *walletEngine) AddCashOutMethod(ctx context.Context, methodType, provider string, details map[string]string) (*domain.CashOutMethod, error) {
	cm, err := e.gateway.AddCashOutMethod(ctx, methodType, provider, details)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.cashOutMethods = append(e.cashOutMethods, *cm)
	e.mu.Unlock()
	return cm, nil
}
