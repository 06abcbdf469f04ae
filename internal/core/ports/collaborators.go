package ports

import (
	"context"
	"time"

	"sandbox-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
)

// MarketOracle supplies spot prices, exchange rates and network fee estimates.
// Implementations may be latent but must always resolve, never hang.
type MarketOracle interface {
	GetPrice(ctx context.Context, symbol string) (*domain.MarketData, error)
	GetExchangeRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error)
	GetNetworkFee(ctx context.Context, network string) (*domain.FeeEstimate, error)
}

// OrderResult is the gateway's answer to a buy/sell/swap order.
type OrderResult struct {
	Success bool
	OrderID string
	Error   string // gateway's own message, surfaced verbatim on failure
}

// PaymentGateway places exchange orders and manages funding methods.
type PaymentGateway interface {
	Buy(ctx context.Context, amount decimal.Decimal, fiatCurrency, cryptoCurrency, paymentMethodID string) (*OrderResult, error)
	Sell(ctx context.Context, amount decimal.Decimal, cryptoCurrency, fiatCurrency, cashOutMethodID string) (*OrderResult, error)
	Swap(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (*OrderResult, error)
	CashOut(ctx context.Context, amount decimal.Decimal, cryptoCurrency, fiatCurrency, cashOutMethodID string) (*OrderResult, error)

	PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	CashOutMethods(ctx context.Context) ([]domain.CashOutMethod, error)
	AddPaymentMethod(ctx context.Context, methodType, provider string, details map[string]string) (*domain.PaymentMethod, error)
	AddCashOutMethod(ctx context.Context, methodType, provider string, details map[string]string) (*domain.CashOutMethod, error)
}

// VerificationStatus is the verification service's view of an address.
type VerificationStatus struct {
	Tier      domain.VerificationTier
	Documents []domain.VerificationDocument
	UpdatedAt time.Time
}

// SubmitVerificationRequest carries the KYC submission payload.
type SubmitVerificationRequest struct {
	Address      string
	Info         domain.PersonalInfo
	Email        string
	Phone        string
	DocumentType domain.DocumentType
	Document     []byte
}

// SubmitResult is the outcome of a KYC submission.
type SubmitResult struct {
	Success bool
	Message string
}

// PhraseVerifyResult is the outcome of a recovery-phrase identity check.
type PhraseVerifyResult struct {
	Success bool
	Message string
	NewTier domain.VerificationTier
}

// VerificationService simulates KYC submission/status and recovery-phrase
// identity bootstrap. Per-tier limits are pure domain logic; this service is
// the authority for tier transitions.
type VerificationService interface {
	Limits(ctx context.Context, tier domain.VerificationTier) (domain.TransactionLimits, error)
	CheckStatus(ctx context.Context, address string) (*VerificationStatus, error)
	Submit(ctx context.Context, req SubmitVerificationRequest) (*SubmitResult, error)
	GeneratePhrase(ctx context.Context) (string, error)
	ValidatePhrase(ctx context.Context, phrase string) (bool, error)
	VerifyWithPhrase(ctx context.Context, address, phrase string) (*PhraseVerifyResult, error)
}
