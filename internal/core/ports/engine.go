package ports

import (
	"context"

	"sandbox-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
)

// WalletInfo is the result of creating or importing a wallet.
type WalletInfo struct {
	Address string
}

// TxResult is the discriminated outcome of a ledger mutation. Reason carries
// a human-readable message on failure; nothing throws past the engine.
type TxResult struct {
	Success     bool
	Reason      string
	Transaction *domain.Transaction
}

// OrderOutcome is the outcome of a gateway-mediated exchange operation.
type OrderOutcome struct {
	Success     bool
	OrderID     string
	Reason      string
	Transaction *domain.Transaction
}

// ConnectResult is the outcome of a blockchain connection attempt. Whatever
// happens, State describes a usable session (sandbox at worst).
type ConnectResult struct {
	Success bool
	Message string
	State   domain.ConnectivityState
}

// WalletState is a point-in-time view of the engine for the presentation
// layer. Slices are copies; mutating them does not affect the engine.
type WalletState struct {
	Address      string
	Connectivity domain.ConnectivityState
	Assets       []domain.CryptoAsset
	Fiat         []domain.FiatBalance
	History      []domain.Transaction
	Profile      domain.UserProfile
}

// WalletEngine owns the wallet session: lifecycle, ledgers, transaction log,
// verification profile and connectivity. All operations are safe for
// concurrent use; mutating operations are serialized internally.
type WalletEngine interface {
	// Lifecycle
	CreateWallet(ctx context.Context) (*WalletInfo, error)
	ImportWallet(ctx context.Context, hexKey string) (*WalletInfo, error)
	ResetWallet(ctx context.Context) error
	Restore(ctx context.Context) error
	State() *WalletState

	// Ledger mutations
	Deposit(ctx context.Context, amount decimal.Decimal, currency string) TxResult
	Withdraw(ctx context.Context, amount decimal.Decimal, currency string) TxResult
	Transfer(ctx context.Context, to string, amount decimal.Decimal, currency string) TxResult

	// Exchange operations
	BuyCryptoWithFiat(ctx context.Context, amount decimal.Decimal, fiatCurrency, cryptoCurrency, paymentMethodID string) OrderOutcome
	SellCryptoForFiat(ctx context.Context, amount decimal.Decimal, cryptoCurrency, fiatCurrency, cashOutMethodID string) OrderOutcome
	SwapCryptoAssets(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) OrderOutcome
	CashOutCrypto(ctx context.Context, amount decimal.Decimal, cryptoCurrency, fiatCurrency, cashOutMethodID string) OrderOutcome

	// Connectivity
	ConnectToBlockchain(ctx context.Context, customRPCURL, network string) ConnectResult
	FetchBalances(ctx context.Context) error

	// Refresh (log-never-fail)
	RefreshMarketData(ctx context.Context)
	RefreshUserProfile(ctx context.Context)

	// Verification
	SubmitVerification(ctx context.Context, req SubmitVerificationRequest) (*SubmitResult, error)
	VerificationLimits(ctx context.Context, tier domain.VerificationTier) (domain.TransactionLimits, error)
	CheckTransactionAllowed(usdAmount decimal.Decimal) domain.LimitCheck
	GenerateRecoveryPhrase(ctx context.Context) (string, error)
	VerifyRecoveryPhrase(ctx context.Context, phrase string) (bool, error)
	VerifyWithRecoveryPhrase(ctx context.Context, phrase string) (*PhraseVerifyResult, error)

	// Funding methods
	PaymentMethods() []domain.PaymentMethod
	CashOutMethods() []domain.CashOutMethod
	AddPaymentMethod(ctx context.Context, methodType, provider string, details map[string]string) (*domain.PaymentMethod, error)
	AddCashOutMethod(ctx context.Context, methodType, provider string, details map[string]string) (*domain.CashOutMethod, error)
}
