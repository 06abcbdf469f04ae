package dto

import "github.com/shopspring/decimal"

// ImportWalletRequest is the request body for importing a private key.
type ImportWalletRequest struct {
	PrivateKey string `json:"private_key" binding:"required"`
}

// WalletSessionResponse is returned when a wallet is created or imported.
// The token authenticates every subsequent call for this wallet.
type WalletSessionResponse struct {
	Address string `json:"address"`
	Token   string `json:"token"`
	Expiry  int64  `json:"expiry"` // Unix timestamp
}

// LedgerRequest is the request body for deposits and withdrawals.
type LedgerRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,max=10"`
}

// TransferRequest is the request body for a transfer.
type TransferRequest struct {
	To       string          `json:"to" binding:"required,max=128"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,max=10"`
}

// BuyRequest is the request body for a fiat-to-crypto purchase.
type BuyRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	FiatCurrency    string          `json:"fiat_currency" binding:"required,max=10"`
	CryptoCurrency  string          `json:"crypto_currency" binding:"required,max=10"`
	PaymentMethodID string          `json:"payment_method_id" binding:"required,safe_id"`
}

// SellRequest is the request body for a crypto-to-fiat sale.
type SellRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	CryptoCurrency  string          `json:"crypto_currency" binding:"required,max=10"`
	FiatCurrency    string          `json:"fiat_currency" binding:"required,max=10"`
	CashOutMethodID string          `json:"cash_out_method_id" binding:"required,safe_id"`
}

// SwapRequest is the request body for an asset-to-asset swap.
type SwapRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	FromCurrency string          `json:"from_currency" binding:"required,max=10"`
	ToCurrency   string          `json:"to_currency" binding:"required,max=10"`
}

// CashOutRequest is the request body for cashing crypto out to fiat.
type CashOutRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	CryptoCurrency  string          `json:"crypto_currency" binding:"required,max=10"`
	FiatCurrency    string          `json:"fiat_currency" binding:"required,max=10"`
	CashOutMethodID string          `json:"cash_out_method_id" binding:"required,safe_id"`
}

// ConnectRequest is the request body for a blockchain connection attempt.
// Both fields are optional: an empty network keeps the current selection and
// an empty custom URL resolves the provider from configuration.
type ConnectRequest struct {
	CustomRPCURL string `json:"custom_rpc_url,omitempty" binding:"omitempty,safe_url"`
	Network      string `json:"network,omitempty" binding:"omitempty,max=32"`
}

// SubmitVerificationRequest is the request body for a KYC submission.
// Document carries the base64-encoded scan.
type SubmitVerificationRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"required,max=100"`
	DateOfBirth  string `json:"date_of_birth" binding:"required"`
	Street       string `json:"street,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country" binding:"required,max=64"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required,max=32"`
	DocumentType string `json:"document_type" binding:"required,max=32"`
	Document     []byte `json:"document" binding:"required"`
}

// LimitCheckRequest asks whether a USD amount would pass the tier limits.
type LimitCheckRequest struct {
	USDAmount decimal.Decimal `json:"usd_amount" binding:"required"`
}

// PhraseRequest carries a recovery phrase.
type PhraseRequest struct {
	Phrase string `json:"phrase" binding:"required"`
}

// AddFundingMethodRequest is the request body for adding a payment or
// cash-out method.
type AddFundingMethodRequest struct {
	Type     string            `json:"type" binding:"required,max=32"`
	Provider string            `json:"provider" binding:"required,max=64"`
	Details  map[string]string `json:"details,omitempty"`
}

// TransactionResponse is the wire form of a ledger record.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	ToCurrency  string          `json:"to_currency,omitempty"`
	ToAddress   string          `json:"to_address,omitempty"`
	FromAddress string          `json:"from_address,omitempty"`
	Status      string          `json:"status"`
	Fee         decimal.Decimal `json:"fee"`
	Hash        string          `json:"hash,omitempty"`
	Network     string          `json:"network,omitempty"`
	Timestamp   int64           `json:"timestamp"` // Unix milliseconds
}

// OperationResponse is the discriminated outcome of a ledger mutation.
type OperationResponse struct {
	Success     bool                 `json:"success"`
	Reason      string               `json:"reason,omitempty"`
	OrderID     string               `json:"order_id,omitempty"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// ConnectResponse is the outcome of a connection attempt plus the resulting
// connectivity state.
type ConnectResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Connected   bool   `json:"connected"`
	SandboxMode bool   `json:"sandbox_mode"`
	Network     string `json:"network,omitempty"`
	ProviderURL string `json:"provider_url,omitempty"`
}

// AssetResponse is the wire form of a crypto asset with its balance.
type AssetResponse struct {
	Symbol    string           `json:"symbol"`
	Name      string           `json:"name"`
	Balance   decimal.Decimal  `json:"balance"`
	Network   string           `json:"network"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Change24h *decimal.Decimal `json:"change_24h,omitempty"`
}

// FiatResponse is the wire form of a fiat ledger entry.
type FiatResponse struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Symbol   string          `json:"symbol"`
}

// ProfileResponse is the wire form of the verification profile.
type ProfileResponse struct {
	Tier             string          `json:"tier"`
	UsedDailyLimit   decimal.Decimal `json:"used_daily_limit"`
	UsedMonthlyLimit decimal.Decimal `json:"used_monthly_limit"`
	Email            string          `json:"email,omitempty"`
	RecoveryVerified bool            `json:"recovery_phrase_verified,omitempty"`
}

// WalletStateResponse is the full point-in-time wallet view.
type WalletStateResponse struct {
	Address     string                `json:"address"`
	Connected   bool                  `json:"connected"`
	SandboxMode bool                  `json:"sandbox_mode"`
	Network     string                `json:"network,omitempty"`
	Assets      []AssetResponse       `json:"assets"`
	Fiat        []FiatResponse        `json:"fiat"`
	History     []TransactionResponse `json:"history"`
	Profile     ProfileResponse       `json:"profile"`
}

// LimitsResponse is the tier cap table in USD.
type LimitsResponse struct {
	Tier           string          `json:"tier"`
	Daily          decimal.Decimal `json:"daily"`
	Monthly        decimal.Decimal `json:"monthly"`
	PerTransaction decimal.Decimal `json:"per_transaction"`
}

// LimitCheckResponse is the outcome of a limit pre-check.
type LimitCheckResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// PhraseResponse carries a freshly generated recovery phrase.
type PhraseResponse struct {
	Phrase string `json:"phrase"`
}

// PhraseValidationResponse reports whether a phrase is well-formed.
type PhraseValidationResponse struct {
	Valid bool `json:"valid"`
}

// VerificationResultResponse is the outcome of a verification operation.
type VerificationResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Tier    string `json:"tier,omitempty"`
}
