package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger movement.
type TransactionType string

const (
	TxDeposit   TransactionType = "Deposit"
	TxWithdraw  TransactionType = "Withdraw"
	TxTransfer  TransactionType = "Transfer"
	TxSimulated TransactionType = "Simulated"
	TxSwap      TransactionType = "Swap"
	TxBuy       TransactionType = "Buy"
	TxSell      TransactionType = "Sell"
	TxCashOut   TransactionType = "CashOut"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	TxStatusPending   TransactionStatus = "pending"
	TxStatusCompleted TransactionStatus = "completed"
	TxStatusFailed    TransactionStatus = "failed"
)

// Transaction is an immutable ledger record. Records are never mutated after
// creation; the history is append-only, newest first.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Fee         decimal.Decimal   `json:"fee"`
	Currency    string            `json:"currency"`
	ToCurrency  string            `json:"to_currency,omitempty"`
	ToAddress   string            `json:"to_address,omitempty"`
	FromAddress string            `json:"from_address,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	Status      TransactionStatus `json:"status"`
	Hash        string            `json:"hash,omitempty"`
	Network     string            `json:"network,omitempty"`
}

// NewTransaction builds a completed transaction with a fresh ID.
func NewTransaction(txType TransactionType, amount decimal.Decimal, currency string) Transaction {
	return Transaction{
		ID:        uuid.New(),
		Type:      txType,
		Amount:    amount,
		Currency:  currency,
		Timestamp: time.Now().UTC(),
		Status:    TxStatusCompleted,
	}
}
