package service

import (
	"context"
	"errors"
	"strings"

	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"

	"github.com/shopspring/decimal"
)

func failTx(reason string) ports.TxResult {
	return ports.TxResult{Reason: reason}
}

// Deposit credits an asset and records the movement.
func (e *walletEngine) Deposit(ctx context.Context, amount decimal.Decimal, currency string) ports.TxResult {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	currency = strings.ToUpper(currency)

	e.mu.Lock()
	if e.wallet == nil {
		e.mu.Unlock()
		return failTx(apperror.ErrNoWallet().Message)
	}
	if !amount.IsPositive() {
		e.mu.Unlock()
		return failTx(apperror.ErrInvalidAmount().Message)
	}
	idx := e.assetIndex(currency)
	if idx < 0 {
		e.mu.Unlock()
		return failTx(apperror.ErrUnknownAsset(currency).Message)
	}

	e.assets[idx].Balance = e.assets[idx].Balance.Add(amount)
	tx := domain.NewTransaction(domain.TxDeposit, amount, currency)
	e.prepend(tx)
	e.mu.Unlock()

	e.persist(ctx)
	return ports.TxResult{Success: true, Transaction: &tx}
}

// Withdraw debits an asset. The balance can never go below zero; an
// oversized withdrawal is rejected without touching the ledger.
func (e *walletEngine) Withdraw(ctx context.Context, amount decimal.Decimal, currency string) ports.TxResult {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	currency = strings.ToUpper(currency)

	e.mu.Lock()
	if e.wallet == nil {
		e.mu.Unlock()
		return failTx(apperror.ErrNoWallet().Message)
	}
	if !amount.IsPositive() {
		e.mu.Unlock()
		return failTx(apperror.ErrInvalidAmount().Message)
	}
	idx := e.assetIndex(currency)
	if idx < 0 {
		e.mu.Unlock()
		return failTx(apperror.ErrUnknownAsset(currency).Message)
	}
	if e.assets[idx].Balance.LessThan(amount) {
		e.mu.Unlock()
		return failTx(apperror.ErrInsufficientBalance(currency).Message)
	}

	e.assets[idx].Balance = e.assets[idx].Balance.Sub(amount)
	tx := domain.NewTransaction(domain.TxWithdraw, amount, currency)
	e.prepend(tx)
	e.mu.Unlock()

	e.persist(ctx)
	return ports.TxResult{Success: true, Transaction: &tx}
}

// Transfer sends an asset to an address. In sandbox the transfer is
// simulated locally; when connected it is signed and broadcast, and only a
// confirmed transaction mutates the ledger. Either way the USD value is
// checked against the verification limits first and consumed on success.
func (e *walletEngine) Transfer(ctx context.Context, to string, amount decimal.Decimal, currency string) ports.TxResult {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	currency = strings.ToUpper(currency)

	e.mu.Lock()
	if e.wallet == nil {
		e.mu.Unlock()
		return failTx(apperror.ErrNoWallet().Message)
	}
	if !amount.IsPositive() {
		e.mu.Unlock()
		return failTx(apperror.ErrInvalidAmount().Message)
	}
	if strings.TrimSpace(to) == "" {
		e.mu.Unlock()
		return failTx(apperror.ErrMissingAddress().Message)
	}
	idx := e.assetIndex(currency)
	if idx < 0 {
		e.mu.Unlock()
		return failTx(apperror.ErrUnknownAsset(currency).Message)
	}
	if e.assets[idx].Balance.LessThan(amount) {
		e.mu.Unlock()
		return failTx(apperror.ErrInsufficientBalance(currency).Message)
	}

	usdValue := amount.Mul(e.usdPrice(currency))
	if check := e.profile.CheckLimits(usdValue); !check.Allowed {
		e.mu.Unlock()
		return failTx(check.Reason)
	}

	conn := e.connectivity
	wallet := e.wallet
	e.mu.Unlock()

	if conn.SandboxMode || !conn.Connected {
		return e.settleSimulatedTransfer(ctx, idx, to, amount, currency, usdValue)
	}

	// Live path. Only the connected network's native asset moves on-chain.
	info := domain.NetworkInfoFor(conn.Network)
	if currency != info.CurrencySymbol {
		return failTx(apperror.ErrNativeAssetOnly(conn.Network).Message)
	}

	hash, err := e.chain.SendNative(ctx, conn.ProviderURL, wallet.PrivateKey(), info.ChainID, to, amount)
	if err != nil {
		// Nothing was debited and nothing is recorded.
		e.log.Error().Err(err).Str("to", to).Msg("on-chain transfer failed")
		return failTx(reasonFromError(err))
	}

	e.mu.Lock()
	e.assets[idx].Balance = e.assets[idx].Balance.Sub(amount)
	tx := domain.NewTransaction(domain.TxTransfer, amount, currency)
	tx.ToAddress = to
	tx.Hash = hash
	tx.Network = conn.Network
	e.prepend(tx)
	e.profile.ConsumeLimits(usdValue)
	e.mu.Unlock()

	e.persist(ctx)
	e.log.Info().Str("hash", hash).Str("currency", currency).Msg("transfer confirmed")
	return ports.TxResult{Success: true, Transaction: &tx}
}

func (e *walletEngine) settleSimulatedTransfer(ctx context.Context, idx int, to string, amount decimal.Decimal, currency string, usdValue decimal.Decimal) ports.TxResult {
	e.mu.Lock()
	e.assets[idx].Balance = e.assets[idx].Balance.Sub(amount)
	tx := domain.NewTransaction(domain.TxSimulated, amount, currency)
	tx.ToAddress = to
	e.prepend(tx)
	e.profile.ConsumeLimits(usdValue)
	e.mu.Unlock()

	e.persist(ctx)
	return ports.TxResult{Success: true, Transaction: &tx}
}

// reasonFromError unwraps an AppError's message for result structs.
func reasonFromError(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
