package service

import (
	"context"
	"strings"

	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Fee rates charged by the simulated exchange.
var (
	buyFeeRate     = decimal.RequireFromString("0.01")
	sellFeeRate    = decimal.RequireFromString("0.01")
	swapFeeRate    = decimal.RequireFromString("0.005")
	cashOutFeeRate = decimal.RequireFromString("0.015")
)

var one = decimal.New(1, 0)

func failOrder(reason string) ports.OrderOutcome {
	return ports.OrderOutcome{Reason: reason}
}

// BuyCryptoWithFiat converts a fiat amount into crypto through the gateway.
// The fiat amount itself is the limit-check value; a 1% fee is recorded.
func (e *walletEngine) BuyCryptoWithFiat(ctx context.Context, amount decimal.Decimal, fiatCurrency, cryptoCurrency, paymentMethodID string) ports.OrderOutcome {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	fiatCurrency = strings.ToUpper(fiatCurrency)
	cryptoCurrency = strings.ToUpper(cryptoCurrency)

	e.mu.Lock()
	if e.wallet == nil {
		e.mu.Unlock()
		return failOrder(apperror.ErrNoWallet().Message)
	}
	if !amount.IsPositive() {
		e.mu.Unlock()
		return failOrder(apperror.ErrInvalidAmount().Message)
	}
	cryptoIdx := e.assetIndex(cryptoCurrency)
	fiatIdx := e.fiatIndex(fiatCurrency)
	if cryptoIdx < 0 {
		e.mu.Unlock()
		return failOrder(apperror.ErrUnknownAsset(cryptoCurrency).Message)
	}
	if fiatIdx < 0 {
		e.mu.Unlock()
		return failOrder(apperror.ErrUnknownFiat(fiatCurrency).Message)
	}
	if check := e.profile.CheckLimits(amount); !check.Allowed {
		e.mu.Unlock()
		return failOrder(check.Reason)
	}
	e.mu.Unlock()

	result, err := e.gateway.Buy(ctx, amount, fiatCurrency, cryptoCurrency, paymentMethodID)
	if err != nil {
		return failOrder(reasonFromError(err))
	}
	if !result.Success {
		return failOrder(result.Error)
	}

	rate := e.conversionRate(ctx, fiatCurrency, cryptoCurrency)
	cryptoAmount := amount.Mul(rate)

	e.mu.Lock()
	e.assets[cryptoIdx].Balance = e.assets[cryptoIdx].Balance.Add(cryptoAmount)
	e.fiat[fiatIdx].Balance = e.fiat[fiatIdx].Balance.Sub(amount)
	e.profile.ConsumeLimits(amount)

	tx := domain.NewTransaction(domain.TxBuy, cryptoAmount, cryptoCurrency)
	tx.ToCurrency = cryptoCurrency
	tx.FromAddress = paymentMethodID
	tx.Fee = amount.Mul(buyFeeRate)
	e.prepend(tx)
	e.mu.Unlock()

	e.persist(ctx)
	return ports.OrderOutcome{Success: true, OrderID: result.OrderID, Transaction: &tx}
}

// SellCryptoForFiat converts crypto into fiat through the gateway. The USD
// value of the crypto is the limit-check value; a 1% fee on the fiat
// proceeds is recorded.
func (e *walletEngine) SellCryptoForFiat(ctx context.Context, amount decimal.Decimal, cryptoCurrency, fiatCurrency, cashOutMethodID string) ports.OrderOutcome {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	cryptoCurrency = strings.ToUpper(cryptoCurrency)
	fiatCurrency = strings.ToUpper(fiatCurrency)

	e.mu.Lock()
	if e.wallet == nil {
		e.mu.Unlock()
		return failOrder(apperror.ErrNoWallet().Message)
	}
	if !amount.IsPositive() {
		e.mu.Unlock()
		return failOrder(apperror.ErrInvalidAmount().Message)
	}
	cryptoIdx := e.assetIndex(cryptoCurrency)
	fiatIdx := e.fiatIndex(fiatCurrency)
	if cryptoIdx < 0 {
		e.mu.Unlock()
		return failOrder(apperror.ErrUnknownAsset(cryptoCurrency).Message)
	}
	if fiatIdx < 0 {
		e.mu.Unlock()
		return failOrder(apperror.ErrUnknownFiat(fiatCurrency).Message)
	}

	usdValue := amount.Mul(e.usdPrice(cryptoCurrency))
	if check := e.profile.CheckLimits(usdValue); !check.Allowed {
		e.mu.Unlock()
		return failOrder(check.Reason)
	}
	if e.assets[cryptoIdx].Balance.LessThan(amount) {
		e.mu.Unlock()
		return failOrder(apperror.ErrInsufficientBalance(cryptoCurrency).Message)
	}
	e.mu.Unlock()

	result, err := e.gateway.Sell(ctx, amount, cryptoCurrency, fiatCurrency, cashOutMethodID)
	if err != nil {
		return failOrder(reasonFromError(err))
	}
	if !result.Success {
		return failOrder(result.Error)
	}

	rate := e.conversionRate(ctx, cryptoCurrency, fiatCurrency)
	fiatAmount := amount.Mul(rate)

	e.mu.Lock()
	e.assets[cryptoIdx].Balance = e.assets[cryptoIdx].Balance.Sub(amount)
	e.fiat[fiatIdx].Balance = e.fiat[fiatIdx].Balance.Add(fiatAmount)
	e.profile.ConsumeLimits(usdValue)

	tx := domain.NewTransaction(domain.TxSell, amount, cryptoCurrency)
	tx.ToCurrency = fiatCurrency
	tx.ToAddress = cashOutMethodID
	tx.Fee = fiatAmount.Mul(sellFeeRate)
	e.prepend(tx)
	e.mu.Unlock()

	e.persist(ctx)
	return ports.OrderOutcome{Success: true, OrderID: result.OrderID, Transaction: &tx}
}

// SwapCryptoAssets exchanges one asset for another at the oracle rate minus
// a 0.5% fee. The credited amount is amount * rate * 0.995; the recorded fee
// is amount * 0.005 in source units.
func (e *walletEngine) SwapCryptoAssets(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) ports.OrderOutcome {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	fromCurrency = strings.ToUpper(fromCurrency)
	toCurrency = strings.ToUpper(toCurrency)

	e.mu.Lock()
	if e.wallet == nil {
		e.mu.Unlock()
		return failOrder(apperror.ErrNoWallet().Message)
	}
	if !amount.IsPositive() {
		e.mu.Unlock()
		return failOrder(apperror.ErrInvalidAmount().Message)
	}
	fromIdx := e.assetIndex(fromCurrency)
	toIdx := e.assetIndex(toCurrency)
	if fromIdx < 0 {
		e.mu.Unlock()
		return failOrder(apperror.ErrUnknownAsset(fromCurrency).Message)
	}
	if toIdx < 0 {
		e.mu.Unlock()
		return failOrder(apperror.ErrUnknownAsset(toCurrency).Message)
	}
	if fromIdx == toIdx {
		e.mu.Unlock()
		return failOrder(apperror.Validation("Cannot swap an asset for itself").Message)
	}

	usdValue := amount.Mul(e.usdPrice(fromCurrency))
	if check := e.profile.CheckLimits(usdValue); !check.Allowed {
		e.mu.Unlock()
		return failOrder(check.Reason)
	}
	if e.assets[fromIdx].Balance.LessThan(amount) {
		e.mu.Unlock()
		return failOrder(apperror.ErrInsufficientBalance(fromCurrency).Message)
	}
	e.mu.Unlock()

	result, err := e.gateway.Swap(ctx, amount, fromCurrency, toCurrency)
	if err != nil {
		return failOrder(reasonFromError(err))
	}
	if !result.Success {
		return failOrder(result.Error)
	}

	rate := e.conversionRate(ctx, fromCurrency, toCurrency)
	toAmount := amount.Mul(rate).Mul(one.Sub(swapFeeRate))

	e.mu.Lock()
	e.assets[fromIdx].Balance = e.assets[fromIdx].Balance.Sub(amount)
	e.assets[toIdx].Balance = e.assets[toIdx].Balance.Add(toAmount)
	e.profile.ConsumeLimits(usdValue)

	tx := domain.NewTransaction(domain.TxSwap, amount, fromCurrency)
	tx.ToCurrency = toCurrency
	tx.Fee = amount.Mul(swapFeeRate)
	e.prepend(tx)
	e.mu.Unlock()

	e.persist(ctx)
	return ports.OrderOutcome{Success: true, OrderID: result.OrderID, Transaction: &tx}
}

// CashOutCrypto sells crypto directly to a cash-out destination. The fee is
// 1.5%, steeper than a regular sell; the credited fiat is the market value
// minus the fee, and the fiat value is what counts against the limits.
func (e *walletEngine) CashOutCrypto(ctx context.Context, amount decimal.Decimal, cryptoCurrency, fiatCurrency, cashOutMethodID string) ports.OrderOutcome {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	cryptoCurrency = strings.ToUpper(cryptoCurrency)
	fiatCurrency = strings.ToUpper(fiatCurrency)

	e.mu.Lock()
	if e.wallet == nil {
		e.mu.Unlock()
		return failOrder(apperror.ErrNoWallet().Message)
	}
	if !amount.IsPositive() {
		e.mu.Unlock()
		return failOrder(apperror.ErrInvalidAmount().Message)
	}
	if cashOutMethodID == "" {
		e.mu.Unlock()
		return failOrder(apperror.Validation("Cash out method is required").Message)
	}
	cryptoIdx := e.assetIndex(cryptoCurrency)
	fiatIdx := e.fiatIndex(fiatCurrency)
	if cryptoIdx < 0 {
		e.mu.Unlock()
		return failOrder(apperror.ErrUnknownAsset(cryptoCurrency).Message)
	}
	if fiatIdx < 0 {
		e.mu.Unlock()
		return failOrder(apperror.ErrUnknownFiat(fiatCurrency).Message)
	}

	grossValue := amount.Mul(e.usdPrice(cryptoCurrency))
	netValue := grossValue.Mul(one.Sub(cashOutFeeRate))
	if check := e.profile.CheckLimits(netValue); !check.Allowed {
		e.mu.Unlock()
		return failOrder(check.Reason)
	}
	if e.assets[cryptoIdx].Balance.LessThan(amount) {
		e.mu.Unlock()
		return failOrder(apperror.ErrInsufficientBalance(cryptoCurrency).Message)
	}
	e.mu.Unlock()

	result, err := e.gateway.CashOut(ctx, amount, cryptoCurrency, fiatCurrency, cashOutMethodID)
	if err != nil {
		return failOrder(reasonFromError(err))
	}
	if !result.Success {
		return failOrder(result.Error)
	}

	e.mu.Lock()
	e.assets[cryptoIdx].Balance = e.assets[cryptoIdx].Balance.Sub(amount)
	e.fiat[fiatIdx].Balance = e.fiat[fiatIdx].Balance.Add(netValue)
	e.profile.ConsumeLimits(netValue)

	tx := domain.NewTransaction(domain.TxCashOut, amount, cryptoCurrency)
	tx.ToCurrency = fiatCurrency
	tx.ToAddress = cashOutMethodID
	tx.Fee = grossValue.Mul(cashOutFeeRate)
	e.prepend(tx)
	e.mu.Unlock()

	e.persist(ctx)
	return ports.OrderOutcome{Success: true, OrderID: result.OrderID, Transaction: &tx}
}

// conversionRate asks the oracle for a pair rate and falls back to cached
// spot prices when the oracle cannot serve the pair.
func (e *walletEngine) conversionRate(ctx context.Context, from, to string) decimal.Decimal {
	if r, err := e.oracle.GetExchangeRate(ctx, from, to); err == nil && !r.Rate.IsZero() {
		return r.Rate
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	fromUSD := e.usdPrice(from)
	toUSD := e.usdPrice(to)
	if from == "USD" || e.fiatIndex(from) >= 0 {
		fromUSD = one
	}
	if to == "USD" || e.fiatIndex(to) >= 0 {
		toUSD = one
	}
	if fromUSD.IsZero() || toUSD.IsZero() {
		return one
	}
	return fromUSD.Div(toUSD)
}
