package service_test

import (
	"context"
	"strings"
	"testing"

	"sandbox-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ethPrice = dec("3245.67")
	one      = decimal.New(1, 0)
)

func TestBuyCryptoWithFiat(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	ctx := context.Background()
	f.engine.RefreshMarketData(ctx)

	t.Run("credits crypto and debits fiat", func(t *testing.T) {
		res := f.engine.BuyCryptoWithFiat(ctx, dec("100"), "USD", "ETH", "pm_visa_1")
		require.True(t, res.Success, res.Reason)
		assert.True(t, strings.HasPrefix(res.OrderID, "ORD-"))

		rate := one.Div(ethPrice)
		expectedETH := dec("100").Mul(rate)
		assert.True(t, assetBalance(t, f.engine, "ETH").Equal(expectedETH))

		// The fiat ledger records the net flow and goes negative; the purchase
		// itself is funded by the payment method.
		assert.True(t, fiatBalance(t, f.engine, "USD").Equal(dec("-100")))

		require.NotNil(t, res.Transaction)
		assert.Equal(t, domain.TxBuy, res.Transaction.Type)
		assert.Equal(t, "ETH", res.Transaction.Currency)
		assert.Equal(t, "pm_visa_1", res.Transaction.FromAddress)
		assert.True(t, res.Transaction.Fee.Equal(dec("100").Mul(dec("0.01"))))

		assert.True(t, f.engine.State().Profile.UsedDailyLimit.Equal(dec("100")))
	})

	t.Run("rejects above per-transaction cap", func(t *testing.T) {
		res := f.engine.BuyCryptoWithFiat(ctx, dec("501"), "USD", "ETH", "pm_visa_1")
		assert.False(t, res.Success)
		assert.Equal(t,
			"Transaction exceeds the maximum amount of $500 per transaction for your verification level.",
			res.Reason)
	})

	t.Run("rejects unknown currencies", func(t *testing.T) {
		assert.False(t, f.engine.BuyCryptoWithFiat(ctx, dec("10"), "USD", "DOGE", "pm_visa_1").Success)
		assert.False(t, f.engine.BuyCryptoWithFiat(ctx, dec("10"), "XYZ", "ETH", "pm_visa_1").Success)
	})
}

func TestSellCryptoForFiat(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	ctx := context.Background()
	f.engine.RefreshMarketData(ctx)
	require.True(t, f.engine.Deposit(ctx, dec("0.1"), "ETH").Success)

	t.Run("insufficient balance", func(t *testing.T) {
		res := f.engine.SellCryptoForFiat(ctx, dec("1"), "ETH", "USD", "co_bank_1")
		assert.False(t, res.Success)
		assert.Contains(t, res.Reason, "Insufficient")
	})

	t.Run("debits crypto and credits fiat", func(t *testing.T) {
		res := f.engine.SellCryptoForFiat(ctx, dec("0.05"), "ETH", "USD", "co_bank_1")
		require.True(t, res.Success, res.Reason)
		assert.True(t, strings.HasPrefix(res.OrderID, "ORD-"))

		proceeds := dec("0.05").Mul(ethPrice)
		assert.True(t, assetBalance(t, f.engine, "ETH").Equal(dec("0.05")))
		assert.True(t, fiatBalance(t, f.engine, "USD").Equal(proceeds))

		assert.Equal(t, domain.TxSell, res.Transaction.Type)
		assert.Equal(t, "co_bank_1", res.Transaction.ToAddress)
		assert.True(t, res.Transaction.Fee.Equal(proceeds.Mul(dec("0.01"))))

		// Limits consume the USD value of the crypto sold.
		assert.True(t, f.engine.State().Profile.UsedDailyLimit.Equal(proceeds))
	})
}

func TestSwapCryptoAssets(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	ctx := context.Background()
	f.engine.RefreshMarketData(ctx)
	require.True(t, f.engine.Deposit(ctx, dec("500"), "USDT").Success)

	t.Run("same asset rejected", func(t *testing.T) {
		res := f.engine.SwapCryptoAssets(ctx, dec("10"), "USDT", "USDT")
		assert.False(t, res.Success)
		assert.Contains(t, res.Reason, "itself")
	})

	t.Run("converts at the oracle rate minus the fee", func(t *testing.T) {
		res := f.engine.SwapCryptoAssets(ctx, dec("100"), "USDT", "ETH")
		require.True(t, res.Success, res.Reason)
		assert.True(t, strings.HasPrefix(res.OrderID, "SWP-"))

		rate := dec("1.0").Div(ethPrice)
		expectedETH := dec("100").Mul(rate).Mul(one.Sub(dec("0.005")))
		assert.True(t, assetBalance(t, f.engine, "USDT").Equal(dec("400")))
		assert.True(t, assetBalance(t, f.engine, "ETH").Equal(expectedETH))

		// Conservation: credited value plus the fee accounts for the debit.
		assert.Equal(t, domain.TxSwap, res.Transaction.Type)
		assert.Equal(t, "ETH", res.Transaction.ToCurrency)
		assert.True(t, res.Transaction.Fee.Equal(dec("100").Mul(dec("0.005"))))

		assert.True(t, f.engine.State().Profile.UsedDailyLimit.Equal(dec("100")))
	})

	t.Run("insufficient balance leaves ledgers untouched", func(t *testing.T) {
		before := assetBalance(t, f.engine, "USDT")
		res := f.engine.SwapCryptoAssets(ctx, dec("9999"), "USDT", "ETH")
		assert.False(t, res.Success)
		assert.True(t, assetBalance(t, f.engine, "USDT").Equal(before))
	})
}

func TestCashOutCrypto(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	ctx := context.Background()
	f.engine.RefreshMarketData(ctx)
	require.True(t, f.engine.Deposit(ctx, dec("1000"), "USDT").Success)

	t.Run("requires a cash out method", func(t *testing.T) {
		res := f.engine.CashOutCrypto(ctx, dec("100"), "USDT", "USD", "")
		assert.False(t, res.Success)
		assert.Contains(t, res.Reason, "Cash out method")
	})

	t.Run("credits net of the fee", func(t *testing.T) {
		res := f.engine.CashOutCrypto(ctx, dec("400"), "USDT", "USD", "co_bank_1")
		require.True(t, res.Success, res.Reason)

		gross := dec("400")
		net := gross.Mul(one.Sub(dec("0.015")))
		assert.True(t, assetBalance(t, f.engine, "USDT").Equal(dec("600")))
		assert.True(t, fiatBalance(t, f.engine, "USD").Equal(net))

		assert.Equal(t, domain.TxCashOut, res.Transaction.Type)
		assert.True(t, res.Transaction.Fee.Equal(gross.Mul(dec("0.015"))))

		// Limits consume the net fiat value, not the gross.
		assert.True(t, f.engine.State().Profile.UsedDailyLimit.Equal(net))
	})
}

func TestExchangeRequiresWallet(t *testing.T) {
	f := newTestEngine(t)
	ctx := context.Background()

	assert.False(t, f.engine.BuyCryptoWithFiat(ctx, dec("10"), "USD", "ETH", "pm_visa_1").Success)
	assert.False(t, f.engine.SellCryptoForFiat(ctx, dec("10"), "ETH", "USD", "co_bank_1").Success)
	assert.False(t, f.engine.SwapCryptoAssets(ctx, dec("10"), "USDT", "ETH").Success)
	assert.False(t, f.engine.CashOutCrypto(ctx, dec("10"), "USDT", "USD", "co_bank_1").Success)
}

func TestFailedOrderLeavesNoRecord(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	ctx := context.Background()
	f.engine.RefreshMarketData(ctx)

	// Above the per-transaction cap: rejected before the gateway is called.
	res := f.engine.BuyCryptoWithFiat(ctx, dec("600"), "USD", "ETH", "pm_visa_1")
	assert.False(t, res.Success)

	state := f.engine.State()
	assert.Empty(t, state.History)
	assert.True(t, state.Profile.UsedDailyLimit.IsZero())
	assert.True(t, fiatBalance(t, f.engine, "USD").IsZero())
}

func TestDailyLimitAccumulates(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	ctx := context.Background()
	f.engine.RefreshMarketData(ctx)

	// Two 500 USD buys fit under the 1000 daily cap exactly.
	require.True(t, f.engine.BuyCryptoWithFiat(ctx, dec("500"), "USD", "USDT", "pm_visa_1").Success)
	require.True(t, f.engine.BuyCryptoWithFiat(ctx, dec("500"), "USD", "USDT", "pm_visa_1").Success)

	// The third exhausts the remaining daily allowance.
	res := f.engine.BuyCryptoWithFiat(ctx, dec("1"), "USD", "USDT", "pm_visa_1")
	assert.False(t, res.Success)
	assert.Contains(t, res.Reason, "daily limit of $1000")
	assert.Contains(t, res.Reason, "Remaining: $0")
}
