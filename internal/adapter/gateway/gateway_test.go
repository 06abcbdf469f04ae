package gateway

import (
	"context"
	"strings"
	"testing"

	"sandbox-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderIDs(t *testing.T) {
	g := New(0)
	ctx := context.Background()
	amount := decimal.RequireFromString("100")

	buy, err := g.Buy(ctx, amount, "USD", "ETH", "pm_visa_1")
	require.NoError(t, err)
	assert.True(t, buy.Success)
	assert.True(t, strings.HasPrefix(buy.OrderID, "ORD-"))
	assert.Len(t, buy.OrderID, 12)

	swap, err := g.Swap(ctx, amount, "ETH", "USDT")
	require.NoError(t, err)
	assert.True(t, swap.Success)
	assert.True(t, strings.HasPrefix(swap.OrderID, "SWP-"))

	sell, err := g.Sell(ctx, amount, "ETH", "USD", "co_bank_1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sell.OrderID, "ORD-"))

	cashOut, err := g.CashOut(ctx, amount, "ETH", "USD", "co_bank_1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cashOut.OrderID, "ORD-"))
}

func TestSeededMethods(t *testing.T) {
	g := New(0)
	ctx := context.Background()

	pms, err := g.PaymentMethods(ctx)
	require.NoError(t, err)
	require.Len(t, pms, 5)
	assert.Equal(t, "pm_visa_1", pms[0].ID)
	assert.True(t, pms[0].IsDefault)

	cms, err := g.CashOutMethods(ctx)
	require.NoError(t, err)
	require.Len(t, cms, 4)
	assert.Equal(t, "co_bank_1", cms[0].ID)
	assert.Equal(t, "****6789", cms[0].AccountNumber)
}

func TestAddPaymentMethod(t *testing.T) {
	g := New(0)
	ctx := context.Background()

	t.Run("card", func(t *testing.T) {
		pm, err := g.AddPaymentMethod(ctx, "card", "mastercard", map[string]string{
			"last4":      "9999",
			"expiryDate": "01/27",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.MethodCard, pm.Type)
		assert.Equal(t, "Mastercard ending in 9999", pm.Name)
		assert.True(t, strings.HasPrefix(pm.ID, "pm_mastercard_"))
		assert.False(t, pm.IsDefault)

		pms, err := g.PaymentMethods(ctx)
		require.NoError(t, err)
		assert.Len(t, pms, 6)
	})

	t.Run("bank defaults", func(t *testing.T) {
		pm, err := g.AddPaymentMethod(ctx, "bank", "bank", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bank Account", pm.Name)
		assert.Equal(t, "****", pm.Last4)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := g.AddPaymentMethod(ctx, "carrier_pigeon", "visa", nil)
		assert.Error(t, err)
	})
}

func TestAddCashOutMethod(t *testing.T) {
	g := New(0)
	ctx := context.Background()

	t.Run("bank masks account digits", func(t *testing.T) {
		cm, err := g.AddCashOutMethod(ctx, "bank", "bank", map[string]string{
			"bankName":      "First National",
			"accountNumber": "123456789",
			"routingNumber": "987654321",
		})
		require.NoError(t, err)
		assert.Equal(t, "First National", cm.Name)
		assert.Equal(t, "****6789", cm.AccountNumber)
		assert.Equal(t, "****4321", cm.RoutingNumber)
	})

	t.Run("mobile money", func(t *testing.T) {
		cm, err := g.AddCashOutMethod(ctx, "mobile_money", "mpesa", map[string]string{
			"phoneNumber": "+254700000001",
		})
		require.NoError(t, err)
		assert.Equal(t, "Mpesa", cm.Name)
		assert.Equal(t, "+254700000001", cm.PhoneNumber)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := g.AddCashOutMethod(ctx, "cheque", "bank", nil)
		assert.Error(t, err)
	})
}
