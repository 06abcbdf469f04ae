package oracle

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPrice(t *testing.T) {
	o := New(0)

	t.Run("known symbol", func(t *testing.T) {
		md, err := o.GetPrice(context.Background(), "BTC")
		require.NoError(t, err)
		assert.True(t, md.Price.Equal(decimal.RequireFromString("68452.12")))
		assert.False(t, md.AsOf.IsZero())
	})

	t.Run("case insensitive", func(t *testing.T) {
		md, err := o.GetPrice(context.Background(), "eth")
		require.NoError(t, err)
		assert.True(t, md.Price.Equal(decimal.RequireFromString("3245.67")))
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := o.GetPrice(context.Background(), "DOGE")
		assert.Error(t, err)
	})
}

func TestGetExchangeRate(t *testing.T) {
	o := New(0)
	ctx := context.Background()

	t.Run("direct pair", func(t *testing.T) {
		r, err := o.GetExchangeRate(ctx, "BTC", "USD")
		require.NoError(t, err)
		assert.True(t, r.Rate.Equal(decimal.RequireFromString("68452.12")))
	})

	t.Run("inverted pair", func(t *testing.T) {
		r, err := o.GetExchangeRate(ctx, "USD", "BTC")
		require.NoError(t, err)
		expected := decimal.New(1, 0).Div(decimal.RequireFromString("68452.12"))
		assert.True(t, r.Rate.Equal(expected))
	})

	t.Run("identity", func(t *testing.T) {
		r, err := o.GetExchangeRate(ctx, "USDT", "USDT")
		require.NoError(t, err)
		assert.True(t, r.Rate.Equal(decimal.New(1, 0)))
	})

	t.Run("cross through USD", func(t *testing.T) {
		// SOL-USDC has no table entry in either direction.
		r, err := o.GetExchangeRate(ctx, "SOL", "USDC")
		require.NoError(t, err)
		expected := decimal.RequireFromString("145.23").Div(decimal.RequireFromString("1.0"))
		assert.True(t, r.Rate.Equal(expected))
	})

	t.Run("unknown pair", func(t *testing.T) {
		_, err := o.GetExchangeRate(ctx, "DOGE", "SHIB")
		assert.Error(t, err)
	})
}

func TestGetNetworkFee(t *testing.T) {
	o := New(0)
	ctx := context.Background()

	fee, err := o.GetNetworkFee(ctx, "Polygon")
	require.NoError(t, err)
	assert.True(t, fee.Average.Equal(decimal.RequireFromString("0.0002")))

	// Unknown networks fall back to ethereum fees.
	fallback, err := o.GetNetworkFee(ctx, "cosmos")
	require.NoError(t, err)
	assert.True(t, fallback.Average.Equal(decimal.RequireFromString("0.0025")))
}

func TestLatencyHonorsContext(t *testing.T) {
	o := New(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := o.GetPrice(ctx, "BTC")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
