package integration

import (
	"context"
	"crypto/ecdsa"
	"sync/atomic"

	"sandbox-wallet/internal/core/ports"

	"github.com/shopspring/decimal"
)

// fakeChain is a ChainClient for integration tests. It answers every probe
// from fixed tables, so tests cover the full stack without a live RPC node.
type fakeChain struct {
	check     ports.EndpointCheck
	balance   decimal.Decimal
	sendHash  string
	sendErr   error
	sendCalls atomic.Int64
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		check:   ports.EndpointCheck{Valid: true},
		balance: decimal.RequireFromString("1.5"),
	}
}

func (f *fakeChain) ValidateEndpoint(context.Context, string) ports.EndpointCheck {
	return f.check
}

func (f *fakeChain) ProviderURL(string) (string, error) {
	return "https://rpc.test.invalid", nil
}

func (f *fakeChain) NativeBalance(context.Context, string, string) (decimal.Decimal, error) {
	return f.balance, nil
}

var fakeMockBalances = map[string]string{
	"ETH": "1.5", "BTC": "0.05", "USDT": "1000", "USDC": "1000", "DAI": "1000", "SOL": "20", "MATIC": "500",
}

func (f *fakeChain) MockBalance(symbol string) decimal.Decimal {
	if s, ok := fakeMockBalances[symbol]; ok {
		return decimal.RequireFromString(s)
	}
	return decimal.Zero
}

func (f *fakeChain) SendNative(_ context.Context, _ string, _ *ecdsa.PrivateKey, _ int64, _ string, _ decimal.Decimal) (string, error) {
	f.sendCalls.Add(1)
	if f.sendErr != nil {
		return "", f.sendErr
	}
	if f.sendHash != "" {
		return f.sendHash, nil
	}
	return "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b", nil
}
