// Package oracle implements a simulated market-data oracle. Prices, rates
// and fee estimates come from fixed tables; a configurable latency imitates
// a real upstream API.
package oracle

import (
	"context"
	"strings"
	"time"

	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"

	"github.com/shopspring/decimal"
)

type marketEntry struct {
	price     decimal.Decimal
	change24h decimal.Decimal
	volume24h decimal.Decimal
	marketCap decimal.Decimal
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var marketTable = map[string]marketEntry{
	"BTC":   {price: dec("68452.12"), change24h: dec("2.34"), volume24h: dec("32456789012"), marketCap: dec("1345678901234")},
	"ETH":   {price: dec("3245.67"), change24h: dec("1.23"), volume24h: dec("12345678901"), marketCap: dec("345678901234")},
	"USDT":  {price: dec("1.0"), change24h: dec("0.01"), volume24h: dec("45678901234"), marketCap: dec("78901234567")},
	"USDC":  {price: dec("1.0"), change24h: dec("0.0"), volume24h: dec("34567890123"), marketCap: dec("67890123456")},
	"DAI":   {price: dec("1.0"), change24h: dec("-0.01"), volume24h: dec("2345678901"), marketCap: dec("5678901234")},
	"SOL":   {price: dec("145.23"), change24h: dec("5.67"), volume24h: dec("5678901234"), marketCap: dec("56789012345")},
	"MATIC": {price: dec("0.67"), change24h: dec("-2.34"), volume24h: dec("1234567890"), marketCap: dec("6789012345")},
}

var rateTable = map[string]decimal.Decimal{
	"BTC-USD":   dec("68452.12"),
	"ETH-USD":   dec("3245.67"),
	"USDT-USD":  dec("1.0"),
	"USDC-USD":  dec("1.0"),
	"DAI-USD":   dec("1.0"),
	"SOL-USD":   dec("145.23"),
	"MATIC-USD": dec("0.67"),
	"BTC-EUR":   dec("63245.89"),
	"ETH-EUR":   dec("2987.45"),
	"BTC-ETH":   dec("21.09"),
	"ETH-BTC":   dec("0.047"),
	"SOL-ETH":   dec("0.045"),
	"MATIC-ETH": dec("0.00021"),
}

var feeTable = map[string]domain.FeeEstimate{
	"ethereum": {Slow: dec("0.0012"), Average: dec("0.0025"), Fast: dec("0.0045")},
	"bitcoin":  {Slow: dec("0.00005"), Average: dec("0.0001"), Fast: dec("0.0002")},
	"solana":   {Slow: dec("0.000001"), Average: dec("0.000002"), Fast: dec("0.000005")},
	"polygon":  {Slow: dec("0.0001"), Average: dec("0.0002"), Fast: dec("0.0005")},
}

type simulatedOracle struct {
	latency time.Duration
}

// New creates a simulated oracle. latency is applied to every call; pass 0
// for immediate responses in tests.
func New(latency time.Duration) ports.MarketOracle {
	return &simulatedOracle{latency: latency}
}

func (o *simulatedOracle) pause(ctx context.Context) error {
	if o.latency <= 0 {
		return nil
	}
	t := time.NewTimer(o.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (o *simulatedOracle) GetPrice(ctx context.Context, symbol string) (*domain.MarketData, error) {
	if err := o.pause(ctx); err != nil {
		return nil, apperror.ErrOracleFailure(err)
	}

	entry, ok := marketTable[strings.ToUpper(symbol)]
	if !ok {
		return nil, apperror.ErrUnknownAsset(symbol)
	}
	return &domain.MarketData{
		Price:     entry.price,
		Change24h: entry.change24h,
		Volume24h: entry.volume24h,
		MarketCap: entry.marketCap,
		AsOf:      time.Now(),
	}, nil
}

func (o *simulatedOracle) GetExchangeRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	if err := o.pause(ctx); err != nil {
		return nil, apperror.ErrOracleFailure(err)
	}

	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	rate, ok := lookupRate(from, to)
	if !ok {
		return nil, apperror.ErrUnknownAsset(from + "/" + to)
	}
	return &domain.ExchangeRate{
		From: from,
		To:   to,
		Rate: rate,
		AsOf: time.Now(),
	}, nil
}

// lookupRate resolves a pair via the direct entry, the inverted entry,
// identity, or a cross through USD, in that order.
func lookupRate(from, to string) (decimal.Decimal, bool) {
	if r, ok := rateTable[from+"-"+to]; ok {
		return r, true
	}
	if r, ok := rateTable[to+"-"+from]; ok {
		return decimal.New(1, 0).Div(r), true
	}
	if from == to {
		return decimal.New(1, 0), true
	}

	fromUSD, okFrom := usdRate(from)
	toUSD, okTo := usdRate(to)
	if !okFrom || !okTo || toUSD.IsZero() {
		return decimal.Decimal{}, false
	}
	return fromUSD.Div(toUSD), true
}

func usdRate(symbol string) (decimal.Decimal, bool) {
	if symbol == "USD" {
		return decimal.New(1, 0), true
	}
	if r, ok := rateTable[symbol+"-USD"]; ok {
		return r, true
	}
	if r, ok := rateTable["USD-"+symbol]; ok && !r.IsZero() {
		return decimal.New(1, 0).Div(r), true
	}
	return decimal.Decimal{}, false
}

func (o *simulatedOracle) GetNetworkFee(ctx context.Context, network string) (*domain.FeeEstimate, error) {
	if err := o.pause(ctx); err != nil {
		return nil, apperror.ErrOracleFailure(err)
	}

	fee, ok := feeTable[strings.ToLower(network)]
	if !ok {
		fee = feeTable["ethereum"]
	}
	fee.AsOf = time.Now()
	return &fee, nil
}
