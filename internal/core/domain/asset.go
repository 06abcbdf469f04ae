package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketData is a spot-market snapshot for one asset.
type MarketData struct {
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change_24h"`
	Volume24h decimal.Decimal `json:"volume_24h"`
	MarketCap decimal.Decimal `json:"market_cap"`
	AsOf      time.Time       `json:"as_of"`
}

// CryptoAsset is one entry of the fixed asset ledger.
// Invariant: Balance >= 0 at all times.
type CryptoAsset struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Network  string          `json:"network"`
	Decimals int             `json:"decimals"`
	Market   *MarketData     `json:"market,omitempty"`
}

// FiatBalance is one entry of the fiat ledger. Unlike crypto balances it can
// go negative: purchases are funded by the external payment method, and the
// ledger records the net flow.
type FiatBalance struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Symbol   string          `json:"symbol"`
}

// ExchangeRate is an oracle-supplied conversion rate.
type ExchangeRate struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
	AsOf time.Time       `json:"as_of"`
}

// FeeEstimate holds per-network fee tiers in the network's native unit.
type FeeEstimate struct {
	Slow    decimal.Decimal `json:"slow"`
	Average decimal.Decimal `json:"average"`
	Fast    decimal.Decimal `json:"fast"`
	AsOf    time.Time       `json:"as_of"`
}

// DefaultCryptoAssets returns the fixed zero-balance asset set.
// The symbol set never changes after initialization.
func DefaultCryptoAssets() []CryptoAsset {
	return []CryptoAsset{
		{Symbol: "ETH", Name: "Ethereum", Network: "ethereum", Decimals: 18},
		{Symbol: "BTC", Name: "Bitcoin", Network: "bitcoin", Decimals: 8},
		{Symbol: "USDT", Name: "Tether", Network: "ethereum", Decimals: 6},
		{Symbol: "USDC", Name: "USD Coin", Network: "ethereum", Decimals: 6},
		{Symbol: "DAI", Name: "Dai", Network: "ethereum", Decimals: 18},
		{Symbol: "SOL", Name: "Solana", Network: "solana", Decimals: 9},
		{Symbol: "MATIC", Name: "Polygon", Network: "polygon", Decimals: 18},
	}
}

// DefaultFiatBalances returns the fixed zero-balance fiat set.
func DefaultFiatBalances() []FiatBalance {
	return []FiatBalance{
		{Currency: "USD", Symbol: "$"},
		{Currency: "EUR", Symbol: "€"},
		{Currency: "GBP", Symbol: "£"},
	}
}
