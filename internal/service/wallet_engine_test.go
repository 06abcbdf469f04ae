package service_test

import (
	"context"
	"strings"
	"testing"

	"sandbox-wallet/internal/adapter/gateway"
	"sandbox-wallet/internal/adapter/oracle"
	"sandbox-wallet/internal/adapter/verification"
	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/internal/core/ports/mocks"
	"sandbox-wallet/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	// Well-known test key pair.
	testPrivKey  = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testPrivAddr = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"

	destAddr = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var sandboxBalances = map[string]string{
	"ETH": "1.5", "BTC": "0.05", "USDT": "1000", "USDC": "1000", "DAI": "1000", "SOL": "20", "MATIC": "500",
}

type engineFixture struct {
	engine ports.WalletEngine
	store  *mocks.MockSnapshotStore
	chain  *mocks.MockChainClient
}

func newTestEngine(t *testing.T) *engineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := mocks.NewMockSnapshotStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().Clear(gomock.Any()).Return(nil).AnyTimes()

	chain := mocks.NewMockChainClient(ctrl)
	chain.EXPECT().MockBalance(gomock.Any()).DoAndReturn(func(symbol string) decimal.Decimal {
		if s, ok := sandboxBalances[symbol]; ok {
			return dec(s)
		}
		return decimal.Zero
	}).AnyTimes()

	eng := service.NewWalletEngine(
		store,
		oracle.New(0),
		gateway.New(0),
		verification.New(0),
		chain,
		"ethereum",
		zerolog.Nop(),
	)
	return &engineFixture{engine: eng, store: store, chain: chain}
}

func (f *engineFixture) createWallet(t *testing.T) {
	t.Helper()
	_, err := f.engine.CreateWallet(context.Background())
	require.NoError(t, err)
}

func assetBalance(t *testing.T, e ports.WalletEngine, symbol string) decimal.Decimal {
	t.Helper()
	for _, a := range e.State().Assets {
		if a.Symbol == symbol {
			return a.Balance
		}
	}
	t.Fatalf("asset %s not found", symbol)
	return decimal.Zero
}

func fiatBalance(t *testing.T, e ports.WalletEngine, currency string) decimal.Decimal {
	t.Helper()
	for _, f := range e.State().Fiat {
		if f.Currency == currency {
			return f.Balance
		}
	}
	t.Fatalf("fiat %s not found", currency)
	return decimal.Zero
}

func TestCreateWallet(t *testing.T) {
	f := newTestEngine(t)

	info, err := f.engine.CreateWallet(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(info.Address, "0x"))
	assert.Len(t, info.Address, 42)

	state := f.engine.State()
	assert.Equal(t, info.Address, state.Address)
	assert.False(t, state.Connectivity.Connected)
	assert.True(t, state.Connectivity.SandboxMode)
	assert.Empty(t, state.History)
	assert.Equal(t, domain.TierNone, state.Profile.Tier)
	for _, a := range state.Assets {
		assert.True(t, a.Balance.IsZero(), "asset %s should start at zero", a.Symbol)
	}
}

func TestCreateWalletDiscardsPreviousSession(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)

	f.engine.Deposit(context.Background(), dec("2"), "ETH")
	require.Len(t, f.engine.State().History, 1)

	f.createWallet(t)
	state := f.engine.State()
	assert.Empty(t, state.History)
	assert.True(t, assetBalance(t, f.engine, "ETH").IsZero())
}

func TestImportWallet(t *testing.T) {
	f := newTestEngine(t)

	info, err := f.engine.ImportWallet(context.Background(), testPrivKey)
	require.NoError(t, err)
	assert.Equal(t, testPrivAddr, info.Address)
}

func TestImportWalletInvalidKey(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	before := f.engine.State().Address

	_, err := f.engine.ImportWallet(context.Background(), "zz-not-hex")
	require.Error(t, err)

	// The previous session stays intact.
	assert.Equal(t, before, f.engine.State().Address)
}

func TestResetWalletIdempotent(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	f.engine.Deposit(context.Background(), dec("2"), "ETH")

	require.NoError(t, f.engine.ResetWallet(context.Background()))
	state := f.engine.State()
	assert.Empty(t, state.Address)
	assert.Empty(t, state.History)
	assert.True(t, assetBalance(t, f.engine, "ETH").IsZero())

	// Resetting an already empty engine succeeds.
	require.NoError(t, f.engine.ResetWallet(context.Background()))
}

func TestRestore(t *testing.T) {
	t.Run("no snapshot", func(t *testing.T) {
		f := newTestEngine(t)
		f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)

		require.NoError(t, f.engine.Restore(context.Background()))
		assert.Empty(t, f.engine.State().Address)
	})

	t.Run("legacy snapshot", func(t *testing.T) {
		f := newTestEngine(t)
		f.store.EXPECT().Load(gomock.Any()).Return(&domain.Snapshot{
			PrivateKey: testPrivKey,
			Balances: map[string]decimal.Decimal{
				"ETH":  dec("2"),
				"USDT": dec("500"),
			},
			History: []domain.SnapshotTransaction{
				{Type: "Deposit", Amount: dec("2"), Token: "ETH", Timestamp: 1714000000000},
			},
			Usage: &domain.SnapshotUsage{Daily: dec("150"), Monthly: dec("300")},
		}, nil)

		require.NoError(t, f.engine.Restore(context.Background()))

		state := f.engine.State()
		assert.Equal(t, testPrivAddr, state.Address)
		assert.True(t, assetBalance(t, f.engine, "ETH").Equal(dec("2")))
		assert.True(t, assetBalance(t, f.engine, "USDT").Equal(dec("500")))
		require.Len(t, state.History, 1)
		assert.Equal(t, domain.TxDeposit, state.History[0].Type)
		assert.Equal(t, domain.TxStatusCompleted, state.History[0].Status)
		assert.True(t, state.Profile.UsedDailyLimit.Equal(dec("150")))
		assert.True(t, state.Profile.UsedMonthlyLimit.Equal(dec("300")))
		// Connectivity never survives a restart.
		assert.False(t, state.Connectivity.Connected)
		assert.True(t, state.Connectivity.SandboxMode)
	})
}

func TestDeposit(t *testing.T) {
	f := newTestEngine(t)

	t.Run("no wallet", func(t *testing.T) {
		res := f.engine.Deposit(context.Background(), dec("1"), "ETH")
		assert.False(t, res.Success)
		assert.Contains(t, res.Reason, "No wallet")
	})

	f.createWallet(t)

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		assert.False(t, f.engine.Deposit(context.Background(), decimal.Zero, "ETH").Success)
		assert.False(t, f.engine.Deposit(context.Background(), dec("-1"), "ETH").Success)
		assert.Empty(t, f.engine.State().History)
	})

	t.Run("rejects unknown asset", func(t *testing.T) {
		res := f.engine.Deposit(context.Background(), dec("1"), "DOGE")
		assert.False(t, res.Success)
	})

	t.Run("credits and records", func(t *testing.T) {
		res := f.engine.Deposit(context.Background(), dec("2"), "ETH")
		require.True(t, res.Success)
		require.NotNil(t, res.Transaction)
		assert.Equal(t, domain.TxDeposit, res.Transaction.Type)
		assert.True(t, assetBalance(t, f.engine, "ETH").Equal(dec("2")))
	})
}

func TestWithdraw(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	f.engine.Deposit(context.Background(), dec("2"), "ETH")

	t.Run("insufficient balance", func(t *testing.T) {
		res := f.engine.Withdraw(context.Background(), dec("5"), "ETH")
		assert.False(t, res.Success)
		assert.Contains(t, res.Reason, "Insufficient")
		assert.True(t, assetBalance(t, f.engine, "ETH").Equal(dec("2")))
	})

	t.Run("debits and records", func(t *testing.T) {
		res := f.engine.Withdraw(context.Background(), dec("0.5"), "ETH")
		require.True(t, res.Success)
		assert.True(t, assetBalance(t, f.engine, "ETH").Equal(dec("1.5")))
	})

	t.Run("balance never goes negative", func(t *testing.T) {
		res := f.engine.Withdraw(context.Background(), dec("1.500000001"), "ETH")
		assert.False(t, res.Success)
		assert.True(t, assetBalance(t, f.engine, "ETH").Equal(dec("1.5")))
	})
}

func TestHistoryNewestFirst(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	ctx := context.Background()

	f.engine.Deposit(ctx, dec("2"), "ETH")
	f.engine.Deposit(ctx, dec("100"), "USDT")
	f.engine.Withdraw(ctx, dec("1"), "ETH")

	history := f.engine.State().History
	require.Len(t, history, 3)
	assert.Equal(t, domain.TxWithdraw, history[0].Type)
	assert.Equal(t, "USDT", history[1].Currency)
	assert.Equal(t, domain.TxDeposit, history[2].Type)
	assert.Equal(t, "ETH", history[2].Currency)
}

func TestStateReturnsCopies(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	f.engine.Deposit(context.Background(), dec("2"), "ETH")

	state := f.engine.State()
	state.Assets[0].Balance = dec("9999")
	state.History[0].Currency = "HACKED"

	fresh := f.engine.State()
	assert.True(t, assetBalance(t, f.engine, "ETH").Equal(dec("2")))
	assert.Equal(t, "ETH", fresh.History[0].Currency)
}

func TestEndToEndSandboxSession(t *testing.T) {
	f := newTestEngine(t)
	ctx := context.Background()

	info, err := f.engine.CreateWallet(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, info.Address)

	f.engine.RefreshMarketData(ctx)

	// Deposit 2 ETH.
	require.True(t, f.engine.Deposit(ctx, dec("2"), "ETH").Success)

	// Withdrawing 5 ETH must fail and change nothing.
	res := f.engine.Withdraw(ctx, dec("5"), "ETH")
	assert.False(t, res.Success)
	assert.True(t, assetBalance(t, f.engine, "ETH").Equal(dec("2")))

	// A small sandbox transfer settles as Simulated.
	res = f.engine.Transfer(ctx, destAddr, dec("0.1"), "ETH")
	require.True(t, res.Success)
	assert.Equal(t, domain.TxSimulated, res.Transaction.Type)
	assert.Equal(t, destAddr, res.Transaction.ToAddress)
	assert.True(t, assetBalance(t, f.engine, "ETH").Equal(dec("1.9")))

	history := f.engine.State().History
	require.Len(t, history, 2)
	assert.Equal(t, domain.TxSimulated, history[0].Type)
	assert.Equal(t, domain.TxDeposit, history[1].Type)

	// The USD value of the transfer was consumed against the limits.
	expectedUSD := dec("0.1").Mul(dec("3245.67"))
	assert.True(t, f.engine.State().Profile.UsedDailyLimit.Equal(expectedUSD))
}
