package service

import (
	"context"
	"sync"

	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// walletEngine is the single authority over wallet state: key material, both
// ledgers, the transaction log, the verification profile and connectivity.
//
// Two locks: opMu serializes mutating operations end to end, so the
// check-then-debit sequence of a transfer can never interleave with another
// mutation. mu guards the state fields for readers, so State() and the
// refresh loops never wait behind an in-flight on-chain confirmation.
type walletEngine struct {
	store    ports.SnapshotStore
	oracle   ports.MarketOracle
	gateway  ports.PaymentGateway
	verifier ports.VerificationService
	chain    ports.ChainClient
	log      zerolog.Logger

	defaultNetwork string

	opMu sync.Mutex
	mu   sync.RWMutex

	wallet       *domain.Wallet
	connectivity domain.ConnectivityState
	assets       []domain.CryptoAsset
	fiat         []domain.FiatBalance
	history      []domain.Transaction
	profile      domain.UserProfile

	marketData map[string]*domain.MarketData
	rates      []domain.ExchangeRate
	fees       map[string]*domain.FeeEstimate

	paymentMethods []domain.PaymentMethod
	cashOutMethods []domain.CashOutMethod
}

// NewWalletEngine creates an engine with empty state and no active wallet.
// Call Restore to pick up a persisted session.
func NewWalletEngine(
	store ports.SnapshotStore,
	oracle ports.MarketOracle,
	gateway ports.PaymentGateway,
	verifier ports.VerificationService,
	chain ports.ChainClient,
	defaultNetwork string,
	log zerolog.Logger,
) ports.WalletEngine {
	if defaultNetwork == "" {
		defaultNetwork = "ethereum"
	}
	return &walletEngine{
		store:          store,
		oracle:         oracle,
		gateway:        gateway,
		verifier:       verifier,
		chain:          chain,
		defaultNetwork: defaultNetwork,
		log:            log.With().Str("component", "wallet_engine").Logger(),
		connectivity:   domain.DefaultConnectivity(defaultNetwork),
		assets:         domain.DefaultCryptoAssets(),
		fiat:           domain.DefaultFiatBalances(),
		profile:        domain.NewUserProfile(),
		marketData:     make(map[string]*domain.MarketData),
		fees:           make(map[string]*domain.FeeEstimate),
	}
}

// CreateWallet generates a fresh key pair and resets every ledger. Any
// previous in-memory session is discarded.
func (e *walletEngine) CreateWallet(ctx context.Context) (*ports.WalletInfo, error) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	w, err := domain.NewWallet()
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	e.mu.Lock()
	e.installWallet(w)
	e.mu.Unlock()

	e.persist(ctx)
	e.loadFundingMethods(ctx)

	e.log.Info().Str("address", w.Address).Msg("wallet created")
	return &ports.WalletInfo{Address: w.Address}, nil
}

// ImportWallet builds a session from an existing private key. An invalid key
// leaves the current state untouched.
func (e *walletEngine) ImportWallet(ctx context.Context, hexKey string) (*ports.WalletInfo, error) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	w, err := domain.ImportWallet(hexKey)
	if err != nil {
		return nil, apperror.ErrInvalidPrivateKey()
	}

	e.mu.Lock()
	e.installWallet(w)
	e.mu.Unlock()

	e.persist(ctx)
	e.loadFundingMethods(ctx)

	e.log.Info().Str("address", w.Address).Msg("wallet imported")
	return &ports.WalletInfo{Address: w.Address}, nil
}

// installWallet swaps in a new wallet with zeroed ledgers. Caller holds mu.
func (e *walletEngine) installWallet(w *domain.Wallet) {
	e.wallet = w
	e.assets = domain.DefaultCryptoAssets()
	e.fiat = domain.DefaultFiatBalances()
	e.history = nil
	e.profile = domain.NewUserProfile()
	e.connectivity = domain.DefaultConnectivity(e.defaultNetwork)
}

// ResetWallet discards the session and the persisted snapshot. Safe to call
// with no active wallet.
func (e *walletEngine) ResetWallet(ctx context.Context) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.Lock()
	e.wallet = nil
	e.assets = domain.DefaultCryptoAssets()
	e.fiat = domain.DefaultFiatBalances()
	e.history = nil
	e.profile = domain.NewUserProfile()
	e.connectivity = domain.DefaultConnectivity(e.defaultNetwork)
	e.mu.Unlock()

	if err := e.store.Clear(ctx); err != nil {
		return apperror.ErrSnapshotError(err)
	}
	e.log.Info().Msg("wallet reset")
	return nil
}

// Restore loads the persisted snapshot, if any, into a fresh session.
// Records written by older versions are upconverted; connectivity always
// starts over in sandbox. A missing snapshot is not an error.
func (e *walletEngine) Restore(ctx context.Context) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	snap, err := e.store.Load(ctx)
	if err != nil {
		return apperror.ErrSnapshotError(err)
	}
	if snap == nil {
		return nil
	}

	w, err := domain.ImportWallet(snap.PrivateKey)
	if err != nil {
		return apperror.ErrInvalidPrivateKey()
	}

	e.mu.Lock()
	e.installWallet(w)
	if snap.Network != "" {
		e.connectivity = domain.DefaultConnectivity(snap.Network)
	}
	for i := range e.assets {
		if bal, ok := snap.Balances[e.assets[i].Symbol]; ok {
			e.assets[i].Balance = bal
		}
	}
	for i := range e.fiat {
		if bal, ok := snap.Fiat[e.fiat[i].Currency]; ok {
			e.fiat[i].Balance = bal
		}
	}
	e.history = snap.Transactions()
	if snap.Usage != nil {
		e.profile.UsedDailyLimit = snap.Usage.Daily
		e.profile.UsedMonthlyLimit = snap.Usage.Monthly
	}
	e.mu.Unlock()

	e.loadFundingMethods(ctx)

	e.log.Info().
		Str("address", w.Address).
		Int("history", len(snap.History)).
		Msg("wallet restored from snapshot")
	return nil
}

// State returns a copy of the current session for the presentation layer.
func (e *walletEngine) State() *ports.WalletState {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := &ports.WalletState{
		Connectivity: e.connectivity,
		Assets:       make([]domain.CryptoAsset, len(e.assets)),
		Fiat:         make([]domain.FiatBalance, len(e.fiat)),
		History:      make([]domain.Transaction, len(e.history)),
		Profile:      e.profile,
	}
	if e.wallet != nil {
		s.Address = e.wallet.Address
	}
	copy(s.Assets, e.assets)
	copy(s.Fiat, e.fiat)
	copy(s.History, e.history)
	return s
}

// persist writes the snapshot best-effort; a store failure never rolls back
// a completed operation.
func (e *walletEngine) persist(ctx context.Context) {
	e.mu.RLock()
	if e.wallet == nil {
		e.mu.RUnlock()
		return
	}
	snap := domain.SnapshotFromState(e.wallet, e.connectivity.Network, e.assets, e.fiat, e.history, e.profile)
	e.mu.RUnlock()

	if err := e.store.Save(ctx, snap); err != nil {
		e.log.Warn().Err(err).Msg("failed to persist snapshot")
	}
}

// loadFundingMethods caches the gateway's method rosters. Failures are
// logged; the lists stay empty until the next lifecycle operation.
func (e *walletEngine) loadFundingMethods(ctx context.Context) {
	pms, err := e.gateway.PaymentMethods(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("failed to load payment methods")
	}
	cms, err := e.gateway.CashOutMethods(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("failed to load cash out methods")
	}

	e.mu.Lock()
	if pms != nil {
		e.paymentMethods = pms
	}
	if cms != nil {
		e.cashOutMethods = cms
	}
	e.mu.Unlock()
}

// usdPrice returns the cached spot price for a symbol, zero when market data
// has not been loaded yet. Caller holds mu or opMu.
func (e *walletEngine) usdPrice(symbol string) decimal.Decimal {
	if md, ok := e.marketData[symbol]; ok {
		return md.Price
	}
	return decimal.Zero
}

// assetIndex finds a symbol in the asset ledger. Caller holds mu or opMu.
func (e *walletEngine) assetIndex(symbol string) int {
	for i := range e.assets {
		if e.assets[i].Symbol == symbol {
			return i
		}
	}
	return -1
}

// fiatIndex finds a currency in the fiat ledger. Caller holds mu or opMu.
func (e *walletEngine) fiatIndex(currency string) int {
	for i := range e.fiat {
		if e.fiat[i].Currency == currency {
			return i
		}
	}
	return -1
}

// prepend adds a record to the front of the history. Newest first, append
// only. Caller holds mu.
func (e *walletEngine) prepend(tx domain.Transaction) {
	e.history = append([]domain.Transaction{tx}, e.history...)
}
