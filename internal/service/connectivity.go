package service

import (
	"context"
	"fmt"

	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"
)

// ConnectToBlockchain attempts to leave sandbox mode. Every failure path
// leaves the engine usable: an unreachable or invalid endpoint keeps the
// previous state, and a provider that answers but denies access yields the
// degraded connected-but-sandboxed state with mock balances loaded.
func (e *walletEngine) ConnectToBlockchain(ctx context.Context, customRPCURL, network string) ports.ConnectResult {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.RLock()
	hasWallet := e.wallet != nil
	current := e.connectivity
	e.mu.RUnlock()

	if !hasWallet {
		return ports.ConnectResult{Message: apperror.ErrNoWallet().Message, State: current}
	}

	if network == "" {
		network = current.Network
	}
	if network == "" {
		network = e.defaultNetwork
	}

	providerURL := customRPCURL
	if providerURL == "" {
		resolved, err := e.chain.ProviderURL(network)
		if err != nil {
			e.log.Warn().Err(err).Str("network", network).Msg("cannot resolve provider URL")
			return ports.ConnectResult{Message: reasonFromError(err), State: current}
		}
		providerURL = resolved
	}

	check := e.chain.ValidateEndpoint(ctx, providerURL)
	switch {
	case check.Valid:
		e.mu.Lock()
		e.connectivity = domain.ConnectivityState{
			Connected:   true,
			SandboxMode: false,
			Network:     network,
			ProviderURL: providerURL,
		}
		state := e.connectivity
		e.mu.Unlock()

		e.fetchBalancesLocked(ctx)
		e.persist(ctx)

		msg := fmt.Sprintf("Connected to %s", domain.NetworkInfoFor(network).Name)
		if customRPCURL != "" {
			msg = fmt.Sprintf("Connected to blockchain using custom RPC: %s", customRPCURL)
		}
		e.log.Info().Str("network", network).Msg("blockchain connection established")
		return ports.ConnectResult{Success: true, Message: msg, State: state}

	case check.AccessDenied:
		// The provider is reachable but the key is rejected. Stay usable:
		// connected in name, sandbox in behavior.
		e.mu.Lock()
		e.connectivity = domain.ConnectivityState{
			Connected:   true,
			SandboxMode: true,
			Network:     network,
		}
		state := e.connectivity
		e.mu.Unlock()

		e.loadMockBalances(ctx)

		e.log.Warn().Str("network", network).Msg("provider denied access, degrading to sandbox")
		return ports.ConnectResult{
			Message: "API access denied. Running in sandbox mode with mock data.",
			State:   state,
		}

	default:
		e.log.Warn().Str("reason", check.Reason).Msg("endpoint validation failed")
		return ports.ConnectResult{Message: check.Reason, State: current}
	}
}

// FetchBalances reloads the asset ledger from the connected network, or from
// the fixed sandbox table when not truly connected.
func (e *walletEngine) FetchBalances(ctx context.Context) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.RLock()
	hasWallet := e.wallet != nil
	e.mu.RUnlock()
	if !hasWallet {
		return apperror.ErrNoWallet()
	}

	e.fetchBalancesLocked(ctx)
	e.persist(ctx)
	return nil
}

// fetchBalancesLocked does the per-asset balance refresh. Caller holds opMu.
func (e *walletEngine) fetchBalancesLocked(ctx context.Context) {
	e.mu.RLock()
	conn := e.connectivity
	address := ""
	if e.wallet != nil {
		address = e.wallet.Address
	}
	assets := make([]domain.CryptoAsset, len(e.assets))
	copy(assets, e.assets)
	e.mu.RUnlock()

	if conn.SandboxMode || !conn.Connected {
		e.loadMockBalances(ctx)
		return
	}

	native := domain.NetworkInfoFor(conn.Network).CurrencySymbol
	for i := range assets {
		onSelected := assets[i].Network == conn.Network ||
			(assets[i].Network == "ethereum" && conn.Network == "goerli")
		if !onSelected {
			// Assets on other networks keep their last known balance.
			continue
		}
		if assets[i].Symbol == native {
			bal, err := e.chain.NativeBalance(ctx, conn.ProviderURL, address)
			if err != nil {
				e.log.Warn().Err(err).Str("symbol", assets[i].Symbol).Msg("balance query failed, using sandbox value")
				bal = e.chain.MockBalance(assets[i].Symbol)
			}
			assets[i].Balance = bal
			continue
		}
		// Only the native asset has a live query. Token balances keep the
		// fixed sandbox value even while connected.
		assets[i].Balance = e.chain.MockBalance(assets[i].Symbol)
	}

	e.mu.Lock()
	e.assets = assets
	e.mu.Unlock()
}

// loadMockBalances overwrites every asset balance with the sandbox table.
func (e *walletEngine) loadMockBalances(ctx context.Context) {
	e.mu.Lock()
	for i := range e.assets {
		e.assets[i].Balance = e.chain.MockBalance(e.assets[i].Symbol)
	}
	e.mu.Unlock()
	e.persist(ctx)
}

// RefreshMarketData pulls prices, pair rates and network fees from the
// oracle and merges them into the session. Partial failures log and keep the
// previous values; this never blocks mutating operations.
func (e *walletEngine) RefreshMarketData(ctx context.Context) {
	e.mu.RLock()
	symbols := make([]string, len(e.assets))
	for i, a := range e.assets {
		symbols[i] = a.Symbol
	}
	e.mu.RUnlock()

	prices := make(map[string]*domain.MarketData, len(symbols))
	for _, symbol := range symbols {
		md, err := e.oracle.GetPrice(ctx, symbol)
		if err != nil {
			e.log.Warn().Err(err).Str("symbol", symbol).Msg("price refresh failed")
			continue
		}
		prices[symbol] = md
	}

	pairs := [][2]string{{"BTC", "USD"}, {"ETH", "USD"}, {"BTC", "ETH"}, {"USDT", "USD"}, {"USDC", "USD"}}
	rates := make([]domain.ExchangeRate, 0, len(pairs))
	for _, p := range pairs {
		r, err := e.oracle.GetExchangeRate(ctx, p[0], p[1])
		if err != nil {
			e.log.Warn().Err(err).Str("pair", p[0]+"/"+p[1]).Msg("rate refresh failed")
			continue
		}
		rates = append(rates, *r)
	}

	fees := make(map[string]*domain.FeeEstimate, 4)
	for _, network := range []string{"ethereum", "bitcoin", "solana", "polygon"} {
		fee, err := e.oracle.GetNetworkFee(ctx, network)
		if err != nil {
			e.log.Warn().Err(err).Str("network", network).Msg("fee refresh failed")
			continue
		}
		fees[network] = fee
	}

	e.mu.Lock()
	for symbol, md := range prices {
		e.marketData[symbol] = md
	}
	if len(rates) > 0 {
		e.rates = rates
	}
	for network, fee := range fees {
		e.fees[network] = fee
	}
	for i := range e.assets {
		if md, ok := e.marketData[e.assets[i].Symbol]; ok {
			e.assets[i].Market = md
		}
	}
	e.mu.Unlock()
}

// RefreshUserProfile merges the verification service's current view of the
// wallet address into the profile. Consumed limit usage is never touched.
func (e *walletEngine) RefreshUserProfile(ctx context.Context) {
	e.mu.RLock()
	address := ""
	if e.wallet != nil {
		address = e.wallet.Address
	}
	e.mu.RUnlock()
	if address == "" {
		return
	}

	status, err := e.verifier.CheckStatus(ctx, address)
	if err != nil {
		e.log.Warn().Err(err).Msg("profile refresh failed")
		return
	}

	e.mu.Lock()
	e.profile.Tier = status.Tier
	e.profile.Documents = status.Documents
	if !status.UpdatedAt.IsZero() {
		t := status.UpdatedAt
		e.profile.VerifiedAt = &t
	}
	e.mu.Unlock()
}
