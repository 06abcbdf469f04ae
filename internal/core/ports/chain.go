package ports

import (
	"context"
	"crypto/ecdsa"

	"github.com/shopspring/decimal"
)

// EndpointCheck is the outcome of a liveness probe against an RPC endpoint.
// It is always populated; probing never returns a Go error. A provider that
// answers but denies access (HTTP 403) sets AccessDenied so callers can enter
// the connected-but-sandboxed state instead of treating it as unreachable.
type EndpointCheck struct {
	Valid        bool
	AccessDenied bool
	Reason       string
}

// ChainClient is the connectivity layer: endpoint resolution and validation,
// a native-balance query, and the single supported mutating operation.
type ChainClient interface {
	// ValidateEndpoint probes url with an eth_blockNumber request.
	ValidateEndpoint(ctx context.Context, url string) EndpointCheck

	// ProviderURL resolves the default RPC URL for a named network. It fails
	// only when no credential/configuration exists for that network.
	ProviderURL(network string) (string, error)

	// NativeBalance queries eth_getBalance and returns the balance in ether.
	NativeBalance(ctx context.Context, providerURL, address string) (decimal.Decimal, error)

	// MockBalance returns the fixed sandbox balance for a symbol.
	MockBalance(symbol string) decimal.Decimal

	// SendNative signs and broadcasts a native-asset transfer, then waits for
	// confirmation under a client-side timeout distinct from the transport
	// timeout. Returns the transaction hash.
	SendNative(ctx context.Context, providerURL string, key *ecdsa.PrivateKey, chainID int64, to string, amount decimal.Decimal) (string, error)
}
