// Package chain implements the blockchain connectivity layer: raw JSON-RPC
// calls for probing and balance queries, and go-ethereum signing for the one
// supported on-chain transfer.
package chain

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"sandbox-wallet/config"
	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// weiPerEther is 10^18 as a decimal exponent.
const weiExponent = 18

var mockBalances = map[string]string{
	"ETH":   "1.5",
	"BTC":   "0.05",
	"USDT":  "1000",
	"USDC":  "1000",
	"DAI":   "1000",
	"SOL":   "20",
	"MATIC": "500",
}

// Client talks to Ethereum-style JSON-RPC endpoints. The transport timeout
// bounds each HTTP round trip; the confirm timeout bounds the total wait for
// a broadcast transaction to be mined.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	confirmTimeout time.Duration
	pollInterval   time.Duration
	log            zerolog.Logger
}

// NewClient creates a connectivity client from chain configuration.
func NewClient(cfg config.ChainConfig, log zerolog.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: cfg.RequestTimeout},
		apiKey:         cfg.APIKey,
		confirmTimeout: cfg.ConfirmTimeout,
		pollInterval:   2 * time.Second,
		log:            log.With().Str("component", "chain_client").Logger(),
	}
}

var _ ports.ChainClient = (*Client)(nil)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// errAccessDenied marks an HTTP 403 from the provider.
var errAccessDenied = errors.New("access denied")

func (c *Client) call(ctx context.Context, url, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, errAccessDenied
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("RPC endpoint returned status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return nil, errors.New("invalid JSON response from RPC endpoint")
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("RPC error: %s", rpcResp.Error.Message)
	}
	return rpcResp.Result, nil
}

// ValidateEndpoint probes url with eth_blockNumber. All failures are folded
// into the returned check; an HTTP 403 sets AccessDenied so the caller can
// degrade to the connected-but-sandboxed state.
func (c *Client) ValidateEndpoint(ctx context.Context, url string) ports.EndpointCheck {
	_, err := c.call(ctx, url, "eth_blockNumber")
	switch {
	case err == nil:
		return ports.EndpointCheck{Valid: true, Reason: "RPC endpoint is valid"}
	case errors.Is(err, errAccessDenied):
		return ports.EndpointCheck{
			AccessDenied: true,
			Reason:       "Access denied. API key may be invalid or missing required permissions.",
		}
	case errors.Is(err, context.DeadlineExceeded):
		return ports.EndpointCheck{Reason: "RPC endpoint timed out"}
	default:
		c.log.Debug().Err(err).Str("url", redactURL(url)).Msg("endpoint probe failed")
		return ports.EndpointCheck{Reason: err.Error()}
	}
}

// ProviderURL resolves the RPC URL for a named network. Infura-style bases
// get the configured project key appended; a missing key or an empty RPC
// base means the network cannot be reached.
func (c *Client) ProviderURL(network string) (string, error) {
	info, ok := domain.Networks[network]
	if !ok {
		return "", apperror.Validation(fmt.Sprintf("Network %s is not supported", network))
	}
	if info.RPCURL == "" {
		return "", apperror.ErrNetworkNotConfigured(network)
	}
	if strings.Contains(info.RPCURL, "infura") {
		if c.apiKey == "" {
			return "", apperror.ErrNetworkNotConfigured(network)
		}
		return info.RPCURL + c.apiKey, nil
	}
	return info.RPCURL, nil
}

// NativeBalance queries eth_getBalance and converts the wei result to ether.
func (c *Client) NativeBalance(ctx context.Context, providerURL, address string) (decimal.Decimal, error) {
	result, err := c.call(ctx, providerURL, "eth_getBalance", address, "latest")
	if err != nil {
		return decimal.Decimal{}, apperror.Wrap("CONN_004", "Failed to fetch balance", http.StatusBadGateway, err)
	}

	var balanceHex string
	if err := json.Unmarshal(result, &balanceHex); err != nil {
		return decimal.Decimal{}, apperror.InternalError(err)
	}
	wei, err := hexutil.DecodeBig(balanceHex)
	if err != nil {
		return decimal.Decimal{}, apperror.InternalError(err)
	}
	return decimal.NewFromBigInt(wei, -weiExponent), nil
}

// MockBalance returns the fixed sandbox balance for a symbol, zero for
// anything outside the supported set.
func (c *Client) MockBalance(symbol string) decimal.Decimal {
	if s, ok := mockBalances[strings.ToUpper(symbol)]; ok {
		return decimal.RequireFromString(s)
	}
	return decimal.Zero
}

// SendNative signs a legacy transfer of amount ether and broadcasts it, then
// polls for a receipt until the confirm timeout elapses. Returns the
// transaction hash once mined.
func (c *Client) SendNative(ctx context.Context, providerURL string, key *ecdsa.PrivateKey, chainID int64, to string, amount decimal.Decimal) (string, error) {
	if !common.IsHexAddress(to) {
		return "", apperror.Validation("Invalid destination address")
	}

	from := ethcrypto.PubkeyToAddress(key.PublicKey)

	nonce, err := c.callUint64(ctx, providerURL, "eth_getTransactionCount", from.Hex(), "pending")
	if err != nil {
		return "", apperror.ErrBroadcastFailure(err)
	}
	gasPrice, err := c.callBig(ctx, providerURL, "eth_gasPrice")
	if err != nil {
		return "", apperror.ErrBroadcastFailure(err)
	}

	wei := amount.Shift(weiExponent).BigInt()
	dest := common.HexToAddress(to)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &dest,
		Value:    wei,
		Gas:      21000,
		GasPrice: gasPrice,
	})

	signed, err := types.SignTx(tx, types.NewEIP155Signer(big.NewInt(chainID)), key)
	if err != nil {
		return "", apperror.ErrBroadcastFailure(err)
	}
	rawTx, err := signed.MarshalBinary()
	if err != nil {
		return "", apperror.ErrBroadcastFailure(err)
	}

	result, err := c.call(ctx, providerURL, "eth_sendRawTransaction", hexutil.Encode(rawTx))
	if err != nil {
		return "", apperror.ErrBroadcastFailure(err)
	}
	var hash string
	if err := json.Unmarshal(result, &hash); err != nil {
		return "", apperror.ErrBroadcastFailure(err)
	}

	c.log.Info().Str("hash", hash).Uint64("nonce", nonce).Msg("transaction broadcast")
	return hash, c.awaitReceipt(ctx, providerURL, hash)
}

// awaitReceipt polls eth_getTransactionReceipt until the transaction is
// mined or the confirm timeout elapses. The timeout is independent of the
// per-request transport timeout.
func (c *Client) awaitReceipt(ctx context.Context, providerURL, hash string) error {
	deadline, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		result, err := c.call(deadline, providerURL, "eth_getTransactionReceipt", hash)
		if err == nil && len(result) > 0 && string(result) != "null" {
			return nil
		}
		if err != nil && errors.Is(deadline.Err(), context.DeadlineExceeded) {
			return apperror.ErrTransferTimeout()
		}

		select {
		case <-deadline.Done():
			if errors.Is(deadline.Err(), context.DeadlineExceeded) {
				return apperror.ErrTransferTimeout()
			}
			return deadline.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) callUint64(ctx context.Context, url, method string, params ...any) (uint64, error) {
	result, err := c.call(ctx, url, method, params...)
	if err != nil {
		return 0, err
	}
	var hex string
	if err := json.Unmarshal(result, &hex); err != nil {
		return 0, err
	}
	return hexutil.DecodeUint64(hex)
}

func (c *Client) callBig(ctx context.Context, url, method string, params ...any) (*big.Int, error) {
	result, err := c.call(ctx, url, method, params...)
	if err != nil {
		return nil, err
	}
	var hex string
	if err := json.Unmarshal(result, &hex); err != nil {
		return nil, err
	}
	return hexutil.DecodeBig(hex)
}

// redactURL strips everything after the last path segment so project keys
// never reach the logs.
func redactURL(url string) string {
	if i := strings.LastIndex(url, "/"); i > len("https://") {
		return url[:i+1] + "..."
	}
	return url
}
