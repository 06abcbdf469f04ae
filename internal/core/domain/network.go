package domain

// NetworkInfo describes a supported blockchain network.
type NetworkInfo struct {
	Name           string `json:"name"`
	ChainID        int64  `json:"chain_id"`
	RPCURL         string `json:"rpc_url"`
	ExplorerURL    string `json:"explorer_url"`
	CurrencySymbol string `json:"currency_symbol"`
	IsTestnet      bool   `json:"is_testnet"`
}

// Networks is the fixed table of supported networks. Networks with an
// infura-style RPC base expect a project key appended; networks with an empty
// RPC URL are always simulated.
var Networks = map[string]NetworkInfo{
	"ethereum": {
		Name:           "Ethereum Mainnet",
		ChainID:        1,
		RPCURL:         "https://mainnet.infura.io/v3/",
		ExplorerURL:    "https://etherscan.io",
		CurrencySymbol: "ETH",
	},
	"goerli": {
		Name:           "Goerli Testnet",
		ChainID:        5,
		RPCURL:         "https://goerli.infura.io/v3/",
		ExplorerURL:    "https://goerli.etherscan.io",
		CurrencySymbol: "ETH",
		IsTestnet:      true,
	},
	"polygon": {
		Name:           "Polygon Mainnet",
		ChainID:        137,
		RPCURL:         "https://polygon-rpc.com",
		ExplorerURL:    "https://polygonscan.com",
		CurrencySymbol: "MATIC",
	},
	"solana": {
		Name:           "Solana Mainnet",
		ChainID:        101,
		RPCURL:         "https://api.mainnet-beta.solana.com",
		ExplorerURL:    "https://explorer.solana.com",
		CurrencySymbol: "SOL",
	},
	"bitcoin": {
		Name:           "Bitcoin",
		ChainID:        0,
		RPCURL:         "",
		ExplorerURL:    "https://www.blockchain.com/explorer",
		CurrencySymbol: "BTC",
	},
}

// NetworkInfoFor returns the configuration for a network, falling back to
// Ethereum for unknown names.
func NetworkInfoFor(network string) NetworkInfo {
	if info, ok := Networks[network]; ok {
		return info
	}
	return Networks["ethereum"]
}

// ConnectivityState tracks the session's blockchain connection.
// Invariant: SandboxMode is true whenever Connected is false. The
// connected-but-sandboxed combination is the degraded state reached when a
// provider answers but denies access.
type ConnectivityState struct {
	Connected   bool   `json:"connected"`
	SandboxMode bool   `json:"sandbox_mode"`
	Network     string `json:"network"`
	ProviderURL string `json:"-"` // may embed a project key, never exposed
}

// DefaultConnectivity is the safe boot state: disconnected, sandboxed.
func DefaultConnectivity(network string) ConnectivityState {
	return ConnectivityState{SandboxMode: true, Network: network}
}
