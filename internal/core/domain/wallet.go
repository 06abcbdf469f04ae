package domain

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet holds the active secp256k1 key pair and its derived address.
// Exactly one wallet is live per engine session; creating or importing a new
// one discards the previous in-memory state.
type Wallet struct {
	key     *ecdsa.PrivateKey
	Address string
}

// NewWallet generates a wallet from fresh random key material.
func NewWallet() (*Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return walletFromKey(key), nil
}

// ImportWallet builds a wallet from a hex-encoded private key.
// Accepts keys with or without the 0x prefix.
func ImportWallet(hexKey string) (*Wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, err
	}
	return walletFromKey(key), nil
}

func walletFromKey(key *ecdsa.PrivateKey) *Wallet {
	return &Wallet{
		key:     key,
		Address: crypto.PubkeyToAddress(key.PublicKey).Hex(),
	}
}

// PrivateKey exposes the raw key for signing.
func (w *Wallet) PrivateKey() *ecdsa.PrivateKey {
	return w.key
}

// PrivateKeyHex returns the 0x-prefixed hex encoding used in snapshots.
func (w *Wallet) PrivateKeyHex() string {
	return hexutil.Encode(crypto.FromECDSA(w.key))
}
