package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the serialized wallet record written to durable storage on every
// state change and read once at startup. The history entries keep the original
// field names (type/amount/token/to/timestamp/hash) so snapshots written by
// older engine versions, with fewer symbols and no fiat section, still decode.
type Snapshot struct {
	PrivateKey string                     `json:"privateKey"`
	Network    string                     `json:"network,omitempty"`
	Balances   map[string]decimal.Decimal `json:"balances"`
	Fiat       map[string]decimal.Decimal `json:"fiat,omitempty"`
	History    []SnapshotTransaction      `json:"history"`
	Usage      *SnapshotUsage             `json:"usage,omitempty"`
}

// SnapshotUsage carries consumed limit counters across restarts.
type SnapshotUsage struct {
	Daily   decimal.Decimal `json:"daily"`
	Monthly decimal.Decimal `json:"monthly"`
}

// SnapshotTransaction is the wire form of a history entry. Token is the
// legacy name for the currency field; ID, status, fee, toCurrency and network
// are extensions absent from older records.
type SnapshotTransaction struct {
	ID         string          `json:"id,omitempty"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Token      string          `json:"token"`
	ToCurrency string          `json:"toCurrency,omitempty"`
	To         string          `json:"to,omitempty"`
	From       string          `json:"from,omitempty"`
	Timestamp  int64           `json:"timestamp,omitempty"` // unix milliseconds
	Status     string          `json:"status,omitempty"`
	Fee        decimal.Decimal `json:"fee,omitempty"`
	Hash       string          `json:"hash,omitempty"`
	Network    string          `json:"network,omitempty"`
}

// EncodeSnapshot serializes a snapshot.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot of any supported version. Older records
// carry a subset of fields; whatever is present survives the upconversion.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if s.PrivateKey == "" {
		return nil, fmt.Errorf("decoding snapshot: missing private key")
	}
	return &s, nil
}

// SnapshotFromState builds the persisted form from the live ledgers.
func SnapshotFromState(w *Wallet, network string, assets []CryptoAsset, fiat []FiatBalance, history []Transaction, profile UserProfile) *Snapshot {
	s := &Snapshot{
		PrivateKey: w.PrivateKeyHex(),
		Network:    network,
		Balances:   make(map[string]decimal.Decimal, len(assets)),
		Fiat:       make(map[string]decimal.Decimal, len(fiat)),
		History:    make([]SnapshotTransaction, 0, len(history)),
		Usage:      &SnapshotUsage{Daily: profile.UsedDailyLimit, Monthly: profile.UsedMonthlyLimit},
	}
	for _, a := range assets {
		s.Balances[a.Symbol] = a.Balance
	}
	for _, f := range fiat {
		s.Fiat[f.Currency] = f.Balance
	}
	for _, tx := range history {
		s.History = append(s.History, SnapshotTransaction{
			ID:         tx.ID.String(),
			Type:       string(tx.Type),
			Amount:     tx.Amount,
			Token:      tx.Currency,
			ToCurrency: tx.ToCurrency,
			To:         tx.ToAddress,
			From:       tx.FromAddress,
			Timestamp:  tx.Timestamp.UnixMilli(),
			Status:     string(tx.Status),
			Fee:        tx.Fee,
			Hash:       tx.Hash,
			Network:    tx.Network,
		})
	}
	return s
}

// Transactions upconverts the persisted history into the in-memory model.
// Missing IDs get fresh ones, missing timestamps default to now, and records
// without a status are treated as completed, matching what older versions
// actually wrote.
func (s *Snapshot) Transactions() []Transaction {
	out := make([]Transaction, 0, len(s.History))
	for _, h := range s.History {
		tx := Transaction{
			Type:        TransactionType(h.Type),
			Amount:      h.Amount,
			Currency:    h.Token,
			ToCurrency:  h.ToCurrency,
			ToAddress:   h.To,
			FromAddress: h.From,
			Status:      TransactionStatus(h.Status),
			Fee:         h.Fee,
			Hash:        h.Hash,
			Network:     h.Network,
		}
		if id, err := uuid.Parse(h.ID); err == nil {
			tx.ID = id
		} else {
			tx.ID = uuid.New()
		}
		if h.Timestamp > 0 {
			tx.Timestamp = time.UnixMilli(h.Timestamp).UTC()
		} else {
			tx.Timestamp = time.Now().UTC()
		}
		if h.Status == "" {
			tx.Status = TxStatusCompleted
		}
		out = append(out, tx)
	}
	return out
}
