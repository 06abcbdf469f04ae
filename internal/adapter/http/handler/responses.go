package handler

import (
	"sandbox-wallet/internal/adapter/http/dto"
	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
)

func toTransactionResponse(tx *domain.Transaction) *dto.TransactionResponse {
	if tx == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		ToCurrency:  tx.ToCurrency,
		ToAddress:   tx.ToAddress,
		FromAddress: tx.FromAddress,
		Status:      string(tx.Status),
		Fee:         tx.Fee,
		Hash:        tx.Hash,
		Network:     tx.Network,
		Timestamp:   tx.Timestamp.UnixMilli(),
	}
}

func toOperationResponse(res ports.TxResult) dto.OperationResponse {
	return dto.OperationResponse{
		Success:     res.Success,
		Reason:      res.Reason,
		Transaction: toTransactionResponse(res.Transaction),
	}
}

func toOrderResponse(res ports.OrderOutcome) dto.OperationResponse {
	return dto.OperationResponse{
		Success:     res.Success,
		Reason:      res.Reason,
		OrderID:     res.OrderID,
		Transaction: toTransactionResponse(res.Transaction),
	}
}

func toStateResponse(state *ports.WalletState) dto.WalletStateResponse {
	resp := dto.WalletStateResponse{
		Address:     state.Address,
		Connected:   state.Connectivity.Connected,
		SandboxMode: state.Connectivity.SandboxMode,
		Network:     state.Connectivity.Network,
		Assets:      make([]dto.AssetResponse, 0, len(state.Assets)),
		Fiat:        make([]dto.FiatResponse, 0, len(state.Fiat)),
		History:     make([]dto.TransactionResponse, 0, len(state.History)),
		Profile: dto.ProfileResponse{
			Tier:             string(state.Profile.Tier),
			UsedDailyLimit:   state.Profile.UsedDailyLimit,
			UsedMonthlyLimit: state.Profile.UsedMonthlyLimit,
			Email:            state.Profile.Email,
			RecoveryVerified: state.Profile.RecoveryPhraseVerified,
		},
	}
	for _, a := range state.Assets {
		ar := dto.AssetResponse{
			Symbol:  a.Symbol,
			Name:    a.Name,
			Balance: a.Balance,
			Network: a.Network,
		}
		if a.Market != nil {
			price := a.Market.Price
			change := a.Market.Change24h
			ar.Price = &price
			ar.Change24h = &change
		}
		resp.Assets = append(resp.Assets, ar)
	}
	for _, f := range state.Fiat {
		resp.Fiat = append(resp.Fiat, dto.FiatResponse{
			Currency: f.Currency,
			Balance:  f.Balance,
			Symbol:   f.Symbol,
		})
	}
	for i := range state.History {
		resp.History = append(resp.History, *toTransactionResponse(&state.History[i]))
	}
	return resp
}
