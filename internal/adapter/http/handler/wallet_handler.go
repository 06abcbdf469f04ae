package handler

import (
	"sandbox-wallet/internal/adapter/http/dto"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"
	"sandbox-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet lifecycle and ledger endpoints.
type WalletHandler struct {
	engine   ports.WalletEngine
	tokenSvc ports.SessionTokenService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(engine ports.WalletEngine, tokenSvc ports.SessionTokenService) *WalletHandler {
	return &WalletHandler{engine: engine, tokenSvc: tokenSvc}
}

// Create handles POST /api/v1/wallet.
func (h *WalletHandler) Create(c *gin.Context) {
	info, err := h.engine.CreateWallet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	h.issueSession(c, info.Address)
}

// Import handles POST /api/v1/wallet/import.
func (h *WalletHandler) Import(c *gin.Context) {
	var req dto.ImportWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	info, err := h.engine.ImportWallet(c.Request.Context(), req.PrivateKey)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.issueSession(c, info.Address)
}

// issueSession binds a fresh token to the new wallet and responds 201.
func (h *WalletHandler) issueSession(c *gin.Context, address string) {
	token, expiry, err := h.tokenSvc.Generate(address)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.Created(c, dto.WalletSessionResponse{
		Address: address,
		Token:   token,
		Expiry:  expiry.Unix(),
	})
}

// Reset handles DELETE /api/v1/wallet.
func (h *WalletHandler) Reset(c *gin.Context) {
	if err := h.engine.ResetWallet(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"reset": true})
}

// GetState handles GET /api/v1/wallet.
func (h *WalletHandler) GetState(c *gin.Context) {
	response.OK(c, toStateResponse(h.engine.State()))
}

// ListTransactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	state := h.engine.State()
	items := make([]dto.TransactionResponse, 0, len(state.History))
	for i := range state.History {
		items = append(items, *toTransactionResponse(&state.History[i]))
	}
	response.OK(c, items)
}

// Deposit handles POST /api/v1/wallet/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req dto.LedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	response.OK(c, toOperationResponse(h.engine.Deposit(c.Request.Context(), req.Amount, req.Currency)))
}

// Withdraw handles POST /api/v1/wallet/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.LedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	response.OK(c, toOperationResponse(h.engine.Withdraw(c.Request.Context(), req.Amount, req.Currency)))
}

// Transfer handles POST /api/v1/wallet/transfer.
func (h *WalletHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	response.OK(c, toOperationResponse(h.engine.Transfer(c.Request.Context(), req.To, req.Amount, req.Currency)))
}

// RefreshBalances handles POST /api/v1/wallet/balances/refresh.
func (h *WalletHandler) RefreshBalances(c *gin.Context) {
	if err := h.engine.FetchBalances(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toStateResponse(h.engine.State()))
}
