package handler

import (
	"sandbox-wallet/internal/adapter/http/dto"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"
	"sandbox-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// TradeHandler handles the exchange endpoints: buy, sell, swap, cash out.
type TradeHandler struct {
	engine ports.WalletEngine
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(engine ports.WalletEngine) *TradeHandler {
	return &TradeHandler{engine: engine}
}

// Buy handles POST /api/v1/trade/buy.
func (h *TradeHandler) Buy(c *gin.Context) {
	var req dto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	res := h.engine.BuyCryptoWithFiat(c.Request.Context(), req.Amount, req.FiatCurrency, req.CryptoCurrency, req.PaymentMethodID)
	response.OK(c, toOrderResponse(res))
}

// Sell handles POST /api/v1/trade/sell.
func (h *TradeHandler) Sell(c *gin.Context) {
	var req dto.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	res := h.engine.SellCryptoForFiat(c.Request.Context(), req.Amount, req.CryptoCurrency, req.FiatCurrency, req.CashOutMethodID)
	response.OK(c, toOrderResponse(res))
}

// Swap handles POST /api/v1/trade/swap.
func (h *TradeHandler) Swap(c *gin.Context) {
	var req dto.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	res := h.engine.SwapCryptoAssets(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency)
	response.OK(c, toOrderResponse(res))
}

// CashOut handles POST /api/v1/trade/cashout.
func (h *TradeHandler) CashOut(c *gin.Context) {
	var req dto.CashOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	res := h.engine.CashOutCrypto(c.Request.Context(), req.Amount, req.CryptoCurrency, req.FiatCurrency, req.CashOutMethodID)
	response.OK(c, toOrderResponse(res))
}
