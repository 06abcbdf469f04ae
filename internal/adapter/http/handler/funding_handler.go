package handler

import (
	"sandbox-wallet/internal/adapter/http/dto"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"
	"sandbox-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// FundingHandler handles payment and cash-out method endpoints.
type FundingHandler struct {
	engine ports.WalletEngine
}

// NewFundingHandler creates a new FundingHandler.
func NewFundingHandler(engine ports.WalletEngine) *FundingHandler {
	return &FundingHandler{engine: engine}
}

// ListPaymentMethods handles GET /api/v1/funding/payment-methods.
func (h *FundingHandler) ListPaymentMethods(c *gin.Context) {
	response.OK(c, h.engine.PaymentMethods())
}

// AddPaymentMethod handles POST /api/v1/funding/payment-methods.
func (h *FundingHandler) AddPaymentMethod(c *gin.Context) {
	var req dto.AddFundingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	method, err := h.engine.AddPaymentMethod(c.Request.Context(), req.Type, req.Provider, req.Details)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, method)
}

// ListCashOutMethods handles GET /api/v1/funding/cashout-methods.
func (h *FundingHandler) ListCashOutMethods(c *gin.Context) {
	response.OK(c, h.engine.CashOutMethods())
}

// AddCashOutMethod handles POST /api/v1/funding/cashout-methods.
func (h *FundingHandler) AddCashOutMethod(c *gin.Context) {
	var req dto.AddFundingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	method, err := h.engine.AddCashOutMethod(c.Request.Context(), req.Type, req.Provider, req.Details)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, method)
}
