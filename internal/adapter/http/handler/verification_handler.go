package handler

import (
	"sandbox-wallet/internal/adapter/http/dto"
	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"
	"sandbox-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// VerificationHandler handles KYC, limit and recovery-phrase endpoints.
type VerificationHandler struct {
	engine ports.WalletEngine
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(engine ports.WalletEngine) *VerificationHandler {
	return &VerificationHandler{engine: engine}
}

// Submit handles POST /api/v1/verification.
func (h *VerificationHandler) Submit(c *gin.Context) {
	var req dto.SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.engine.SubmitVerification(c.Request.Context(), ports.SubmitVerificationRequest{
		Info: domain.PersonalInfo{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			DateOfBirth: req.DateOfBirth,
			Street:      req.Street,
			City:        req.City,
			State:       req.State,
			PostalCode:  req.PostalCode,
			Country:     req.Country,
		},
		Email:        req.Email,
		Phone:        req.Phone,
		DocumentType: domain.DocumentType(req.DocumentType),
		Document:     req.Document,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.VerificationResultResponse{
		Success: result.Success,
		Message: result.Message,
		Tier:    string(h.engine.State().Profile.Tier),
	})
}

// Limits handles GET /api/v1/verification/limits/:tier.
func (h *VerificationHandler) Limits(c *gin.Context) {
	tier := domain.VerificationTier(c.Param("tier"))
	limits, err := h.engine.VerificationLimits(c.Request.Context(), tier)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LimitsResponse{
		Tier:           string(tier),
		Daily:          limits.Daily,
		Monthly:        limits.Monthly,
		PerTransaction: limits.PerTransaction,
	})
}

// CheckLimit handles POST /api/v1/verification/check.
func (h *VerificationHandler) CheckLimit(c *gin.Context) {
	var req dto.LimitCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	check := h.engine.CheckTransactionAllowed(req.USDAmount)
	response.OK(c, dto.LimitCheckResponse{Allowed: check.Allowed, Reason: check.Reason})
}

// GeneratePhrase handles POST /api/v1/verification/phrase.
func (h *VerificationHandler) GeneratePhrase(c *gin.Context) {
	phrase, err := h.engine.GenerateRecoveryPhrase(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PhraseResponse{Phrase: phrase})
}

// ValidatePhrase handles POST /api/v1/verification/phrase/validate.
func (h *VerificationHandler) ValidatePhrase(c *gin.Context) {
	var req dto.PhraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	valid, err := h.engine.VerifyRecoveryPhrase(c.Request.Context(), req.Phrase)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PhraseValidationResponse{Valid: valid})
}

// VerifyWithPhrase handles POST /api/v1/verification/phrase/verify.
func (h *VerificationHandler) VerifyWithPhrase(c *gin.Context) {
	var req dto.PhraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	result, err := h.engine.VerifyWithRecoveryPhrase(c.Request.Context(), req.Phrase)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.VerificationResultResponse{
		Success: result.Success,
		Message: result.Message,
		Tier:    string(result.NewTier),
	})
}

// RefreshProfile handles POST /api/v1/verification/refresh.
func (h *VerificationHandler) RefreshProfile(c *gin.Context) {
	h.engine.RefreshUserProfile(c.Request.Context())
	response.OK(c, toStateResponse(h.engine.State()).Profile)
}
