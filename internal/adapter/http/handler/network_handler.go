package handler

import (
	"net/http"

	"sandbox-wallet/internal/adapter/http/dto"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"
	"sandbox-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// NetworkHandler handles connectivity and market-data endpoints.
type NetworkHandler struct {
	engine ports.WalletEngine
}

// NewNetworkHandler creates a new NetworkHandler.
func NewNetworkHandler(engine ports.WalletEngine) *NetworkHandler {
	return &NetworkHandler{engine: engine}
}

// Connect handles POST /api/v1/network/connect.
func (h *NetworkHandler) Connect(c *gin.Context) {
	var req dto.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res := h.engine.ConnectToBlockchain(c.Request.Context(), req.CustomRPCURL, req.Network)
	response.OK(c, dto.ConnectResponse{
		Success:     res.Success,
		Message:     res.Message,
		Connected:   res.State.Connected,
		SandboxMode: res.State.SandboxMode,
		Network:     res.State.Network,
		ProviderURL: res.State.ProviderURL,
	})
}

// RefreshMarket handles POST /api/v1/market/refresh.
func (h *NetworkHandler) RefreshMarket(c *gin.Context) {
	h.engine.RefreshMarketData(c.Request.Context())
	response.OK(c, toStateResponse(h.engine.State()))
}

// HealthCheck handles GET /health, verifying the snapshot store backend.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
