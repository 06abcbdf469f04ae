package handler

import (
	"sandbox-wallet/internal/adapter/http/middleware"
	"sandbox-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Engine         ports.WalletEngine
	TokenSvc       ports.SessionTokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check verifies the snapshot store backend.
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	// Creating or importing a wallet is what issues the session token, so
	// these cannot themselves require one.
	walletHandler := NewWalletHandler(deps.Engine, deps.TokenSvc)
	v1.POST("/wallet", walletHandler.Create)
	v1.POST("/wallet/import", walletHandler.Import)

	verificationHandler := NewVerificationHandler(deps.Engine)
	v1.GET("/verification/limits/:tier", verificationHandler.Limits)

	// --- Session-authenticated routes ---
	auth := middleware.SessionAuth(deps.TokenSvc, deps.Engine, deps.Logger)

	wallet := v1.Group("/wallet", auth)
	{
		wallet.GET("", walletHandler.GetState)
		wallet.DELETE("", walletHandler.Reset)
		wallet.GET("/transactions", walletHandler.ListTransactions)
		wallet.POST("/deposit", walletHandler.Deposit)
		wallet.POST("/withdraw", walletHandler.Withdraw)
		wallet.POST("/transfer", walletHandler.Transfer)
		wallet.POST("/balances/refresh", walletHandler.RefreshBalances)
	}

	tradeHandler := NewTradeHandler(deps.Engine)
	trade := v1.Group("/trade", auth)
	{
		trade.POST("/buy", tradeHandler.Buy)
		trade.POST("/sell", tradeHandler.Sell)
		trade.POST("/swap", tradeHandler.Swap)
		trade.POST("/cashout", tradeHandler.CashOut)
	}

	networkHandler := NewNetworkHandler(deps.Engine)
	v1.POST("/network/connect", auth, networkHandler.Connect)
	v1.POST("/market/refresh", auth, networkHandler.RefreshMarket)

	verification := v1.Group("/verification", auth)
	{
		verification.POST("", verificationHandler.Submit)
		verification.POST("/check", verificationHandler.CheckLimit)
		verification.POST("/phrase", verificationHandler.GeneratePhrase)
		verification.POST("/phrase/validate", verificationHandler.ValidatePhrase)
		verification.POST("/phrase/verify", verificationHandler.VerifyWithPhrase)
		verification.POST("/refresh", verificationHandler.RefreshProfile)
	}

	fundingHandler := NewFundingHandler(deps.Engine)
	funding := v1.Group("/funding", auth)
	{
		funding.GET("/payment-methods", fundingHandler.ListPaymentMethods)
		funding.POST("/payment-methods", fundingHandler.AddPaymentMethod)
		funding.GET("/cashout-methods", fundingHandler.ListCashOutMethods)
		funding.POST("/cashout-methods", fundingHandler.AddCashOutMethod)
	}

	return r
}
