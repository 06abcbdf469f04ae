package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sandbox-wallet/config"
	"sandbox-wallet/internal/adapter/chain"
	"sandbox-wallet/internal/adapter/gateway"
	httpHandler "sandbox-wallet/internal/adapter/http/handler"
	"sandbox-wallet/internal/adapter/oracle"
	pgStorage "sandbox-wallet/internal/adapter/storage/postgres"
	redisStorage "sandbox-wallet/internal/adapter/storage/redis"
	"sandbox-wallet/internal/adapter/verification"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/internal/service"
	"sandbox-wallet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting Sandbox Wallet")

	ctx := context.Background()

	// Snapshot store, selected by storage driver
	var (
		store          ports.SnapshotStore
		healthCheckers []ports.HealthChecker
		cleanup        func()
	)
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		cleanup = pool.Close
		store = pgStorage.NewSnapshotStore(pool, cfg.Storage.SnapshotKey)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL connected")
	default:
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		cleanup = func() { _ = rdb.Close() }
		store = redisStorage.NewSnapshotStore(rdb, cfg.Storage.SnapshotKey)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected")
	}
	defer cleanup()

	// Snapshot encryption: the persisted record carries the wallet private
	// key, so it is sealed at rest whenever a key is configured.
	if cfg.AES.Key != "" {
		encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid snapshot encryption key")
		}
		store = service.NewEncryptedSnapshotStore(store, encSvc, log)
		log.Info().Msg("Snapshot encryption enabled")
	} else {
		log.Warn().Msg("SWT_AES_KEY not set, snapshot private key is stored in plaintext")
	}

	// Simulated collaborators and the chain client
	marketOracle := oracle.New(cfg.Simulator.Latency)
	paymentGateway := gateway.New(cfg.Simulator.Latency)
	verifier := verification.New(cfg.Simulator.Latency)
	chainClient := chain.NewClient(cfg.Chain, log)

	// Wallet engine
	engine := service.NewWalletEngine(
		store,
		marketOracle,
		paymentGateway,
		verifier,
		chainClient,
		cfg.Chain.DefaultNetwork,
		log,
	)
	if err := engine.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("Could not restore wallet snapshot, starting empty")
	}
	engine.RefreshMarketData(ctx)

	// Session tokens
	tokenSvc := service.NewJWTSessionService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Engine:         engine,
		TokenSvc:       tokenSvc,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
