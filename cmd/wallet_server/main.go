package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/geepay-ngn/wallet/internal/api"
	"github.com/geepay-ngn/wallet/internal/config"
	"github.com/geepay-ngn/wallet/internal/data/store"
	"github.com/geepay-ngn/wallet/internal/logger"
	"github.com/geepay-ngn/wallet/internal/platform/directory"
	"github.com/geepay-ngn/wallet/internal/platform/persistence"
	"github.com/geepay-ngn/wallet/internal/platform/resolver"
	"github.com/geepay-ngn/wallet/internal/transfer"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("wallet_server")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize the persistence substrate
	var backend persistence.Store
	var mongoStore *persistence.MongoStore
	switch cfg.Storage.Backend {
	case config.StorageBackendMongo:
		mongoStore, err = persistence.NewMongoStore(appCtx, log, &cfg.MongoDB)
		if err != nil {
			log.Error("Failed to initialize MongoDB store", "error", err)
			os.Exit(1)
		}
		backend = mongoStore
	default:
		backend = persistence.NewFileStore(log, cfg.Storage.FilePath)
	}

	// Open the account store, seeding sample data on first run
	accounts, err := store.Open(appCtx, log, backend, cfg.Storage.Seed)
	if err != nil {
		log.Error("Failed to open account store", "error", err)
		os.Exit(1)
	}

	// Initialize the identity-resolution client and the transfer gateway
	resolverClient := resolver.NewClient(log, &cfg.Resolver)
	gateway := transfer.NewGateway(log, accounts, resolverClient, transfer.Policy{
		MinimumAmount:       cfg.Transfer.MinimumAmount,
		AccountNumberLength: cfg.Transfer.AccountNumberLength,
	})

	// Initialize the bank directory source
	bankSource := directory.NewProvider(log, &cfg.Resolver, &cfg.Directory, accounts)

	// Initialize REST server
	server := api.NewServer(log, cfg, accounts, gateway, bankSource)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	if mongoStore != nil {
		if err = mongoStore.Close(shutdownCtx); err != nil {
			log.Error("Error closing MongoDB connection", "error", err)
		}
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
