package main

import (
	"context"
	"fmt"
	"os"

	accounts "auction-broker/internal/accountService"
	"auction-broker/internal/config"
	"auction-broker/internal/gateway"
	lifecycle "auction-broker/internal/lifecycleService"
	"auction-broker/internal/repository"
	"auction-broker/internal/server"
	"auction-broker/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	repo, cleanup, err := openRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open repository: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	gw := gateway.NewStripeGateway(cfg.StripeAPIKey)
	lifecycleSvc := lifecycle.NewServiceWithFee(repo, gw, cfg.Currency, cfg.ServiceFee)
	accountSvc := accounts.NewService(repo, repo)

	router := server.SetupRouter(lifecycleSvc, accountSvc, repo)

	addr := fmt.Sprintf(":%s", cfg.Port)
	utils.Info("starting auction broker server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openRepository selects the SQLite store when a path is configured and the
// in-memory store otherwise
func openRepository(cfg *config.Config) (repository.BrokerDB, func(), error) {
	if cfg.DatabasePath == "" {
		utils.Warn("no DATABASE_PATH configured, using in-memory repository", nil)
		return repository.NewMemoryRepo(), func() {}, nil
	}

	repo, err := repository.NewSQLiteRepo(context.Background(), cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	return repo, repo.Close, nil
}
