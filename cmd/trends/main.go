package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/trends/trends_api/internal/api"
	"github.com/trends/trends_api/internal/config"
	"github.com/trends/trends_api/internal/database"
	"github.com/trends/trends_api/internal/logging"
	"github.com/trends/trends_api/internal/store"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	store, pool, err := store.NewPGStore(cfg)
	if err != nil {
		logger.Fatalf("failed to create store: %v", err)
	}

	if err := database.RunMigrations(pool, cfg.DB, logger); err != nil {
		store.Close()
		logger.Fatalf("failed to run migrations: %v", err)
	}

	server := api.NewServer(cfg, store, logger)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			store.Close()
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	signCh := make(chan os.Signal, 1)
	signal.Notify(signCh, os.Interrupt, syscall.SIGTERM)
	<-signCh

	logger.Info("shutting down gracefully...")
	if err := server.Shutdown(); err != nil {
		logger.Errorf("error during shutdown: %v", err)
	}
	store.Close()
}
