package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arbitrage-dashboard-go/internal/config"
	"arbitrage-dashboard-go/internal/logger"
	"arbitrage-dashboard-go/internal/orders"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	client, err := orders.NewClient(&cfg.Feed, log.Named("orders"))
	if err != nil {
		log.Fatal("Failed to create orders client", zap.Error(err))
	}
	log.Info("Orders source", zap.String("url", client.URL()), zap.String("file", cfg.Orders.File))

	apiHandler := NewAPIHandler(log, client, cfg.Page.Title, cfg.Orders.File)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           newMux(apiHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting web server", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Web server failed", zap.Error(err))
		}
	}()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	<-sigchan
	log.Info("Shutdown signal received, gracefully shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Web server shutdown failed", zap.Error(err))
	}
}
