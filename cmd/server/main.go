package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"charaksamhita.org/qa-service/internal/api"
	"charaksamhita.org/qa-service/internal/config"
	"charaksamhita.org/qa-service/internal/core"
	"charaksamhita.org/qa-service/internal/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Setup logging
	logger, err := newLogger(config.AppConfig.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database store. Store or identity bootstrap failures are
	// fatal: there is no degraded mode, only a restart.
	dbStore, err := store.NewSQLiteStore(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer dbStore.Close()

	// Initialize LLM service
	llmService, err := core.NewLLMService(context.Background(), config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	// Initialize QA service
	qaService := core.NewQAService(dbStore, llmService, logger, config.AppConfig.LLMTimeout)

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(qaService, dbStore, logger)
	router := api.NewRouter(apiHandler, logger)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // history streams stay open indefinitely
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Info("Starting server", zap.String("addr", serverAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Could not listen", zap.String("addr", serverAddr), zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give active connections time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting gracefully")
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "DEBUG" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
