package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/clinical-docs-server/internal/api"
	"github.com/clinical-docs-server/internal/config"
	"github.com/clinical-docs-server/internal/roster"
	"github.com/clinical-docs-server/internal/service"
	"github.com/clinical-docs-server/pkg/genai"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := config.NewLogger(&cfg.Logging)
	logger.Infof("Starting clinical docs server on %s:%d", cfg.Server.Host, cfg.Server.Port)

	if cfg.GenAI.APIKey == "" {
		logger.Warn("GENAI_API_KEY is not set; generation requests will fail until it is configured")
	}

	// In-memory roster, seeded with the demo caseload
	rosterStore := roster.NewStore()
	roster.Seed(rosterStore)
	documentStore := roster.NewDocumentStore()

	// Generation pipeline
	generator := genai.NewClient(*configManager.GetGenAIConfig())
	noteService := service.NewNoteService(logger, generator)
	assessmentService := service.NewAssessmentService(logger, generator)

	server := api.NewServer(configManager, logger, rosterStore, documentStore, noteService, assessmentService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}

	logger.Info("Server stopped")
}
