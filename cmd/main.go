package main

import (
	"fmt"
	"os"

	"github.com/sdejt/planaula-backend/internal/clients/gcs"
	"github.com/sdejt/planaula-backend/internal/clients/gemini"
	"github.com/sdejt/planaula-backend/internal/clients/rediscache"
	"github.com/sdejt/planaula-backend/internal/db"
	"github.com/sdejt/planaula-backend/internal/handlers"
	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/middleware"
	"github.com/sdejt/planaula-backend/internal/repos"
	"github.com/sdejt/planaula-backend/internal/server"
	"github.com/sdejt/planaula-backend/internal/services"
	"github.com/sdejt/planaula-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Data store
	dataStore, err := db.NewDataStoreService(log)
	if err != nil {
		log.Fatal("Data store init failed", "error", err)
	}
	if err := dataStore.AutoMigrateAll(); err != nil {
		log.Fatal("Data store migration failed", "error", err)
	}
	theDB := dataStore.DB()

	// Repos
	log.Info("Setting up repos...")
	planRepo := repos.NewPlanRepo(theDB, log)
	snippetRepo := repos.NewSnippetRepo(theDB, log)

	// Clients
	log.Info("Wiring clients...")
	cache, err := rediscache.NewGenerationCache(log)
	if err != nil {
		log.Fatal("Generation cache init failed", "error", err)
	}
	bucket, err := gcs.NewBucketService(log)
	if err != nil {
		log.Fatal("Bucket client init failed", "error", err)
	}
	llm, err := gemini.NewClient(log)
	if err != nil {
		log.Fatal("Gemini client init failed", "error", err)
	}
	defer func() {
		if err := llm.Close(); err != nil {
			log.Warn("Failed to close gemini client", "error", err)
		}
	}()

	// Services
	log.Info("Setting up services...")
	curriculum := services.NewCurriculumService(log, snippetRepo)
	generator := services.NewGeneratorService(log, cache, llm)
	renderer := services.NewPDFRenderer(log)
	archive := services.NewArchiveService(log, planRepo, bucket)
	pipeline := services.NewPipelineService(log, curriculum, generator, renderer, archive)

	// HTTP
	planHandler := handlers.NewPlanHandler(log, pipeline, archive)
	requestLogger := middleware.NewRequestLogger(log)
	router := server.NewRouter(server.RouterConfig{
		PlanHandler:   planHandler,
		RequestLogger: requestLogger,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}
