package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pricepulse/backend/config"
	httpDelivery "github.com/pricepulse/backend/internal/delivery/http"
	"github.com/pricepulse/backend/internal/domain"
	"github.com/pricepulse/backend/internal/infrastructure/cache"
	"github.com/pricepulse/backend/internal/infrastructure/llm"
	"github.com/pricepulse/backend/internal/infrastructure/loader"
	"github.com/pricepulse/backend/internal/infrastructure/mongodb"
	"github.com/pricepulse/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Server.Environment == "development" {
		log.SetLevel(log.DebugLevel)
	}

	log.Infof("Starting PricePulse Backend v1.0.0")
	log.Infof("Environment: %s", cfg.Server.Environment)
	log.Infof("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	llmClient := llm.NewClient(llm.Config{
		APIKey:            cfg.LLM.APIKey,
		BaseURL:           cfg.LLM.BaseURL,
		Model:             cfg.LLM.Model,
		Timeout:           cfg.LLM.Timeout,
		RequestsPerSecond: cfg.LLM.RequestsPerSecond,
		Burst:             cfg.LLM.Burst,
	})
	if llmClient.Available() {
		log.Infof("LLM tier enabled: %s", cfg.LLM.Model)
	} else {
		log.Warn("LLM tier disabled, extraction and classification run pattern-only")
	}

	var repo domain.ProductRepository
	var mongoRepo *mongodb.Repository
	if cfg.Mongo.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoRepo, err = mongodb.NewRepository(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoRepo.Close(context.Background())
		repo = mongoRepo
	} else {
		log.Warn("Persistence disabled, batch results will not be stored")
	}

	batchLoader := loader.NewFileLoader(cfg.Batch.DataDirectory)

	// Initialize usecase layer
	router := usecase.NewComplexityRouter(usecase.ComplexityConfig{
		WordCountThreshold: cfg.Complexity.WordCountThreshold,
		LengthThreshold:    cfg.Complexity.LengthThreshold,
		SpecialChars:       cfg.Complexity.SpecialChars,
		Keywords:           cfg.Complexity.Keywords,
	})
	patterns := usecase.NewPatternExtractor()
	classifier := usecase.NewRuleBasedClassifier(usecase.DefaultKeywordIndex())

	extraction := usecase.NewExtractionService(router, patterns, llmClient)
	classification := usecase.NewClassificationService(classifier, llmClient, cfg.Classification.ConfidenceThreshold)

	batch := usecase.NewBatchService(extraction, classification, usecase.BatchConfig{
		Workers:  cfg.Batch.Workers,
		Currency: cfg.Batch.Currency,
	})

	var comparison *usecase.ComparisonService
	if repo != nil {
		comparison = usecase.NewComparisonService(repo, cache.NewMemoryCache())
	}

	log.Infof("Pipeline: workers=%d, confidence threshold=%.2f, currency=%s",
		cfg.Batch.Workers, cfg.Classification.ConfidenceThreshold, cfg.Batch.Currency)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(batchLoader, batch, repo, comparison)

	// Setup router
	engine := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("Server listening on %s", addr)

	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
