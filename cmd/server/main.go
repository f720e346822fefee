package main

import (
	"fmt"
	"log"
	"os"

	"github.com/soundscout/backend/config"
	httpDelivery "github.com/soundscout/backend/internal/delivery/http"
	"github.com/soundscout/backend/internal/infrastructure/corpus"
	"github.com/soundscout/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting SoundScout Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Corpus: %s (base model rule: %s)", cfg.Corpus.CSVPath, cfg.Corpus.BaseModelRule)

	// Initialize infrastructure dependencies
	loader := corpus.NewLoader(cfg.Corpus.CSVPath)

	// Initialize usecase layer
	catalog := usecase.NewCatalog(loader, usecase.CatalogConfig{
		BaseModelMode: cfg.Corpus.BaseModelRule,
	})

	recommender := usecase.NewRecommendationService(catalog, usecase.RecommenderConfig{
		DefaultTopN: cfg.Recommend.DefaultTopN,
		MaxTopN:     cfg.Recommend.MaxTopN,
		CacheSize:   cfg.Recommend.CacheSize,
	})

	log.Printf("Recommendations: default_top_n=%d, max_top_n=%d, cache_size=%d",
		cfg.Recommend.DefaultTopN, cfg.Recommend.MaxTopN, cfg.Recommend.CacheSize)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommender)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
