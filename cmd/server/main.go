package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cleanfood/backend/config"
	httpDelivery "github.com/cleanfood/backend/internal/delivery/http"
	"github.com/cleanfood/backend/internal/domain"
	"github.com/cleanfood/backend/internal/infrastructure/cache"
	"github.com/cleanfood/backend/internal/infrastructure/classifier"
	"github.com/cleanfood/backend/internal/taxonomy"
	"github.com/cleanfood/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting CleanFood Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Build the avoid guide index eagerly so data problems surface at
	// startup instead of on the first request
	avoidIndex := taxonomy.Default()
	log.Printf("Avoid guide loaded: %d entries across %d sections", avoidIndex.Len(), len(avoidIndex.Sections()))
	for _, dup := range avoidIndex.DuplicateSynonyms() {
		log.Printf("WARNING: duplicate guide synonym %q kept for %q, dropped for %q", dup.Key, dup.KeptSlug, dup.DroppedSlug)
	}

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	var cleanliness domain.CleanlinessClassifier
	switch cfg.Classifier.Mode {
	case config.ClassifierRemote:
		client := classifier.NewClient(cfg.Classifier.BaseURL, cfg.RateLimit.Classifier)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
			log.Printf("Classifier client debug mode enabled")
		}
		log.Printf("Classifier: remote (%s)", cfg.Classifier.BaseURL)
		cleanliness = client
	default:
		log.Printf("Classifier: local (hit-derived)")
		cleanliness = classifier.NewLocal()
	}

	// Initialize usecase layer
	analysisService := usecase.NewAnalysisService(
		memoryCache,
		cleanliness,
		avoidIndex,
		usecase.AnalysisServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Analysis.EnableDebugLogging,
		},
	)

	log.Printf("Analysis: debug=%v", cfg.Analysis.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(analysisService, avoidIndex)

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
