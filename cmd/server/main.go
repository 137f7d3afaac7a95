package main

import (
	"fmt"
	"log"
	"os"

	"github.com/renvare/backend/config"
	httpDelivery "github.com/renvare/backend/internal/delivery/http"
	"github.com/renvare/backend/internal/infrastructure/cache"
	"github.com/renvare/backend/internal/infrastructure/kassal"
	"github.com/renvare/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Renvare Backend v%s", httpDelivery.Version)
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s (TTL: %s)", cfg.Cache.Type, cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Close()

	kassalClient := kassal.NewClient(cfg.Kassal.APIToken, cfg.Kassal.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		kassalClient.SetDebug(true)
		log.Printf("Kassalapp client debug mode enabled")
	}

	if cfg.Kassal.APIToken != "" {
		log.Printf("Kassalapp API configured: %s", cfg.Kassal.BaseURL)
	} else {
		log.Printf("WARNING: Kassalapp API token not configured - product search will fail!")
	}

	// Initialize usecase layer
	classifier := usecase.NewClassifierService(usecase.ClassifierConfig{
		MaxBatchSize:       cfg.Classify.MaxBatchSize,
		EnableDebugLogging: cfg.Classify.Debug,
	})
	matcher := usecase.NewMatcherService(cfg.Classify.Debug)
	shopping := usecase.NewShoppingService(
		memoryCache,
		kassalClient,
		classifier,
		matcher,
		usecase.ShoppingServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Classify.Debug,
		},
	)

	log.Printf("Classifier: max_batch=%d, max_ingredients_len=%d, debug=%v",
		cfg.Classify.MaxBatchSize, cfg.Classify.MaxIngredientsLen, cfg.Classify.Debug)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(classifier, shopping, cfg.Classify.MaxIngredientsLen)

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
