package main

import (
	"fmt"
	"log"
	"os"

	"github.com/portionwise/backend/config"
	httpDelivery "github.com/portionwise/backend/internal/delivery/http"
	"github.com/portionwise/backend/internal/domain"
	"github.com/portionwise/backend/internal/infrastructure/store"
	"github.com/portionwise/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PortionWise Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store Type: %s", cfg.Store.Type)
	log.Printf("Snapshot TTL: %s", cfg.Store.SnapshotTTL)

	// Initialize the snapshot store
	var snapshots domain.SnapshotRepository
	switch cfg.Store.Type {
	case "redis":
		redisStore, err := store.NewRedisStore(cfg.Store.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis snapshot store: %v", err)
		}
		defer redisStore.Close()
		snapshots = redisStore
		log.Printf("Redis snapshot store connected")
	default:
		snapshots = store.NewMemoryStore()
	}

	// Initialize usecase layer
	portionService := usecase.NewPortionService(snapshots, usecase.PortionServiceConfig{
		SnapshotTTL: cfg.Store.SnapshotTTL,
	})

	log.Printf("Rate limit: %.1f req/s per client, burst %d",
		cfg.RateLimit.PerClient, cfg.RateLimit.Burst)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(portionService)

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
