package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PORTIONWISE_SERVER_PORT")
		os.Unsetenv("PORTIONWISE_SERVER_ENVIRONMENT")
		os.Unsetenv("PORTIONWISE_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("PORTIONWISE_STORE_TYPE")
		os.Unsetenv("PORTIONWISE_STORE_REDIS_URL")
		os.Unsetenv("PORTIONWISE_STORE_SNAPSHOT_TTL")
		os.Unsetenv("PORTIONWISE_RATELIMIT_PER_CLIENT")
		os.Unsetenv("PORTIONWISE_RATELIMIT_BURST")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Store.Type != "memory" {
			t.Errorf("Store.Type = %s, want memory", cfg.Store.Type)
		}
		if cfg.Store.SnapshotTTL != 720*time.Hour {
			t.Errorf("Store.SnapshotTTL = %v, want 720h", cfg.Store.SnapshotTTL)
		}
		if cfg.RateLimit.PerClient != 20 {
			t.Errorf("RateLimit.PerClient = %v, want 20", cfg.RateLimit.PerClient)
		}
		if cfg.RateLimit.Burst != 40 {
			t.Errorf("RateLimit.Burst = %d, want 40", cfg.RateLimit.Burst)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PORTIONWISE_SERVER_PORT", "9090")
		os.Setenv("PORTIONWISE_SERVER_ENVIRONMENT", "production")
		os.Setenv("PORTIONWISE_STORE_SNAPSHOT_TTL", "24h")
		os.Setenv("PORTIONWISE_RATELIMIT_PER_CLIENT", "5")
		os.Setenv("PORTIONWISE_RATELIMIT_BURST", "10")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Store.SnapshotTTL != 24*time.Hour {
			t.Errorf("Store.SnapshotTTL = %v, want 24h", cfg.Store.SnapshotTTL)
		}
		if cfg.RateLimit.PerClient != 5 {
			t.Errorf("RateLimit.PerClient = %v, want 5", cfg.RateLimit.PerClient)
		}
		if cfg.RateLimit.Burst != 10 {
			t.Errorf("RateLimit.Burst = %d, want 10", cfg.RateLimit.Burst)
		}
	})

	t.Run("rejects invalid store type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PORTIONWISE_STORE_TYPE", "cassandra")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for invalid store type")
		}
	})

	t.Run("requires redis url for redis store", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PORTIONWISE_STORE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing redis url")
		}
	})

	t.Run("accepts redis store with url", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PORTIONWISE_STORE_TYPE", "redis")
		os.Setenv("PORTIONWISE_STORE_REDIS_URL", "redis://localhost:6379/0")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if cfg.Store.Type != "redis" {
			t.Errorf("Store.Type = %s, want redis", cfg.Store.Type)
		}
		if cfg.Store.RedisURL != "redis://localhost:6379/0" {
			t.Errorf("Store.RedisURL = %s, want redis://localhost:6379/0", cfg.Store.RedisURL)
		}
	})

	t.Run("rejects non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PORTIONWISE_RATELIMIT_PER_CLIENT", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for zero rate limit")
		}
	})

	t.Run("rejects non-positive burst", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PORTIONWISE_RATELIMIT_BURST", "-1")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for negative burst")
		}
	})
}
