package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/portionwise/backend/internal/domain"
)

// PortionServiceConfig holds configuration for the portion service
type PortionServiceConfig struct {
	SnapshotTTL time.Duration
}

// PortionService evaluates portions and remembers each client's last-used
// input so a returning client can be seeded with it
type PortionService struct {
	snapshots   domain.SnapshotRepository
	snapshotTTL time.Duration
}

// NewPortionService creates a new portion service with dependencies
func NewPortionService(snapshots domain.SnapshotRepository, config PortionServiceConfig) *PortionService {
	snapshotTTL := config.SnapshotTTL
	if snapshotTTL == 0 {
		snapshotTTL = 720 * time.Hour // Default 30 days
	}

	return &PortionService{
		snapshots:   snapshots,
		snapshotTTL: snapshotTTL,
	}
}

// Evaluate computes the derived breakdown for a client's input and persists
// the normalized input as that client's last snapshot. The computation never
// fails; a snapshot store failure is logged and swallowed so a broken store
// never blocks a result.
func (s *PortionService) Evaluate(ctx context.Context, clientKey string, input domain.PortionInput) *domain.DerivedNutrition {
	derived := ComputeDerived(input)

	if key := snapshotKey(clientKey); key != "" {
		normalized := NormalizeInput(input)
		if err := s.snapshots.Set(ctx, key, &normalized, s.snapshotTTL); err != nil {
			log.Printf("[portion] snapshot write failed for %q: %v", key, err)
		}
	}

	return &derived
}

// LastInput returns the client's persisted last-used input. Any failure —
// no snapshot, a record that cannot be decoded, or an unreachable store —
// degrades to the documented default input rather than an error.
func (s *PortionService) LastInput(ctx context.Context, clientKey string) domain.PortionInput {
	key := snapshotKey(clientKey)
	if key == "" {
		return domain.DefaultPortionInput()
	}

	snapshot, err := s.snapshots.Get(ctx, key)
	if err != nil || snapshot == nil {
		return domain.DefaultPortionInput()
	}

	// A stored record may hold out-of-range values, so normalize on the way out
	return NormalizeInput(*snapshot)
}

// ForgetInput drops the client's persisted snapshot
func (s *PortionService) ForgetInput(ctx context.Context, clientKey string) error {
	key := snapshotKey(clientKey)
	if key == "" {
		return domain.ErrInvalidRequest
	}
	return s.snapshots.Delete(ctx, key)
}

// snapshotKey builds the store key for a client.
// Format: "portion:last:{client_key}"
func snapshotKey(clientKey string) string {
	clientKey = strings.TrimSpace(clientKey)
	if clientKey == "" {
		return ""
	}
	return fmt.Sprintf("portion:last:%s", strings.ToLower(clientKey))
}
