package domain

import (
	"context"
	"time"
)

// SnapshotRepository defines the interface for persisting the last-used
// PortionInput per client. The core computation has no knowledge of how or
// where snapshots are stored; it only ever receives a well-formed or default
// PortionInput back.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) (*PortionInput, error)
	Set(ctx context.Context, key string, input *PortionInput, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
