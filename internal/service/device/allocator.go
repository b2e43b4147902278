package device

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/metrics"
)

type activeBatchLookup interface {
	ActiveBatchID(ctx context.Context, deviceID uuid.UUID) (*uuid.UUID, error)
}

type liveBatchLookup interface {
	LiveBatchID(ctx context.Context, deviceID uuid.UUID) (*uuid.UUID, error)
}

// Resolution is the batch id a new asset on a device should carry and
// where it came from.
type Resolution struct {
	BatchID uuid.UUID `json:"batch_id"`
	Source  string    `json:"source"`
}

// Fresh reports whether the id was newly generated.
func (r Resolution) Fresh() bool { return r.Source == metrics.SourceFresh }

type lookup struct {
	source string
	find   func(ctx context.Context, deviceID uuid.UUID) (*uuid.UUID, error)
}

// BatchAllocator picks the correlation id for assets on a device. It reuses
// the batch of the active iCloud profile, then of the most recent active
// proxy, then of the most recent draft or active social account, and
// otherwise generates a fresh id.
//
// Resolution is a read followed by an independent insert; two assets
// created concurrently on a device without any batch may get distinct ids.
type BatchAllocator struct {
	lookups []lookup
	newID   func() uuid.UUID
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewBatchAllocator creates an allocator over the three credential stores.
func NewBatchAllocator(
	log *slog.Logger,
	profiles activeBatchLookup,
	proxies activeBatchLookup,
	accounts liveBatchLookup,
	m *metrics.Metrics,
) *BatchAllocator {
	return &BatchAllocator{
		lookups: []lookup{
			{source: metrics.SourceICloud, find: profiles.ActiveBatchID},
			{source: metrics.SourceProxy, find: proxies.ActiveBatchID},
			{source: metrics.SourceSocial, find: accounts.LiveBatchID},
		},
		newID:   uuid.New,
		metrics: m,
		log:     log.With("service", "batch_allocator"),
	}
}

// Resolve returns the batch id for a new asset on deviceID. A failed lookup
// is returned as an error; it never falls through to a fresh id.
func (a *BatchAllocator) Resolve(ctx context.Context, deviceID uuid.UUID) (Resolution, error) {
	for _, l := range a.lookups {
		id, err := l.find(ctx, deviceID)
		if err != nil {
			return Resolution{}, fmt.Errorf("resolve batch from %s: %w", l.source, err)
		}
		if id != nil {
			a.metrics.BatchResolved(l.source)
			return Resolution{BatchID: *id, Source: l.source}, nil
		}
	}

	id := a.newID()
	a.metrics.BatchResolved(metrics.SourceFresh)
	a.log.DebugContext(ctx, "fresh batch id",
		slog.String("device_id", deviceID.String()),
		slog.String("batch_id", id.String()),
	)
	return Resolution{BatchID: id, Source: metrics.SourceFresh}, nil
}
