package credential

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

const proxyTable = "proxies"

var proxyColumns = []string{
	"id", "device_id", "protocol", "host", "port", "username", "password_enc", "status",
	"batch_id", "archived_at", "created_at", "updated_at",
}

// ProxyRepo provides proxy persistence backed by PostgreSQL.
type ProxyRepo struct {
	db postgres.DB
}

// NewProxyRepo creates a new proxy repository.
func NewProxyRepo(db postgres.DB) *ProxyRepo {
	return &ProxyRepo{db: db}
}

// Create inserts a proxy. A second active proxy on one device maps to
// domain.ErrAlreadyExists.
func (r *ProxyRepo) Create(ctx context.Context, p *domain.Proxy) (*domain.Proxy, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder.
		Insert(proxyTable).
		Columns("id", "device_id", "protocol", "host", "port", "username", "password_enc", "status", "batch_id", "created_at", "updated_at").
		Values(p.ID, p.DeviceID, string(p.Protocol), p.Host, p.Port, p.Username, p.PasswordEnc, string(p.Status), p.BatchID, p.CreatedAt, p.UpdatedAt).
		Suffix(postgres.Returning(proxyColumns))

	var out domain.Proxy
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return nil, postgres.MapError(err, "proxy", p.ID)
	}
	return &out, nil
}

// GetByID returns a proxy or domain.ErrNotFound.
func (r *ProxyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proxy, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Proxy
	query := postgres.Builder.Select(proxyColumns...).From(proxyTable).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "proxy", id)
	}
	return &out, nil
}

// ListByDevice returns the device's proxies with the given statuses,
// newest first. No statuses means all.
func (r *ProxyRepo) ListByDevice(ctx context.Context, deviceID uuid.UUID, statuses ...domain.AssetStatus) ([]domain.Proxy, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.
		Select(proxyColumns...).
		From(proxyTable).
		Where(sq.Eq{"device_id": deviceID}).
		OrderBy("created_at DESC", "id DESC")
	if len(statuses) > 0 {
		query = query.Where(sq.Eq{"status": statusStrings(statuses)})
	}

	out := []domain.Proxy{}
	if err := postgres.Select(ctx, q, &out, query); err != nil {
		return nil, fmt.Errorf("list proxies for device %s: %w", deviceID, err)
	}
	return out, nil
}

// ActiveBatchID returns the batch id of the most recent active proxy on the
// device that carries one.
func (r *ProxyRepo) ActiveBatchID(ctx context.Context, deviceID uuid.UUID) (*uuid.UUID, error) {
	return latestBatchID(ctx, postgres.QuerierFromCtx(ctx, r.db), proxyTable, deviceID, domain.AssetStatusActive)
}

// Update applies a partial update of the connection settings.
func (r *ProxyRepo) Update(ctx context.Context, id uuid.UUID, params domain.AssetUpdateParams, now time.Time) (*domain.Proxy, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder.Update(proxyTable).Set("updated_at", now).Where(sq.Eq{"id": id})
	if params.Host != nil {
		update = update.Set("host", *params.Host)
	}
	if params.Port != nil {
		update = update.Set("port", *params.Port)
	}
	if params.Protocol != nil {
		update = update.Set("protocol", string(*params.Protocol))
	}
	if params.Username != nil {
		update = update.Set("username", nullIfEmpty(*params.Username))
	}
	if params.PasswordEnc != nil {
		update = update.Set("password_enc", params.PasswordEnc)
	}

	var out domain.Proxy
	if err := postgres.Get(ctx, q, &out, update.Suffix(postgres.Returning(proxyColumns))); err != nil {
		return nil, postgres.MapError(err, "proxy", id)
	}
	return &out, nil
}

// Archive marks a live proxy archived, stamping batchID if it has none.
func (r *ProxyRepo) Archive(ctx context.Context, id, batchID uuid.UUID, now time.Time) (*domain.Proxy, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := archiveUpdate(proxyTable, batchID, now).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(proxyColumns))

	var out domain.Proxy
	if err := postgres.Get(ctx, q, &out, update); err != nil {
		return nil, postgres.MapError(err, "proxy", id)
	}
	return &out, nil
}

// ArchiveByDevice archives all active proxies on the device.
func (r *ProxyRepo) ArchiveByDevice(ctx context.Context, deviceID, batchID uuid.UUID, now time.Time) (int64, error) {
	return archiveByDevice(ctx, postgres.QuerierFromCtx(ctx, r.db), proxyTable, deviceID, batchID, now)
}
