// Package device implements the device repository using PostgreSQL.
package device

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

const table = "devices"

var columns = []string{"id", "model", "manager_id", "owner_label", "notes", "created_at", "updated_at"}

// Repo provides device persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new device repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a device and returns the stored row.
func (r *Repo) Create(ctx context.Context, d *domain.Device) (*domain.Device, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.Model, d.ManagerID, d.OwnerLabel, d.Notes, d.CreatedAt, d.UpdatedAt).
		Suffix(postgres.Returning(columns))

	var out domain.Device
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return nil, postgres.MapError(err, "device", d.ID)
	}
	return &out, nil
}

// GetByID returns a device or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Device
	query := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "device", id)
	}
	return &out, nil
}

// List returns devices ordered by creation time, newest first.
func (r *Repo) List(ctx context.Context, filter domain.DeviceFilter) ([]domain.Device, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(columns...).From(table).OrderBy("created_at DESC", "id DESC")
	if filter.ManagerID != nil {
		query = query.Where(sq.Eq{"manager_id": *filter.ManagerID})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(sq.Or{sq.ILike{"model": like}, sq.ILike{"owner_label": like}})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	out := []domain.Device{}
	if err := postgres.Select(ctx, q, &out, query); err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return out, nil
}

// Update applies a partial update. An empty string clears nullable text.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.DeviceUpdateParams, now time.Time) (*domain.Device, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder.Update(table).Set("updated_at", now).Where(sq.Eq{"id": id})
	if params.Model != nil {
		update = update.Set("model", *params.Model)
	}
	if params.ManagerID != nil {
		if *params.ManagerID == uuid.Nil {
			update = update.Set("manager_id", nil)
		} else {
			update = update.Set("manager_id", *params.ManagerID)
		}
	}
	if params.OwnerLabel != nil {
		update = update.Set("owner_label", nullIfEmpty(*params.OwnerLabel))
	}
	if params.Notes != nil {
		update = update.Set("notes", nullIfEmpty(*params.Notes))
	}

	var out domain.Device
	if err := postgres.Get(ctx, q, &out, update.Suffix(postgres.Returning(columns))); err != nil {
		return nil, postgres.MapError(err, "device", id)
	}
	return &out, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
