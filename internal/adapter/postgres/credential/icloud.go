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

const icloudTable = "icloud_profiles"

var icloudColumns = []string{
	"id", "device_id", "email", "password_enc", "phone", "status",
	"batch_id", "archived_at", "created_at", "updated_at",
}

// ICloudRepo provides iCloud profile persistence backed by PostgreSQL.
type ICloudRepo struct {
	db postgres.DB
}

// NewICloudRepo creates a new iCloud profile repository.
func NewICloudRepo(db postgres.DB) *ICloudRepo {
	return &ICloudRepo{db: db}
}

// Create inserts a profile. A second active profile on one device violates
// a partial unique index and maps to domain.ErrAlreadyExists.
func (r *ICloudRepo) Create(ctx context.Context, p *domain.ICloudProfile) (*domain.ICloudProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder.
		Insert(icloudTable).
		Columns("id", "device_id", "email", "password_enc", "phone", "status", "batch_id", "created_at", "updated_at").
		Values(p.ID, p.DeviceID, p.Email, p.PasswordEnc, p.Phone, string(p.Status), p.BatchID, p.CreatedAt, p.UpdatedAt).
		Suffix(postgres.Returning(icloudColumns))

	var out domain.ICloudProfile
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return nil, postgres.MapError(err, "icloud_profile", p.ID)
	}
	return &out, nil
}

// GetByID returns a profile or domain.ErrNotFound.
func (r *ICloudRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ICloudProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.ICloudProfile
	query := postgres.Builder.Select(icloudColumns...).From(icloudTable).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "icloud_profile", id)
	}
	return &out, nil
}

// ListByDevice returns the device's profiles with the given statuses,
// newest first. No statuses means all.
func (r *ICloudRepo) ListByDevice(ctx context.Context, deviceID uuid.UUID, statuses ...domain.AssetStatus) ([]domain.ICloudProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.
		Select(icloudColumns...).
		From(icloudTable).
		Where(sq.Eq{"device_id": deviceID}).
		OrderBy("created_at DESC", "id DESC")
	if len(statuses) > 0 {
		query = query.Where(sq.Eq{"status": statusStrings(statuses)})
	}

	out := []domain.ICloudProfile{}
	if err := postgres.Select(ctx, q, &out, query); err != nil {
		return nil, fmt.Errorf("list icloud profiles for device %s: %w", deviceID, err)
	}
	return out, nil
}

// ActiveBatchID returns the batch id of the device's active profile, or nil
// when there is no active profile carrying one.
func (r *ICloudRepo) ActiveBatchID(ctx context.Context, deviceID uuid.UUID) (*uuid.UUID, error) {
	return latestBatchID(ctx, postgres.QuerierFromCtx(ctx, r.db), icloudTable, deviceID, domain.AssetStatusActive)
}

// Update applies a partial update. Only email, phone and password are editable.
func (r *ICloudRepo) Update(ctx context.Context, id uuid.UUID, params domain.AssetUpdateParams, now time.Time) (*domain.ICloudProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder.Update(icloudTable).Set("updated_at", now).Where(sq.Eq{"id": id})
	if params.Email != nil {
		update = update.Set("email", *params.Email)
	}
	if params.Phone != nil {
		update = update.Set("phone", nullIfEmpty(*params.Phone))
	}
	if params.PasswordEnc != nil {
		update = update.Set("password_enc", params.PasswordEnc)
	}

	var out domain.ICloudProfile
	if err := postgres.Get(ctx, q, &out, update.Suffix(postgres.Returning(icloudColumns))); err != nil {
		return nil, postgres.MapError(err, "icloud_profile", id)
	}
	return &out, nil
}

// Archive marks a live profile archived, stamping batchID if it has none.
// Archiving an already archived profile reports domain.ErrNotFound.
func (r *ICloudRepo) Archive(ctx context.Context, id, batchID uuid.UUID, now time.Time) (*domain.ICloudProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := archiveUpdate(icloudTable, batchID, now).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(icloudColumns))

	var out domain.ICloudProfile
	if err := postgres.Get(ctx, q, &out, update); err != nil {
		return nil, postgres.MapError(err, "icloud_profile", id)
	}
	return &out, nil
}

// ArchiveByDevice archives all live profiles on the device.
func (r *ICloudRepo) ArchiveByDevice(ctx context.Context, deviceID, batchID uuid.UUID, now time.Time) (int64, error) {
	return archiveByDevice(ctx, postgres.QuerierFromCtx(ctx, r.db), icloudTable, deviceID, batchID, now)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
