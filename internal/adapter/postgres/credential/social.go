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

const socialTable = "social_accounts"

var socialColumns = []string{
	"id", "device_id", "platform", "username", "email", "password_enc", "status",
	"batch_id", "archived_at", "created_at", "updated_at",
}

// SocialRepo provides social account persistence backed by PostgreSQL.
type SocialRepo struct {
	db postgres.DB
}

// NewSocialRepo creates a new social account repository.
func NewSocialRepo(db postgres.DB) *SocialRepo {
	return &SocialRepo{db: db}
}

// Create inserts an account.
func (r *SocialRepo) Create(ctx context.Context, a *domain.SocialAccount) (*domain.SocialAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder.
		Insert(socialTable).
		Columns("id", "device_id", "platform", "username", "email", "password_enc", "status", "batch_id", "created_at", "updated_at").
		Values(a.ID, a.DeviceID, string(a.Platform), a.Username, a.Email, a.PasswordEnc, string(a.Status), a.BatchID, a.CreatedAt, a.UpdatedAt).
		Suffix(postgres.Returning(socialColumns))

	var out domain.SocialAccount
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return nil, postgres.MapError(err, "social_account", a.ID)
	}
	return &out, nil
}

// GetByID returns an account or domain.ErrNotFound.
func (r *SocialRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SocialAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.SocialAccount
	query := postgres.Builder.Select(socialColumns...).From(socialTable).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "social_account", id)
	}
	return &out, nil
}

// ListByDevice returns the device's accounts with the given statuses,
// newest first. No statuses means all.
func (r *SocialRepo) ListByDevice(ctx context.Context, deviceID uuid.UUID, statuses ...domain.AssetStatus) ([]domain.SocialAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.
		Select(socialColumns...).
		From(socialTable).
		Where(sq.Eq{"device_id": deviceID}).
		OrderBy("created_at DESC", "id DESC")
	if len(statuses) > 0 {
		query = query.Where(sq.Eq{"status": statusStrings(statuses)})
	}

	out := []domain.SocialAccount{}
	if err := postgres.Select(ctx, q, &out, query); err != nil {
		return nil, fmt.Errorf("list social accounts for device %s: %w", deviceID, err)
	}
	return out, nil
}

// LiveBatchID returns the batch id of the most recent draft or active
// account on the device that carries one.
func (r *SocialRepo) LiveBatchID(ctx context.Context, deviceID uuid.UUID) (*uuid.UUID, error) {
	return latestBatchID(ctx, postgres.QuerierFromCtx(ctx, r.db), socialTable, deviceID,
		domain.AssetStatusActive, domain.AssetStatusDraft)
}

// Update applies a partial update. Activate moves a draft account to active.
func (r *SocialRepo) Update(ctx context.Context, id uuid.UUID, params domain.AssetUpdateParams, now time.Time) (*domain.SocialAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder.Update(socialTable).Set("updated_at", now).Where(sq.Eq{"id": id})
	if params.Username != nil {
		update = update.Set("username", *params.Username)
	}
	if params.Email != nil {
		update = update.Set("email", nullIfEmpty(*params.Email))
	}
	if params.PasswordEnc != nil {
		update = update.Set("password_enc", params.PasswordEnc)
	}
	if params.Activate {
		update = update.Set("status", sq.Expr("CASE WHEN status = ? THEN ? ELSE status END",
			string(domain.AssetStatusDraft), string(domain.AssetStatusActive)))
	}

	var out domain.SocialAccount
	if err := postgres.Get(ctx, q, &out, update.Suffix(postgres.Returning(socialColumns))); err != nil {
		return nil, postgres.MapError(err, "social_account", id)
	}
	return &out, nil
}

// Archive marks a live account archived, stamping batchID if it has none.
func (r *SocialRepo) Archive(ctx context.Context, id, batchID uuid.UUID, now time.Time) (*domain.SocialAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := archiveUpdate(socialTable, batchID, now).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(socialColumns))

	var out domain.SocialAccount
	if err := postgres.Get(ctx, q, &out, update); err != nil {
		return nil, postgres.MapError(err, "social_account", id)
	}
	return &out, nil
}

// ArchiveByDevice archives all draft and active accounts on the device.
func (r *SocialRepo) ArchiveByDevice(ctx context.Context, deviceID, batchID uuid.UUID, now time.Time) (int64, error) {
	return archiveByDevice(ctx, postgres.QuerierFromCtx(ctx, r.db), socialTable, deviceID, batchID, now)
}
