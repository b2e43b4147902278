package device

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

type deviceRepo interface {
	Create(ctx context.Context, d *domain.Device) (*domain.Device, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error)
	List(ctx context.Context, filter domain.DeviceFilter) ([]domain.Device, error)
	Update(ctx context.Context, id uuid.UUID, params domain.DeviceUpdateParams, now time.Time) (*domain.Device, error)
}

type profileRepo interface {
	Create(ctx context.Context, p *domain.ICloudProfile) (*domain.ICloudProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ICloudProfile, error)
	ListByDevice(ctx context.Context, deviceID uuid.UUID, statuses ...domain.AssetStatus) ([]domain.ICloudProfile, error)
	Update(ctx context.Context, id uuid.UUID, params domain.AssetUpdateParams, now time.Time) (*domain.ICloudProfile, error)
	Archive(ctx context.Context, id, batchID uuid.UUID, now time.Time) (*domain.ICloudProfile, error)
	ArchiveByDevice(ctx context.Context, deviceID, batchID uuid.UUID, now time.Time) (int64, error)
}

type socialRepo interface {
	Create(ctx context.Context, a *domain.SocialAccount) (*domain.SocialAccount, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SocialAccount, error)
	ListByDevice(ctx context.Context, deviceID uuid.UUID, statuses ...domain.AssetStatus) ([]domain.SocialAccount, error)
	Update(ctx context.Context, id uuid.UUID, params domain.AssetUpdateParams, now time.Time) (*domain.SocialAccount, error)
	Archive(ctx context.Context, id, batchID uuid.UUID, now time.Time) (*domain.SocialAccount, error)
	ArchiveByDevice(ctx context.Context, deviceID, batchID uuid.UUID, now time.Time) (int64, error)
}

type proxyRepo interface {
	Create(ctx context.Context, p *domain.Proxy) (*domain.Proxy, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Proxy, error)
	ListByDevice(ctx context.Context, deviceID uuid.UUID, statuses ...domain.AssetStatus) ([]domain.Proxy, error)
	Update(ctx context.Context, id uuid.UUID, params domain.AssetUpdateParams, now time.Time) (*domain.Proxy, error)
	Archive(ctx context.Context, id, batchID uuid.UUID, now time.Time) (*domain.Proxy, error)
	ArchiveByDevice(ctx context.Context, deviceID, batchID uuid.UUID, now time.Time) (int64, error)
}

type batchResolver interface {
	Resolve(ctx context.Context, deviceID uuid.UUID) (Resolution, error)
}

type sealer interface {
	Seal(plaintext string) ([]byte, error)
	Open(sealed []byte) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages devices and the credential assets live on them.
type Service struct {
	devices  deviceRepo
	profiles profileRepo
	accounts socialRepo
	proxies  proxyRepo
	batches  batchResolver
	sealer   sealer
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new device service.
func NewService(
	log *slog.Logger,
	devices deviceRepo,
	profiles profileRepo,
	accounts socialRepo,
	proxies proxyRepo,
	batches batchResolver,
	sealer sealer,
	tx txManager,
) *Service {
	return &Service{
		devices:  devices,
		profiles: profiles,
		accounts: accounts,
		proxies:  proxies,
		batches:  batches,
		sealer:   sealer,
		tx:       tx,
		log:      log.With("service", "device"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimPtr trims whitespace but keeps an empty result, which clears the field.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
