package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

// CreateICloudProfile adds an active iCloud profile to a device. The profile
// joins the device's current batch.
func (s *Service) CreateICloudProfile(ctx context.Context, input CreateICloudProfileInput) (*domain.ICloudProfile, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, err := s.batches.Resolve(ctx, input.DeviceID)
	if err != nil {
		return nil, err
	}
	sealed, err := s.sealer.Seal(input.Password)
	if err != nil {
		return nil, fmt.Errorf("seal password: %w", err)
	}

	now := s.now()
	p, err := s.profiles.Create(ctx, &domain.ICloudProfile{
		ID:          uuid.New(),
		DeviceID:    input.DeviceID,
		Email:       input.Email,
		PasswordEnc: sealed,
		Phone:       trimOrNil(input.Phone),
		Status:      domain.AssetStatusActive,
		BatchID:     &res.BatchID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("device already has an active icloud profile: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("create icloud profile: %w", err)
	}

	s.log.InfoContext(ctx, "icloud profile created",
		slog.String("device_id", p.DeviceID.String()),
		slog.String("profile_id", p.ID.String()),
		slog.String("batch_id", res.BatchID.String()),
		slog.String("batch_source", res.Source),
	)
	return p, nil
}

// UpdateICloudProfile applies a partial update to a profile.
func (s *Service) UpdateICloudProfile(ctx context.Context, input UpdateICloudProfileInput) (*domain.ICloudProfile, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.AssetUpdateParams{Email: input.Email, Phone: trimPtr(input.Phone)}
	if err := s.sealInto(&params, input.Password); err != nil {
		return nil, err
	}

	p, err := s.profiles.Update(ctx, input.ID, params, s.now())
	if err != nil {
		return nil, fmt.Errorf("update icloud profile: %w", err)
	}

	s.log.InfoContext(ctx, "icloud profile updated", slog.String("profile_id", p.ID.String()))
	return p, nil
}

// ArchiveICloudProfile archives a profile, stamping the device's batch id
// when the profile has none.
func (s *Service) ArchiveICloudProfile(ctx context.Context, id uuid.UUID) (*domain.ICloudProfile, error) {
	current, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get icloud profile: %w", err)
	}
	if current.Status == domain.AssetStatusArchived {
		return nil, fmt.Errorf("icloud profile %s already archived: %w", id, domain.ErrConflict)
	}

	batchID, err := s.batchFor(ctx, current.DeviceID, current.BatchID)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.Archive(ctx, id, batchID, s.now())
	if err != nil {
		return nil, fmt.Errorf("archive icloud profile: %w", err)
	}

	s.log.InfoContext(ctx, "icloud profile archived",
		slog.String("profile_id", p.ID.String()),
		slog.String("batch_id", batchID.String()),
	)
	return p, nil
}

// CreateSocialAccount adds a social account to a device, draft unless
// requested active. The account joins the device's current batch.
func (s *Service) CreateSocialAccount(ctx context.Context, input CreateSocialAccountInput) (*domain.SocialAccount, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.AssetStatusDraft
	}

	res, err := s.batches.Resolve(ctx, input.DeviceID)
	if err != nil {
		return nil, err
	}
	sealed, err := s.sealer.Seal(input.Password)
	if err != nil {
		return nil, fmt.Errorf("seal password: %w", err)
	}

	now := s.now()
	a, err := s.accounts.Create(ctx, &domain.SocialAccount{
		ID:          uuid.New(),
		DeviceID:    input.DeviceID,
		Platform:    input.Platform,
		Username:    input.Username,
		Email:       trimOrNil(input.Email),
		PasswordEnc: sealed,
		Status:      status,
		BatchID:     &res.BatchID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create social account: %w", err)
	}

	s.log.InfoContext(ctx, "social account created",
		slog.String("device_id", a.DeviceID.String()),
		slog.String("account_id", a.ID.String()),
		slog.String("platform", a.Platform.String()),
		slog.String("batch_id", res.BatchID.String()),
		slog.String("batch_source", res.Source),
	)
	return a, nil
}

// UpdateSocialAccount applies a partial update to a social account.
func (s *Service) UpdateSocialAccount(ctx context.Context, input UpdateSocialAccountInput) (*domain.SocialAccount, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.AssetUpdateParams{
		Username: trimPtr(input.Username),
		Email:    trimPtr(input.Email),
		Activate: input.Activate,
	}
	if err := s.sealInto(&params, input.Password); err != nil {
		return nil, err
	}

	a, err := s.accounts.Update(ctx, input.ID, params, s.now())
	if err != nil {
		return nil, fmt.Errorf("update social account: %w", err)
	}

	s.log.InfoContext(ctx, "social account updated",
		slog.String("account_id", a.ID.String()),
		slog.String("status", a.Status.String()),
	)
	return a, nil
}

// ArchiveSocialAccount archives an account, stamping the device's batch id
// when the account has none.
func (s *Service) ArchiveSocialAccount(ctx context.Context, id uuid.UUID) (*domain.SocialAccount, error) {
	current, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get social account: %w", err)
	}
	if current.Status == domain.AssetStatusArchived {
		return nil, fmt.Errorf("social account %s already archived: %w", id, domain.ErrConflict)
	}

	batchID, err := s.batchFor(ctx, current.DeviceID, current.BatchID)
	if err != nil {
		return nil, err
	}

	a, err := s.accounts.Archive(ctx, id, batchID, s.now())
	if err != nil {
		return nil, fmt.Errorf("archive social account: %w", err)
	}

	s.log.InfoContext(ctx, "social account archived",
		slog.String("account_id", a.ID.String()),
		slog.String("batch_id", batchID.String()),
	)
	return a, nil
}

// CreateProxy adds an active proxy to a device. The proxy joins the
// device's current batch.
func (s *Service) CreateProxy(ctx context.Context, input CreateProxyInput) (*domain.Proxy, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, err := s.batches.Resolve(ctx, input.DeviceID)
	if err != nil {
		return nil, err
	}
	sealed, err := s.sealer.Seal(input.Password)
	if err != nil {
		return nil, fmt.Errorf("seal password: %w", err)
	}

	now := s.now()
	p, err := s.proxies.Create(ctx, &domain.Proxy{
		ID:          uuid.New(),
		DeviceID:    input.DeviceID,
		Protocol:    input.Protocol,
		Host:        input.Host,
		Port:        input.Port,
		Username:    trimOrNil(input.Username),
		PasswordEnc: sealed,
		Status:      domain.AssetStatusActive,
		BatchID:     &res.BatchID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("device already has an active proxy: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("create proxy: %w", err)
	}

	s.log.InfoContext(ctx, "proxy created",
		slog.String("device_id", p.DeviceID.String()),
		slog.String("proxy_id", p.ID.String()),
		slog.String("batch_id", res.BatchID.String()),
		slog.String("batch_source", res.Source),
	)
	return p, nil
}

// UpdateProxy applies a partial update to a proxy.
func (s *Service) UpdateProxy(ctx context.Context, input UpdateProxyInput) (*domain.Proxy, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.AssetUpdateParams{
		Protocol: input.Protocol,
		Host:     trimPtr(input.Host),
		Port:     input.Port,
		Username: trimPtr(input.Username),
	}
	if err := s.sealInto(&params, input.Password); err != nil {
		return nil, err
	}

	p, err := s.proxies.Update(ctx, input.ID, params, s.now())
	if err != nil {
		return nil, fmt.Errorf("update proxy: %w", err)
	}

	s.log.InfoContext(ctx, "proxy updated", slog.String("proxy_id", p.ID.String()))
	return p, nil
}

// ArchiveProxy archives a proxy, stamping the device's batch id when the
// proxy has none.
func (s *Service) ArchiveProxy(ctx context.Context, id uuid.UUID) (*domain.Proxy, error) {
	current, err := s.proxies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proxy: %w", err)
	}
	if current.Status == domain.AssetStatusArchived {
		return nil, fmt.Errorf("proxy %s already archived: %w", id, domain.ErrConflict)
	}

	batchID, err := s.batchFor(ctx, current.DeviceID, current.BatchID)
	if err != nil {
		return nil, err
	}

	p, err := s.proxies.Archive(ctx, id, batchID, s.now())
	if err != nil {
		return nil, fmt.Errorf("archive proxy: %w", err)
	}

	s.log.InfoContext(ctx, "proxy archived",
		slog.String("proxy_id", p.ID.String()),
		slog.String("batch_id", batchID.String()),
	)
	return p, nil
}

// batchFor keeps an asset's existing batch id and resolves one otherwise.
func (s *Service) batchFor(ctx context.Context, deviceID uuid.UUID, current *uuid.UUID) (uuid.UUID, error) {
	if current != nil {
		return *current, nil
	}
	res, err := s.batches.Resolve(ctx, deviceID)
	if err != nil {
		return uuid.Nil, err
	}
	return res.BatchID, nil
}

// sealInto seals a new password into params. Nil or empty leaves the stored
// password unchanged.
func (s *Service) sealInto(params *domain.AssetUpdateParams, password *string) error {
	if password == nil || *password == "" {
		return nil
	}
	sealed, err := s.sealer.Seal(*password)
	if err != nil {
		return fmt.Errorf("seal password: %w", err)
	}
	params.PasswordEnc = sealed
	return nil
}
