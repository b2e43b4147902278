package device

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

// CreateDevice registers a new device.
func (s *Service) CreateDevice(ctx context.Context, input CreateDeviceInput) (*domain.Device, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	d, err := s.devices.Create(ctx, &domain.Device{
		ID:         uuid.New(),
		Model:      strings.TrimSpace(input.Model),
		ManagerID:  input.ManagerID,
		OwnerLabel: trimOrNil(input.OwnerLabel),
		Notes:      trimOrNil(input.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create device: %w", err)
	}

	s.log.InfoContext(ctx, "device created",
		slog.String("device_id", d.ID.String()),
		slog.String("model", d.Model),
	)
	return d, nil
}

// ListDevices returns devices matching the filter, newest first.
func (s *Service) ListDevices(ctx context.Context, input ListDevicesInput) ([]domain.Device, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	devices, err := s.devices.List(ctx, domain.DeviceFilter{
		ManagerID: input.ManagerID,
		Search:    strings.TrimSpace(input.Search),
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return devices, nil
}

// UpdateDevice applies a partial update to a device.
func (s *Service) UpdateDevice(ctx context.Context, input UpdateDeviceInput) (*domain.Device, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	d, err := s.devices.Update(ctx, input.DeviceID, domain.DeviceUpdateParams{
		Model:      trimPtr(input.Model),
		ManagerID:  input.ManagerID,
		OwnerLabel: trimPtr(input.OwnerLabel),
		Notes:      trimPtr(input.Notes),
	}, s.now())
	if err != nil {
		return nil, fmt.Errorf("update device: %w", err)
	}

	s.log.InfoContext(ctx, "device updated", slog.String("device_id", d.ID.String()))
	return d, nil
}

// GetBundle returns the device with its live credentials and its archived
// credentials grouped by batch. Stored passwords are revealed.
func (s *Service) GetBundle(ctx context.Context, deviceID uuid.UUID) (*domain.DeviceBundle, error) {
	d, err := s.devices.GetByID(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("get device: %w", err)
	}

	profiles, err := s.profiles.ListByDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	accounts, err := s.accounts.ListByDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("list social accounts: %w", err)
	}
	proxies, err := s.proxies.ListByDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("list proxies: %w", err)
	}

	bundle := &domain.DeviceBundle{
		Device:         *d,
		SocialAccounts: []domain.SocialAccount{},
	}

	var archivedProfiles []domain.ICloudProfile
	for _, p := range profiles {
		p.Password = s.reveal(ctx, p.ID, p.PasswordEnc)
		switch {
		case p.Status == domain.AssetStatusArchived:
			archivedProfiles = append(archivedProfiles, p)
		case bundle.ActiveProfile == nil:
			bundle.ActiveProfile = &p
		}
	}

	var archivedAccounts []domain.SocialAccount
	for _, a := range accounts {
		a.Password = s.reveal(ctx, a.ID, a.PasswordEnc)
		if a.Status == domain.AssetStatusArchived {
			archivedAccounts = append(archivedAccounts, a)
			continue
		}
		bundle.SocialAccounts = append(bundle.SocialAccounts, a)
	}

	var archivedProxies []domain.Proxy
	for _, p := range proxies {
		p.Password = s.reveal(ctx, p.ID, p.PasswordEnc)
		switch {
		case p.Status == domain.AssetStatusArchived:
			archivedProxies = append(archivedProxies, p)
		case bundle.ActiveProxy == nil:
			bundle.ActiveProxy = &p
		}
	}

	bundle.Archived = domain.GroupByBatch(archivedProfiles, archivedAccounts, archivedProxies)
	return bundle, nil
}

// PreviewBatch reports the batch id the next asset created on the device
// would carry.
func (s *Service) PreviewBatch(ctx context.Context, deviceID uuid.UUID) (Resolution, error) {
	if _, err := s.devices.GetByID(ctx, deviceID); err != nil {
		return Resolution{}, fmt.Errorf("get device: %w", err)
	}
	return s.batches.Resolve(ctx, deviceID)
}

// Burn archives every live credential on the device in one transaction.
// Assets without a batch id are stamped with the device's resolved batch.
func (s *Service) Burn(ctx context.Context, deviceID uuid.UUID) (*domain.BurnResult, error) {
	var result domain.BurnResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.devices.GetByID(txCtx, deviceID); err != nil {
			return fmt.Errorf("get device: %w", err)
		}

		res, err := s.batches.Resolve(txCtx, deviceID)
		if err != nil {
			return err
		}
		result.BatchID = res.BatchID

		now := s.now()
		n, err := s.profiles.ArchiveByDevice(txCtx, deviceID, res.BatchID, now)
		if err != nil {
			return fmt.Errorf("archive profiles: %w", err)
		}
		result.Profiles = int(n)

		n, err = s.accounts.ArchiveByDevice(txCtx, deviceID, res.BatchID, now)
		if err != nil {
			return fmt.Errorf("archive social accounts: %w", err)
		}
		result.SocialAccounts = int(n)

		n, err = s.proxies.ArchiveByDevice(txCtx, deviceID, res.BatchID, now)
		if err != nil {
			return fmt.Errorf("archive proxies: %w", err)
		}
		result.Proxies = int(n)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "device burned",
		slog.String("device_id", deviceID.String()),
		slog.String("batch_id", result.BatchID.String()),
		slog.Int("profiles", result.Profiles),
		slog.Int("social_accounts", result.SocialAccounts),
		slog.Int("proxies", result.Proxies),
	)
	return &result, nil
}

// reveal opens a sealed password. Values that fail to open are logged and
// shown empty.
func (s *Service) reveal(ctx context.Context, assetID uuid.UUID, sealed []byte) string {
	plain, err := s.sealer.Open(sealed)
	if err != nil {
		s.log.WarnContext(ctx, "cannot open stored password",
			slog.String("asset_id", assetID.String()),
			slog.String("error", err.Error()),
		)
		return ""
	}
	return plain
}
