package device

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/validate"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// CreateDeviceInput holds the parameters for registering a device.
type CreateDeviceInput struct {
	Model      string     `json:"model"       validate:"required,notblank,max=100"`
	ManagerID  *uuid.UUID `json:"manager_id"`
	OwnerLabel *string    `json:"owner_label" validate:"omitempty,max=100"`
	Notes      *string    `json:"notes"       validate:"omitempty,max=2000"`
}

func (i CreateDeviceInput) Validate() error {
	return validate.Struct(i)
}

// UpdateDeviceInput holds the parameters for a partial device update.
// ManagerID set to the nil UUID unassigns the manager; "" clears text fields.
type UpdateDeviceInput struct {
	DeviceID   uuid.UUID  `json:"id"          validate:"required"`
	Model      *string    `json:"model"       validate:"omitempty,notblank,max=100"`
	ManagerID  *uuid.UUID `json:"manager_id"`
	OwnerLabel *string    `json:"owner_label" validate:"omitempty,max=100"`
	Notes      *string    `json:"notes"       validate:"omitempty,max=2000"`
}

func (i UpdateDeviceInput) Validate() error {
	var errs []domain.FieldError
	if i.Model == nil && i.ManagerID == nil && i.OwnerLabel == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	return validate.StructWith(i, errs)
}

// ListDevicesInput narrows a device listing. Zero limit means the default.
type ListDevicesInput struct {
	ManagerID *uuid.UUID
	Search    string `json:"search" validate:"max=100"`
	Limit     int    `json:"limit"  validate:"gte=0,lte=200"`
	Offset    int    `json:"offset" validate:"gte=0"`
}

func (i ListDevicesInput) Validate() error {
	return validate.Struct(i)
}

// CreateICloudProfileInput holds the parameters for adding an iCloud profile.
// The profile is created active.
type CreateICloudProfileInput struct {
	DeviceID uuid.UUID `json:"device_id" validate:"required"`
	Email    string    `json:"email"     validate:"required,email,max=254"`
	Password string    `json:"password"  validate:"required,max=256"`
	Phone    *string   `json:"phone"     validate:"omitempty,max=32"`
}

func (i CreateICloudProfileInput) Validate() error {
	return validate.Struct(i.normalize())
}

func (i CreateICloudProfileInput) normalize() CreateICloudProfileInput {
	i.Email = normalizeEmail(i.Email)
	return i
}

// UpdateICloudProfileInput holds the parameters for a partial profile update.
type UpdateICloudProfileInput struct {
	ID       uuid.UUID `json:"id"       validate:"required"`
	Email    *string   `json:"email"    validate:"omitempty,email,max=254"`
	Password *string   `json:"password" validate:"omitempty,max=256"`
	Phone    *string   `json:"phone"    validate:"omitempty,max=32"`
}

func (i UpdateICloudProfileInput) Validate() error {
	var errs []domain.FieldError
	if i.Email == nil && i.Password == nil && i.Phone == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	return validate.StructWith(i.normalize(), errs)
}

func (i UpdateICloudProfileInput) normalize() UpdateICloudProfileInput {
	if i.Email != nil {
		email := normalizeEmail(*i.Email)
		i.Email = &email
	}
	return i
}

// CreateSocialAccountInput holds the parameters for adding a social account.
// Status defaults to draft.
type CreateSocialAccountInput struct {
	DeviceID uuid.UUID             `json:"device_id" validate:"required"`
	Platform domain.SocialPlatform `json:"platform"  validate:"required,oneof=instagram tiktok snapchat twitter facebook"`
	Username string                `json:"username"  validate:"required,notblank,max=100"`
	Email    *string               `json:"email"     validate:"omitempty,email,max=254"`
	Password string                `json:"password"  validate:"max=256"`
	Status   domain.AssetStatus    `json:"status"    validate:"omitempty,oneof=draft active"`
}

func (i CreateSocialAccountInput) Validate() error {
	return validate.Struct(i.normalize())
}

func (i CreateSocialAccountInput) normalize() CreateSocialAccountInput {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = trimPtr(i.Email)
	return i
}

// UpdateSocialAccountInput holds the parameters for a partial account update.
// Activate moves a draft account to active.
type UpdateSocialAccountInput struct {
	ID       uuid.UUID `json:"id"       validate:"required"`
	Username *string   `json:"username" validate:"omitempty,notblank,max=100"`
	Email    *string   `json:"email"    validate:"omitempty,email,max=254"`
	Password *string   `json:"password" validate:"omitempty,max=256"`
	Activate bool      `json:"activate"`
}

func (i UpdateSocialAccountInput) Validate() error {
	var errs []domain.FieldError
	if i.Username == nil && i.Email == nil && i.Password == nil && !i.Activate {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	return validate.StructWith(i.normalize(), errs)
}

func (i UpdateSocialAccountInput) normalize() UpdateSocialAccountInput {
	i.Username = trimPtr(i.Username)
	i.Email = trimPtr(i.Email)
	return i
}

// CreateProxyInput holds the parameters for adding a proxy. The proxy is
// created active.
type CreateProxyInput struct {
	DeviceID uuid.UUID            `json:"device_id" validate:"required"`
	Protocol domain.ProxyProtocol `json:"protocol"  validate:"required,oneof=http https socks5"`
	Host     string               `json:"host"      validate:"required,notblank,max=255"`
	Port     int                  `json:"port"      validate:"gte=1,lte=65535"`
	Username *string              `json:"username"  validate:"omitempty,max=100"`
	Password string               `json:"password"  validate:"max=256"`
}

func (i CreateProxyInput) Validate() error {
	return validate.Struct(i.normalize())
}

func (i CreateProxyInput) normalize() CreateProxyInput {
	i.Host = strings.TrimSpace(i.Host)
	i.Username = trimPtr(i.Username)
	return i
}

// UpdateProxyInput holds the parameters for a partial proxy update.
type UpdateProxyInput struct {
	ID       uuid.UUID             `json:"id"       validate:"required"`
	Protocol *domain.ProxyProtocol `json:"protocol" validate:"omitempty,oneof=http https socks5"`
	Host     *string               `json:"host"     validate:"omitempty,notblank,max=255"`
	Port     *int                  `json:"port"     validate:"omitempty,gte=1,lte=65535"`
	Username *string               `json:"username" validate:"omitempty,max=100"`
	Password *string               `json:"password" validate:"omitempty,max=256"`
}

func (i UpdateProxyInput) Validate() error {
	var errs []domain.FieldError
	if i.Protocol == nil && i.Host == nil && i.Port == nil && i.Username == nil && i.Password == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	return validate.StructWith(i.normalize(), errs)
}

func (i UpdateProxyInput) normalize() UpdateProxyInput {
	i.Host = trimPtr(i.Host)
	i.Username = trimPtr(i.Username)
	return i
}

// normalizeEmail trims and lowercases an address before it is validated
// and stored.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
