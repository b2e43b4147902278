package domain

import (
	"time"

	"github.com/google/uuid"
)

// Device is a phone used for account farming. It is the root of a
// credential bundle: one iCloud profile, one proxy and any number of social
// accounts may be live on it at a time.
type Device struct {
	ID         uuid.UUID  `db:"id"          json:"id"`
	Model      string     `db:"model"       json:"model"`
	ManagerID  *uuid.UUID `db:"manager_id"  json:"manager_id"`
	OwnerLabel *string    `db:"owner_label" json:"owner_label"`
	Notes      *string    `db:"notes"       json:"notes"`
	CreatedAt  time.Time  `db:"created_at"  json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"  json:"updated_at"`
}

// DeviceFilter narrows a device listing. Search matches model or owner label.
type DeviceFilter struct {
	ManagerID *uuid.UUID
	Search    string
	Limit     int
	Offset    int
}

// DeviceUpdateParams holds optional fields for a partial device update.
// A nil field is left unchanged; a pointer to "" clears nullable text and a
// pointer to uuid.Nil clears the manager.
type DeviceUpdateParams struct {
	Model      *string
	ManagerID  *uuid.UUID
	OwnerLabel *string
	Notes      *string
}

// ICloudProfile is an Apple ID signed in on a device.
type ICloudProfile struct {
	ID          uuid.UUID   `db:"id"           json:"id"`
	DeviceID    uuid.UUID   `db:"device_id"    json:"device_id"`
	Email       string      `db:"email"        json:"email"`
	PasswordEnc []byte      `db:"password_enc" json:"-"`
	Password    string      `db:"-"            json:"password,omitempty"`
	Phone       *string     `db:"phone"        json:"phone"`
	Status      AssetStatus `db:"status"       json:"status"`
	BatchID     *uuid.UUID  `db:"batch_id"     json:"batch_id"`
	ArchivedAt  *time.Time  `db:"archived_at"  json:"archived_at"`
	CreatedAt   time.Time   `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"   json:"updated_at"`
}

// SocialAccount is a social network login farmed on a device.
type SocialAccount struct {
	ID          uuid.UUID      `db:"id"           json:"id"`
	DeviceID    uuid.UUID      `db:"device_id"    json:"device_id"`
	Platform    SocialPlatform `db:"platform"     json:"platform"`
	Username    string         `db:"username"     json:"username"`
	Email       *string        `db:"email"        json:"email"`
	PasswordEnc []byte         `db:"password_enc" json:"-"`
	Password    string         `db:"-"            json:"password,omitempty"`
	Status      AssetStatus    `db:"status"       json:"status"`
	BatchID     *uuid.UUID     `db:"batch_id"     json:"batch_id"`
	ArchivedAt  *time.Time     `db:"archived_at"  json:"archived_at"`
	CreatedAt   time.Time      `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"   json:"updated_at"`
}

// Proxy is the network egress configured on a device.
type Proxy struct {
	ID          uuid.UUID     `db:"id"           json:"id"`
	DeviceID    uuid.UUID     `db:"device_id"    json:"device_id"`
	Protocol    ProxyProtocol `db:"protocol"     json:"protocol"`
	Host        string        `db:"host"         json:"host"`
	Port        int           `db:"port"         json:"port"`
	Username    *string       `db:"username"     json:"username"`
	PasswordEnc []byte        `db:"password_enc" json:"-"`
	Password    string        `db:"-"            json:"password,omitempty"`
	Status      AssetStatus   `db:"status"       json:"status"`
	BatchID     *uuid.UUID    `db:"batch_id"     json:"batch_id"`
	ArchivedAt  *time.Time    `db:"archived_at"  json:"archived_at"`
	CreatedAt   time.Time     `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"   json:"updated_at"`
}

// AssetUpdateParams holds optional fields for a partial credential update.
// Status and batch id are not editable here: status moves through archive
// and the batch id is immutable once assigned.
type AssetUpdateParams struct {
	Email       *string
	Username    *string
	Phone       *string
	PasswordEnc []byte
	Host        *string
	Port        *int
	Protocol    *ProxyProtocol
	Activate    bool // draft -> active, social accounts only
}

// DeviceBundle is the device detail view: what is live now and what was
// burned before, grouped by batch.
type DeviceBundle struct {
	Device         Device          `json:"device"`
	ActiveProfile  *ICloudProfile  `json:"active_profile"`
	ActiveProxy    *Proxy          `json:"active_proxy"`
	SocialAccounts []SocialAccount `json:"social_accounts"`
	Archived       []BatchGroup    `json:"archived"`
}

// BurnResult reports what a device burn archived.
type BurnResult struct {
	BatchID        uuid.UUID `json:"batch_id"`
	Profiles       int       `json:"profiles"`
	SocialAccounts int       `json:"social_accounts"`
	Proxies        int       `json:"proxies"`
}
