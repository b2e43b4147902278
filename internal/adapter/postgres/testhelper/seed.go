package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedDevice creates a device with a unique model name.
func SeedDevice(t *testing.T, pool *pgxpool.Pool) domain.Device {
	t.Helper()

	ts := now()
	d := domain.Device{
		ID:        uuid.New(),
		Model:     "iPhone 12 " + uniqueSuffix(),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO devices (id, model, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		d.ID, d.Model, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDevice: %v", err)
	}
	return d
}

// SeedICloudProfile creates an iCloud profile on a device. createdAt orders
// lookups that pick the most recent row.
func SeedICloudProfile(t *testing.T, pool *pgxpool.Pool, deviceID uuid.UUID, status domain.AssetStatus, batchID *uuid.UUID, createdAt time.Time) domain.ICloudProfile {
	t.Helper()

	p := domain.ICloudProfile{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		Email:     "apple-" + uniqueSuffix() + "@icloud.com",
		Status:    status,
		BatchID:   batchID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if status == domain.AssetStatusArchived {
		at := createdAt
		p.ArchivedAt = &at
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO icloud_profiles (id, device_id, email, status, batch_id, archived_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.DeviceID, p.Email, string(p.Status), p.BatchID, p.ArchivedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedICloudProfile: %v", err)
	}
	return p
}

// SeedSocialAccount creates an instagram account on a device.
func SeedSocialAccount(t *testing.T, pool *pgxpool.Pool, deviceID uuid.UUID, status domain.AssetStatus, batchID *uuid.UUID, createdAt time.Time) domain.SocialAccount {
	t.Helper()

	a := domain.SocialAccount{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		Platform:  domain.SocialPlatformInstagram,
		Username:  "user_" + uniqueSuffix(),
		Status:    status,
		BatchID:   batchID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if status == domain.AssetStatusArchived {
		at := createdAt
		a.ArchivedAt = &at
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO social_accounts (id, device_id, platform, username, status, batch_id, archived_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.DeviceID, string(a.Platform), a.Username, string(a.Status), a.BatchID, a.ArchivedAt, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSocialAccount: %v", err)
	}
	return a
}

// SeedProxy creates an HTTP proxy on a device.
func SeedProxy(t *testing.T, pool *pgxpool.Pool, deviceID uuid.UUID, status domain.AssetStatus, batchID *uuid.UUID, createdAt time.Time) domain.Proxy {
	t.Helper()

	p := domain.Proxy{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		Protocol:  domain.ProxyProtocolHTTP,
		Host:      "10.0.0." + uniqueSuffix()[:2],
		Port:      8080,
		Status:    status,
		BatchID:   batchID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if status == domain.AssetStatusArchived {
		at := createdAt
		p.ArchivedAt = &at
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO proxies (id, device_id, protocol, host, port, status, batch_id, archived_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.DeviceID, string(p.Protocol), p.Host, p.Port, string(p.Status), p.BatchID, p.ArchivedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProxy: %v", err)
	}
	return p
}

// SeedCategory creates an inactive category at the given sort order.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, gameID uuid.UUID, sortOrder int) domain.Category {
	t.Helper()

	ts := now()
	c := domain.Category{
		ID:        uuid.New(),
		GameID:    gameID,
		Name:      "Category " + uniqueSuffix(),
		SortOrder: sortOrder,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, game_id, name, sort_order, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, false, $5, $6)`,
		c.ID, c.GameID, c.Name, c.SortOrder, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedReport creates a pending report.
func SeedReport(t *testing.T, pool *pgxpool.Pool) domain.Report {
	t.Helper()

	ts := now()
	r := domain.Report{
		Ticket: domain.Ticket{
			ID:        uuid.New(),
			Kind:      domain.TicketKindReport,
			Status:    domain.TicketStatusPending,
			CreatedAt: ts,
			UpdatedAt: ts,
		},
		ReporterID:     uuid.New(),
		ReportedUserID: uuid.New(),
		Reason:         "spam",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reports (id, reporter_id, reported_user_id, reason, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.ReporterID, r.ReportedUserID, r.Reason, string(r.Status), r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReport: %v", err)
	}
	return r
}

// SeedRefundRequest creates a pending refund request.
func SeedRefundRequest(t *testing.T, pool *pgxpool.Pool) domain.RefundRequest {
	t.Helper()

	ts := now()
	r := domain.RefundRequest{
		Ticket: domain.Ticket{
			ID:        uuid.New(),
			Kind:      domain.TicketKindRefundRequest,
			Status:    domain.TicketStatusPending,
			CreatedAt: ts,
			UpdatedAt: ts,
		},
		UserID:        uuid.New(),
		TransactionID: "txn_" + uniqueSuffix(),
		AmountCents:   999,
		Currency:      "USD",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO refund_requests (id, user_id, transaction_id, amount_cents, currency, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.UserID, r.TransactionID, r.AmountCents, r.Currency, string(r.Status), r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRefundRequest: %v", err)
	}
	return r
}

// SeedSupportTicket creates an open support ticket.
func SeedSupportTicket(t *testing.T, pool *pgxpool.Pool) domain.SupportTicket {
	t.Helper()

	ts := now()
	st := domain.SupportTicket{
		Ticket: domain.Ticket{
			ID:        uuid.New(),
			Kind:      domain.TicketKindSupportTicket,
			Status:    domain.TicketStatusOpen,
			CreatedAt: ts,
			UpdatedAt: ts,
		},
		Subject: "Cannot log in " + uniqueSuffix(),
		Message: "The app keeps asking for a code.",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO support_tickets (id, subject, message, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		st.ID, st.Subject, st.Message, string(st.Status), st.CreatedAt, st.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSupportTicket: %v", err)
	}
	return st
}
