// Package moderation implements persistence for the moderation queues:
// reports, refund requests and support tickets. The three tables share the
// lifecycle columns, so one generic store serves all of them.
package moderation

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

var lifecycleColumns = []string{
	"id", "status", "admin_response", "reviewed_at", "reviewed_by", "created_at", "updated_at",
}

// TicketPtr is satisfied by pointers to the moderation row types, which all
// embed domain.Ticket.
type TicketPtr[T any] interface {
	*T
	Lifecycle() *domain.Ticket
}

// Store provides persistence for one moderation table.
type Store[T any, P TicketPtr[T]] struct {
	db      postgres.DB
	kind    domain.TicketKind
	table   string
	columns []string
}

func newStore[T any, P TicketPtr[T]](db postgres.DB, kind domain.TicketKind, table string, extra ...string) *Store[T, P] {
	return &Store[T, P]{
		db:      db,
		kind:    kind,
		table:   table,
		columns: append(append([]string{}, lifecycleColumns...), extra...),
	}
}

// NewReports creates the store for the reports queue.
func NewReports(db postgres.DB) *Store[domain.Report, *domain.Report] {
	return newStore[domain.Report](db, domain.TicketKindReport, "reports",
		"reporter_id", "reported_user_id", "reason", "description")
}

// NewRefundRequests creates the store for the refund requests queue.
func NewRefundRequests(db postgres.DB) *Store[domain.RefundRequest, *domain.RefundRequest] {
	return newStore[domain.RefundRequest](db, domain.TicketKindRefundRequest, "refund_requests",
		"user_id", "transaction_id", "amount_cents", "currency", "reason")
}

// NewSupportTickets creates the store for the support tickets queue.
func NewSupportTickets(db postgres.DB) *Store[domain.SupportTicket, *domain.SupportTicket] {
	return newStore[domain.SupportTicket](db, domain.TicketKindSupportTicket, "support_tickets",
		"user_id", "email", "subject", "message")
}

// Kind returns the queue this store serves.
func (s *Store[T, P]) Kind() domain.TicketKind { return s.kind }

// List returns tickets newest first, optionally filtered by status.
func (s *Store[T, P]) List(ctx context.Context, filter domain.TicketFilter) ([]T, error) {
	q := postgres.QuerierFromCtx(ctx, s.db)

	query := postgres.Builder.Select(s.columns...).From(s.table).OrderBy("created_at DESC", "id DESC")
	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	out := []T{}
	if err := postgres.Select(ctx, q, &out, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table, err)
	}
	for i := range out {
		P(&out[i]).Lifecycle().Kind = s.kind
	}
	return out, nil
}

// GetByID returns a ticket or domain.ErrNotFound.
func (s *Store[T, P]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.one(ctx, id, postgres.Builder.Select(s.columns...).From(s.table).Where(sq.Eq{"id": id}))
}

// UpdateStatus persists a status change. The reviewer columns are written
// only when still empty, so the first reviewer survives concurrent writers.
func (s *Store[T, P]) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TicketStatus, reviewer uuid.UUID, now time.Time) (*T, error) {
	update := postgres.Builder.
		Update(s.table).
		Set("status", string(status)).
		Set("updated_at", now).
		Set("reviewed_at", sq.Expr("COALESCE(reviewed_at, ?)", now)).
		Set("reviewed_by", sq.Expr("COALESCE(reviewed_by, ?)", reviewer)).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(s.columns))

	return s.one(ctx, id, update)
}

// UpdateAdminResponse overwrites the admin response. Nil clears it.
func (s *Store[T, P]) UpdateAdminResponse(ctx context.Context, id uuid.UUID, response *string, now time.Time) (*T, error) {
	update := postgres.Builder.
		Update(s.table).
		Set("admin_response", response).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(s.columns))

	return s.one(ctx, id, update)
}

func (s *Store[T, P]) one(ctx context.Context, id uuid.UUID, query sq.Sqlizer) (*T, error) {
	q := postgres.QuerierFromCtx(ctx, s.db)

	var out T
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, string(s.kind), id)
	}
	P(&out).Lifecycle().Kind = s.kind
	return &out, nil
}
