// Package moderation serves the moderation queues: reports, refund requests
// and support tickets. All three share one status lifecycle, so a single
// generic Queue handles each of them.
package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/metrics"
	"github.com/heartmarshall/opsdesk-backend/pkg/ctxutil"
)

type ticketStore[T any] interface {
	Kind() domain.TicketKind
	List(ctx context.Context, filter domain.TicketFilter) ([]T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TicketStatus, reviewer uuid.UUID, now time.Time) (*T, error)
	UpdateAdminResponse(ctx context.Context, id uuid.UUID, response *string, now time.Time) (*T, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ticketPtr is satisfied by pointers to the moderation row types.
type ticketPtr[T any] interface {
	*T
	Lifecycle() *domain.Ticket
}

// Queue manages one moderation queue.
type Queue[T any, P ticketPtr[T]] struct {
	store   ticketStore[T]
	tx      txManager
	metrics *metrics.Metrics
	kind    domain.TicketKind
	log     *slog.Logger
	now     func() time.Time
}

// NewQueue creates a queue over store. The queue kind is taken from the store.
func NewQueue[T any, P ticketPtr[T]](log *slog.Logger, store ticketStore[T], tx txManager, m *metrics.Metrics) *Queue[T, P] {
	kind := store.Kind()
	return &Queue[T, P]{
		store:   store,
		tx:      tx,
		metrics: m,
		kind:    kind,
		log:     log.With("service", "moderation", "queue", kind.String()),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Kind returns the queue's ticket kind.
func (q *Queue[T, P]) Kind() domain.TicketKind { return q.kind }

// List returns tickets newest first.
func (q *Queue[T, P]) List(ctx context.Context, input ListTicketsInput) ([]T, error) {
	if err := input.Validate(q.kind); err != nil {
		return nil, err
	}

	filter := domain.TicketFilter{Limit: input.Limit, Offset: input.Offset}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if input.Status != nil {
		status := domain.TicketStatus(*input.Status)
		filter.Status = &status
	}

	tickets, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", q.kind, err)
	}
	return tickets, nil
}

// Get returns one ticket.
func (q *Queue[T, P]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	t, err := q.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", q.kind, err)
	}
	return t, nil
}

// SetStatus moves a ticket to status on behalf of the calling admin. Setting
// the current status again persists nothing. The first change away from the
// initial status records the reviewer; later changes keep it.
func (q *Queue[T, P]) SetStatus(ctx context.Context, id uuid.UUID, status domain.TicketStatus) (*T, error) {
	reviewer, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return q.setStatus(ctx, id, status, reviewer)
}

// SetAdminResponse overwrites the admin response. A blank response clears it.
func (q *Queue[T, P]) SetAdminResponse(ctx context.Context, id uuid.UUID, response string) (*T, error) {
	var value *string
	if trimmed := strings.TrimSpace(response); trimmed != "" {
		value = &trimmed
	}

	t, err := q.store.UpdateAdminResponse(ctx, id, value, q.now())
	if err != nil {
		return nil, fmt.Errorf("update %s admin response: %w", q.kind, err)
	}

	q.log.InfoContext(ctx, "admin response updated",
		slog.String("ticket_id", id.String()),
		slog.Bool("cleared", value == nil),
	)
	return t, nil
}

// Update applies a status change and an admin response together. Either may
// be omitted; both are written in one transaction.
func (q *Queue[T, P]) Update(ctx context.Context, input UpdateTicketInput) (*T, error) {
	if err := input.Validate(q.kind); err != nil {
		return nil, err
	}

	reviewer, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var result *T
	err := q.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.Status != nil {
			t, err := q.setStatus(txCtx, input.ID, domain.TicketStatus(*input.Status), reviewer)
			if err != nil {
				return err
			}
			result = t
		}
		if input.AdminResponse != nil {
			t, err := q.SetAdminResponse(txCtx, input.ID, *input.AdminResponse)
			if err != nil {
				return err
			}
			result = t
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (q *Queue[T, P]) setStatus(ctx context.Context, id uuid.UUID, status domain.TicketStatus, reviewer uuid.UUID) (*T, error) {
	current, err := q.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", q.kind, err)
	}

	lifecycle := *P(current).Lifecycle()
	lifecycle.Kind = q.kind

	now := q.now()
	changed, err := lifecycle.ApplyStatus(status, reviewer, now)
	if err != nil {
		return nil, err
	}
	if !changed {
		return current, nil
	}

	updated, err := q.store.UpdateStatus(ctx, id, status, reviewer, now)
	if err != nil {
		return nil, fmt.Errorf("update %s status: %w", q.kind, err)
	}
	q.metrics.TicketStatusChanged(q.kind.String(), status.String())

	q.log.InfoContext(ctx, "ticket status changed",
		slog.String("ticket_id", id.String()),
		slog.String("from", P(current).Lifecycle().Status.String()),
		slog.String("to", status.String()),
		slog.String("reviewer_id", reviewer.String()),
	)
	return updated, nil
}
