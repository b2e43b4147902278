package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// TicketKind identifies one of the moderation queues. All kinds share the
// same state machine shape with different labels.
type TicketKind string

const (
	TicketKindReport        TicketKind = "report"
	TicketKindRefundRequest TicketKind = "refund_request"
	TicketKindSupportTicket TicketKind = "support_ticket"
)

func (k TicketKind) String() string { return string(k) }

// TicketStatus is a moderation status label. Valid values depend on the kind.
type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusReviewed   TicketStatus = "reviewed"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusDismissed  TicketStatus = "dismissed"
	TicketStatusApproved   TicketStatus = "approved"
	TicketStatusRejected   TicketStatus = "rejected"
	TicketStatusProcessed  TicketStatus = "processed"
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

func (s TicketStatus) String() string { return string(s) }

var ticketStatuses = map[TicketKind][]TicketStatus{
	TicketKindReport:        {TicketStatusPending, TicketStatusReviewed, TicketStatusResolved, TicketStatusDismissed},
	TicketKindRefundRequest: {TicketStatusPending, TicketStatusApproved, TicketStatusRejected, TicketStatusProcessed},
	TicketKindSupportTicket: {TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed},
}

func (k TicketKind) IsValid() bool {
	_, ok := ticketStatuses[k]
	return ok
}

// Statuses lists the statuses of this kind, initial status first.
func (k TicketKind) Statuses() []TicketStatus {
	return slices.Clone(ticketStatuses[k])
}

// InitialStatus is the status a new ticket of this kind starts in.
func (k TicketKind) InitialStatus() TicketStatus {
	if s := ticketStatuses[k]; len(s) > 0 {
		return s[0]
	}
	return ""
}

// Allows reports whether status is a label of this kind. No status is
// terminal: any allowed status is reachable from any other.
func (k TicketKind) Allows(status TicketStatus) bool {
	return slices.Contains(ticketStatuses[k], status)
}

// Ticket is the part of a moderation row governed by the status lifecycle.
// ReviewedAt/ReviewedBy record the first departure from the initial status
// and are never overwritten afterwards.
type Ticket struct {
	ID            uuid.UUID    `db:"id"             json:"id"`
	Kind          TicketKind   `db:"-"              json:"kind"`
	Status        TicketStatus `db:"status"         json:"status"`
	AdminResponse *string      `db:"admin_response" json:"admin_response"`
	ReviewedAt    *time.Time   `db:"reviewed_at"    json:"reviewed_at"`
	ReviewedBy    *uuid.UUID   `db:"reviewed_by"    json:"reviewed_by"`
	CreatedAt     time.Time    `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"     json:"updated_at"`
}

// ApplyStatus moves the ticket to status. It returns false without touching
// the ticket when status equals the current one. The first change stamps
// the reviewer and time.
func (t *Ticket) ApplyStatus(status TicketStatus, reviewer uuid.UUID, now time.Time) (bool, error) {
	if !t.Kind.Allows(status) {
		return false, NewValidationError("status", fmt.Sprintf("%q is not a valid %s status", status, t.Kind))
	}
	if status == t.Status {
		return false, nil
	}

	t.Status = status
	t.UpdatedAt = now
	if t.ReviewedAt == nil {
		at := now
		by := reviewer
		t.ReviewedAt = &at
		t.ReviewedBy = &by
	}
	return true, nil
}

// Lifecycle returns the status part of a moderation row.
func (t *Ticket) Lifecycle() *Ticket { return t }

// Report is a user-submitted report against another user.
type Report struct {
	Ticket
	ReporterID     uuid.UUID `db:"reporter_id"      json:"reporter_id"`
	ReportedUserID uuid.UUID `db:"reported_user_id" json:"reported_user_id"`
	Reason         string    `db:"reason"           json:"reason"`
	Description    *string   `db:"description"      json:"description"`
}

// RefundRequest is an in-app purchase refund request.
type RefundRequest struct {
	Ticket
	UserID        uuid.UUID `db:"user_id"        json:"user_id"`
	TransactionID string    `db:"transaction_id" json:"transaction_id"`
	AmountCents   int64     `db:"amount_cents"   json:"amount_cents"`
	Currency      string    `db:"currency"       json:"currency"`
	Reason        *string   `db:"reason"         json:"reason"`
}

// SupportTicket is a help request from an app user.
type SupportTicket struct {
	Ticket
	UserID  *uuid.UUID `db:"user_id" json:"user_id"`
	Email   *string    `db:"email"   json:"email"`
	Subject string     `db:"subject" json:"subject"`
	Message string     `db:"message" json:"message"`
}

// TicketFilter narrows a moderation queue listing.
type TicketFilter struct {
	Status *TicketStatus
	Limit  int
	Offset int
}
