package moderation

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

// ListTicketsInput filters a queue listing.
type ListTicketsInput struct {
	Status *string `json:"status"`
	Limit  int     `json:"limit"  validate:"gte=0,lte=200"`
	Offset int     `json:"offset" validate:"gte=0"`
}

func (i ListTicketsInput) Validate(kind domain.TicketKind) error {
	return validate.StructWith(i, statusErrors(kind, i.Status))
}

// UpdateTicketInput is the body of a ticket patch.
type UpdateTicketInput struct {
	ID            uuid.UUID `json:"id"             validate:"required"`
	Status        *string   `json:"status"`
	AdminResponse *string   `json:"admin_response" validate:"omitempty,max=5000"`
}

func (i UpdateTicketInput) Validate(kind domain.TicketKind) error {
	errs := statusErrors(kind, i.Status)
	if i.Status == nil && i.AdminResponse == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "status or admin_response must be provided"})
	}
	return validate.StructWith(i, errs)
}

func statusErrors(kind domain.TicketKind, status *string) []domain.FieldError {
	if status == nil || kind.Allows(domain.TicketStatus(*status)) {
		return nil
	}
	labels := make([]string, 0, 4)
	for _, s := range kind.Statuses() {
		labels = append(labels, s.String())
	}
	return []domain.FieldError{{
		Field:   "status",
		Message: "must be one of: " + strings.Join(labels, " "),
	}}
}
