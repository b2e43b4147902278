package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/service/moderation"
)

type ticketQueue[T any] interface {
	Kind() domain.TicketKind
	List(ctx context.Context, input moderation.ListTicketsInput) ([]T, error)
	Update(ctx context.Context, input moderation.UpdateTicketInput) (*T, error)
}

// TicketHandler serves one moderation queue: reports, refund requests or
// support tickets.
type TicketHandler[T any] struct {
	queue ticketQueue[T]
	log   *slog.Logger
}

// NewTicketHandler creates a TicketHandler for queue.
func NewTicketHandler[T any](queue ticketQueue[T], logger *slog.Logger) *TicketHandler[T] {
	return &TicketHandler[T]{
		queue: queue,
		log:   logger.With("handler", queue.Kind().String()),
	}
}

type patchTicketRequest struct {
	Status        *string `json:"status"`
	AdminResponse *string `json:"admin_response"`
}

// List handles GET /{queue}?status=&limit=&offset=.
func (h *TicketHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}
	input := moderation.ListTicketsInput{Limit: limit, Offset: offset}
	if status := r.URL.Query().Get("status"); status != "" {
		input.Status = &status
	}

	items, err := h.queue.List(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Patch handles PATCH /{queue}/{id} with a body of status and/or
// admin_response.
func (h *TicketHandler[T]) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchTicketRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.queue.Update(r.Context(), moderation.UpdateTicketInput{
		ID:            id,
		Status:        req.Status,
		AdminResponse: req.AdminResponse,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
