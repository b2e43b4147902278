package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

// maxBodyBytes caps request bodies; onboarding options are the largest payload.
const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type idRequest struct {
	ID uuid.UUID `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error to its HTTP status. Unexpected
// errors keep their message in details; the dashboard audience is staff.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ve.Fields()})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "conflict", Details: err.Error()})
	case errors.Is(err, domain.ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "service unavailable", Details: err.Error()})
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Details: err.Error()})
	}
}

// decodeBody decodes a JSON request body into dst. An empty body leaves dst
// untouched so that handlers can rely on input validation for required fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
	return false
}

// decodeID decodes an {"id": ...} body. A missing or nil id is a
// validation error.
func decodeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var req idRequest
	if !decodeBody(w, r, &req) {
		return uuid.Nil, false
	}
	if req.ID == uuid.Nil {
		ve := domain.NewValidationError("id", "required")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ve.Fields()})
		return uuid.Nil, false
	}
	return req.ID, true
}

// pathID parses the {id} route parameter.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return parseID(w, chi.URLParam(r, "id"))
}

// queryID parses the ?id= query parameter.
func queryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return parseID(w, r.URL.Query().Get("id"))
}

func parseID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: "id: invalid uuid"})
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads a non-negative integer query parameter; missing means 0.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: name + ": must be an integer"})
		return 0, false
	}
	return n, true
}

// queryUUID reads an optional uuid query parameter.
func queryUUID(w http.ResponseWriter, r *http.Request, name string) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: name + ": invalid uuid"})
		return nil, false
	}
	return &id, true
}
