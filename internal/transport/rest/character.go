package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/service/character"
)

type characterService interface {
	ListCharacters(ctx context.Context) ([]domain.Character, error)
	CreateCharacter(ctx context.Context, input character.CreateCharacterInput) (*domain.Character, error)
	UpdateCharacter(ctx context.Context, input character.UpdateCharacterInput) (*domain.Character, error)
	DeleteCharacter(ctx context.Context, id uuid.UUID) error
	GenerateImage(ctx context.Context, id uuid.UUID) (*domain.Character, error)
}

// CharacterHandler serves AI character endpoints.
type CharacterHandler struct {
	svc characterService
	log *slog.Logger
}

// NewCharacterHandler creates a CharacterHandler.
func NewCharacterHandler(svc characterService, logger *slog.Logger) *CharacterHandler {
	return &CharacterHandler{svc: svc, log: logger.With("handler", "character")}
}

// List handles GET /characters.
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	characters, err := h.svc.ListCharacters(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, characters)
}

// Create handles POST /characters/create.
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req character.CreateCharacterInput
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := h.svc.CreateCharacter(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update handles POST /characters/update.
func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req character.UpdateCharacterInput
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := h.svc.UpdateCharacter(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles POST /characters/delete.
func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteCharacter(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{ID: id, Deleted: true})
}

// GenerateImage handles POST /characters/{id}/generate-image. It blocks
// until the provider returns.
func (h *CharacterHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GenerateImage(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
