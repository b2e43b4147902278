package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/service/catalog"
)

type catalogService interface {
	ListCategories(ctx context.Context, gameID *uuid.UUID) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, input catalog.UpdateCategoryInput) (*domain.Category, error)
	ToggleCategory(ctx context.Context, input catalog.ToggleCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListQuestions(ctx context.Context, categoryID uuid.UUID) ([]domain.Question, error)
	CreateQuestion(ctx context.Context, input catalog.CreateQuestionInput) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}

// CatalogHandler serves category and question endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type deleteResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

// ListCategories handles GET /categories?gameId=.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	gameID, ok := queryUUID(w, r, "gameId")
	if !ok {
		return
	}
	categories, err := h.svc.ListCategories(r.Context(), gameID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /categories/create.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateCategoryInput
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := h.svc.CreateCategory(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateCategory handles POST /categories/update.
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateCategoryInput
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := h.svc.UpdateCategory(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// ToggleCategory handles POST /categories/toggle.
func (h *CatalogHandler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	var req catalog.ToggleCategoryInput
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := h.svc.ToggleCategory(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteCategory handles POST /categories/delete.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{ID: id, Deleted: true})
}

// ListQuestions handles GET /categories/{id}/questions.
func (h *CatalogHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	questions, err := h.svc.ListQuestions(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// CreateQuestion handles POST /questions/create.
func (h *CatalogHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateQuestionInput
	if !decodeBody(w, r, &req) {
		return
	}
	q, err := h.svc.CreateQuestion(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

// DeleteQuestion handles POST /questions/delete.
func (h *CatalogHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{ID: id, Deleted: true})
}
