package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/service/onboarding"
)

type onboardingService interface {
	ListScreens(ctx context.Context, t domain.ScreenType) ([]domain.OnboardingScreen, error)
	CreateScreen(ctx context.Context, input onboarding.CreateScreenInput) (*domain.OnboardingScreen, error)
	UpdateScreen(ctx context.Context, input onboarding.UpdateScreenInput) (*domain.OnboardingScreen, error)
	DeleteScreen(ctx context.Context, t domain.ScreenType, id uuid.UUID) error
	Flow(ctx context.Context) (domain.FlowGraph, error)
}

// OnboardingHandler serves the quiz and conversion screen endpoints. Each
// method returns the handler bound to one screen type.
type OnboardingHandler struct {
	svc onboardingService
	log *slog.Logger
}

// NewOnboardingHandler creates an OnboardingHandler.
func NewOnboardingHandler(svc onboardingService, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{svc: svc, log: logger.With("handler", "onboarding")}
}

// List handles GET /onboarding/{type}-screens.
func (h *OnboardingHandler) List(t domain.ScreenType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		screens, err := h.svc.ListScreens(r.Context(), t)
		if err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, screens)
	}
}

// Create handles POST /onboarding/{type}-screens.
func (h *OnboardingHandler) Create(t domain.ScreenType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req onboarding.CreateScreenInput
		if !decodeBody(w, r, &req) {
			return
		}
		req.Type = t

		screen, err := h.svc.CreateScreen(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusCreated, screen)
	}
}

// Update handles PUT /onboarding/{type}-screens?id=. The body is a partial
// update; should_show alone toggles visibility.
func (h *OnboardingHandler) Update(t domain.ScreenType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := queryID(w, r)
		if !ok {
			return
		}
		var req onboarding.UpdateScreenInput
		if !decodeBody(w, r, &req) {
			return
		}
		req.Type = t
		req.ID = id

		screen, err := h.svc.UpdateScreen(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, screen)
	}
}

// Delete handles DELETE /onboarding/{type}-screens?id=.
func (h *OnboardingHandler) Delete(t domain.ScreenType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := queryID(w, r)
		if !ok {
			return
		}
		if err := h.svc.DeleteScreen(r.Context(), t, id); err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, deleteResponse{ID: id, Deleted: true})
	}
}

// Flow handles GET /onboarding/flow.
func (h *OnboardingHandler) Flow(w http.ResponseWriter, r *http.Request) {
	graph, err := h.svc.Flow(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, graph)
}
