package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/service/device"
)

type credentialService interface {
	CreateICloudProfile(ctx context.Context, input device.CreateICloudProfileInput) (*domain.ICloudProfile, error)
	UpdateICloudProfile(ctx context.Context, input device.UpdateICloudProfileInput) (*domain.ICloudProfile, error)
	ArchiveICloudProfile(ctx context.Context, id uuid.UUID) (*domain.ICloudProfile, error)
	CreateSocialAccount(ctx context.Context, input device.CreateSocialAccountInput) (*domain.SocialAccount, error)
	UpdateSocialAccount(ctx context.Context, input device.UpdateSocialAccountInput) (*domain.SocialAccount, error)
	ArchiveSocialAccount(ctx context.Context, id uuid.UUID) (*domain.SocialAccount, error)
	CreateProxy(ctx context.Context, input device.CreateProxyInput) (*domain.Proxy, error)
	UpdateProxy(ctx context.Context, input device.UpdateProxyInput) (*domain.Proxy, error)
	ArchiveProxy(ctx context.Context, id uuid.UUID) (*domain.Proxy, error)
}

// CredentialHandler serves the iCloud profile, social account and proxy
// endpoints.
type CredentialHandler struct {
	svc credentialService
	log *slog.Logger
}

// NewCredentialHandler creates a CredentialHandler.
func NewCredentialHandler(svc credentialService, logger *slog.Logger) *CredentialHandler {
	return &CredentialHandler{svc: svc, log: logger.With("handler", "credential")}
}

// mutate decodes a request body of type In, runs fn and writes its result.
func mutate[In, Out any](h *CredentialHandler, status int, fn func(context.Context, In) (*Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if !decodeBody(w, r, &in) {
			return
		}
		out, err := fn(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
		writeJSON(w, status, out)
	}
}

// archive decodes an {"id": ...} body and archives that asset.
func archive[Out any](h *CredentialHandler, fn func(context.Context, uuid.UUID) (*Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := decodeID(w, r)
		if !ok {
			return
		}
		out, err := fn(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// CreateICloudProfile handles POST /icloud-profiles/create.
func (h *CredentialHandler) CreateICloudProfile(w http.ResponseWriter, r *http.Request) {
	mutate(h, http.StatusCreated, h.svc.CreateICloudProfile)(w, r)
}

// UpdateICloudProfile handles POST /icloud-profiles/update.
func (h *CredentialHandler) UpdateICloudProfile(w http.ResponseWriter, r *http.Request) {
	mutate(h, http.StatusOK, h.svc.UpdateICloudProfile)(w, r)
}

// ArchiveICloudProfile handles POST /icloud-profiles/archive.
func (h *CredentialHandler) ArchiveICloudProfile(w http.ResponseWriter, r *http.Request) {
	archive(h, h.svc.ArchiveICloudProfile)(w, r)
}

// CreateSocialAccount handles POST /social-accounts/create.
func (h *CredentialHandler) CreateSocialAccount(w http.ResponseWriter, r *http.Request) {
	mutate(h, http.StatusCreated, h.svc.CreateSocialAccount)(w, r)
}

// UpdateSocialAccount handles POST /social-accounts/update.
func (h *CredentialHandler) UpdateSocialAccount(w http.ResponseWriter, r *http.Request) {
	mutate(h, http.StatusOK, h.svc.UpdateSocialAccount)(w, r)
}

// ArchiveSocialAccount handles POST /social-accounts/archive.
func (h *CredentialHandler) ArchiveSocialAccount(w http.ResponseWriter, r *http.Request) {
	archive(h, h.svc.ArchiveSocialAccount)(w, r)
}

// CreateProxy handles POST /proxies/create.
func (h *CredentialHandler) CreateProxy(w http.ResponseWriter, r *http.Request) {
	mutate(h, http.StatusCreated, h.svc.CreateProxy)(w, r)
}

// UpdateProxy handles POST /proxies/update.
func (h *CredentialHandler) UpdateProxy(w http.ResponseWriter, r *http.Request) {
	mutate(h, http.StatusOK, h.svc.UpdateProxy)(w, r)
}

// ArchiveProxy handles POST /proxies/archive.
func (h *CredentialHandler) ArchiveProxy(w http.ResponseWriter, r *http.Request) {
	archive(h, h.svc.ArchiveProxy)(w, r)
}
