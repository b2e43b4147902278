package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/opsdesk-backend/internal/auth"
	"github.com/heartmarshall/opsdesk-backend/internal/config"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/metrics"
	"github.com/heartmarshall/opsdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/opsdesk-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Identity, error)
}

// handlers groups the REST handlers mounted by newRouter.
type handlers struct {
	health      *rest.HealthHandler
	devices     *rest.DeviceHandler
	credentials *rest.CredentialHandler
	catalog     *rest.CatalogHandler
	onboarding  *rest.OnboardingHandler
	reports     *rest.TicketHandler[domain.Report]
	refunds     *rest.TicketHandler[domain.RefundRequest]
	support     *rest.TicketHandler[domain.SupportTicket]
	characters  *rest.CharacterHandler
}

// newRouter mounts the health endpoints and metrics at the root and the admin API
// under /api. Every /api route requires an admin token.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	validator tokenValidator,
	h handlers,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(m, "/live", "/ready", cfg.Metrics.Path),
		middleware.CORS(cfg.CORS),
	)

	r.Get("/live", h.health.Live)
	r.Get("/ready", h.health.Ready)
	r.Get("/health", h.health.Health)
	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(adminGate(cfg, validator))

		r.Get("/categories", h.catalog.ListCategories)
		r.Get("/categories/{id}/questions", h.catalog.ListQuestions)
		r.Post("/categories/create", h.catalog.CreateCategory)
		r.Post("/categories/toggle", h.catalog.ToggleCategory)
		r.Post("/categories/update", h.catalog.UpdateCategory)
		r.Post("/categories/delete", h.catalog.DeleteCategory)
		r.Post("/questions/create", h.catalog.CreateQuestion)
		r.Post("/questions/delete", h.catalog.DeleteQuestion)

		r.Get("/devices", h.devices.List)
		r.Post("/devices/create", h.devices.Create)
		r.Post("/devices/update", h.devices.Update)
		r.Get("/devices/{id}", h.devices.Get)
		r.Get("/devices/{id}/batch", h.devices.Batch)
		r.Post("/devices/{id}/burn", h.devices.Burn)

		r.Post("/icloud-profiles/create", h.credentials.CreateICloudProfile)
		r.Post("/icloud-profiles/update", h.credentials.UpdateICloudProfile)
		r.Post("/icloud-profiles/archive", h.credentials.ArchiveICloudProfile)
		r.Post("/social-accounts/create", h.credentials.CreateSocialAccount)
		r.Post("/social-accounts/update", h.credentials.UpdateSocialAccount)
		r.Post("/social-accounts/archive", h.credentials.ArchiveSocialAccount)
		r.Post("/proxies/create", h.credentials.CreateProxy)
		r.Post("/proxies/update", h.credentials.UpdateProxy)
		r.Post("/proxies/archive", h.credentials.ArchiveProxy)

		r.Route("/onboarding", func(r chi.Router) {
			for path, t := range map[string]domain.ScreenType{
				"/quiz-screens":       domain.ScreenTypeQuiz,
				"/conversion-screens": domain.ScreenTypeConversion,
			} {
				r.Get(path, h.onboarding.List(t))
				r.Post(path, h.onboarding.Create(t))
				r.Put(path, h.onboarding.Update(t))
				r.Delete(path, h.onboarding.Delete(t))
			}
			r.Get("/flow", h.onboarding.Flow)
		})

		r.Get("/reports", h.reports.List)
		r.Patch("/reports/{id}", h.reports.Patch)
		r.Get("/refund-requests", h.refunds.List)
		r.Patch("/refund-requests/{id}", h.refunds.Patch)
		r.Get("/support-tickets", h.support.List)
		r.Patch("/support-tickets/{id}", h.support.Patch)

		r.Get("/characters", h.characters.List)
		r.Post("/characters/create", h.characters.Create)
		r.Post("/characters/update", h.characters.Update)
		r.Post("/characters/delete", h.characters.Delete)
		r.Post("/characters/{id}/generate-image", h.characters.GenerateImage)
	})

	return r
}

// adminGate rate limits by IP, then requires a valid token with an admin role.
func adminGate(cfg *config.Config, validator tokenValidator) middleware.Middleware {
	return middleware.Chain(
		middleware.RateLimit(cfg.RateLimit),
		middleware.Auth(validator, cfg.Auth.IsAdminRole),
		middleware.AdminOnly,
	)
}
