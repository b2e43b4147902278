package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres/category"
	characterrepo "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres/character"
	"github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres/credential"
	devicerepo "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres/device"
	ticketrepo "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres/moderation"
	screenrepo "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres/onboarding"
	questionrepo "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/opsdesk-backend/internal/adapter/provider/imagegen"
	"github.com/heartmarshall/opsdesk-backend/internal/auth"
	"github.com/heartmarshall/opsdesk-backend/internal/config"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/metrics"
	"github.com/heartmarshall/opsdesk-backend/internal/secret"
	"github.com/heartmarshall/opsdesk-backend/internal/service/catalog"
	"github.com/heartmarshall/opsdesk-backend/internal/service/character"
	"github.com/heartmarshall/opsdesk-backend/internal/service/device"
	"github.com/heartmarshall/opsdesk-backend/internal/service/moderation"
	"github.com/heartmarshall/opsdesk-backend/internal/service/onboarding"
	"github.com/heartmarshall/opsdesk-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, err := NewHandler(cfg, logger, pool, reg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// NewHandler wires repositories, services and REST handlers over pool and
// returns the root HTTP handler. Metrics are registered on reg.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, reg *prometheus.Registry) (http.Handler, error) {
	key, err := config.ParseSealingKey(cfg.Credentials.SealingKey)
	if err != nil {
		return nil, fmt.Errorf("sealing key: %w", err)
	}

	m := metrics.New(serviceName, reg)

	txm := postgres.NewTxManager(pool)
	sealer := secret.New(key)

	// Repositories
	devices := devicerepo.New(pool)
	profiles := credential.NewICloudRepo(pool)
	accounts := credential.NewSocialRepo(pool)
	proxies := credential.NewProxyRepo(pool)
	categories := categoryrepo.New(pool)
	questions := questionrepo.New(pool)
	screens := screenrepo.New(pool)
	characters := characterrepo.New(pool)

	// Services
	allocator := device.NewBatchAllocator(logger, profiles, proxies, accounts, m)
	deviceSvc := device.NewService(logger, devices, profiles, accounts, proxies, allocator, sealer, txm)
	catalogSvc := catalog.NewService(logger, categories, questions)
	onboardingSvc := onboarding.NewService(logger, screens, txm)
	characterSvc := character.NewService(logger, characters, imagegen.NewProvider(cfg.ImageGen, logger), m)

	reports := moderation.NewQueue[domain.Report](logger, ticketrepo.NewReports(pool), txm, m)
	refunds := moderation.NewQueue[domain.RefundRequest](logger, ticketrepo.NewRefundRequests(pool), txm, m)
	support := moderation.NewQueue[domain.SupportTicket](logger, ticketrepo.NewSupportTickets(pool), txm, m)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)

	return newRouter(cfg, logger, m, reg, jwtManager, handlers{
		health:      rest.NewHealthHandler(pool, Version),
		devices:     rest.NewDeviceHandler(deviceSvc, logger),
		credentials: rest.NewCredentialHandler(deviceSvc, logger),
		catalog:     rest.NewCatalogHandler(catalogSvc, logger),
		onboarding:  rest.NewOnboardingHandler(onboardingSvc, logger),
		reports:     rest.NewTicketHandler[domain.Report](reports, logger),
		refunds:     rest.NewTicketHandler[domain.RefundRequest](refunds, logger),
		support:     rest.NewTicketHandler[domain.SupportTicket](support, logger),
		characters:  rest.NewCharacterHandler(characterSvc, logger),
	}), nil
}
