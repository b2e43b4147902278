// Package onboarding manages the quiz and conversion onboarding screens and
// the flow graph connecting them.
package onboarding

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

type screenRepo interface {
	Create(ctx context.Context, s *domain.OnboardingScreen) (*domain.OnboardingScreen, error)
	GetByID(ctx context.Context, t domain.ScreenType, id uuid.UUID) (*domain.OnboardingScreen, error)
	List(ctx context.Context, t domain.ScreenType) ([]domain.OnboardingScreen, error)
	Positions(ctx context.Context, t domain.ScreenType) ([]int, error)
	Update(ctx context.Context, t domain.ScreenType, id uuid.UUID, params domain.ScreenUpdateParams, now time.Time) (*domain.OnboardingScreen, error)
	Delete(ctx context.Context, t domain.ScreenType, id uuid.UUID) error
	UnlinkNext(ctx context.Context, id uuid.UUID, now time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides onboarding screen operations.
type Service struct {
	screens screenRepo
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new onboarding service.
func NewService(log *slog.Logger, screens screenRepo, tx txManager) *Service {
	return &Service{
		screens: screens,
		tx:      tx,
		log:     log.With("service", "onboarding"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}
