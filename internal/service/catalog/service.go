// Package catalog manages game content: categories and their questions.
package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

type categoryRepo interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, gameID *uuid.UUID) ([]domain.Category, error)
	SortOrders(ctx context.Context, gameID uuid.UUID) ([]int, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams, now time.Time) (*domain.Category, error)
	SetActive(ctx context.Context, id uuid.UUID, active *bool, now time.Time) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type questionRepo interface {
	Create(ctx context.Context, q *domain.Question) (*domain.Question, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service provides category and question management.
type Service struct {
	categories categoryRepo
	questions  questionRepo
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, categories categoryRepo, questions questionRepo) *Service {
	return &Service{
		categories: categories,
		questions:  questions,
		log:        log.With("service", "catalog"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
