package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

// CreateCategory creates an inactive category at the lowest free position
// within its game.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.categories.SortOrders(ctx, input.GameID)
	if err != nil {
		return nil, fmt.Errorf("load sort orders: %w", err)
	}

	now := s.now()
	c, err := s.categories.Create(ctx, &domain.Category{
		ID:          uuid.New(),
		GameID:      input.GameID,
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Emoji:       trimOrNil(input.Emoji),
		SortOrder:   domain.NextPosition(taken),
		IsActive:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", c.ID.String()),
		slog.String("game_id", c.GameID.String()),
		slog.Int("sort_order", c.SortOrder),
	)
	return c, nil
}

// ListCategories returns categories of one game, or of all games when
// gameID is nil.
func (s *Service) ListCategories(ctx context.Context, gameID *uuid.UUID) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory applies a partial update to a category.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.Update(ctx, input.ID, domain.CategoryUpdateParams{
		Name:        trimPtr(input.Name),
		Description: trimPtr(input.Description),
		Emoji:       trimPtr(input.Emoji),
		SortOrder:   input.SortOrder,
	}, s.now())
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.log.InfoContext(ctx, "category updated", slog.String("category_id", c.ID.String()))
	return c, nil
}

// ToggleCategory sets or flips a category's visibility.
func (s *Service) ToggleCategory(ctx context.Context, input ToggleCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.SetActive(ctx, input.ID, input.IsActive, s.now())
	if err != nil {
		return nil, fmt.Errorf("toggle category: %w", err)
	}

	s.log.InfoContext(ctx, "category toggled",
		slog.String("category_id", c.ID.String()),
		slog.Bool("is_active", c.IsActive),
	)
	return c, nil
}

// DeleteCategory removes a category and its questions. Its position
// becomes free for the next category created in the game.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", id.String()))
	return nil
}
