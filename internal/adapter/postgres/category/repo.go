// Package category implements the game category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

const table = "categories"

var columns = []string{
	"id", "game_id", "name", "description", "emoji", "sort_order", "is_active", "created_at", "updated_at",
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new category repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a category.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.GameID, c.Name, c.Description, c.Emoji, c.SortOrder, c.IsActive, c.CreatedAt, c.UpdatedAt).
		Suffix(postgres.Returning(columns))

	var out domain.Category
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return nil, postgres.MapError(err, "category", c.ID)
	}
	return &out, nil
}

// GetByID returns a category or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Category
	query := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &out, nil
}

// List returns categories ordered by game and sort order. A nil gameID
// lists every game.
func (r *Repo) List(ctx context.Context, gameID *uuid.UUID) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(columns...).From(table).OrderBy("game_id", "sort_order", "created_at")
	if gameID != nil {
		query = query.Where(sq.Eq{"game_id": *gameID})
	}

	out := []domain.Category{}
	if err := postgres.Select(ctx, q, &out, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// SortOrders returns the sort orders taken within a game.
func (r *Repo) SortOrders(ctx context.Context, gameID uuid.UUID) ([]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	out := []int{}
	query := postgres.Builder.Select("sort_order").From(table).Where(sq.Eq{"game_id": gameID})
	if err := postgres.Select(ctx, q, &out, query); err != nil {
		return nil, fmt.Errorf("sort orders for game %s: %w", gameID, err)
	}
	return out, nil
}

// Update applies a partial update.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams, now time.Time) (*domain.Category, error) {
	update := postgres.Builder.Update(table).Set("updated_at", now).Where(sq.Eq{"id": id})
	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		update = update.Set("description", nullIfEmpty(*params.Description))
	}
	if params.Emoji != nil {
		update = update.Set("emoji", nullIfEmpty(*params.Emoji))
	}
	if params.SortOrder != nil {
		update = update.Set("sort_order", *params.SortOrder)
	}
	return r.returning(ctx, id, update)
}

// SetActive sets the visibility flag. A nil value flips the current one.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active *bool, now time.Time) (*domain.Category, error) {
	update := postgres.Builder.Update(table).Set("updated_at", now).Where(sq.Eq{"id": id})
	if active != nil {
		update = update.Set("is_active", *active)
	} else {
		update = update.Set("is_active", sq.Expr("NOT is_active"))
	}
	return r.returning(ctx, id, update)
}

// Delete removes a category and, by cascade, its questions.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if n == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) returning(ctx context.Context, id uuid.UUID, update sq.UpdateBuilder) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Category
	if err := postgres.Get(ctx, q, &out, update.Suffix(postgres.Returning(columns))); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &out, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
