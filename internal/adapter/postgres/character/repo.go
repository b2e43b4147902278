// Package character implements the AI character repository using PostgreSQL.
package character

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

const table = "characters"

var columns = []string{
	"id", "name", "description", "personality", "image_prompt", "image_url", "is_active", "created_at", "updated_at",
}

// Repo provides character persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new character repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a character.
func (r *Repo) Create(ctx context.Context, c *domain.Character) (*domain.Character, error) {
	insert := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.Name, c.Description, c.Personality, c.ImagePrompt, c.ImageURL, c.IsActive, c.CreatedAt, c.UpdatedAt).
		Suffix(postgres.Returning(columns))
	return r.one(ctx, c.ID, insert)
}

// GetByID returns a character or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	return r.one(ctx, id, postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}))
}

// List returns all characters by name.
func (r *Repo) List(ctx context.Context) ([]domain.Character, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	out := []domain.Character{}
	if err := postgres.Select(ctx, q, &out, postgres.Builder.Select(columns...).From(table).OrderBy("name", "id")); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return out, nil
}

// Update applies a partial update. An empty string clears nullable text.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CharacterUpdateParams, now time.Time) (*domain.Character, error) {
	update := postgres.Builder.Update(table).Set("updated_at", now).Where(sq.Eq{"id": id})
	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	for _, f := range []struct {
		col string
		v   *string
	}{
		{"description", params.Description},
		{"personality", params.Personality},
		{"image_prompt", params.ImagePrompt},
		{"image_url", params.ImageURL},
	} {
		if f.v != nil {
			update = update.Set(f.col, nullIfEmpty(*f.v))
		}
	}
	if params.IsActive != nil {
		update = update.Set("is_active", *params.IsActive)
	}
	return r.one(ctx, id, update.Suffix(postgres.Returning(columns)))
}

// Delete removes a character.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "character", id)
	}
	if n == 0 {
		return fmt.Errorf("character %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) one(ctx context.Context, id uuid.UUID, query sq.Sqlizer) (*domain.Character, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.Character
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "character", id)
	}
	return &out, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
