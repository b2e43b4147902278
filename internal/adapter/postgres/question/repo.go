// Package question implements the game question repository using PostgreSQL.
package question

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

const table = "questions"

var columns = []string{"id", "category_id", "text", "is_active", "created_at", "updated_at"}

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new question repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a question. An unknown category maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, qn *domain.Question) (*domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(qn.ID, qn.CategoryID, qn.Text, qn.IsActive, qn.CreatedAt, qn.UpdatedAt).
		Suffix(postgres.Returning(columns))

	var out domain.Question
	if err := postgres.Get(ctx, q, &out, insert); err != nil {
		return nil, postgres.MapError(err, "question", qn.ID)
	}
	return &out, nil
}

// ListByCategory returns a category's questions in creation order.
func (r *Repo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("created_at", "id")

	out := []domain.Question{}
	if err := postgres.Select(ctx, q, &out, query); err != nil {
		return nil, fmt.Errorf("list questions for category %s: %w", categoryID, err)
	}
	return out, nil
}

// Delete removes a question.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "question", id)
	}
	if n == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
