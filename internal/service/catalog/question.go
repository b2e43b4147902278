package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

// ListQuestions returns the questions of an existing category.
func (s *Service) ListQuestions(ctx context.Context, categoryID uuid.UUID) ([]domain.Question, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// CreateQuestion adds a question to a category. Questions are active
// unless stated otherwise.
func (s *Service) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := s.now()
	q, err := s.questions.Create(ctx, &domain.Question{
		ID:         uuid.New(),
		CategoryID: input.CategoryID,
		Text:       strings.TrimSpace(input.Text),
		IsActive:   active,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	s.log.InfoContext(ctx, "question created",
		slog.String("question_id", q.ID.String()),
		slog.String("category_id", q.CategoryID.String()),
	)
	return q, nil
}

// DeleteQuestion removes a question.
func (s *Service) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	s.log.InfoContext(ctx, "question deleted", slog.String("question_id", id.String()))
	return nil
}
