package catalog

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/validate"
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	GameID      uuid.UUID `json:"gameId"      validate:"required"`
	Name        string    `json:"name"        validate:"required,notblank,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
	Emoji       *string   `json:"emoji"       validate:"omitempty,max=16"`
}

func (i CreateCategoryInput) Validate() error {
	return validate.Struct(i)
}

// UpdateCategoryInput holds the parameters for a partial category update.
// SortOrder overrides the allocated position.
type UpdateCategoryInput struct {
	ID          uuid.UUID `json:"id"          validate:"required"`
	Name        *string   `json:"name"        validate:"omitempty,notblank,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
	Emoji       *string   `json:"emoji"       validate:"omitempty,max=16"`
	SortOrder   *int      `json:"sort_order"  validate:"omitempty,gte=1"`
}

func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError
	if i.Name == nil && i.Description == nil && i.Emoji == nil && i.SortOrder == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	return validate.StructWith(i, errs)
}

// ToggleCategoryInput sets a category's visibility. A nil IsActive flips it.
type ToggleCategoryInput struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	IsActive *bool     `json:"is_active"`
}

func (i ToggleCategoryInput) Validate() error {
	return validate.Struct(i)
}

// CreateQuestionInput holds the parameters for adding a question.
type CreateQuestionInput struct {
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	Text       string    `json:"text"        validate:"required,notblank,max=1000"`
	IsActive   *bool     `json:"is_active"`
}

func (i CreateQuestionInput) Validate() error {
	return validate.Struct(i)
}
