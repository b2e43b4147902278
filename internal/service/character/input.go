package character

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/validate"
)

// CreateCharacterInput holds the parameters for creating a character.
type CreateCharacterInput struct {
	Name        string  `json:"name"         validate:"required,notblank,max=100"`
	Description *string `json:"description"  validate:"omitempty,max=2000"`
	Personality *string `json:"personality"  validate:"omitempty,max=4000"`
	ImagePrompt *string `json:"image_prompt" validate:"omitempty,max=1000"`
	ImageURL    *string `json:"image_url"    validate:"omitempty,url,max=2048"`
	IsActive    *bool   `json:"is_active"`
}

func (i CreateCharacterInput) Validate() error {
	return validate.Struct(i)
}

// UpdateCharacterInput holds the parameters for a partial character update.
type UpdateCharacterInput struct {
	ID          uuid.UUID `json:"id"           validate:"required"`
	Name        *string   `json:"name"         validate:"omitempty,notblank,max=100"`
	Description *string   `json:"description"  validate:"omitempty,max=2000"`
	Personality *string   `json:"personality"  validate:"omitempty,max=4000"`
	ImagePrompt *string   `json:"image_prompt" validate:"omitempty,max=1000"`
	ImageURL    *string   `json:"image_url"    validate:"omitempty,max=2048"`
	IsActive    *bool     `json:"is_active"`
}

func (i UpdateCharacterInput) Validate() error {
	var errs []domain.FieldError
	if i.Name == nil && i.Description == nil && i.Personality == nil &&
		i.ImagePrompt == nil && i.ImageURL == nil && i.IsActive == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	return validate.StructWith(i, errs)
}
