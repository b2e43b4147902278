package onboarding

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/validate"
)

// CreateScreenInput holds the parameters for creating a screen. A nil
// OrderPosition places the screen at the lowest free position of its type.
type CreateScreenInput struct {
	Type          domain.ScreenType  `json:"screen_type"    validate:"required,oneof=quiz conversion"`
	ComponentID   domain.ComponentID `json:"component_id"   validate:"required"`
	Title         string             `json:"title"          validate:"required,notblank,max=200"`
	Subtitle      *string            `json:"subtitle"       validate:"omitempty,max=500"`
	Options       json.RawMessage    `json:"options"`
	OrderPosition *int               `json:"order_position" validate:"omitempty,gte=1"`
	ShouldShow    *bool              `json:"should_show"`
	NextScreenID  *uuid.UUID         `json:"next_screen_id"`
}

func (i CreateScreenInput) Validate() error {
	var errs []domain.FieldError
	if i.Type.IsValid() && i.ComponentID != "" && !i.Type.Allows(i.ComponentID) {
		errs = append(errs, domain.FieldError{
			Field:   "component_id",
			Message: "not allowed on " + i.Type.String() + " screens",
		})
	}
	return validate.StructWith(i, errs)
}

// UpdateScreenInput holds the parameters for a partial screen update.
// ClearNextScreen unlinks the explicit next screen and wins over NextScreenID.
type UpdateScreenInput struct {
	Type            domain.ScreenType   `json:"screen_type"    validate:"required,oneof=quiz conversion"`
	ID              uuid.UUID           `json:"id"             validate:"required"`
	ComponentID     *domain.ComponentID `json:"component_id"   validate:"omitempty,notblank"`
	Title           *string             `json:"title"          validate:"omitempty,notblank,max=200"`
	Subtitle        *string             `json:"subtitle"       validate:"omitempty,max=500"`
	Options         json.RawMessage     `json:"options"`
	OrderPosition   *int                `json:"order_position" validate:"omitempty,gte=1"`
	ShouldShow      *bool               `json:"should_show"`
	NextScreenID    *uuid.UUID          `json:"next_screen_id"`
	ClearNextScreen bool                `json:"clear_next_screen"`
}

func (i UpdateScreenInput) Validate() error {
	var errs []domain.FieldError
	if i.ComponentID == nil && i.Title == nil && i.Subtitle == nil && i.Options == nil &&
		i.OrderPosition == nil && i.ShouldShow == nil && i.NextScreenID == nil && !i.ClearNextScreen {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.NextScreenID != nil && *i.NextScreenID == i.ID {
		errs = append(errs, domain.FieldError{Field: "next_screen_id", Message: "screen cannot link to itself"})
	}
	return validate.StructWith(i, errs)
}
