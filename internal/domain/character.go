package domain

import (
	"time"

	"github.com/google/uuid"
)

// Character is an AI persona users chat with in roleplay scenarios.
type Character struct {
	ID          uuid.UUID `db:"id"           json:"id"`
	Name        string    `db:"name"         json:"name"`
	Description *string   `db:"description"  json:"description"`
	Personality *string   `db:"personality"  json:"personality"`
	ImagePrompt *string   `db:"image_prompt" json:"image_prompt"`
	ImageURL    *string   `db:"image_url"    json:"image_url"`
	IsActive    bool      `db:"is_active"    json:"is_active"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}

// CharacterUpdateParams holds optional fields for a partial character update.
type CharacterUpdateParams struct {
	Name        *string
	Description *string
	Personality *string
	ImagePrompt *string
	ImageURL    *string
	IsActive    *bool
}
