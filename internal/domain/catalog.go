package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups game content within a game. SortOrder is its position
// among the game's categories.
type Category struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	GameID      uuid.UUID `db:"game_id"     json:"game_id"`
	Name        string    `db:"name"        json:"name"`
	Description *string   `db:"description" json:"description"`
	Emoji       *string   `db:"emoji"       json:"emoji"`
	SortOrder   int       `db:"sort_order"  json:"sort_order"`
	IsActive    bool      `db:"is_active"   json:"is_active"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}

// CategoryUpdateParams holds optional fields for a partial category update.
type CategoryUpdateParams struct {
	Name        *string
	Description *string
	Emoji       *string
	SortOrder   *int
}

// Question is a quiz prompt shown inside a category.
type Question struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	CategoryID uuid.UUID `db:"category_id" json:"category_id"`
	Text       string    `db:"text"        json:"text"`
	IsActive   bool      `db:"is_active"   json:"is_active"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"  json:"updated_at"`
}
