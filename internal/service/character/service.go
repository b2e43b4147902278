// Package character manages the AI characters offered in the app and
// their generated portraits.
package character

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/metrics"
)

type characterRepo interface {
	Create(ctx context.Context, c *domain.Character) (*domain.Character, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Character, error)
	List(ctx context.Context) ([]domain.Character, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CharacterUpdateParams, now time.Time) (*domain.Character, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type imageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Service provides character operations.
type Service struct {
	characters characterRepo
	images     imageGenerator
	metrics    *metrics.Metrics
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new character service.
func NewService(log *slog.Logger, characters characterRepo, images imageGenerator, m *metrics.Metrics) *Service {
	return &Service{
		characters: characters,
		images:     images,
		metrics:    m,
		log:        log.With("service", "character"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateCharacter creates a character. Characters start hidden unless
// IsActive is set.
func (s *Service) CreateCharacter(ctx context.Context, input CreateCharacterInput) (*domain.Character, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	c, err := s.characters.Create(ctx, &domain.Character{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Personality: trimOrNil(input.Personality),
		ImagePrompt: trimOrNil(input.ImagePrompt),
		ImageURL:    trimOrNil(input.ImageURL),
		IsActive:    input.IsActive != nil && *input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}

	s.log.InfoContext(ctx, "character created",
		slog.String("character_id", c.ID.String()),
		slog.String("name", c.Name),
	)
	return c, nil
}

// ListCharacters returns every character.
func (s *Service) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	chars, err := s.characters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return chars, nil
}

// UpdateCharacter applies a partial update. Empty strings clear optional text.
func (s *Service) UpdateCharacter(ctx context.Context, input UpdateCharacterInput) (*domain.Character, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.characters.Update(ctx, input.ID, domain.CharacterUpdateParams{
		Name:        trimPtr(input.Name),
		Description: trimPtr(input.Description),
		Personality: trimPtr(input.Personality),
		ImagePrompt: trimPtr(input.ImagePrompt),
		ImageURL:    trimPtr(input.ImageURL),
		IsActive:    input.IsActive,
	}, s.now())
	if err != nil {
		return nil, fmt.Errorf("update character: %w", err)
	}

	s.log.InfoContext(ctx, "character updated", slog.String("character_id", c.ID.String()))
	return c, nil
}

// DeleteCharacter removes a character.
func (s *Service) DeleteCharacter(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.characters.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete character: %w", err)
	}

	s.log.InfoContext(ctx, "character deleted", slog.String("character_id", id.String()))
	return nil
}

// GenerateImage renders a portrait from the character's image prompt and
// stores its URL on the character.
func (s *Service) GenerateImage(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	c, err := s.characters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get character: %w", err)
	}
	if c.ImagePrompt == nil || strings.TrimSpace(*c.ImagePrompt) == "" {
		return nil, domain.NewValidationError("image_prompt", "required")
	}

	url, err := s.images.GenerateImage(ctx, *c.ImagePrompt)
	if err != nil {
		s.metrics.ImageGenerated(imageResult(err))
		return nil, fmt.Errorf("generate image: %w", err)
	}
	s.metrics.ImageGenerated("ok")

	updated, err := s.characters.Update(ctx, id, domain.CharacterUpdateParams{ImageURL: &url}, s.now())
	if err != nil {
		return nil, fmt.Errorf("store image url: %w", err)
	}

	s.log.InfoContext(ctx, "character image generated", slog.String("character_id", id.String()))
	return updated, nil
}

func imageResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnavailable):
		return "disabled"
	case errors.Is(err, domain.ErrValidation):
		return "rejected"
	default:
		return "error"
	}
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
