package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

// CreateScreen validates the component payload and stores a new screen.
func (s *Service) CreateScreen(ctx context.Context, input CreateScreenInput) (*domain.OnboardingScreen, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	options, err := canonicalOptions(input.ComponentID, input.Options)
	if err != nil {
		return nil, err
	}

	position := 0
	if input.OrderPosition != nil {
		position = *input.OrderPosition
	} else {
		taken, err := s.screens.Positions(ctx, input.Type)
		if err != nil {
			return nil, fmt.Errorf("load positions: %w", err)
		}
		position = domain.NextPosition(taken)
	}

	shouldShow := true
	if input.ShouldShow != nil {
		shouldShow = *input.ShouldShow
	}

	now := s.now()
	screen, err := s.screens.Create(ctx, &domain.OnboardingScreen{
		ID:            uuid.New(),
		Type:          input.Type,
		ComponentID:   input.ComponentID,
		Title:         strings.TrimSpace(input.Title),
		Subtitle:      trimOrNil(input.Subtitle),
		Options:       options,
		OrderPosition: position,
		ShouldShow:    shouldShow,
		NextScreenID:  input.NextScreenID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding screen created",
		slog.String("screen_id", screen.ID.String()),
		slog.String("screen_type", screen.Type.String()),
		slog.String("component_id", screen.ComponentID.String()),
		slog.Int("order_position", screen.OrderPosition),
	)
	return screen, nil
}

// ListScreens returns the screens of one type ordered by position.
func (s *Service) ListScreens(ctx context.Context, t domain.ScreenType) ([]domain.OnboardingScreen, error) {
	if !t.IsValid() {
		return nil, domain.NewValidationError("screen_type", "must be one of: quiz conversion")
	}
	screens, err := s.screens.List(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("list screens: %w", err)
	}
	return screens, nil
}

// UpdateScreen applies a partial update. Changing the component or the
// options revalidates the payload against the resulting component.
func (s *Service) UpdateScreen(ctx context.Context, input UpdateScreenInput) (*domain.OnboardingScreen, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ScreenUpdateParams{
		ComponentID:     input.ComponentID,
		Title:           trimPtr(input.Title),
		Subtitle:        trimPtr(input.Subtitle),
		OrderPosition:   input.OrderPosition,
		ShouldShow:      input.ShouldShow,
		NextScreenID:    input.NextScreenID,
		ClearNextScreen: input.ClearNextScreen,
	}

	if input.ComponentID != nil || input.Options != nil {
		current, err := s.screens.GetByID(ctx, input.Type, input.ID)
		if err != nil {
			return nil, fmt.Errorf("get screen: %w", err)
		}

		component := current.ComponentID
		if input.ComponentID != nil {
			component = *input.ComponentID
		}
		if !input.Type.Allows(component) {
			return nil, domain.NewValidationError("component_id", "not allowed on "+input.Type.String()+" screens")
		}

		raw := current.Options
		if input.Options != nil {
			raw = input.Options
		}
		params.Options, err = canonicalOptions(component, raw)
		if err != nil {
			return nil, err
		}
	}

	screen, err := s.screens.Update(ctx, input.Type, input.ID, params, s.now())
	if err != nil {
		return nil, fmt.Errorf("update screen: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding screen updated",
		slog.String("screen_id", screen.ID.String()),
		slog.String("screen_type", screen.Type.String()),
	)
	return screen, nil
}

// DeleteScreen removes a screen and clears every link pointing at it.
func (s *Service) DeleteScreen(ctx context.Context, t domain.ScreenType, id uuid.UUID) error {
	if !t.IsValid() {
		return domain.NewValidationError("screen_type", "must be one of: quiz conversion")
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.screens.Delete(txCtx, t, id); err != nil {
			return fmt.Errorf("delete screen: %w", err)
		}
		if err := s.screens.UnlinkNext(txCtx, id, s.now()); err != nil {
			return fmt.Errorf("unlink screen: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "onboarding screen deleted",
		slog.String("screen_id", id.String()),
		slog.String("screen_type", t.String()),
	)
	return nil
}

// Flow returns every screen of both types as a node/edge graph.
func (s *Service) Flow(ctx context.Context) (domain.FlowGraph, error) {
	var all []domain.OnboardingScreen
	for _, t := range []domain.ScreenType{domain.ScreenTypeQuiz, domain.ScreenTypeConversion} {
		screens, err := s.screens.List(ctx, t)
		if err != nil {
			return domain.FlowGraph{}, fmt.Errorf("list %s screens: %w", t, err)
		}
		all = append(all, screens...)
	}
	return domain.BuildFlowGraph(all), nil
}

// canonicalOptions decodes and validates raw options, then re-encodes them
// so stored payloads carry only known fields.
func canonicalOptions(component domain.ComponentID, raw json.RawMessage) (json.RawMessage, error) {
	opts, err := domain.DecodeScreenOptions(component, raw)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	return out, nil
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
