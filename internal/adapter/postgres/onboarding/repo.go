// Package onboarding implements onboarding screen persistence. Each screen
// type lives in its own staging table with an identical layout.
package onboarding

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

var tables = map[domain.ScreenType]string{
	domain.ScreenTypeQuiz:       "quiz_screens_staging",
	domain.ScreenTypeConversion: "conversion_screens_staging",
}

var columns = []string{
	"id", "component_id", "title", "subtitle", "options", "order_position",
	"should_show", "next_screen_id", "created_at", "updated_at",
}

// Repo provides onboarding screen persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new onboarding screen repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func tableFor(t domain.ScreenType) (string, error) {
	name, ok := tables[t]
	if !ok {
		return "", domain.NewValidationError("screen_type", fmt.Sprintf("unknown screen type %q", t))
	}
	return name, nil
}

// Create inserts a screen into the table of its type.
func (r *Repo) Create(ctx context.Context, s *domain.OnboardingScreen) (*domain.OnboardingScreen, error) {
	table, err := tableFor(s.Type)
	if err != nil {
		return nil, err
	}

	insert := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(s.ID, string(s.ComponentID), s.Title, s.Subtitle, s.Options, s.OrderPosition,
			s.ShouldShow, s.NextScreenID, s.CreatedAt, s.UpdatedAt).
		Suffix(postgres.Returning(columns))

	return r.one(ctx, s.Type, s.ID, insert)
}

// GetByID returns a screen of the given type or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, t domain.ScreenType, id uuid.UUID) (*domain.OnboardingScreen, error) {
	table, err := tableFor(t)
	if err != nil {
		return nil, err
	}
	return r.one(ctx, t, id, postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}))
}

// List returns the screens of a type ordered by position.
func (r *Repo) List(ctx context.Context, t domain.ScreenType) ([]domain.OnboardingScreen, error) {
	table, err := tableFor(t)
	if err != nil {
		return nil, err
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	out := []domain.OnboardingScreen{}
	query := postgres.Builder.Select(columns...).From(table).OrderBy("order_position", "created_at")
	if err := postgres.Select(ctx, q, &out, query); err != nil {
		return nil, fmt.Errorf("list %s screens: %w", t, err)
	}
	for i := range out {
		out[i].Type = t
	}
	return out, nil
}

// Positions returns the order positions taken by screens of a type.
func (r *Repo) Positions(ctx context.Context, t domain.ScreenType) ([]int, error) {
	table, err := tableFor(t)
	if err != nil {
		return nil, err
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	out := []int{}
	if err := postgres.Select(ctx, q, &out, postgres.Builder.Select("order_position").From(table)); err != nil {
		return nil, fmt.Errorf("%s screen positions: %w", t, err)
	}
	return out, nil
}

// Update applies a partial update.
func (r *Repo) Update(ctx context.Context, t domain.ScreenType, id uuid.UUID, params domain.ScreenUpdateParams, now time.Time) (*domain.OnboardingScreen, error) {
	table, err := tableFor(t)
	if err != nil {
		return nil, err
	}

	update := postgres.Builder.Update(table).Set("updated_at", now).Where(sq.Eq{"id": id})
	if params.ComponentID != nil {
		update = update.Set("component_id", string(*params.ComponentID))
	}
	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Subtitle != nil {
		update = update.Set("subtitle", nullIfEmpty(*params.Subtitle))
	}
	if params.Options != nil {
		update = update.Set("options", params.Options)
	}
	if params.OrderPosition != nil {
		update = update.Set("order_position", *params.OrderPosition)
	}
	if params.ShouldShow != nil {
		update = update.Set("should_show", *params.ShouldShow)
	}
	switch {
	case params.ClearNextScreen:
		update = update.Set("next_screen_id", nil)
	case params.NextScreenID != nil:
		update = update.Set("next_screen_id", *params.NextScreenID)
	}

	return r.one(ctx, t, id, update.Suffix(postgres.Returning(columns)))
}

// Delete removes a screen.
func (r *Repo) Delete(ctx context.Context, t domain.ScreenType, id uuid.UUID) error {
	table, err := tableFor(t)
	if err != nil {
		return err
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "onboarding_screen", id)
	}
	if n == 0 {
		return fmt.Errorf("onboarding_screen %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UnlinkNext clears next_screen_id on every screen of any type pointing at id.
func (r *Repo) UnlinkNext(ctx context.Context, id uuid.UUID, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	for _, t := range []domain.ScreenType{domain.ScreenTypeQuiz, domain.ScreenTypeConversion} {
		update := postgres.Builder.
			Update(tables[t]).
			Set("next_screen_id", nil).
			Set("updated_at", now).
			Where(sq.Eq{"next_screen_id": id})
		if _, err := postgres.Exec(ctx, q, update); err != nil {
			return fmt.Errorf("unlink %s screens from %s: %w", t, id, err)
		}
	}
	return nil
}

func (r *Repo) one(ctx context.Context, t domain.ScreenType, id uuid.UUID, query sq.Sqlizer) (*domain.OnboardingScreen, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out domain.OnboardingScreen
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "onboarding_screen", id)
	}
	out.Type = t
	return &out, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
