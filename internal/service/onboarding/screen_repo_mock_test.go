package onboarding

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"sync"
	"time"
)

var _ screenRepo = &screenRepoMock{}

type screenRepoMock struct {
	CreateFunc     func(ctx context.Context, s *domain.OnboardingScreen) (*domain.OnboardingScreen, error)
	DeleteFunc     func(ctx context.Context, t domain.ScreenType, id uuid.UUID) error
	GetByIDFunc    func(ctx context.Context, t domain.ScreenType, id uuid.UUID) (*domain.OnboardingScreen, error)
	ListFunc       func(ctx context.Context, t domain.ScreenType) ([]domain.OnboardingScreen, error)
	PositionsFunc  func(ctx context.Context, t domain.ScreenType) ([]int, error)
	UnlinkNextFunc func(ctx context.Context, id uuid.UUID, now time.Time) error
	UpdateFunc     func(ctx context.Context, t domain.ScreenType, id uuid.UUID, params domain.ScreenUpdateParams, now time.Time) (*domain.OnboardingScreen, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.OnboardingScreen
		}
		Delete []struct {
			Ctx context.Context
			T   domain.ScreenType
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			T   domain.ScreenType
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			T   domain.ScreenType
		}
		Positions []struct {
			Ctx context.Context
			T   domain.ScreenType
		}
		UnlinkNext []struct {
			Ctx context.Context
			ID  uuid.UUID
			Now time.Time
		}
		Update []struct {
			Ctx    context.Context
			T      domain.ScreenType
			ID     uuid.UUID
			Params domain.ScreenUpdateParams
			Now    time.Time
		}
	}
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
	lockPositions  sync.RWMutex
	lockUnlinkNext sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *screenRepoMock) Create(ctx context.Context, s *domain.OnboardingScreen) (*domain.OnboardingScreen, error) {
	if mock.CreateFunc == nil {
		panic("screenRepoMock.CreateFunc: method is nil but screenRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.OnboardingScreen
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *screenRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.OnboardingScreen
} {
	var calls []struct {
		Ctx context.Context
		S   *domain.OnboardingScreen
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *screenRepoMock) Delete(ctx context.Context, t domain.ScreenType, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("screenRepoMock.DeleteFunc: method is nil but screenRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.ScreenType
		ID  uuid.UUID
	}{Ctx: ctx, T: t, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, t, id)
}

func (mock *screenRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	T   domain.ScreenType
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		T   domain.ScreenType
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *screenRepoMock) GetByID(ctx context.Context, t domain.ScreenType, id uuid.UUID) (*domain.OnboardingScreen, error) {
	if mock.GetByIDFunc == nil {
		panic("screenRepoMock.GetByIDFunc: method is nil but screenRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.ScreenType
		ID  uuid.UUID
	}{Ctx: ctx, T: t, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, t, id)
}

func (mock *screenRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	T   domain.ScreenType
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		T   domain.ScreenType
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *screenRepoMock) List(ctx context.Context, t domain.ScreenType) ([]domain.OnboardingScreen, error) {
	if mock.ListFunc == nil {
		panic("screenRepoMock.ListFunc: method is nil but screenRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.ScreenType
	}{Ctx: ctx, T: t}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, t)
}

func (mock *screenRepoMock) ListCalls() []struct {
	Ctx context.Context
	T   domain.ScreenType
} {
	var calls []struct {
		Ctx context.Context
		T   domain.ScreenType
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *screenRepoMock) Positions(ctx context.Context, t domain.ScreenType) ([]int, error) {
	if mock.PositionsFunc == nil {
		panic("screenRepoMock.PositionsFunc: method is nil but screenRepo.Positions was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.ScreenType
	}{Ctx: ctx, T: t}
	mock.lockPositions.Lock()
	mock.calls.Positions = append(mock.calls.Positions, callInfo)
	mock.lockPositions.Unlock()
	return mock.PositionsFunc(ctx, t)
}

func (mock *screenRepoMock) PositionsCalls() []struct {
	Ctx context.Context
	T   domain.ScreenType
} {
	var calls []struct {
		Ctx context.Context
		T   domain.ScreenType
	}
	mock.lockPositions.RLock()
	calls = mock.calls.Positions
	mock.lockPositions.RUnlock()
	return calls
}

func (mock *screenRepoMock) UnlinkNext(ctx context.Context, id uuid.UUID, now time.Time) error {
	if mock.UnlinkNextFunc == nil {
		panic("screenRepoMock.UnlinkNextFunc: method is nil but screenRepo.UnlinkNext was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Now time.Time
	}{Ctx: ctx, ID: id, Now: now}
	mock.lockUnlinkNext.Lock()
	mock.calls.UnlinkNext = append(mock.calls.UnlinkNext, callInfo)
	mock.lockUnlinkNext.Unlock()
	return mock.UnlinkNextFunc(ctx, id, now)
}

func (mock *screenRepoMock) UnlinkNextCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Now time.Time
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		Now time.Time
	}
	mock.lockUnlinkNext.RLock()
	calls = mock.calls.UnlinkNext
	mock.lockUnlinkNext.RUnlock()
	return calls
}

func (mock *screenRepoMock) Update(ctx context.Context, t domain.ScreenType, id uuid.UUID, params domain.ScreenUpdateParams, now time.Time) (*domain.OnboardingScreen, error) {
	if mock.UpdateFunc == nil {
		panic("screenRepoMock.UpdateFunc: method is nil but screenRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		T      domain.ScreenType
		ID     uuid.UUID
		Params domain.ScreenUpdateParams
		Now    time.Time
	}{Ctx: ctx, T: t, ID: id, Params: params, Now: now}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t, id, params, now)
}

func (mock *screenRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	T      domain.ScreenType
	ID     uuid.UUID
	Params domain.ScreenUpdateParams
	Now    time.Time
} {
	var calls []struct {
		Ctx    context.Context
		T      domain.ScreenType
		ID     uuid.UUID
		Params domain.ScreenUpdateParams
		Now    time.Time
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
