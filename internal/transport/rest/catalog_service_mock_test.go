package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/service/catalog"
	"sync"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	CreateCategoryFunc func(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error)
	CreateQuestionFunc func(ctx context.Context, input catalog.CreateQuestionInput) (*domain.Question, error)
	DeleteCategoryFunc func(ctx context.Context, id uuid.UUID) error
	DeleteQuestionFunc func(ctx context.Context, id uuid.UUID) error
	ListCategoriesFunc func(ctx context.Context, gameID *uuid.UUID) ([]domain.Category, error)
	ListQuestionsFunc  func(ctx context.Context, categoryID uuid.UUID) ([]domain.Question, error)
	ToggleCategoryFunc func(ctx context.Context, input catalog.ToggleCategoryInput) (*domain.Category, error)
	UpdateCategoryFunc func(ctx context.Context, input catalog.UpdateCategoryInput) (*domain.Category, error)

	calls struct {
		CreateCategory []struct {
			Ctx   context.Context
			Input catalog.CreateCategoryInput
		}
		CreateQuestion []struct {
			Ctx   context.Context
			Input catalog.CreateQuestionInput
		}
		DeleteCategory []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteQuestion []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListCategories []struct {
			Ctx    context.Context
			GameID *uuid.UUID
		}
		ListQuestions []struct {
			Ctx        context.Context
			CategoryID uuid.UUID
		}
		ToggleCategory []struct {
			Ctx   context.Context
			Input catalog.ToggleCategoryInput
		}
		UpdateCategory []struct {
			Ctx   context.Context
			Input catalog.UpdateCategoryInput
		}
	}
	lockCreateCategory sync.RWMutex
	lockCreateQuestion sync.RWMutex
	lockDeleteCategory sync.RWMutex
	lockDeleteQuestion sync.RWMutex
	lockListCategories sync.RWMutex
	lockListQuestions  sync.RWMutex
	lockToggleCategory sync.RWMutex
	lockUpdateCategory sync.RWMutex
}

func (mock *catalogServiceMock) CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("catalogServiceMock.CreateCategoryFunc: method is nil but catalogService.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateCategoryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateCategoryCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateCategoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.CreateCategoryInput
	}
	mock.lockCreateCategory.RLock()
	calls = mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateQuestion(ctx context.Context, input catalog.CreateQuestionInput) (*domain.Question, error) {
	if mock.CreateQuestionFunc == nil {
		panic("catalogServiceMock.CreateQuestionFunc: method is nil but catalogService.CreateQuestion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateQuestionInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateQuestion.Lock()
	mock.calls.CreateQuestion = append(mock.calls.CreateQuestion, callInfo)
	mock.lockCreateQuestion.Unlock()
	return mock.CreateQuestionFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateQuestionCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateQuestionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.CreateQuestionInput
	}
	mock.lockCreateQuestion.RLock()
	calls = mock.calls.CreateQuestion
	mock.lockCreateQuestion.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteCategoryFunc == nil {
		panic("catalogServiceMock.DeleteCategoryFunc: method is nil but catalogService.DeleteCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteCategory.Lock()
	mock.calls.DeleteCategory = append(mock.calls.DeleteCategory, callInfo)
	mock.lockDeleteCategory.Unlock()
	return mock.DeleteCategoryFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteCategoryCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDeleteCategory.RLock()
	calls = mock.calls.DeleteCategory
	mock.lockDeleteCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteQuestionFunc == nil {
		panic("catalogServiceMock.DeleteQuestionFunc: method is nil but catalogService.DeleteQuestion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteQuestion.Lock()
	mock.calls.DeleteQuestion = append(mock.calls.DeleteQuestion, callInfo)
	mock.lockDeleteQuestion.Unlock()
	return mock.DeleteQuestionFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteQuestionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDeleteQuestion.RLock()
	calls = mock.calls.DeleteQuestion
	mock.lockDeleteQuestion.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListCategories(ctx context.Context, gameID *uuid.UUID) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("catalogServiceMock.ListCategoriesFunc: method is nil but catalogService.ListCategories was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		GameID *uuid.UUID
	}{Ctx: ctx, GameID: gameID}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx, gameID)
}

func (mock *catalogServiceMock) ListCategoriesCalls() []struct {
	Ctx    context.Context
	GameID *uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		GameID *uuid.UUID
	}
	mock.lockListCategories.RLock()
	calls = mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListQuestions(ctx context.Context, categoryID uuid.UUID) ([]domain.Question, error) {
	if mock.ListQuestionsFunc == nil {
		panic("catalogServiceMock.ListQuestionsFunc: method is nil but catalogService.ListQuestions was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID uuid.UUID
	}{Ctx: ctx, CategoryID: categoryID}
	mock.lockListQuestions.Lock()
	mock.calls.ListQuestions = append(mock.calls.ListQuestions, callInfo)
	mock.lockListQuestions.Unlock()
	return mock.ListQuestionsFunc(ctx, categoryID)
}

func (mock *catalogServiceMock) ListQuestionsCalls() []struct {
	Ctx        context.Context
	CategoryID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		CategoryID uuid.UUID
	}
	mock.lockListQuestions.RLock()
	calls = mock.calls.ListQuestions
	mock.lockListQuestions.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ToggleCategory(ctx context.Context, input catalog.ToggleCategoryInput) (*domain.Category, error) {
	if mock.ToggleCategoryFunc == nil {
		panic("catalogServiceMock.ToggleCategoryFunc: method is nil but catalogService.ToggleCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.ToggleCategoryInput
	}{Ctx: ctx, Input: input}
	mock.lockToggleCategory.Lock()
	mock.calls.ToggleCategory = append(mock.calls.ToggleCategory, callInfo)
	mock.lockToggleCategory.Unlock()
	return mock.ToggleCategoryFunc(ctx, input)
}

func (mock *catalogServiceMock) ToggleCategoryCalls() []struct {
	Ctx   context.Context
	Input catalog.ToggleCategoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.ToggleCategoryInput
	}
	mock.lockToggleCategory.RLock()
	calls = mock.calls.ToggleCategory
	mock.lockToggleCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateCategory(ctx context.Context, input catalog.UpdateCategoryInput) (*domain.Category, error) {
	if mock.UpdateCategoryFunc == nil {
		panic("catalogServiceMock.UpdateCategoryFunc: method is nil but catalogService.UpdateCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.UpdateCategoryInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateCategory.Lock()
	mock.calls.UpdateCategory = append(mock.calls.UpdateCategory, callInfo)
	mock.lockUpdateCategory.Unlock()
	return mock.UpdateCategoryFunc(ctx, input)
}

func (mock *catalogServiceMock) UpdateCategoryCalls() []struct {
	Ctx   context.Context
	Input catalog.UpdateCategoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.UpdateCategoryInput
	}
	mock.lockUpdateCategory.RLock()
	calls = mock.calls.UpdateCategory
	mock.lockUpdateCategory.RUnlock()
	return calls
}
