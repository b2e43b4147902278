package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/service/character"
	"sync"
)

var _ characterService = &characterServiceMock{}

type characterServiceMock struct {
	CreateCharacterFunc func(ctx context.Context, input character.CreateCharacterInput) (*domain.Character, error)
	DeleteCharacterFunc func(ctx context.Context, id uuid.UUID) error
	GenerateImageFunc   func(ctx context.Context, id uuid.UUID) (*domain.Character, error)
	ListCharactersFunc  func(ctx context.Context) ([]domain.Character, error)
	UpdateCharacterFunc func(ctx context.Context, input character.UpdateCharacterInput) (*domain.Character, error)

	calls struct {
		CreateCharacter []struct {
			Ctx   context.Context
			Input character.CreateCharacterInput
		}
		DeleteCharacter []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GenerateImage []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListCharacters []struct {
			Ctx context.Context
		}
		UpdateCharacter []struct {
			Ctx   context.Context
			Input character.UpdateCharacterInput
		}
	}
	lockCreateCharacter sync.RWMutex
	lockDeleteCharacter sync.RWMutex
	lockGenerateImage   sync.RWMutex
	lockListCharacters  sync.RWMutex
	lockUpdateCharacter sync.RWMutex
}

func (mock *characterServiceMock) CreateCharacter(ctx context.Context, input character.CreateCharacterInput) (*domain.Character, error) {
	if mock.CreateCharacterFunc == nil {
		panic("characterServiceMock.CreateCharacterFunc: method is nil but characterService.CreateCharacter was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input character.CreateCharacterInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCharacter.Lock()
	mock.calls.CreateCharacter = append(mock.calls.CreateCharacter, callInfo)
	mock.lockCreateCharacter.Unlock()
	return mock.CreateCharacterFunc(ctx, input)
}

func (mock *characterServiceMock) CreateCharacterCalls() []struct {
	Ctx   context.Context
	Input character.CreateCharacterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input character.CreateCharacterInput
	}
	mock.lockCreateCharacter.RLock()
	calls = mock.calls.CreateCharacter
	mock.lockCreateCharacter.RUnlock()
	return calls
}

func (mock *characterServiceMock) DeleteCharacter(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteCharacterFunc == nil {
		panic("characterServiceMock.DeleteCharacterFunc: method is nil but characterService.DeleteCharacter was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteCharacter.Lock()
	mock.calls.DeleteCharacter = append(mock.calls.DeleteCharacter, callInfo)
	mock.lockDeleteCharacter.Unlock()
	return mock.DeleteCharacterFunc(ctx, id)
}

func (mock *characterServiceMock) DeleteCharacterCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDeleteCharacter.RLock()
	calls = mock.calls.DeleteCharacter
	mock.lockDeleteCharacter.RUnlock()
	return calls
}

func (mock *characterServiceMock) GenerateImage(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	if mock.GenerateImageFunc == nil {
		panic("characterServiceMock.GenerateImageFunc: method is nil but characterService.GenerateImage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGenerateImage.Lock()
	mock.calls.GenerateImage = append(mock.calls.GenerateImage, callInfo)
	mock.lockGenerateImage.Unlock()
	return mock.GenerateImageFunc(ctx, id)
}

func (mock *characterServiceMock) GenerateImageCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGenerateImage.RLock()
	calls = mock.calls.GenerateImage
	mock.lockGenerateImage.RUnlock()
	return calls
}

func (mock *characterServiceMock) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	if mock.ListCharactersFunc == nil {
		panic("characterServiceMock.ListCharactersFunc: method is nil but characterService.ListCharacters was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCharacters.Lock()
	mock.calls.ListCharacters = append(mock.calls.ListCharacters, callInfo)
	mock.lockListCharacters.Unlock()
	return mock.ListCharactersFunc(ctx)
}

func (mock *characterServiceMock) ListCharactersCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListCharacters.RLock()
	calls = mock.calls.ListCharacters
	mock.lockListCharacters.RUnlock()
	return calls
}

func (mock *characterServiceMock) UpdateCharacter(ctx context.Context, input character.UpdateCharacterInput) (*domain.Character, error) {
	if mock.UpdateCharacterFunc == nil {
		panic("characterServiceMock.UpdateCharacterFunc: method is nil but characterService.UpdateCharacter was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input character.UpdateCharacterInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateCharacter.Lock()
	mock.calls.UpdateCharacter = append(mock.calls.UpdateCharacter, callInfo)
	mock.lockUpdateCharacter.Unlock()
	return mock.UpdateCharacterFunc(ctx, input)
}

func (mock *characterServiceMock) UpdateCharacterCalls() []struct {
	Ctx   context.Context
	Input character.UpdateCharacterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input character.UpdateCharacterInput
	}
	mock.lockUpdateCharacter.RLock()
	calls = mock.calls.UpdateCharacter
	mock.lockUpdateCharacter.RUnlock()
	return calls
}
