package rest

import (
	"context"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/service/moderation"
	"sync"
)

var _ ticketQueue[domain.Report] = &ticketQueueMock{}

type ticketQueueMock struct {
	KindFunc   func() domain.TicketKind
	ListFunc   func(ctx context.Context, input moderation.ListTicketsInput) ([]domain.Report, error)
	UpdateFunc func(ctx context.Context, input moderation.UpdateTicketInput) (*domain.Report, error)

	calls struct {
		Kind []struct{}
		List []struct {
			Ctx   context.Context
			Input moderation.ListTicketsInput
		}
		Update []struct {
			Ctx   context.Context
			Input moderation.UpdateTicketInput
		}
	}
	lockKind   sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *ticketQueueMock) Kind() domain.TicketKind {
	if mock.KindFunc == nil {
		panic("ticketQueueMock.KindFunc: method is nil but ticketQueue.Kind was just called")
	}
	mock.lockKind.Lock()
	mock.calls.Kind = append(mock.calls.Kind, struct{}{})
	mock.lockKind.Unlock()
	return mock.KindFunc()
}

func (mock *ticketQueueMock) KindCalls() []struct{} {
	var calls []struct{}
	mock.lockKind.RLock()
	calls = mock.calls.Kind
	mock.lockKind.RUnlock()
	return calls
}

func (mock *ticketQueueMock) List(ctx context.Context, input moderation.ListTicketsInput) ([]domain.Report, error) {
	if mock.ListFunc == nil {
		panic("ticketQueueMock.ListFunc: method is nil but ticketQueue.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.ListTicketsInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *ticketQueueMock) ListCalls() []struct {
	Ctx   context.Context
	Input moderation.ListTicketsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input moderation.ListTicketsInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *ticketQueueMock) Update(ctx context.Context, input moderation.UpdateTicketInput) (*domain.Report, error) {
	if mock.UpdateFunc == nil {
		panic("ticketQueueMock.UpdateFunc: method is nil but ticketQueue.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.UpdateTicketInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *ticketQueueMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input moderation.UpdateTicketInput
} {
	var calls []struct {
		Ctx   context.Context
		Input moderation.UpdateTicketInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
