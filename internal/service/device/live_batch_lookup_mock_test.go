package device

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ liveBatchLookup = &liveBatchLookupMock{}

type liveBatchLookupMock struct {
	LiveBatchIDFunc func(ctx context.Context, deviceID uuid.UUID) (*uuid.UUID, error)

	calls struct {
		LiveBatchID []struct {
			Ctx      context.Context
			DeviceID uuid.UUID
		}
	}
	lockLiveBatchID sync.RWMutex
}

func (mock *liveBatchLookupMock) LiveBatchID(ctx context.Context, deviceID uuid.UUID) (*uuid.UUID, error) {
	if mock.LiveBatchIDFunc == nil {
		panic("liveBatchLookupMock.LiveBatchIDFunc: method is nil but liveBatchLookup.LiveBatchID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DeviceID uuid.UUID
	}{Ctx: ctx, DeviceID: deviceID}
	mock.lockLiveBatchID.Lock()
	mock.calls.LiveBatchID = append(mock.calls.LiveBatchID, callInfo)
	mock.lockLiveBatchID.Unlock()
	return mock.LiveBatchIDFunc(ctx, deviceID)
}

func (mock *liveBatchLookupMock) LiveBatchIDCalls() []struct {
	Ctx      context.Context
	DeviceID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DeviceID uuid.UUID
	}
	mock.lockLiveBatchID.RLock()
	calls = mock.calls.LiveBatchID
	mock.lockLiveBatchID.RUnlock()
	return calls
}
