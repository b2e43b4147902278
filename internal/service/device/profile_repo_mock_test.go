package device

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"sync"
	"time"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	ArchiveFunc         func(ctx context.Context, id uuid.UUID, batchID uuid.UUID, now time.Time) (*domain.ICloudProfile, error)
	ArchiveByDeviceFunc func(ctx context.Context, deviceID uuid.UUID, batchID uuid.UUID, now time.Time) (int64, error)
	CreateFunc          func(ctx context.Context, p *domain.ICloudProfile) (*domain.ICloudProfile, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.ICloudProfile, error)
	ListByDeviceFunc    func(ctx context.Context, deviceID uuid.UUID, statuses ...domain.AssetStatus) ([]domain.ICloudProfile, error)
	UpdateFunc          func(ctx context.Context, id uuid.UUID, params domain.AssetUpdateParams, now time.Time) (*domain.ICloudProfile, error)

	calls struct {
		Archive []struct {
			Ctx     context.Context
			ID      uuid.UUID
			BatchID uuid.UUID
			Now     time.Time
		}
		ArchiveByDevice []struct {
			Ctx      context.Context
			DeviceID uuid.UUID
			BatchID  uuid.UUID
			Now      time.Time
		}
		Create []struct {
			Ctx context.Context
			P   *domain.ICloudProfile
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByDevice []struct {
			Ctx      context.Context
			DeviceID uuid.UUID
			Statuses []domain.AssetStatus
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.AssetUpdateParams
			Now    time.Time
		}
	}
	lockArchive         sync.RWMutex
	lockArchiveByDevice sync.RWMutex
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockListByDevice    sync.RWMutex
	lockUpdate          sync.RWMutex
}

func (mock *profileRepoMock) Archive(ctx context.Context, id uuid.UUID, batchID uuid.UUID, now time.Time) (*domain.ICloudProfile, error) {
	if mock.ArchiveFunc == nil {
		panic("profileRepoMock.ArchiveFunc: method is nil but profileRepo.Archive was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		BatchID uuid.UUID
		Now     time.Time
	}{Ctx: ctx, ID: id, BatchID: batchID, Now: now}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, id, batchID, now)
}

func (mock *profileRepoMock) ArchiveCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	BatchID uuid.UUID
	Now     time.Time
} {
	var calls []struct {
		Ctx     context.Context
		ID      uuid.UUID
		BatchID uuid.UUID
		Now     time.Time
	}
	mock.lockArchive.RLock()
	calls = mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}

func (mock *profileRepoMock) ArchiveByDevice(ctx context.Context, deviceID uuid.UUID, batchID uuid.UUID, now time.Time) (int64, error) {
	if mock.ArchiveByDeviceFunc == nil {
		panic("profileRepoMock.ArchiveByDeviceFunc: method is nil but profileRepo.ArchiveByDevice was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DeviceID uuid.UUID
		BatchID  uuid.UUID
		Now      time.Time
	}{Ctx: ctx, DeviceID: deviceID, BatchID: batchID, Now: now}
	mock.lockArchiveByDevice.Lock()
	mock.calls.ArchiveByDevice = append(mock.calls.ArchiveByDevice, callInfo)
	mock.lockArchiveByDevice.Unlock()
	return mock.ArchiveByDeviceFunc(ctx, deviceID, batchID, now)
}

func (mock *profileRepoMock) ArchiveByDeviceCalls() []struct {
	Ctx      context.Context
	DeviceID uuid.UUID
	BatchID  uuid.UUID
	Now      time.Time
} {
	var calls []struct {
		Ctx      context.Context
		DeviceID uuid.UUID
		BatchID  uuid.UUID
		Now      time.Time
	}
	mock.lockArchiveByDevice.RLock()
	calls = mock.calls.ArchiveByDevice
	mock.lockArchiveByDevice.RUnlock()
	return calls
}

func (mock *profileRepoMock) Create(ctx context.Context, p *domain.ICloudProfile) (*domain.ICloudProfile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.ICloudProfile
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.ICloudProfile
} {
	var calls []struct {
		Ctx context.Context
		P   *domain.ICloudProfile
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ICloudProfile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) ListByDevice(ctx context.Context, deviceID uuid.UUID, statuses ...domain.AssetStatus) ([]domain.ICloudProfile, error) {
	if mock.ListByDeviceFunc == nil {
		panic("profileRepoMock.ListByDeviceFunc: method is nil but profileRepo.ListByDevice was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DeviceID uuid.UUID
		Statuses []domain.AssetStatus
	}{Ctx: ctx, DeviceID: deviceID, Statuses: statuses}
	mock.lockListByDevice.Lock()
	mock.calls.ListByDevice = append(mock.calls.ListByDevice, callInfo)
	mock.lockListByDevice.Unlock()
	return mock.ListByDeviceFunc(ctx, deviceID, statuses...)
}

func (mock *profileRepoMock) ListByDeviceCalls() []struct {
	Ctx      context.Context
	DeviceID uuid.UUID
	Statuses []domain.AssetStatus
} {
	var calls []struct {
		Ctx      context.Context
		DeviceID uuid.UUID
		Statuses []domain.AssetStatus
	}
	mock.lockListByDevice.RLock()
	calls = mock.calls.ListByDevice
	mock.lockListByDevice.RUnlock()
	return calls
}

func (mock *profileRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.AssetUpdateParams, now time.Time) (*domain.ICloudProfile, error) {
	if mock.UpdateFunc == nil {
		panic("profileRepoMock.UpdateFunc: method is nil but profileRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.AssetUpdateParams
		Now    time.Time
	}{Ctx: ctx, ID: id, Params: params, Now: now}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params, now)
}

func (mock *profileRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.AssetUpdateParams
	Now    time.Time
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.AssetUpdateParams
		Now    time.Time
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
