package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/service/device"
	"sync"
)

var _ credentialService = &credentialServiceMock{}

type credentialServiceMock struct {
	ArchiveICloudProfileFunc func(ctx context.Context, id uuid.UUID) (*domain.ICloudProfile, error)
	ArchiveProxyFunc         func(ctx context.Context, id uuid.UUID) (*domain.Proxy, error)
	ArchiveSocialAccountFunc func(ctx context.Context, id uuid.UUID) (*domain.SocialAccount, error)
	CreateICloudProfileFunc  func(ctx context.Context, input device.CreateICloudProfileInput) (*domain.ICloudProfile, error)
	CreateProxyFunc          func(ctx context.Context, input device.CreateProxyInput) (*domain.Proxy, error)
	CreateSocialAccountFunc  func(ctx context.Context, input device.CreateSocialAccountInput) (*domain.SocialAccount, error)
	UpdateICloudProfileFunc  func(ctx context.Context, input device.UpdateICloudProfileInput) (*domain.ICloudProfile, error)
	UpdateProxyFunc          func(ctx context.Context, input device.UpdateProxyInput) (*domain.Proxy, error)
	UpdateSocialAccountFunc  func(ctx context.Context, input device.UpdateSocialAccountInput) (*domain.SocialAccount, error)

	calls struct {
		ArchiveICloudProfile []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ArchiveProxy []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ArchiveSocialAccount []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateICloudProfile []struct {
			Ctx   context.Context
			Input device.CreateICloudProfileInput
		}
		CreateProxy []struct {
			Ctx   context.Context
			Input device.CreateProxyInput
		}
		CreateSocialAccount []struct {
			Ctx   context.Context
			Input device.CreateSocialAccountInput
		}
		UpdateICloudProfile []struct {
			Ctx   context.Context
			Input device.UpdateICloudProfileInput
		}
		UpdateProxy []struct {
			Ctx   context.Context
			Input device.UpdateProxyInput
		}
		UpdateSocialAccount []struct {
			Ctx   context.Context
			Input device.UpdateSocialAccountInput
		}
	}
	lockArchiveICloudProfile sync.RWMutex
	lockArchiveProxy         sync.RWMutex
	lockArchiveSocialAccount sync.RWMutex
	lockCreateICloudProfile  sync.RWMutex
	lockCreateProxy          sync.RWMutex
	lockCreateSocialAccount  sync.RWMutex
	lockUpdateICloudProfile  sync.RWMutex
	lockUpdateProxy          sync.RWMutex
	lockUpdateSocialAccount  sync.RWMutex
}

func (mock *credentialServiceMock) ArchiveICloudProfile(ctx context.Context, id uuid.UUID) (*domain.ICloudProfile, error) {
	if mock.ArchiveICloudProfileFunc == nil {
		panic("credentialServiceMock.ArchiveICloudProfileFunc: method is nil but credentialService.ArchiveICloudProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockArchiveICloudProfile.Lock()
	mock.calls.ArchiveICloudProfile = append(mock.calls.ArchiveICloudProfile, callInfo)
	mock.lockArchiveICloudProfile.Unlock()
	return mock.ArchiveICloudProfileFunc(ctx, id)
}

func (mock *credentialServiceMock) ArchiveICloudProfileCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockArchiveICloudProfile.RLock()
	calls = mock.calls.ArchiveICloudProfile
	mock.lockArchiveICloudProfile.RUnlock()
	return calls
}

func (mock *credentialServiceMock) ArchiveProxy(ctx context.Context, id uuid.UUID) (*domain.Proxy, error) {
	if mock.ArchiveProxyFunc == nil {
		panic("credentialServiceMock.ArchiveProxyFunc: method is nil but credentialService.ArchiveProxy was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockArchiveProxy.Lock()
	mock.calls.ArchiveProxy = append(mock.calls.ArchiveProxy, callInfo)
	mock.lockArchiveProxy.Unlock()
	return mock.ArchiveProxyFunc(ctx, id)
}

func (mock *credentialServiceMock) ArchiveProxyCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockArchiveProxy.RLock()
	calls = mock.calls.ArchiveProxy
	mock.lockArchiveProxy.RUnlock()
	return calls
}

func (mock *credentialServiceMock) ArchiveSocialAccount(ctx context.Context, id uuid.UUID) (*domain.SocialAccount, error) {
	if mock.ArchiveSocialAccountFunc == nil {
		panic("credentialServiceMock.ArchiveSocialAccountFunc: method is nil but credentialService.ArchiveSocialAccount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockArchiveSocialAccount.Lock()
	mock.calls.ArchiveSocialAccount = append(mock.calls.ArchiveSocialAccount, callInfo)
	mock.lockArchiveSocialAccount.Unlock()
	return mock.ArchiveSocialAccountFunc(ctx, id)
}

func (mock *credentialServiceMock) ArchiveSocialAccountCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockArchiveSocialAccount.RLock()
	calls = mock.calls.ArchiveSocialAccount
	mock.lockArchiveSocialAccount.RUnlock()
	return calls
}

func (mock *credentialServiceMock) CreateICloudProfile(ctx context.Context, input device.CreateICloudProfileInput) (*domain.ICloudProfile, error) {
	if mock.CreateICloudProfileFunc == nil {
		panic("credentialServiceMock.CreateICloudProfileFunc: method is nil but credentialService.CreateICloudProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input device.CreateICloudProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateICloudProfile.Lock()
	mock.calls.CreateICloudProfile = append(mock.calls.CreateICloudProfile, callInfo)
	mock.lockCreateICloudProfile.Unlock()
	return mock.CreateICloudProfileFunc(ctx, input)
}

func (mock *credentialServiceMock) CreateICloudProfileCalls() []struct {
	Ctx   context.Context
	Input device.CreateICloudProfileInput
} {
	var calls []struct {
		Ctx   context.Context
		Input device.CreateICloudProfileInput
	}
	mock.lockCreateICloudProfile.RLock()
	calls = mock.calls.CreateICloudProfile
	mock.lockCreateICloudProfile.RUnlock()
	return calls
}

func (mock *credentialServiceMock) CreateProxy(ctx context.Context, input device.CreateProxyInput) (*domain.Proxy, error) {
	if mock.CreateProxyFunc == nil {
		panic("credentialServiceMock.CreateProxyFunc: method is nil but credentialService.CreateProxy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input device.CreateProxyInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateProxy.Lock()
	mock.calls.CreateProxy = append(mock.calls.CreateProxy, callInfo)
	mock.lockCreateProxy.Unlock()
	return mock.CreateProxyFunc(ctx, input)
}

func (mock *credentialServiceMock) CreateProxyCalls() []struct {
	Ctx   context.Context
	Input device.CreateProxyInput
} {
	var calls []struct {
		Ctx   context.Context
		Input device.CreateProxyInput
	}
	mock.lockCreateProxy.RLock()
	calls = mock.calls.CreateProxy
	mock.lockCreateProxy.RUnlock()
	return calls
}

func (mock *credentialServiceMock) CreateSocialAccount(ctx context.Context, input device.CreateSocialAccountInput) (*domain.SocialAccount, error) {
	if mock.CreateSocialAccountFunc == nil {
		panic("credentialServiceMock.CreateSocialAccountFunc: method is nil but credentialService.CreateSocialAccount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input device.CreateSocialAccountInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateSocialAccount.Lock()
	mock.calls.CreateSocialAccount = append(mock.calls.CreateSocialAccount, callInfo)
	mock.lockCreateSocialAccount.Unlock()
	return mock.CreateSocialAccountFunc(ctx, input)
}

func (mock *credentialServiceMock) CreateSocialAccountCalls() []struct {
	Ctx   context.Context
	Input device.CreateSocialAccountInput
} {
	var calls []struct {
		Ctx   context.Context
		Input device.CreateSocialAccountInput
	}
	mock.lockCreateSocialAccount.RLock()
	calls = mock.calls.CreateSocialAccount
	mock.lockCreateSocialAccount.RUnlock()
	return calls
}

func (mock *credentialServiceMock) UpdateICloudProfile(ctx context.Context, input device.UpdateICloudProfileInput) (*domain.ICloudProfile, error) {
	if mock.UpdateICloudProfileFunc == nil {
		panic("credentialServiceMock.UpdateICloudProfileFunc: method is nil but credentialService.UpdateICloudProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input device.UpdateICloudProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateICloudProfile.Lock()
	mock.calls.UpdateICloudProfile = append(mock.calls.UpdateICloudProfile, callInfo)
	mock.lockUpdateICloudProfile.Unlock()
	return mock.UpdateICloudProfileFunc(ctx, input)
}

func (mock *credentialServiceMock) UpdateICloudProfileCalls() []struct {
	Ctx   context.Context
	Input device.UpdateICloudProfileInput
} {
	var calls []struct {
		Ctx   context.Context
		Input device.UpdateICloudProfileInput
	}
	mock.lockUpdateICloudProfile.RLock()
	calls = mock.calls.UpdateICloudProfile
	mock.lockUpdateICloudProfile.RUnlock()
	return calls
}

func (mock *credentialServiceMock) UpdateProxy(ctx context.Context, input device.UpdateProxyInput) (*domain.Proxy, error) {
	if mock.UpdateProxyFunc == nil {
		panic("credentialServiceMock.UpdateProxyFunc: method is nil but credentialService.UpdateProxy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input device.UpdateProxyInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProxy.Lock()
	mock.calls.UpdateProxy = append(mock.calls.UpdateProxy, callInfo)
	mock.lockUpdateProxy.Unlock()
	return mock.UpdateProxyFunc(ctx, input)
}

func (mock *credentialServiceMock) UpdateProxyCalls() []struct {
	Ctx   context.Context
	Input device.UpdateProxyInput
} {
	var calls []struct {
		Ctx   context.Context
		Input device.UpdateProxyInput
	}
	mock.lockUpdateProxy.RLock()
	calls = mock.calls.UpdateProxy
	mock.lockUpdateProxy.RUnlock()
	return calls
}

func (mock *credentialServiceMock) UpdateSocialAccount(ctx context.Context, input device.UpdateSocialAccountInput) (*domain.SocialAccount, error) {
	if mock.UpdateSocialAccountFunc == nil {
		panic("credentialServiceMock.UpdateSocialAccountFunc: method is nil but credentialService.UpdateSocialAccount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input device.UpdateSocialAccountInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateSocialAccount.Lock()
	mock.calls.UpdateSocialAccount = append(mock.calls.UpdateSocialAccount, callInfo)
	mock.lockUpdateSocialAccount.Unlock()
	return mock.UpdateSocialAccountFunc(ctx, input)
}

func (mock *credentialServiceMock) UpdateSocialAccountCalls() []struct {
	Ctx   context.Context
	Input device.UpdateSocialAccountInput
} {
	var calls []struct {
		Ctx   context.Context
		Input device.UpdateSocialAccountInput
	}
	mock.lockUpdateSocialAccount.RLock()
	calls = mock.calls.UpdateSocialAccount
	mock.lockUpdateSocialAccount.RUnlock()
	return calls
}
