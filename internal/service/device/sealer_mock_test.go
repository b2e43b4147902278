package device

import (
	"sync"
)

var _ sealer = &sealerMock{}

type sealerMock struct {
	OpenFunc func(sealed []byte) (string, error)
	SealFunc func(plaintext string) ([]byte, error)

	calls struct {
		Open []struct {
			Sealed []byte
		}
		Seal []struct {
			Plaintext string
		}
	}
	lockOpen sync.RWMutex
	lockSeal sync.RWMutex
}

func (mock *sealerMock) Open(sealed []byte) (string, error) {
	if mock.OpenFunc == nil {
		panic("sealerMock.OpenFunc: method is nil but sealer.Open was just called")
	}
	callInfo := struct {
		Sealed []byte
	}{Sealed: sealed}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(sealed)
}

func (mock *sealerMock) OpenCalls() []struct {
	Sealed []byte
} {
	var calls []struct {
		Sealed []byte
	}
	mock.lockOpen.RLock()
	calls = mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

func (mock *sealerMock) Seal(plaintext string) ([]byte, error) {
	if mock.SealFunc == nil {
		panic("sealerMock.SealFunc: method is nil but sealer.Seal was just called")
	}
	callInfo := struct {
		Plaintext string
	}{Plaintext: plaintext}
	mock.lockSeal.Lock()
	mock.calls.Seal = append(mock.calls.Seal, callInfo)
	mock.lockSeal.Unlock()
	return mock.SealFunc(plaintext)
}

func (mock *sealerMock) SealCalls() []struct {
	Plaintext string
} {
	var calls []struct {
		Plaintext string
	}
	mock.lockSeal.RLock()
	calls = mock.calls.Seal
	mock.lockSeal.RUnlock()
	return calls
}
