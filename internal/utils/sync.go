package utils

import (
	"sync"
)

// OptionalMutex guards the layer's shared state. When disabled, Lock and Unlock do
// nothing and the host is responsible for serializing calls.
type OptionalMutex struct {
	mutex    sync.Mutex
	useMutex bool
}

func NewOptionalMutex(useMutex bool) *OptionalMutex {
	return &OptionalMutex{useMutex: useMutex}
}

func (m *OptionalMutex) Enabled() bool {
	return m.useMutex
}

func (m *OptionalMutex) Lock() {
	if m.useMutex {
		m.mutex.Lock()
	}
}

func (m *OptionalMutex) Unlock() {
	if m.useMutex {
		m.mutex.Unlock()
	}
}

// TryLock reports whether the lock could be taken without blocking. A disabled mutex
// always succeeds.
func (m *OptionalMutex) TryLock() bool {
	if !m.useMutex {
		return true
	}
	return m.mutex.TryLock()
}
