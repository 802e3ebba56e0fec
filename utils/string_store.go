package utils

import (
	"sync"
)

type StringStore interface {
	Intern(s string) string
	Len() int

	// When the store is locked it stops saving new strings and returns them as is.
	Lock()
	IsLocked() bool
}

type stringStoreImpl struct {
	mu       sync.RWMutex
	store    map[string]string
	isLocked bool
}

func NewStringStore() StringStore {
	return &stringStoreImpl{store: make(map[string]string)}
}

func (stringStore *stringStoreImpl) Intern(s string) string {
	stringStore.mu.RLock()
	interned, ok := stringStore.store[s]
	locked := stringStore.isLocked
	stringStore.mu.RUnlock()
	if ok {
		return interned
	}
	if locked {
		return s
	}

	stringStore.mu.Lock()
	defer stringStore.mu.Unlock()
	if interned, ok = stringStore.store[s]; ok {
		return interned
	}
	stringStore.store[s] = s
	return s
}

func (stringStore *stringStoreImpl) Len() int {
	stringStore.mu.RLock()
	defer stringStore.mu.RUnlock()
	return len(stringStore.store)
}

func (stringStore *stringStoreImpl) Lock() {
	stringStore.mu.Lock()
	stringStore.isLocked = true
	stringStore.mu.Unlock()
}

func (stringStore *stringStoreImpl) IsLocked() bool {
	stringStore.mu.RLock()
	defer stringStore.mu.RUnlock()
	return stringStore.isLocked
}
