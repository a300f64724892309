package utils

import "sync"

// KeyLock hands out one mutex per key so that counter updates for the same
// article never interleave, while different articles proceed independently.
type KeyLock struct {
	locks     map[uint]*sync.Mutex
	innerLock sync.Mutex // protects locks
}

func NewKeyLock() *KeyLock {
	return &KeyLock{
		locks: make(map[uint]*sync.Mutex),
	}
}

func (kl *KeyLock) getLock(key uint) *sync.Mutex {
	kl.innerLock.Lock()
	defer kl.innerLock.Unlock()

	lock, exists := kl.locks[key]
	if !exists {
		lock = &sync.Mutex{}
		kl.locks[key] = lock
	}

	return lock
}

// Lock locks the mutex for the given key.
func (kl *KeyLock) Lock(key uint) {
	kl.getLock(key).Lock()
}

// Unlock unlocks the mutex for the given key.
func (kl *KeyLock) Unlock(key uint) {
	kl.getLock(key).Unlock()
}
