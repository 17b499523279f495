// Package keylock provides mutual exclusion keyed by string, used by the
// router to serialize turns per thread while allowing different threads to
// proceed in parallel. Lock entries are reference counted and removed once
// the last holder releases, so idle threads cost nothing.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex hands out one mutex per key on demand.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*entry)}
}

// Lock acquires the mutex for key, blocking while another caller holds it.
// The returned function releases the lock and must be called exactly once.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}

// Len reports the number of keys with active or pending holders. Test
// helper.
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
