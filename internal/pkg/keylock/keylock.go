// Package keylock provides per-key exclusive sections with a bounded wait.
// Purchases take the account key and the stock-bucket key so that the
// check-then-act sequence (balance check, stock pull, debit) is serialized
// per account and per bucket.
package keylock

import (
	"sync"
	"time"
)

type entry struct {
	sem  chan struct{}
	refs int
}

type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*entry),
	}
}

// Acquire takes the exclusive section for key, waiting at most wait.
// It returns a release func and true on success, or nil and false if the
// section could not be taken in time. Release must be called exactly once.
func (k *KeyedMutex) Acquire(key string, wait time.Duration) (func(), bool) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case e.sem <- struct{}{}:
		return func() {
			<-e.sem
			k.put(key, e)
		}, true
	case <-timer.C:
		k.put(key, e)
		return nil, false
	}
}

func (k *KeyedMutex) put(key string, e *entry) {
	k.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()
}
