//go:build unit

package keylock_test

import (
	"sync"
	"testing"
	"time"

	"keyvend/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRelease(t *testing.T) {
	km := keylock.New()

	release, ok := km.Acquire("a", time.Second)
	require.True(t, ok)

	// Same key is busy, different key is free.
	_, ok = km.Acquire("a", 10*time.Millisecond)
	assert.False(t, ok)

	releaseB, ok := km.Acquire("b", 10*time.Millisecond)
	require.True(t, ok)
	releaseB()

	release()

	release2, ok := km.Acquire("a", 10*time.Millisecond)
	require.True(t, ok)
	release2()
}

func TestAcquireContention(t *testing.T) {
	km := keylock.New()

	const workers = 8
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, ok := km.Acquire("shared", 5*time.Second)
			if !ok {
				return
			}
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestAcquireTimeoutDoesNotLeak(t *testing.T) {
	km := keylock.New()

	release, ok := km.Acquire("k", time.Second)
	require.True(t, ok)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, ok := km.Acquire("k", 20*time.Millisecond)
		assert.False(t, ok)
	}()
	<-done

	release()

	// The key is usable again after a timed-out waiter gave up.
	release2, ok := km.Acquire("k", 10*time.Millisecond)
	require.True(t, ok)
	release2()
}
