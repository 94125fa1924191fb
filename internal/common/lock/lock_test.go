package lock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	k := New()
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("game-1")
			defer unlock()
			// Non-atomic read-modify-write; only safe when serialized
			current := counter
			time.Sleep(time.Microsecond)
			counter = current + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, k.Len())
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	k := New()
	unlockA := k.Lock("game-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := k.Lock("game-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "lock on a different key should not block")
	}
}

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	k := New()
	unlock := k.Lock("game-1")
	assert.Equal(t, 1, k.Len())
	unlock()
	assert.Equal(t, 0, k.Len())
}
