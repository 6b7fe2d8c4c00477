package gpooling

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Submit(t *testing.T) {
	pool, err := NewPooling(4)
	require.NoError(t, err)
	defer pool.Release()

	var (
		wg    sync.WaitGroup
		count int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		assert.NoError(t, pool.Submit(func() {
			defer wg.Done()
			atomic.AddInt32(&count, 1)
		}))
	}
	wg.Wait()
	assert.Equal(t, int32(50), atomic.LoadInt32(&count))
}

func TestPool_PanicIsRecovered(t *testing.T) {
	pool, err := NewPooling(1)
	require.NoError(t, err)
	defer pool.Release()

	done := make(chan struct{})
	assert.NoError(t, pool.Submit(func() { panic("boom") }))
	assert.NoError(t, pool.Submit(func() { close(done) }))
	<-done
}

func TestPool_SubmitAfterRelease(t *testing.T) {
	pool, err := NewPooling(1)
	require.NoError(t, err)
	pool.Release()

	assert.Error(t, pool.Submit(func() {}))
}
