package semaphore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemaphore_AcquireRelease(t *testing.T) {
	s := New(2)
	ctx := context.Background()

	require.NoError(t, s.Acquire(ctx))
	require.NoError(t, s.Acquire(ctx))
	assert.Equal(t, 2, s.inUse())
	assert.False(t, s.tryAcquire())

	s.Release()
	assert.Equal(t, 1, s.inUse())
	assert.True(t, s.tryAcquire())
}

func TestSemaphore_AcquireDeadline(t *testing.T) {
	s := New(1)
	require.NoError(t, s.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	err := s.Acquire(ctx)
	require.ErrorIs(t, err, ErrAcquireTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestSemaphore_AcquireCanceled(t *testing.T) {
	s := New(1)
	require.True(t, s.tryAcquire())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Acquire(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, s.inUse())
}

func TestSemaphore_limitsConcurrency(t *testing.T) {
	const (
		limit      = 3
		goroutines = 20
	)
	s := New(limit)

	var (
		wg      sync.WaitGroup
		current atomic.Int32
		peak    atomic.Int32
	)
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			if !assert.NoError(t, s.Acquire(context.Background())) {
				return
			}
			defer s.Release()

			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			current.Add(-1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(limit))
	assert.Equal(t, 0, s.inUse())
}
