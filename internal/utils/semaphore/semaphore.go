package semaphore

import (
	"context"
	"errors"
	"fmt"
)

var ErrAcquireTimeout = errors.New("semaphore acquire timeout exceeded")

// Semaphore is a counting semaphore. Fairness between parked waiters and
// newcomers is not guaranteed.
type Semaphore struct {
	semaCh chan struct{}
}

func New(maxCount uint64) *Semaphore {
	return &Semaphore{
		semaCh: make(chan struct{}, maxCount),
	}
}

func (s *Semaphore) Acquire(ctx context.Context) error {
	if s.tryAcquire() {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrAcquireTimeout, ctx.Err())
	case s.semaCh <- struct{}{}:
		return nil
	}
}

func (s *Semaphore) tryAcquire() bool {
	select {
	case s.semaCh <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Semaphore) Release() {
	<-s.semaCh
}

// inUse reports how many slots are held.
func (s *Semaphore) inUse() int {
	return len(s.semaCh)
}
