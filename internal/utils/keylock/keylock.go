// Package keylock serializes work per key while letting different keys run
// in parallel.
package keylock

import (
	"context"
	"fmt"
	"hash/maphash"
	"sync"

	"github.com/talx-hub/point-ledger/internal/serviceerrs"
	"github.com/talx-hub/point-ledger/internal/utils/semaphore"
)

const DefaultShardCount = 32

type entry struct {
	sema *semaphore.Semaphore
	// holder plus waiters; guarded by the shard mutex
	refs int
}

type shard[K comparable] struct {
	entries map[K]*entry
	mu      sync.Mutex
}

// Registry hands out one exclusive lock per key. Locks are created on first
// use and dropped once nobody holds or waits for them.
//
// The shard mutex only guards map bookkeeping and is never held while a
// caller waits for, or runs under, a key lock.
type Registry[K comparable] struct {
	shards []*shard[K]
	seed   maphash.Seed
}

func New[K comparable](shardCount int) *Registry[K] {
	if shardCount <= 0 {
		shardCount = DefaultShardCount
	}
	shards := make([]*shard[K], shardCount)
	for i := range shards {
		shards[i] = &shard[K]{entries: make(map[K]*entry)}
	}
	return &Registry[K]{
		shards: shards,
		seed:   maphash.MakeSeed(),
	}
}

// Do runs fn while holding the lock for key. If ctx is done before the lock
// is acquired, fn is not called and the returned error wraps
// serviceerrs.ErrLockTimeout.
func (r *Registry[K]) Do(ctx context.Context, key K, fn func(context.Context) error) error {
	s := r.shardFor(key)
	e := s.ref(key)
	defer s.unref(key, e)

	if err := e.sema.Acquire(ctx); err != nil {
		return fmt.Errorf("%w: %w", serviceerrs.ErrLockTimeout, err)
	}
	defer e.sema.Release()

	return fn(ctx)
}

// Len reports the number of keys currently locked or awaited.
func (r *Registry[K]) Len() int {
	n := 0
	for _, s := range r.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

func (r *Registry[K]) shardFor(key K) *shard[K] {
	h := maphash.Comparable(r.seed, key)
	return r.shards[h%uint64(len(r.shards))]
}

func (s *shard[K]) ref(key K) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &entry{sema: semaphore.New(1)}
		s.entries[key] = e
	}
	e.refs++
	return e
}

func (s *shard[K]) unref(key K, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(s.entries, key)
	}
}
