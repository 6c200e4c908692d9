// Package memory keeps balances and histories in process memory. Tables can
// simulate storage latency, which widens race windows in tests.
package memory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/talx-hub/point-ledger/internal/model/history"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
)

type latency time.Duration

func (l latency) wait(ctx context.Context) error {
	if l <= 0 {
		return ctx.Err()
	}
	d := time.Duration(rand.Int64N(int64(l)) + 1)
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("memory table: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// UserPointTable stores current balances. Writes replace the whole record.
type UserPointTable struct {
	rows    map[int64]history.UserPoint
	now     func() time.Time
	mu      sync.RWMutex
	latency latency
}

// NewUserPointTable delays every call by a random duration in (0, maxLatency].
func NewUserPointTable(maxLatency time.Duration) *UserPointTable {
	return &UserPointTable{
		rows:    make(map[int64]history.UserPoint),
		now:     time.Now,
		latency: latency(maxLatency),
	}
}

func (t *UserPointTable) Get(ctx context.Context, userID int64) (history.UserPoint, error) {
	if err := t.latency.wait(ctx); err != nil {
		return history.UserPoint{}, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	up, ok := t.rows[userID]
	if !ok {
		return history.UserPoint{ID: userID, Point: 0, UpdatedAt: t.now().Truncate(time.Millisecond)}, nil
	}
	return up, nil
}

func (t *UserPointTable) Upsert(ctx context.Context, userID, amount int64) (history.UserPoint, error) {
	if err := t.latency.wait(ctx); err != nil {
		return history.UserPoint{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	up := history.UserPoint{
		ID:        userID,
		Point:     amount,
		UpdatedAt: t.now().Truncate(time.Millisecond),
	}
	t.rows[userID] = up
	return up, nil
}

// Ping always succeeds; the table lives in process.
func (t *UserPointTable) Ping(context.Context) error {
	return nil
}

// PointHistoryTable is an append-only log of records.
type PointHistoryTable struct {
	byUser  map[int64][]history.Record
	mu      sync.RWMutex
	latency latency
	lastID  int64
}

func NewPointHistoryTable(maxLatency time.Duration) *PointHistoryTable {
	return &PointHistoryTable{
		byUser:  make(map[int64][]history.Record),
		latency: latency(maxLatency),
	}
}

func (t *PointHistoryTable) Append(ctx context.Context,
	userID, amount int64, tp history.TransactionType, at time.Time,
) (history.Record, error) {
	if !tp.Valid() {
		return history.Record{}, fmt.Errorf("%w: unknown transaction type %q",
			serviceerrs.ErrUnexpected, tp)
	}
	if err := t.latency.wait(ctx); err != nil {
		return history.Record{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastID++
	r := history.Record{
		ID:        t.lastID,
		UserID:    userID,
		Type:      tp,
		Amount:    amount,
		CreatedAt: at,
	}
	t.byUser[userID] = append(t.byUser[userID], r)
	return r, nil
}

func (t *PointHistoryTable) ListByUser(ctx context.Context, userID int64) ([]history.Record, error) {
	if err := t.latency.wait(ctx); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	records := t.byUser[userID]
	out := make([]history.Record, len(records))
	copy(out, records)
	return out, nil
}
