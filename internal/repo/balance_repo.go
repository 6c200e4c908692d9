package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/talx-hub/point-ledger/internal/model/history"
	"github.com/talx-hub/point-ledger/internal/repo/internal/db"
)

type BalanceRepository struct {
	DB
}

func NewBalanceRepository(pool connectionPool, log *slog.Logger) *BalanceRepository {
	return &BalanceRepository{newDB(pool, log)}
}

// Get returns a zero balance stamped with the current time for a user
// without a row.
func (r *BalanceRepository) Get(ctx context.Context, userID int64) (history.UserPoint, error) {
	getLogic := func() (history.UserPoint, error) {
		queries := db.New(r.pool)
		row, err := queries.FindUserPoint(ctx, userID)
		if errors.Is(err, pgx.ErrNoRows) {
			return history.UserPoint{
				ID:        userID,
				UpdatedAt: r.timestamp().Time,
			}, nil
		}
		if err != nil {
			return history.UserPoint{}, fmt.Errorf("failed to find point of user %d: %w", userID, err)
		}
		return toUserPoint(row), nil
	}

	up, err := WithRetry[history.UserPoint](ctx, getLogic, 0)
	if err != nil {
		return history.UserPoint{}, err //nolint: wrapcheck // error from wrapped function
	}
	return up, nil
}

func (r *BalanceRepository) Upsert(ctx context.Context, userID, amount int64,
) (history.UserPoint, error) {
	upsertLogic := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		row, err := queries.UpsertUserPoint(ctx, db.UpsertUserPointParams{
			UserID:    userID,
			Point:     amount,
			UpdatedAt: r.timestamp(),
		})
		if err != nil {
			return history.UserPoint{}, fmt.Errorf("failed to upsert point of user %d: %w", userID, err)
		}
		return toUserPoint(row), nil
	}

	upsertWithTX := func() (history.UserPoint, error) {
		return WithTX[history.UserPoint](ctx, r.pool, r.log, upsertLogic)
	}

	up, err := WithRetry[history.UserPoint](ctx, upsertWithTX, 0)
	if err != nil {
		return history.UserPoint{}, err //nolint: wrapcheck // error from wrapped function
	}
	return up, nil
}

// Ping reports whether the DB answers.
func (r *BalanceRepository) Ping(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("failed to ping the DB: %w", err)
	}
	return nil
}

func toUserPoint(row db.UserPoint) history.UserPoint {
	return history.UserPoint{
		ID:        row.UserID,
		Point:     row.Point,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
