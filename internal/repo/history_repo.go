package repo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talx-hub/point-ledger/internal/model/history"
	"github.com/talx-hub/point-ledger/internal/repo/internal/db"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
)

type HistoryRepository struct {
	DB
}

func NewHistoryRepository(pool connectionPool, log *slog.Logger) *HistoryRepository {
	return &HistoryRepository{newDB(pool, log)}
}

func (r *HistoryRepository) Append(ctx context.Context,
	userID, amount int64, tp history.TransactionType, at time.Time,
) (history.Record, error) {
	if !tp.Valid() {
		return history.Record{}, fmt.Errorf("%w: unknown transaction type %q",
			serviceerrs.ErrUnexpected, tp)
	}

	appendLogic := func() (history.Record, error) {
		queries := db.New(r.pool)
		row, err := queries.InsertPointHistory(ctx, db.InsertPointHistoryParams{
			UserID:    userID,
			Type:      string(tp),
			Amount:    amount,
			CreatedAt: toTimestamptz(at),
		})
		if err != nil {
			return history.Record{}, fmt.Errorf("failed to insert %s history of user %d: %w",
				tp, userID, err)
		}
		return toRecord(row), nil
	}

	rec, err := WithRetry[history.Record](ctx, appendLogic, 0)
	if err != nil {
		return history.Record{}, err //nolint: wrapcheck // error from wrapped function
	}
	return rec, nil
}

func (r *HistoryRepository) ListByUser(ctx context.Context, userID int64,
) ([]history.Record, error) {
	listLogic := func() ([]history.Record, error) {
		queries := db.New(r.pool)
		rows, err := queries.ListPointHistoriesByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list histories of user %d: %w", userID, err)
		}

		records := make([]history.Record, 0, len(rows))
		for _, row := range rows {
			records = append(records, toRecord(row))
		}
		return records, nil
	}

	records, err := WithRetry[[]history.Record](ctx, listLogic, 0)
	if err != nil {
		return nil, err //nolint: wrapcheck // error from wrapped function
	}
	return records, nil
}

func toRecord(row db.PointHistory) history.Record {
	return history.Record{
		CreatedAt: row.CreatedAt.Time,
		Type:      history.TransactionType(row.Type),
		ID:        row.ID,
		UserID:    row.UserID,
		Amount:    row.Amount,
	}
}
