package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/talx-hub/point-ledger/internal/model"
)

type connectionPool interface {
	Begin(context.Context) (pgx.Tx, error)
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type DB struct {
	pool connectionPool
	log  *slog.Logger
	now  func() time.Time
}

func newDB(pool connectionPool, log *slog.Logger) DB {
	return DB{
		pool: pool,
		log:  log,
		now:  time.Now,
	}
}

// timestamp is truncated to milliseconds, the resolution the API exposes.
func (d DB) timestamp() pgtype.Timestamptz {
	return toTimestamptz(d.now())
}

func toTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.UTC().Truncate(time.Millisecond), Valid: true}
}

type dbLogic func(ctx context.Context, tx connectionPool) (any, error)

func WithTX[T any](ctx context.Context,
	pool connectionPool, log *slog.Logger, f dbLogic,
) (T, error) {
	var zero T

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to begin TX: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.LogAttrs(ctx,
				slog.LevelError,
				"failed to rollback TX",
				slog.Any(model.KeyLoggerError, rbErr),
			)
		}
	}()

	res, err := f(ctx, tx)
	if err != nil {
		return zero, err //nolint: wrapcheck // error from wrapped function
	}

	if err = tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("failed to commit TX: %w", err)
	}

	r, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("failed to convert any to %T", zero)
	}
	return r, nil
}

const maxAttemptCount = 3

// retryDelay grows with the attempt: 0 1 2 -> 100ms 300ms 500ms. Mutations
// run under a per-user deadline, so the waits stay short.
var retryDelay = func(counter int) time.Duration {
	return time.Duration(counter*2+1) * 100 * time.Millisecond
}

// WithRetry repeats dbQuery on connection-class errors. It gives up when ctx
// is done.
func WithRetry[T any](ctx context.Context, dbQuery func() (T, error), counter int) (T, error) {
	res, err := dbQuery()
	if err == nil {
		return res, nil
	}

	var zero T
	if counter >= maxAttemptCount {
		return zero, fmt.Errorf("failed to reattempt query to the DB: %w", err)
	}
	if !isRetryableError(err) {
		return zero, fmt.Errorf("on attempt #%d error occurred: %w", counter, err)
	}

	timer := time.NewTimer(retryDelay(counter))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return zero, fmt.Errorf("retry interrupted: %w", errors.Join(ctx.Err(), err))
	case <-timer.C:
	}
	return WithRetry[T](ctx, dbQuery, counter+1)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ConnectionException,
			pgerrcode.ConnectionDoesNotExist,
			pgerrcode.ConnectionFailure,
			pgerrcode.CannotConnectNow,
			pgerrcode.SQLClientUnableToEstablishSQLConnection,
			pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection,
			pgerrcode.TransactionResolutionUnknown:
			return true
		}
	}

	return false
}
