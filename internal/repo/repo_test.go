package repo

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/point-ledger/internal/model"
)

func TestMain(m *testing.M) {
	log := slog.Default()
	code, err := runMain(m, log)
	if err != nil {
		log.ErrorContext(context.TODO(),
			"unexpected test failure",
			slog.Any(model.KeyLoggerError, err),
		)
	}
	os.Exit(code)
}

func TestWithRetry(t *testing.T) {
	orig := retryDelay
	retryDelay = func(int) time.Duration { return time.Millisecond }
	defer func() { retryDelay = orig }()

	connErr := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
	otherErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	tests := []struct {
		name      string
		errs      []error
		wantErr   error
		wantCalls int
	}{
		{
			name:      "succeeds at once",
			errs:      []error{nil},
			wantCalls: 1,
		},
		{
			name:      "recovers after connection errors",
			errs:      []error{connErr, connErr, nil},
			wantCalls: 3,
		},
		{
			name:      "does not retry other errors",
			errs:      []error{otherErr},
			wantErr:   otherErr,
			wantCalls: 1,
		},
		{
			name:      "gives up after max attempts",
			errs:      []error{connErr, connErr, connErr, connErr, nil},
			wantErr:   connErr,
			wantCalls: maxAttemptCount + 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			query := func() (int, error) {
				err := tt.errs[calls]
				calls++
				if err != nil {
					return 0, err
				}
				return 42, nil
			}

			got, err := WithRetry[int](context.Background(), query, 0)
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 42, got)
		})
	}
}

func TestWithRetry_contextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	connErr := &pgconn.PgError{Code: pgerrcode.CannotConnectNow}
	calls := 0
	_, err := WithRetry[int](ctx, func() (int, error) {
		calls++
		return 0, connErr
	}, 0)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, err, connErr)
	assert.Equal(t, 1, calls)
}

func TestWithTX(t *testing.T) {
	_, ctx, cancel, pool := setupRepo(t, NewBalanceRepository)
	defer cancel()

	errAbort := errors.New("abort")
	_, err := WithTX[struct{}](ctx, pool, slog.Default(),
		func(ctx context.Context, tx connectionPool) (any, error) {
			_, err := tx.Exec(ctx, `INSERT INTO user_points (user_id, point) VALUES (77, 100)`)
			require.NoError(t, err)
			return struct{}{}, errAbort
		})
	require.ErrorIs(t, err, errAbort)

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM user_points WHERE user_id = 77`).Scan(&count))
	assert.Equal(t, 0, count, "the failed TX must be rolled back")

	got, err := WithTX[int64](ctx, pool, slog.Default(),
		func(ctx context.Context, tx connectionPool) (any, error) {
			var id int64
			err := tx.QueryRow(ctx,
				`INSERT INTO user_points (user_id, point) VALUES (78, 100) RETURNING user_id`,
			).Scan(&id)
			return id, err
		})
	require.NoError(t, err)
	assert.Equal(t, int64(78), got)

	_, err = WithTX[string](ctx, pool, slog.Default(),
		func(context.Context, connectionPool) (any, error) {
			return 1, nil
		})
	require.Error(t, err)
}
