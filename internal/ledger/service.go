package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/talx-hub/point-ledger/internal/metrics"
	"github.com/talx-hub/point-ledger/internal/model"
	"github.com/talx-hub/point-ledger/internal/model/history"
	"github.com/talx-hub/point-ledger/internal/model/point"
	"github.com/talx-hub/point-ledger/internal/model/reward"
	"github.com/talx-hub/point-ledger/internal/model/wallet"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
	"github.com/talx-hub/point-ledger/internal/utils/keylock"
	"github.com/talx-hub/point-ledger/internal/utils/logger"
)

// Denomination is the unit every charged or used amount must be a multiple of.
const Denomination = 100

type BalanceStore interface {
	// Get returns a zero balance for a user who never transacted.
	Get(ctx context.Context, userID int64) (history.UserPoint, error)
	Upsert(ctx context.Context, userID, amount int64) (history.UserPoint, error)
}

type HistoryStore interface {
	Append(ctx context.Context,
		userID, amount int64, tp history.TransactionType, at time.Time,
	) (history.Record, error)
	// ListByUser returns records oldest first.
	ListByUser(ctx context.Context, userID int64) ([]history.Record, error)
}

type Service struct {
	balances     BalanceStore
	histories    HistoryStore
	chargePolicy reward.Policy
	usePolicy    reward.Policy
	locks        *keylock.Registry[int64]
	log          *slog.Logger
	handler      TransactionHandler
	lockTimeout  time.Duration
}

type Option func(*Service)

// WithLockTimeout bounds lock acquisition and every step of a mutation up to
// persisting the balance. History appends that follow a persisted balance
// always run to completion. Zero disables the bound.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.lockTimeout = d
	}
}

// WithChargePolicy sets the reward used by Charge when the caller passes none.
func WithChargePolicy(p reward.Policy) Option {
	return func(s *Service) {
		s.chargePolicy = p
	}
}

// WithUsePolicy sets the reward used by Use when the caller passes none.
func WithUsePolicy(p reward.Policy) Option {
	return func(s *Service) {
		s.usePolicy = p
	}
}

// NewService builds the ledger. By default charges earn nothing and uses earn
// one percent back.
func NewService(balances BalanceStore, histories HistoryStore, log *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		balances:     balances,
		histories:    histories,
		chargePolicy: reward.NoReward{},
		usePolicy:    reward.OnePercent(),
		locks:        keylock.New[int64](keylock.DefaultShardCount),
		log:          log,
		lockTimeout:  model.DefaultLockTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type operation struct {
	apply func(TransactionHandler, *wallet.Wallet, point.Point, reward.Policy) (Result, error)
	name  string
	tp    history.TransactionType
}

var (
	opCharge = operation{
		apply: TransactionHandler.Charge,
		name:  "charge",
		tp:    history.TypeCharge,
	}
	opUse = operation{
		apply: TransactionHandler.Use,
		name:  "use",
		tp:    history.TypeUse,
	}
)

// Charge adds amount to the user's balance. A nil policy falls back to the
// service charge policy.
func (s *Service) Charge(ctx context.Context,
	userID int64, amount point.Point, policy reward.Policy,
) (history.UserPoint, error) {
	if policy == nil {
		policy = s.chargePolicy
	}
	return s.mutate(ctx, opCharge, userID, amount, policy)
}

// Use takes amount from the user's balance. A nil policy falls back to the
// service use policy.
func (s *Service) Use(ctx context.Context,
	userID int64, amount point.Point, policy reward.Policy,
) (history.UserPoint, error) {
	if policy == nil {
		policy = s.usePolicy
	}
	return s.mutate(ctx, opUse, userID, amount, policy)
}

func (s *Service) GetBalance(ctx context.Context, userID int64) (history.UserPoint, error) {
	up, err := s.balances.Get(ctx, userID)
	if err != nil {
		return history.UserPoint{}, fmt.Errorf("failed to get balance of user %d: %w", userID, err)
	}
	return up, nil
}

func (s *Service) GetHistories(ctx context.Context, userID int64) ([]history.Record, error) {
	records, err := s.histories.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list histories of user %d: %w", userID, err)
	}
	return records, nil
}

func (s *Service) mutate(ctx context.Context,
	op operation, userID int64, amount point.Point, policy reward.Policy,
) (history.UserPoint, error) {
	log := s.logger(ctx).With(
		slog.String("operation", op.name),
		slog.String("operation_id", uuid.NewString()),
		slog.Int64("user_id", userID),
		slog.Int64("amount", amount.Int64()),
	)

	if err := validateDenomination(amount); err != nil {
		s.finish(ctx, log, op, err)
		return history.UserPoint{}, err
	}

	lockCtx, cancel := s.withDeadline(ctx)
	defer cancel()

	var updated history.UserPoint
	waitStart := time.Now()
	err := s.locks.Do(lockCtx, userID, func(context.Context) error {
		metrics.ObserveLockWait(time.Since(waitStart))

		// a client going away must not interrupt a half-written mutation;
		// only the deadline does
		critCtx := context.WithoutCancel(ctx)
		if deadline, ok := lockCtx.Deadline(); ok {
			var cancel context.CancelFunc
			critCtx, cancel = context.WithDeadline(critCtx, deadline)
			defer cancel()
		}

		var err error
		updated, err = s.transact(critCtx, log, op, userID, amount, policy)
		return err
	})

	s.finish(ctx, log, op, err)
	if err != nil {
		return history.UserPoint{}, err
	}
	return updated, nil
}

// transact runs under the user lock.
func (s *Service) transact(ctx context.Context, log *slog.Logger,
	op operation, userID int64, amount point.Point, policy reward.Policy,
) (history.UserPoint, error) {
	current, err := s.balances.Get(ctx, userID)
	if err != nil {
		return history.UserPoint{}, fmt.Errorf("failed to load balance of user %d: %w", userID, err)
	}
	balance, err := point.New(current.Point)
	if err != nil {
		return history.UserPoint{}, fmt.Errorf("%w: stored balance of user %d: %v", //nolint: errorlint // corrupt data is not a caller error
			serviceerrs.ErrUnexpected, userID, err)
	}
	w, err := wallet.New(userID, balance)
	if err != nil {
		return history.UserPoint{}, fmt.Errorf("%w: stored balance of user %d: %v", //nolint: errorlint // corrupt data is not a caller error
			serviceerrs.ErrUnexpected, userID, err)
	}

	res, err := op.apply(s.handler, w, amount, policy)
	if err != nil {
		return history.UserPoint{}, err
	}

	if err = ctx.Err(); err != nil {
		return history.UserPoint{}, fmt.Errorf("balance of user %d not persisted: %w", userID, err)
	}
	updated, err := s.balances.Upsert(ctx, userID, res.Wallet.Balance().Int64())
	if err != nil {
		return history.UserPoint{}, fmt.Errorf("failed to persist balance of user %d: %w", userID, err)
	}

	// the balance is committed; history must follow it even past the deadline
	ctx = context.WithoutCancel(ctx)
	if _, err = s.histories.Append(ctx, userID, amount.Int64(), op.tp, updated.UpdatedAt); err != nil {
		log.LogAttrs(ctx, slog.LevelError,
			"balance persisted without history entry",
			slog.String("type", string(op.tp)),
			slog.Any(model.KeyLoggerError, err),
		)
		return history.UserPoint{}, fmt.Errorf("failed to append %s history of user %d: %w",
			op.tp, userID, err)
	}

	if res.Reward.IsPositive() {
		_, err = s.histories.Append(ctx,
			userID, res.Reward.Int64(), history.TypeReward, updated.UpdatedAt)
		if err != nil {
			log.LogAttrs(ctx, slog.LevelError,
				"balance persisted without history entry",
				slog.String("type", string(history.TypeReward)),
				slog.Any(model.KeyLoggerError, err),
			)
			return history.UserPoint{}, fmt.Errorf("failed to append reward history of user %d: %w",
				userID, err)
		}
	}

	log.LogAttrs(ctx, slog.LevelInfo,
		"balance updated",
		slog.Int64("balance", updated.Point),
		slog.Int64("reward", res.Reward.Int64()),
	)
	return updated, nil
}

func (s *Service) finish(ctx context.Context, log *slog.Logger, op operation, err error) {
	switch {
	case err == nil:
		metrics.RecordOperation(op.name, metrics.ResultOK)
	case serviceerrs.IsValidation(err):
		metrics.RecordOperation(op.name, metrics.ResultRejected)
		log.LogAttrs(ctx, slog.LevelInfo,
			"operation rejected",
			slog.Any(model.KeyLoggerError, err),
		)
	case errors.Is(err, serviceerrs.ErrLockTimeout):
		metrics.RecordOperation(op.name, metrics.ResultLockTimeout)
		log.LogAttrs(ctx, slog.LevelWarn,
			"operation timed out waiting for user lock",
			slog.Any(model.KeyLoggerError, err),
		)
	default:
		metrics.RecordOperation(op.name, metrics.ResultFailed)
		log.LogAttrs(ctx, slog.LevelError,
			"operation failed",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func (s *Service) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.lockTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.lockTimeout)
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if l := logger.FromContextOrNil(ctx); l != nil {
		return l
	}
	if s.log != nil {
		return s.log
	}
	return slog.Default()
}

func validateDenomination(amount point.Point) error {
	if !amount.IsPositive() || amount.Int64()%Denomination != 0 {
		return fmt.Errorf("%s: %w", amount, serviceerrs.ErrInvalidDenomination)
	}
	return nil
}
