// Package redisstore keeps balances and histories in redis.
//
// Layout:
//
//	point:user:<id>     hash {point, updatedMillis}
//	point:history:<id>  list of JSON records, oldest first
//	point:history:seq   counter for record ids
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talx-hub/point-ledger/internal/model"
	"github.com/talx-hub/point-ledger/internal/model/history"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
)

const (
	userKeyPrefix    = "point:user:"
	historyKeyPrefix = "point:history:"
	historySeqKey    = "point:history:seq"

	fieldPoint   = "point"
	fieldUpdated = "updatedMillis"
)

// Connect parses a redis:// URL and checks the server answers.
func Connect(ctx context.Context, redisURL string, log *slog.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	opt.PoolSize = 50
	opt.MinIdleConns = 10
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	if err = client.Ping(ctx).Err(); err != nil {
		if cErr := client.Close(); cErr != nil {
			err = errors.Join(err, cErr)
		}
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.LogAttrs(ctx,
		slog.LevelInfo,
		"connected to redis",
		slog.String("addr", opt.Addr),
	)
	return client, nil
}

// Store serves as both the balance and the history store.
type Store struct {
	client *redis.Client
	log    *slog.Logger
	now    func() time.Time
}

func New(client *redis.Client, log *slog.Logger) *Store {
	return &Store{
		client: client,
		log:    log,
		now:    time.Now,
	}
}

type recordJSON struct {
	Type       string `json:"type"`
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	Amount     int64  `json:"amount"`
	TimeMillis int64  `json:"timeMillis"`
}

func userKey(userID int64) string {
	return userKeyPrefix + strconv.FormatInt(userID, 10)
}

func historyKey(userID int64) string {
	return historyKeyPrefix + strconv.FormatInt(userID, 10)
}

func (s *Store) Get(ctx context.Context, userID int64) (history.UserPoint, error) {
	fields, err := s.client.HGetAll(ctx, userKey(userID)).Result()
	if err != nil {
		return history.UserPoint{}, fmt.Errorf("failed to read point of user %d: %w", userID, err)
	}
	if len(fields) == 0 {
		return history.UserPoint{
			ID:        userID,
			UpdatedAt: s.now().Truncate(time.Millisecond),
		}, nil
	}

	amount, err := strconv.ParseInt(fields[fieldPoint], 10, 64)
	if err != nil {
		return history.UserPoint{}, fmt.Errorf("%w: point of user %d: %v", //nolint: errorlint // corrupt data is not a caller error
			serviceerrs.ErrUnexpected, userID, err)
	}
	millis, err := strconv.ParseInt(fields[fieldUpdated], 10, 64)
	if err != nil {
		return history.UserPoint{}, fmt.Errorf("%w: update time of user %d: %v", //nolint: errorlint // corrupt data is not a caller error
			serviceerrs.ErrUnexpected, userID, err)
	}
	return history.UserPoint{
		ID:        userID,
		Point:     amount,
		UpdatedAt: time.UnixMilli(millis),
	}, nil
}

func (s *Store) Upsert(ctx context.Context, userID, amount int64) (history.UserPoint, error) {
	updated := s.now().Truncate(time.Millisecond)
	err := s.client.HSet(ctx, userKey(userID),
		fieldPoint, amount,
		fieldUpdated, updated.UnixMilli(),
	).Err()
	if err != nil {
		return history.UserPoint{}, fmt.Errorf("failed to write point of user %d: %w", userID, err)
	}
	return history.UserPoint{
		ID:        userID,
		Point:     amount,
		UpdatedAt: updated,
	}, nil
}

func (s *Store) Append(ctx context.Context,
	userID, amount int64, tp history.TransactionType, at time.Time,
) (history.Record, error) {
	if !tp.Valid() {
		return history.Record{}, fmt.Errorf("%w: unknown transaction type %q",
			serviceerrs.ErrUnexpected, tp)
	}

	id, err := s.client.Incr(ctx, historySeqKey).Result()
	if err != nil {
		return history.Record{}, fmt.Errorf("failed to allocate history id: %w", err)
	}

	r := history.Record{
		ID:        id,
		UserID:    userID,
		Type:      tp,
		Amount:    amount,
		CreatedAt: at.Truncate(time.Millisecond),
	}
	payload, err := json.Marshal(recordJSON{
		ID:         r.ID,
		UserID:     r.UserID,
		Type:       string(r.Type),
		Amount:     r.Amount,
		TimeMillis: r.CreatedAt.UnixMilli(),
	})
	if err != nil {
		return history.Record{}, fmt.Errorf("failed to encode history record: %w", err)
	}

	if err = s.client.RPush(ctx, historyKey(userID), payload).Err(); err != nil {
		return history.Record{}, fmt.Errorf("failed to append %s history of user %d: %w",
			tp, userID, err)
	}
	return r, nil
}

func (s *Store) ListByUser(ctx context.Context, userID int64) ([]history.Record, error) {
	raw, err := s.client.LRange(ctx, historyKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list histories of user %d: %w", userID, err)
	}

	records := make([]history.Record, 0, len(raw))
	for _, item := range raw {
		var rj recordJSON
		if err = json.Unmarshal([]byte(item), &rj); err != nil {
			s.log.LogAttrs(ctx,
				slog.LevelError,
				"skipping corrupt history record",
				slog.Int64("user_id", userID),
				slog.Any(model.KeyLoggerError, err),
			)
			continue
		}
		records = append(records, history.Record{
			CreatedAt: time.UnixMilli(rj.TimeMillis),
			Type:      history.TransactionType(rj.Type),
			ID:        rj.ID,
			UserID:    rj.UserID,
			Amount:    rj.Amount,
		})
	}
	return records, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}
