package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/talx-hub/point-ledger/internal/api/handlers"
	"github.com/talx-hub/point-ledger/internal/dbmanager"
	"github.com/talx-hub/point-ledger/internal/ledger"
	"github.com/talx-hub/point-ledger/internal/model"
	"github.com/talx-hub/point-ledger/internal/model/reward"
	"github.com/talx-hub/point-ledger/internal/repo"
	"github.com/talx-hub/point-ledger/internal/repo/memory"
	"github.com/talx-hub/point-ledger/internal/repo/redisstore"
	"github.com/talx-hub/point-ledger/internal/router"
	"github.com/talx-hub/point-ledger/internal/service/config"
	"github.com/talx-hub/point-ledger/internal/utils/logger"
)

const connectTimeout = 5 * time.Second

type storage struct {
	balances  ledger.BalanceStore
	histories ledger.HistoryStore
	health    handlers.Pinger
	close     func()
}

func initStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage, error) {
	switch cfg.Storage() {
	case config.StoragePostgres:
		dbManager := dbmanager.New(cfg.DatabaseURI, log).
			Connect(ctx).
			Ping(ctx).
			ApplyMigrations(ctx)
		if err := dbManager.Error(); err != nil {
			dbManager.Close()
			return storage{}, fmt.Errorf("db connection error: %w", err)
		}
		pool, err := dbManager.GetPool(ctx)
		if err != nil {
			dbManager.Close()
			return storage{}, fmt.Errorf("failed to get DB pool: %w", err)
		}

		balances := repo.NewBalanceRepository(pool, log)
		return storage{
			balances:  balances,
			histories: repo.NewHistoryRepository(pool, log),
			health:    balances,
			close:     dbManager.Close,
		}, nil

	case config.StorageRedis:
		client, err := redisstore.Connect(ctx, cfg.RedisURL, log)
		if err != nil {
			return storage{}, fmt.Errorf("redis connection error: %w", err)
		}
		store := redisstore.New(client, log)
		return storage{
			balances:  store,
			histories: store,
			health:    store,
			close: func() {
				if err := client.Close(); err != nil {
					log.LogAttrs(context.TODO(),
						slog.LevelError,
						"failed to close redis client",
						slog.Any(model.KeyLoggerError, err),
					)
				}
			},
		}, nil

	default:
		balances := memory.NewUserPointTable(cfg.MemoryLatency)
		return storage{
			balances:  balances,
			histories: memory.NewPointHistoryTable(cfg.MemoryLatency),
			health:    balances,
			close:     func() {},
		}, nil
	}
}

func initService(cfg *config.Config, log *slog.Logger) (http.Handler, func(), error) {
	usePolicy, err := reward.NewPercentage(cfg.UseRewardRate)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid use reward rate: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	store, err := initStorage(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	log.LogAttrs(ctx,
		slog.LevelInfo,
		"storage ready",
		slog.String("storage", string(cfg.Storage())),
	)

	ledgerService := ledger.NewService(store.balances, store.histories, log,
		ledger.WithLockTimeout(cfg.LockTimeout),
		ledger.WithChargePolicy(reward.NoReward{}),
		ledger.WithUsePolicy(usePolicy),
	)

	rr := router.New(cfg, log)
	rr.SetRouter(handlers.New(ledgerService, store.health, log))

	return rr.GetRouter(), store.close, nil
}

// RunServer serves until SIGINT or SIGTERM, then drains in-flight requests.
func RunServer() error {
	bootLog := slog.Default()
	cfg, err := config.NewBuilder(bootLog).
		FromDotEnv().
		FromEnv().
		FromFlags().
		GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(log)

	mux, closeStorage, err := initService(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to init service: %w", err)
	}
	defer closeStorage()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.RunAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return logger.WithContext(context.Background(), log)
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.LogAttrs(gctx,
			slog.LevelInfo,
			"server started",
			slog.String("addr", cfg.RunAddr),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.LogAttrs(shutdownCtx,
			slog.LevelInfo,
			"shutting down",
		)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down gracefully: %w", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		log.LogAttrs(context.TODO(),
			slog.LevelError,
			"server stopped with error",
			slog.Any(model.KeyLoggerError, err),
		)
		return err //nolint: wrapcheck // already wrapped
	}
	log.LogAttrs(context.TODO(),
		slog.LevelInfo,
		"server stopped",
	)
	return nil
}
