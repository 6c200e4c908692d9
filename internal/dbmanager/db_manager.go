package dbmanager

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talx-hub/point-ledger/internal/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

var ErrNotConnected = errors.New("DB is not connected")

// DBManager owns the connection pool. Its methods chain; the first failure
// sticks and is reported by Error.
type DBManager struct {
	log  *slog.Logger
	pool *pgxpool.Pool
	err  error
	dsn  string
}

func New(dsn string, log *slog.Logger) *DBManager {
	return &DBManager{
		log: log,
		dsn: dsn,
	}
}

func (m *DBManager) Connect(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	cfg, err := pgxpool.ParseConfig(m.dsn)
	if err != nil {
		m.fail(ctx, "failed to parse DSN", err)
		return m
	}
	cfg.MinConns = 1
	cfg.MaxConns = 10
	cfg.ConnConfig.Tracer = &queryTracer{m.log}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		m.fail(ctx, "failed to init pgxpool", err)
		return m
	}

	m.pool = pool
	return m
}

func (m *DBManager) Ping(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}
	if m.pool == nil {
		m.fail(ctx, "failed to ping the DB", ErrNotConnected)
		return m
	}

	if err := m.pool.Ping(ctx); err != nil {
		m.fail(ctx, "failed to ping the DB", err)
		return m
	}
	return m
}

// ApplyMigrations brings the schema up to date. Running it on an up to date
// schema is a no-op.
func (m *DBManager) ApplyMigrations(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		m.fail(ctx, "failed to open embedded migrations", err)
		return m
	}

	mg, err := migrate.NewWithSourceInstance("iofs", src, migrationDSN(m.dsn))
	if err != nil {
		m.fail(ctx, "failed to init migrator", err)
		return m
	}
	defer func() {
		srcErr, dbErr := mg.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			m.log.LogAttrs(ctx,
				slog.LevelWarn,
				"failed to close migrator",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}()

	if err = mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		m.fail(ctx, "failed to apply migrations", err)
		return m
	}

	m.log.LogAttrs(ctx,
		slog.LevelInfo,
		"migrations applied",
	)
	return m
}

func (m *DBManager) Error() error {
	return m.err
}

func (m *DBManager) GetPool(ctx context.Context) (*pgxpool.Pool, error) {
	if m.pool == nil {
		return nil, ErrNotConnected
	}
	if err := m.pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping the DB: %w", err)
	}
	return m.pool, nil
}

func (m *DBManager) Close() {
	if m.pool == nil {
		return
	}

	m.pool.Close()
	m.log.LogAttrs(context.TODO(),
		slog.LevelInfo,
		"connection to DB closed",
	)
}

func (m *DBManager) fail(ctx context.Context, msg string, err error) {
	m.log.LogAttrs(ctx,
		slog.LevelError,
		msg,
		slog.Any(model.KeyLoggerError, err),
	)
	m.err = fmt.Errorf("%s: %w", msg, err)
}

func migrationDSN(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "pgx5://" + strings.TrimPrefix(dsn, scheme)
		}
	}
	return dsn
}
