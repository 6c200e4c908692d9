// Package pgcontainer starts a throwaway postgres in docker for integration
// tests.
package pgcontainer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/talx-hub/point-ledger/internal/model"
)

const (
	defaultTag     = "17-alpine"
	pgPort         = "5432/tcp"
	defaultTimeout = 3 * time.Second
	maxWait        = 30 * time.Second
)

const (
	testDBName       = "test"
	testUserName     = "test"
	testUserPassword = "test"
)

type PGContainer struct {
	log       *slog.Logger
	pool      *dockertest.Pool
	container *dockertest.Resource
	hostPort  string
}

func New(log *slog.Logger) *PGContainer {
	return &PGContainer{log: log}
}

// RunContainer starts postgres and creates an empty test database owned by a
// dedicated user.
func (c *PGContainer) RunContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("failed to initialize a docker pool: %w", err)
	}
	c.pool = pool

	container, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        loadImageTag(),
			Env: []string{
				"POSTGRES_USER=postgres",
				"POSTGRES_PASSWORD=postgres",
			},
			ExposedPorts: []string{pgPort},
		},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	if err != nil {
		return fmt.Errorf("failed to run postgres container: %w", err)
	}
	c.container = container
	c.hostPort = container.GetHostPort(pgPort)

	pool.MaxWait = maxWait
	var conn *pgx.Conn
	if err = pool.Retry(func() error {
		conn, err = c.superUserConnection()
		return err
	}); err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer func() {
		if err := conn.Close(context.TODO()); err != nil {
			c.log.LogAttrs(context.TODO(),
				slog.LevelWarn,
				"failed to close the super user connection",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}()

	return createTestDB(conn)
}

func (c *PGContainer) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		testUserName,
		testUserPassword,
		c.hostPort,
		testDBName,
	)
}

func (c *PGContainer) Close() {
	if c.pool == nil || c.container == nil {
		return
	}
	if err := c.pool.Purge(c.container); err != nil {
		c.log.LogAttrs(context.TODO(),
			slog.LevelError,
			"failed to purge the postgres container",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func (c *PGContainer) superUserConnection() (*pgx.Conn, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		"postgres",
		"postgres",
		c.hostPort,
		"postgres",
	)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to get a super user connection: %w", err)
	}
	return conn, nil
}

func createTestDB(conn *pgx.Conn) error {
	const (
		createUser = `CREATE USER %s PASSWORD '%s';`
		createDB   = `CREATE DATABASE %s
		OWNER %s
		ENCODING 'UTF8';`
	)

	ctx, cancel1 := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel1()
	_, err := conn.Exec(ctx, fmt.Sprintf(createUser, testUserName, testUserPassword))
	if err != nil {
		return fmt.Errorf("failed to create a test user: %w", err)
	}

	ctx, cancel2 := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel2()
	_, err = conn.Exec(ctx, fmt.Sprintf(createDB, testDBName, testUserName))
	if err != nil {
		return fmt.Errorf("failed to create a test DB: %w", err)
	}

	return nil
}

// loadImageTag reads POSTGRES_TAG from the environment or a local .env file.
func loadImageTag() string {
	_ = godotenv.Load(".env")
	if tag := os.Getenv("POSTGRES_TAG"); tag != "" {
		return tag
	}
	return defaultTag
}
