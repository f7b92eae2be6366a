package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const DEFAULT_MAX_CONNECTIONS = 10

func newPoolConfig(connectionString string, maxConnections int) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if maxConnections <= 0 {
		maxConnections = DEFAULT_MAX_CONNECTIONS
	}
	cfg.MaxConns = int32(maxConnections)
	cfg.MaxConnIdleTime = 30 * time.Second
	cfg.ConnConfig.ConnectTimeout = 5 * time.Second
	// Server-side timeouts so a stalled statement or an abandoned
	// transaction releases its connection instead of pinning it.
	cfg.ConnConfig.RuntimeParams["statement_timeout"] = "10s"
	cfg.ConnConfig.RuntimeParams["idle_in_transaction_session_timeout"] = "60s"
	return cfg, nil
}

// NewPostgresConnectionPool is the single shared pool of the process.
// A transaction checks out one connection for its whole lifetime, so
// the acquire timeout is what bounds a request stuck on an exhausted
// pool.
func NewPostgresConnectionPool(ctx context.Context, connectionString string, maxConnections int) (*pgxpool.Pool, error) {
	cfg, err := newPoolConfig(connectionString, maxConnections)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return pool, nil
}
