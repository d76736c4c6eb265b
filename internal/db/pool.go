package db

import (
	"context"
	"fmt"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const (
	defaultConnectAttempts = 10
	defaultConnectBackoff  = 500 * time.Millisecond
)

type OpenParams struct {
	DatabaseURL    string
	TracingEnabled bool
	// ConnectAttempts bounds the pings done before Open gives up.
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

// Open creates the pool and waits until postgres answers a ping.
func Open(ctx context.Context, params OpenParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(params.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	attempts := params.ConnectAttempts
	if attempts <= 0 {
		attempts = defaultConnectAttempts
	}
	backoff := params.ConnectBackoff
	if backoff <= 0 {
		backoff = defaultConnectBackoff
	}

	for attempt := 1; ; attempt++ {
		err = pool.Ping(ctx)
		if err == nil {
			break
		}
		if attempt >= attempts {
			pool.Close()
			return nil, fmt.Errorf("ping db after %d attempts: %w", attempt, err)
		}
		log.Warnf("db not ready (attempt %d/%d): %s", attempt, attempts, err)
		select {
		case <-ctx.Done():
			pool.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	log.Debugf("connected to db %s@%s", poolConfig.ConnConfig.Database, poolConfig.ConnConfig.Host)
	return pool, nil
}
