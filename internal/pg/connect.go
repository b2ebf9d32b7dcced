package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	connectRetries = 5
	connectBackoff = 500 * time.Millisecond
	maxConns       = 4
)

// Connect opens a pool for dsn and pings it, retrying with exponential backoff while the server is unreachable.
func Connect(ctx context.Context, store, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse %s dsn: %w", store, err)
	}
	cfg.MaxConns = maxConns
	cfg.MaxConnLifetime = time.Hour

	var pool *pgxpool.Pool
	backoff := retry.WithMaxRetries(connectRetries, retry.NewExponential(connectBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		p, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			zap.L().Warn("store is not reachable, retrying", zap.String("store", store), zap.Error(err))
			return retry.RetryableError(err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s store: %w", store, err)
	}
	return pool, nil
}
