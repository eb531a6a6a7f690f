// Package postgres implements the checkpoint, subscription and token stores
// on PostgreSQL through a pgx connection pool.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/aptoswatch/internal/pkg/logger"
	"github.com/gabapcia/aptoswatch/internal/pkg/resilience/retry"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

// Executor is implemented by both *pgxpool.Pool and pgx.Tx.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PoolConfig tunes the connection pool.
type PoolConfig struct {
	MinConns        int32
	MaxConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig sizes the pool for a handful of shard workers plus the
// background loops.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MinConns:        2,
		MaxConns:        20,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Client owns the pool and hands out the stores built on it.
type Client struct {
	Pool *pgxpool.Pool
}

// New connects to url, retrying the initial connection and ping.
func New(ctx context.Context, url string, poolConfig PoolConfig, r retry.Retry) (*Client, error) {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	config.MinConns = poolConfig.MinConns
	config.MaxConns = poolConfig.MaxConns
	config.MaxConnLifetime = poolConfig.ConnMaxLifetime
	config.MaxConnIdleTime = poolConfig.ConnMaxIdleTime

	var pool *pgxpool.Pool
	err = r.Execute(ctx, func() error {
		p, err := pgxpool.NewWithConfig(ctx, config)
		if err != nil {
			return fmt.Errorf("create pool: %w", err)
		}

		if err := p.Ping(ctx); err != nil {
			p.Close()
			logger.Warn(ctx, "postgres not reachable yet", "error", err)
			return fmt.Errorf("ping: %w", err)
		}

		pool = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "postgres connection pool configured",
		"min_conns", poolConfig.MinConns,
		"max_conns", poolConfig.MaxConns,
	)

	return &Client{Pool: pool}, nil
}

// Migrate creates the tables and indexes when missing.
func (c *Client) Migrate(ctx context.Context) error {
	if _, err := c.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Close releases every pooled connection.
func (c *Client) Close() {
	c.Pool.Close()
}

// Checkpoints returns the checkpoint store.
func (c *Client) Checkpoints() *CheckpointStore {
	return NewCheckpointStore(c.Pool)
}

// Subscriptions returns the subscription store.
func (c *Client) Subscriptions() *SubscriptionStore {
	return NewSubscriptionStore(c.Pool)
}

// Tokens returns the token store.
func (c *Client) Tokens() *TokenStore {
	return NewTokenStore(c.Pool)
}

// IsNoRows reports whether err is pgx's no-rows error.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
