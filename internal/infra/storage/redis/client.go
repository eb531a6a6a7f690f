// Package redis stores short-lived coordination keys in Redis.
package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/aptoswatch/internal/pkg/logger"
	"github.com/gabapcia/aptoswatch/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

// DefaultNamespace prefixes every key written by this package.
const DefaultNamespace = "aptoswatch"

// Options locate the Redis server.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int

	// Namespace prefixes every key. Empty means DefaultNamespace.
	Namespace string
}

type client struct {
	conn      *redis.Client
	namespace string
}

// NewClient connects with opts, retrying the initial ping with r.
func NewClient(ctx context.Context, opts Options, r retry.Retry) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})

	err := r.Execute(ctx, func() error {
		if err := conn.Ping(ctx).Err(); err != nil {
			logger.Warn(ctx, "redis not reachable yet", "redis.addr", opts.Addr, "error", err)
			return fmt.Errorf("ping %s: %w", opts.Addr, err)
		}
		return nil
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	namespace := opts.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	logger.Info(ctx, "redis connected", "redis.addr", opts.Addr, "redis.db", opts.DB)
	return &client{conn: conn, namespace: namespace}, nil
}

// key joins parts under the client namespace with ':'.
func (c *client) key(parts ...string) string {
	return c.namespace + ":" + strings.Join(parts, ":")
}

func (c *client) Close() error {
	return c.conn.Close()
}
