// Package aptos queries fungible asset activities from the Aptos indexer
// GraphQL API.
package aptos

import (
	"github.com/gabapcia/aptoswatch/internal/blockingest"
	"github.com/gabapcia/aptoswatch/internal/pkg/transport/graphql"
)

// defaultPageSize matches the row cap of the hosted indexer.
const defaultPageSize = 100

type client struct {
	conn     graphql.Client
	pageSize int
}

var _ blockingest.Indexer = (*client)(nil)

// Option configures NewClient.
type Option func(*client)

// WithPageSize sets how many activities are requested per round trip.
func WithPageSize(n int) Option {
	return func(c *client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient returns an indexer client sending its queries through conn.
func NewClient(conn graphql.Client, opts ...Option) *client {
	c := &client{
		conn:     conn,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
