// Package aptos reads ledger and block metadata from an Aptos fullnode REST
// API. The base URL is the node root; every path is prefixed with /v1.
package aptos

import (
	"github.com/gabapcia/aptoswatch/internal/blockingest"
	"github.com/gabapcia/aptoswatch/internal/chaintip"
	"github.com/gabapcia/aptoswatch/internal/healthmon"
	"github.com/gabapcia/aptoswatch/internal/pkg/transport/rest"
)

type client struct {
	conn rest.Client
}

var (
	_ chaintip.Source           = (*client)(nil)
	_ healthmon.TipSource       = (*client)(nil)
	_ blockingest.ChainAccessor = (*client)(nil)
)

// NewClient returns a fullnode client issuing its requests through conn.
func NewClient(conn rest.Client) *client {
	return &client{
		conn: conn,
	}
}
