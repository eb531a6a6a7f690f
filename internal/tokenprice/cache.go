// Package tokenprice keeps an in-memory snapshot of token prices and
// decimals, refreshed wholesale from storage. It also collects token
// addresses seen on chain but missing from the snapshot and registers them
// in storage so their prices can be filled in.
package tokenprice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/aptoswatch/internal/address"
	"github.com/gabapcia/aptoswatch/internal/pkg/logger"
	"github.com/gabapcia/aptoswatch/internal/pkg/x/chflow"

	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/atomic"
)

var ErrCacheAlreadyRunning = errors.New("token price cache already running")

// Entry is the price information for one token.
type Entry struct {
	Address  string
	PriceUSD float64
	Decimals uint8
	Name     *string
}

// Discovery is a token address observed on chain with its decimals.
type Discovery struct {
	Address  string
	Decimals uint8
}

// Storage loads and registers token entries.
type Storage interface {
	// ListTokens returns every known token.
	ListTokens(ctx context.Context) ([]Entry, error)

	// RegisterTokens inserts tokens that are not known yet with a zero price.
	// Already known addresses are ignored.
	RegisterTokens(ctx context.Context, tokens []Discovery) error
}

// Snapshot is an immutable view of the token table.
type Snapshot struct {
	entries map[string]Entry
}

// NewSnapshot indexes entries by normalized address.
func NewSnapshot(entries []Entry) *Snapshot {
	s := &Snapshot{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		s.entries[address.Normalize(e.Address)] = e
	}
	return s
}

// Lookup returns the entry for addr.
func (s *Snapshot) Lookup(addr string) (Entry, bool) {
	e, ok := s.entries[address.Normalize(addr)]
	return e, ok
}

func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Cache serves the current Snapshot and refreshes it periodically. Readers
// never block: a refresh builds a new Snapshot and swaps it in.
type Cache struct {
	mu      sync.Mutex
	running bool

	storage  Storage
	interval time.Duration
	current  *atomic.Pointer[Snapshot]
	unknown  *xsync.Map[string, uint8]
}

// Option configures New.
type Option func(*Cache)

// WithInterval overrides the 30s refresh interval.
func WithInterval(d time.Duration) Option {
	return func(c *Cache) {
		c.interval = d
	}
}

// New returns a Cache with an empty snapshot.
func New(storage Storage, opts ...Option) *Cache {
	c := &Cache{
		storage:  storage,
		interval: 30 * time.Second,
		current:  atomic.NewPointer(NewSnapshot(nil)),
		unknown:  xsync.NewMap[string, uint8](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current snapshot. It is never nil.
func (c *Cache) Snapshot() *Snapshot {
	return c.current.Load()
}

// MarkUnknown queues addr for registration on the next refresh.
func (c *Cache) MarkUnknown(addr string, decimals uint8) {
	c.unknown.Store(address.Normalize(addr), decimals)
}

// Refresh registers queued unknown tokens and reloads the snapshot.
func (c *Cache) Refresh(ctx context.Context) error {
	if err := c.flushUnknown(ctx); err != nil {
		logger.Warn(ctx, "token registration failed", "error", err)
	}

	entries, err := c.storage.ListTokens(ctx)
	if err != nil {
		return fmt.Errorf("list tokens: %w", err)
	}

	c.current.Store(NewSnapshot(entries))
	return nil
}

func (c *Cache) flushUnknown(ctx context.Context) error {
	var pending []Discovery
	c.unknown.Range(func(addr string, decimals uint8) bool {
		pending = append(pending, Discovery{Address: addr, Decimals: decimals})
		return true
	})
	if len(pending) == 0 {
		return nil
	}

	if err := c.storage.RegisterTokens(ctx, pending); err != nil {
		return err
	}

	for _, d := range pending {
		c.unknown.Delete(d.Address)
	}

	logger.Info(ctx, "registered unpriced tokens", "tokens.count", len(pending))
	return nil
}

// Run refreshes every interval until ctx is done.
func (c *Cache) Run(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return ErrCacheAlreadyRunning
	}
	c.running = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	}()

	for {
		if err := c.Refresh(ctx); err != nil && ctx.Err() == nil {
			logger.Warn(ctx, "token price refresh failed", "error", err)
		}

		if !chflow.Sleep(ctx, c.interval) {
			return nil
		}
	}
}
