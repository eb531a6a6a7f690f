package walletindex

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/aptoswatch/internal/address"
	"github.com/gabapcia/aptoswatch/internal/pkg/logger"
	"github.com/gabapcia/aptoswatch/internal/pkg/types"
	"github.com/gabapcia/aptoswatch/internal/pkg/x/chflow"

	"go.uber.org/atomic"
)

var ErrIndexAlreadyRunning = errors.New("wallet index already running")

// Storage lists every active subscription.
type Storage interface {
	ListSubscriptions(ctx context.Context) ([]Subscription, error)
}

// Snapshot is an immutable view of the subscriptions grouped by wallet.
type Snapshot struct {
	byWallet map[string][]Subscription
}

// NewSnapshot groups subs by normalized wallet address, keeping their order.
func NewSnapshot(subs []Subscription) *Snapshot {
	grouped := types.NewDefaultMap[string](func() []Subscription { return nil })
	for _, sub := range subs {
		key := address.Normalize(sub.WalletAddress)
		grouped.Set(key, append(grouped.Get(key), sub))
	}
	return &Snapshot{byWallet: grouped.ToMap()}
}

// Contains reports whether any subscription follows addr.
func (s *Snapshot) Contains(addr string) bool {
	return len(s.byWallet[address.Normalize(addr)]) > 0
}

// Subscriptions returns the subscriptions following addr.
func (s *Snapshot) Subscriptions(addr string) []Subscription {
	return s.byWallet[address.Normalize(addr)]
}

// Len is the number of distinct tracked wallets.
func (s *Snapshot) Len() int {
	return len(s.byWallet)
}

// Index serves the current Snapshot and reloads it periodically.
type Index struct {
	mu      sync.Mutex
	running bool

	storage  Storage
	interval time.Duration
	current  *atomic.Pointer[Snapshot]
}

// Option configures New.
type Option func(*Index)

// WithInterval overrides the 5s refresh interval.
func WithInterval(d time.Duration) Option {
	return func(i *Index) {
		i.interval = d
	}
}

// New returns an Index with an empty snapshot.
func New(storage Storage, opts ...Option) *Index {
	i := &Index{
		storage:  storage,
		interval: 5 * time.Second,
		current:  atomic.NewPointer(NewSnapshot(nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Snapshot returns the current snapshot. It is never nil.
func (i *Index) Snapshot() *Snapshot {
	return i.current.Load()
}

// Refresh reloads every subscription and swaps the snapshot.
func (i *Index) Refresh(ctx context.Context) error {
	subs, err := i.storage.ListSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("list subscriptions: %w", err)
	}

	i.current.Store(NewSnapshot(subs))
	return nil
}

// Run refreshes every interval until ctx is done.
func (i *Index) Run(ctx context.Context) error {
	i.mu.Lock()
	if i.running {
		i.mu.Unlock()
		return ErrIndexAlreadyRunning
	}
	i.running = true
	i.mu.Unlock()

	defer func() {
		i.mu.Lock()
		i.running = false
		i.mu.Unlock()
	}()

	for {
		if err := i.Refresh(ctx); err != nil && ctx.Err() == nil {
			logger.Warn(ctx, "wallet index refresh failed", "error", err)
		}

		if !chflow.Sleep(ctx, i.interval) {
			return nil
		}
	}
}
