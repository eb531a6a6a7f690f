package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/aptoswatch/internal/walletalert"
)

// DefaultDedupeTTL is how long a (subscription, version) pair is remembered.
const DefaultDedupeTTL = 30 * time.Minute

// DedupeGuard marks notifications in Redis so that reprocessing a block on
// any instance does not notify the same subscription twice.
type DedupeGuard struct {
	*client
	ttl time.Duration
}

// NewDedupeGuard wraps c. A non-positive ttl falls back to DefaultDedupeTTL.
func NewDedupeGuard(c *client, ttl time.Duration) *DedupeGuard {
	if ttl <= 0 {
		ttl = DefaultDedupeTTL
	}
	return &DedupeGuard{client: c, ttl: ttl}
}

// TryMark sets the key only if absent. It returns true when this call set it.
func (g *DedupeGuard) TryMark(ctx context.Context, subscriptionID int64, version uint64) (bool, error) {
	ok, err := g.conn.SetNX(ctx, g.notifyKey(subscriptionID, version), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("mark notification %d/%d: %w", subscriptionID, version, err)
	}
	return ok, nil
}

// notifyKey builds the dedupe key of a transaction sent to a subscription.
func (g *DedupeGuard) notifyKey(subscriptionID int64, version uint64) string {
	return g.key("notified", strconv.FormatInt(subscriptionID, 10), strconv.FormatUint(version, 10))
}

// Ensure the guard satisfies walletalert.DedupeGuard at compile time.
var _ walletalert.DedupeGuard = (*DedupeGuard)(nil)
