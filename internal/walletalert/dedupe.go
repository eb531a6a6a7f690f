package walletalert

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryGuard is a process-local DedupeGuard. Marks expire after the TTL.
type MemoryGuard struct {
	cache *ttlcache.Cache[string, struct{}]
}

var _ DedupeGuard = (*MemoryGuard)(nil)

// NewMemoryGuard returns a MemoryGuard remembering marks for ttl.
func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	return &MemoryGuard{
		cache: ttlcache.New(
			ttlcache.WithTTL[string, struct{}](ttl),
			ttlcache.WithDisableTouchOnHit[string, struct{}](),
		),
	}
}

func (g *MemoryGuard) TryMark(_ context.Context, subscriptionID int64, version uint64) (bool, error) {
	_, found := g.cache.GetOrSet(dedupeKey(subscriptionID, version), struct{}{})
	return !found, nil
}

// Start evicts expired marks until Stop is called.
func (g *MemoryGuard) Start() {
	g.cache.Start()
}

func (g *MemoryGuard) Stop() {
	g.cache.Stop()
}

func dedupeKey(subscriptionID int64, version uint64) string {
	return fmt.Sprintf("%d:%d", subscriptionID, version)
}
