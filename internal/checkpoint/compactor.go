package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/aptoswatch/internal/pkg/logger"
	"github.com/gabapcia/aptoswatch/internal/pkg/x/chflow"
)

const (
	compactionBaseDelay  = 500 * time.Millisecond
	compactionStepDelay  = 50 * time.Millisecond
	compactionMinDelay   = 1 * time.Millisecond
	compactionErrorDelay = 10 * time.Second
)

type compactionErrorHandler func(ctx context.Context, err error)

// Compactor advances the Bottom watermark across contiguous records. Only one
// Compactor may run against a store at a time; it is the sole writer of Bottom.
type Compactor struct {
	mu      sync.Mutex
	running bool

	storage    Storage
	onError    compactionErrorHandler
	errorDelay time.Duration
}

// CompactorOption configures NewCompactor.
type CompactorOption func(*Compactor)

// WithCompactionErrorHandler registers a callback for failed compaction cycles.
func WithCompactionErrorHandler(fn func(ctx context.Context, err error)) CompactorOption {
	return func(c *Compactor) {
		c.onError = fn
	}
}

// WithCompactionErrorDelay overrides the 10s pause after a failed cycle.
func WithCompactionErrorDelay(d time.Duration) CompactorOption {
	return func(c *Compactor) {
		c.errorDelay = d
	}
}

// NewCompactor returns a Compactor over storage.
func NewCompactor(storage Storage, opts ...CompactorOption) *Compactor {
	c := &Compactor{
		storage:    storage,
		onError:    func(context.Context, error) {},
		errorDelay: compactionErrorDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compact runs a single cycle and returns how many positions the watermark
// moved. Records [start, end-1] become Old and end becomes Bottom, where start
// is the current Bottom (or the lowest Head when no Bottom exists) and end is
// the last height of the contiguous run beginning at start.
func (c *Compactor) Compact(ctx context.Context) (uint64, error) {
	start, isBottom, err := c.start(ctx)
	if err != nil {
		return 0, err
	}

	heights, err := c.storage.FindRange(ctx, start, 0, Ascending)
	if err != nil {
		return 0, fmt.Errorf("load rows from %d: %w", start, err)
	}
	if len(heights) == 0 || heights[0] != start {
		return 0, ErrSlotDatabaseEmpty
	}

	cut := contiguousRun(start, heights)
	end := start + cut

	if cut == 0 {
		if isBottom {
			return 0, nil
		}
		return 0, c.storage.SetPlace(ctx, end, PlaceBottom)
	}

	if _, err := c.storage.BulkSetPlace(ctx, start, end-1, PlaceOld); err != nil {
		return 0, fmt.Errorf("retire [%d, %d]: %w", start, end-1, err)
	}

	if err := c.storage.SetPlace(ctx, end, PlaceBottom); err != nil {
		return 0, fmt.Errorf("promote %d: %w", end, err)
	}

	logger.Debug(ctx, "watermark advanced", "watermark.from", start, "watermark.to", end)
	return cut, nil
}

func (c *Compactor) start(ctx context.Context) (uint64, bool, error) {
	start, err := c.storage.FindWatermark(ctx, PlaceBottom, Ascending)
	if err == nil {
		return start, true, nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return 0, false, fmt.Errorf("find bottom: %w", err)
	}

	start, err = c.storage.FindWatermark(ctx, PlaceHead, Ascending)
	if errors.Is(err, ErrRecordNotFound) {
		return 0, false, ErrSlotDatabaseEmpty
	}
	if err != nil {
		return 0, false, fmt.Errorf("find lowest head: %w", err)
	}

	return start, false, nil
}

// contiguousRun returns the index of the last element of the run
// start, start+1, ... at the beginning of heights.
func contiguousRun(start uint64, heights []uint64) uint64 {
	for i := 1; i < len(heights); i++ {
		if heights[i] != start+uint64(i) {
			return uint64(i - 1)
		}
	}
	return uint64(len(heights) - 1)
}

// compactionDelay is max(1ms, 500ms - 50ms*advanced).
func compactionDelay(advanced uint64) time.Duration {
	if advanced >= uint64(compactionBaseDelay/compactionStepDelay) {
		return compactionMinDelay
	}
	return max(compactionMinDelay, compactionBaseDelay-time.Duration(advanced)*compactionStepDelay)
}

// Run compacts until ctx is done, pausing adaptively between cycles. It
// returns ErrCompactorAlreadyRunning if another Run is active.
func (c *Compactor) Run(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return ErrCompactorAlreadyRunning
	}
	c.running = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	}()

	for {
		advanced, err := c.Compact(ctx)

		delay := compactionDelay(advanced)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			logger.Warn(ctx, "watermark compaction failed", "error", err)
			c.onError(ctx, err)
			delay = c.errorDelay
		}

		if !chflow.Sleep(ctx, delay) {
			return nil
		}
	}
}
