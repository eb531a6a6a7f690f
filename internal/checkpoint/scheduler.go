package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"math"
)

const (
	// scanFactor times the modulo bounds the heights scanned above the window.
	scanFactor = 20

	// maxWindowSpan bounds the number of heights between the watermark and the
	// last row of the window that are scanned for a gap.
	maxWindowSpan = 1 << 20
)

// Scheduler picks the next height a shard should process. It is stateless:
// every call reads the watermark and the window above it from Storage, so
// several processes can schedule the same shard set concurrently and rely on
// InsertClaim to settle races.
type Scheduler struct {
	storage Storage
	shard   Shard
}

// NewScheduler returns a Scheduler for shard.
func NewScheduler(storage Storage, shard Shard) (*Scheduler, error) {
	if err := shard.Validate(); err != nil {
		return nil, err
	}

	return &Scheduler{
		storage: storage,
		shard:   shard,
	}, nil
}

func (s *Scheduler) Shard() Shard {
	return s.shard
}

// Next returns the lowest unclaimed height owned by the shard, looking first
// at gaps inside the window of modulo+1 rows starting at the watermark and
// then at the frontier above it.
//
// Errors: ErrSlotDatabaseEmpty when no watermark exists or its row is
// missing, ErrWaitTillBottomUpdate when the frontier scan budget is spent,
// ErrOverflow when heights exceed the uint64 range.
func (s *Scheduler) Next(ctx context.Context) (uint64, error) {
	bottom, err := s.watermark(ctx)
	if err != nil {
		return 0, err
	}

	window, err := s.storage.FindRange(ctx, bottom, int(s.shard.Modulo)+1, Ascending)
	if err != nil {
		return 0, fmt.Errorf("load window: %w", err)
	}

	if len(window) == 0 || window[0] != bottom {
		return 0, ErrSlotDatabaseEmpty
	}

	if height, found, err := firstGap(bottom, window, s.shard); err != nil || found {
		return height, err
	}

	candidate, err := nextOwned(window[len(window)-1], s.shard)
	if err != nil {
		return 0, err
	}

	step := uint64(s.shard.Modulo)
	for i := uint64(0); i < scanFactor*step; i++ {
		if i > 0 && math.MaxUint64-candidate < step {
			return 0, ErrOverflow
		}
		if i > 0 {
			candidate += step
		}

		exists, err := s.storage.Exists(ctx, candidate)
		if err != nil {
			return 0, fmt.Errorf("check height %d: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return 0, ErrWaitTillBottomUpdate
}

// watermark returns the Bottom height, falling back to the highest Old height
// while the compactor is between its two updates.
func (s *Scheduler) watermark(ctx context.Context) (uint64, error) {
	bottom, err := s.storage.FindWatermark(ctx, PlaceBottom, Ascending)
	if err == nil {
		return bottom, nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return 0, fmt.Errorf("find bottom: %w", err)
	}

	bottom, err = s.storage.FindWatermark(ctx, PlaceOld, Descending)
	if errors.Is(err, ErrRecordNotFound) {
		return 0, ErrSlotDatabaseEmpty
	}
	if err != nil {
		return 0, fmt.Errorf("find last old: %w", err)
	}

	return bottom, nil
}

// firstGap scans offsets 0..last-bottom for the first unclaimed height owned
// by shard. window must be sorted ascending and start at bottom.
func firstGap(bottom uint64, window []uint64, shard Shard) (uint64, bool, error) {
	span := window[len(window)-1] - bottom
	if span >= maxWindowSpan {
		return 0, false, fmt.Errorf("%w: window spans %d heights", ErrOverflow, span)
	}

	claimed := make([]bool, span+1)
	for _, h := range window {
		claimed[h-bottom] = true
	}

	modulo := uint64(shard.Modulo)
	first := (uint64(shard.Remainder) + modulo - bottom%modulo) % modulo
	for offset := first; offset <= span; offset += modulo {
		if !claimed[offset] {
			return bottom + offset, true, nil
		}
	}

	return 0, false, nil
}

// nextOwned returns the smallest height strictly above last owned by shard.
func nextOwned(last uint64, shard Shard) (uint64, error) {
	if last == math.MaxUint64 {
		return 0, ErrOverflow
	}

	next := last + 1
	modulo := uint64(shard.Modulo)
	delta := (uint64(shard.Remainder) + modulo - next%modulo) % modulo
	if math.MaxUint64-next < delta {
		return 0, ErrOverflow
	}

	return next + delta, nil
}
