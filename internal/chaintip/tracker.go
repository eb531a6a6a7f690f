// Package chaintip keeps the latest chain height seen on a polled endpoint.
// Workers read it to avoid claiming heights the chain has not produced yet.
package chaintip

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/aptoswatch/internal/pkg/logger"
	"github.com/gabapcia/aptoswatch/internal/pkg/x/chflow"

	"go.uber.org/atomic"
)

var ErrTrackerAlreadyRunning = errors.New("chain tip tracker already running")

// Source returns the current chain height.
type Source interface {
	TipHeight(ctx context.Context) (uint64, error)
}

// Tracker polls a Source and publishes the highest height observed. The
// published height never decreases.
type Tracker struct {
	mu      sync.Mutex
	running bool

	source   Source
	interval time.Duration
	height   *atomic.Uint64
}

// Option configures New.
type Option func(*Tracker)

// WithInterval overrides the 100ms poll interval.
func WithInterval(d time.Duration) Option {
	return func(t *Tracker) {
		t.interval = d
	}
}

// New returns a Tracker polling source.
func New(source Source, opts ...Option) *Tracker {
	t := &Tracker{
		source:   source,
		interval: 100 * time.Millisecond,
		height:   atomic.NewUint64(0),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Height returns the highest height observed so far, 0 before the first
// successful poll.
func (t *Tracker) Height() uint64 {
	return t.height.Load()
}

// Observe publishes h if it is above the current height.
func (t *Tracker) Observe(h uint64) bool {
	for {
		current := t.height.Load()
		if h <= current {
			return false
		}
		if t.height.CompareAndSwap(current, h) {
			return true
		}
	}
}

// Poll fetches the tip once and publishes it.
func (t *Tracker) Poll(ctx context.Context) error {
	h, err := t.source.TipHeight(ctx)
	if err != nil {
		return err
	}

	t.Observe(h)
	return nil
}

// Run polls until ctx is done. Poll failures are logged and retried on the
// next tick.
func (t *Tracker) Run(ctx context.Context) error {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return ErrTrackerAlreadyRunning
	}
	t.running = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.running = false
		t.mu.Unlock()
	}()

	for {
		if err := t.Poll(ctx); err != nil && ctx.Err() == nil {
			logger.Debug(ctx, "chain tip poll failed", "error", err)
		}

		if !chflow.Sleep(ctx, t.interval) {
			return nil
		}
	}
}
