// Package pipeline starts and stops every long-running loop of the scanner:
// the shard workers, the watermark compactor, the tip tracker, the snapshot
// refreshers, the health monitor and the report sink.
package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/aptoswatch/internal/checkpoint"
	"github.com/gabapcia/aptoswatch/internal/pkg/resilience/retry"

	"go.uber.org/atomic"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service is the lifecycle of the whole scanner.
type Service interface {
	// Start seeds the checkpoint store if it is empty, primes the snapshots
	// and launches every loop in the background.
	//
	// Returns ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) error

	// Close cancels every loop and waits for them to return. It is safe to
	// call Close even if the service was never started.
	Close()

	// Done is closed once every loop has returned, either after Close or
	// because one of them failed.
	Done() <-chan struct{}

	// Err returns the first loop failure, if any, once Done is closed.
	Err() error
}

// Loop is a component that works until its context is done.
type Loop interface {
	Run(ctx context.Context) error
}

// RefreshLoop is a Loop whose state can also be loaded on demand.
type RefreshLoop interface {
	Loop
	Refresh(ctx context.Context) error
}

// TipSource fetches the current chain height.
type TipSource interface {
	TipHeight(ctx context.Context) (uint64, error)
}

// Closer releases resources once every loop has stopped.
type Closer interface {
	Close()
}

// Components are the pieces the pipeline drives.
type Components struct {
	Checkpoints checkpoint.Storage
	Primary     TipSource
	Retry       retry.Retry

	Tracker   Loop
	Wallets   RefreshLoop
	Prices    RefreshLoop
	Compactor Loop
	Health    Loop
	Reports   Loop
	Workers   []Loop

	// Closers run after the loops, in order.
	Closers []Closer
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	done      chan struct{}
	err       *atomic.Error

	Components
}

var _ Service = (*service)(nil)

// New returns a stopped pipeline over c.
func New(c Components) *service {
	done := make(chan struct{})
	close(done)

	return &service{
		Components: c,
		done:       done,
		err:        atomic.NewError(nil),
	}
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

func (s *service) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

func (s *service) Err() error {
	return s.err.Load()
}
