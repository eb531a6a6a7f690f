package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/aptoswatch/internal/blockingest"
	"github.com/gabapcia/aptoswatch/internal/checkpoint"
	"github.com/gabapcia/aptoswatch/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type namedLoop struct {
	name string
	loop Loop
}

func (s *service) loops() []namedLoop {
	loops := []namedLoop{
		{"report sink", s.Reports},
		{"tip tracker", s.Tracker},
		{"wallet index", s.Wallets},
		{"token prices", s.Prices},
		{"compactor", s.Compactor},
		{"health monitor", s.Health},
	}
	for i, w := range s.Workers {
		loops = append(loops, namedLoop{"worker " + strconv.Itoa(i), w})
	}

	out := loops[:0]
	for _, l := range loops {
		if l.loop != nil {
			out = append(out, l)
		}
	}
	return out
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if err := s.boot(ctx); err != nil {
		return err
	}

	s.err.Store(nil)

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	for _, l := range s.loops() {
		g.Go(func() error {
			if err := l.loop.Run(gctx); err != nil {
				return fmt.Errorf("%s: %w", l.name, err)
			}
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		err := g.Wait()
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "pipeline loop failed", "error", err)
			s.err.Store(err)
		}
	}()

	s.done = done
	s.closeFunc = func() {
		cancel()
		<-done
		for _, c := range s.Closers {
			c.Close()
		}
	}
	s.isStarted = true
	return nil
}

// boot makes sure a watermark exists before any worker schedules and loads
// the first snapshots. Chain or database failures here are fatal.
func (s *service) boot(ctx context.Context) error {
	var tip uint64
	err := s.Retry.Execute(ctx, func() error {
		var err error
		tip, err = s.Primary.TipHeight(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("fetch chain tip: %w", err)
	}

	var seeded bool
	err = s.Retry.Execute(ctx, func() error {
		var err error
		seeded, err = checkpoint.Seed(ctx, s.Checkpoints, tip)
		return err
	})
	if err != nil {
		return fmt.Errorf("seed checkpoints: %w", err)
	}
	if seeded {
		logger.Info(ctx, "checkpoint store seeded at chain tip", "block.height", tip)
	}

	for name, r := range map[string]RefreshLoop{"wallet index": s.Wallets, "token prices": s.Prices} {
		if r == nil {
			continue
		}
		if err := r.Refresh(ctx); err != nil {
			logger.Warn(ctx, "initial refresh failed", "component", name, "error", err)
		}
	}

	return nil
}

// BuildWorkers returns one ingest worker per shard of an n-way split.
func BuildWorkers(deps blockingest.Dependencies, storage checkpoint.Storage, n uint8) ([]Loop, error) {
	if n == 0 {
		return nil, fmt.Errorf("%w: no shards", checkpoint.ErrInvalidShard)
	}

	workers := make([]Loop, 0, n)
	for _, shard := range checkpoint.Shards(n) {
		scheduler, err := checkpoint.NewScheduler(storage, shard)
		if err != nil {
			return nil, err
		}
		workers = append(workers, blockingest.NewWorker(deps, scheduler))
	}
	return workers, nil
}
