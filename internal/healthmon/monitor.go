// Package healthmon periodically compares the processed watermark with the
// chain tips reported by the primary and backup endpoints, derives the
// processing rate and reports anomalies to operators.
package healthmon

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/aptoswatch/internal/checkpoint"
	"github.com/gabapcia/aptoswatch/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/aptoswatch/internal/healthmon"

var ErrMonitorAlreadyRunning = errors.New("health monitor already running")

const (
	// behindThreshold is the lag above which tracking is reported as behind.
	behindThreshold = 1000
	// divergenceThreshold is the primary/backup tip difference reported.
	divergenceThreshold = 100
	// minRateWindow is the shortest interval a rate is computed over.
	minRateWindow = 100 * time.Millisecond
	// maxListedStale bounds the heights listed in a stale claim report.
	maxListedStale = 10
)

// Checkpoints reads the watermark and expires stuck claims.
type Checkpoints interface {
	FindWatermark(ctx context.Context, place checkpoint.Place, order checkpoint.Order) (uint64, error)

	// MarkStaleClaims moves every Processing record created before cutoff
	// to Error and returns their heights.
	MarkStaleClaims(ctx context.Context, cutoff time.Time) ([]uint64, error)
}

// TipSource fetches the current chain height.
type TipSource interface {
	TipHeight(ctx context.Context) (uint64, error)
}

// TipReader returns the last height seen by a tracker.
type TipReader interface {
	Height() uint64
}

// Sink forwards reports to operators.
type Sink interface {
	Send(ctx context.Context, text string)
}

// Status is the outcome of one check.
type Status struct {
	Processed uint64
	Primary   uint64
	Backup    uint64
	// Rate is blocks per second since the previous check, nil on the first.
	Rate     *float64
	Stale    []uint64
	Messages []string
}

type sample struct {
	at     time.Time
	height uint64
}

// Monitor runs health checks.
type Monitor struct {
	mu      sync.Mutex
	running bool
	last    *sample

	checkpoints Checkpoints
	primary     TipSource
	backup      TipReader
	sink        Sink

	interval time.Duration
	staleAge time.Duration
	now      func() time.Time

	rate metric.Float64Gauge
	lag  metric.Int64Gauge
}

// Option configures New.
type Option func(*Monitor)

// WithInterval overrides the 120s check interval.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		m.interval = d
	}
}

// WithStaleClaimAge sets how old a Processing record must be to be expired.
// Zero disables expiry.
func WithStaleClaimAge(d time.Duration) Option {
	return func(m *Monitor) {
		m.staleAge = d
	}
}

// New returns a Monitor.
func New(checkpoints Checkpoints, primary TipSource, backup TipReader, sink Sink, opts ...Option) *Monitor {
	m := &Monitor{
		checkpoints: checkpoints,
		primary:     primary,
		backup:      backup,
		sink:        sink,
		interval:    120 * time.Second,
		staleAge:    10 * time.Minute,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	meter := otel.Meter(instrumentationName)
	var err error
	if m.rate, err = meter.Float64Gauge("aptoswatch.processing.rate", metric.WithUnit("{block}/s")); err != nil {
		m.rate, _ = noop.NewMeterProvider().Meter("").Float64Gauge("")
	}
	if m.lag, err = meter.Int64Gauge("aptoswatch.chain.lag", metric.WithUnit("{block}")); err != nil {
		m.lag, _ = noop.NewMeterProvider().Meter("").Int64Gauge("")
	}

	return m
}

// processedHeight is the watermark, or the highest historical record when
// no watermark row exists.
func (m *Monitor) processedHeight(ctx context.Context) (uint64, error) {
	h, err := m.checkpoints.FindWatermark(ctx, checkpoint.PlaceBottom, checkpoint.Descending)
	if errors.Is(err, checkpoint.ErrRecordNotFound) {
		h, err = m.checkpoints.FindWatermark(ctx, checkpoint.PlaceOld, checkpoint.Descending)
	}
	return h, err
}

// Check runs one health check and sends its messages to the sink. A missing
// watermark yields an empty Status.
func (m *Monitor) Check(ctx context.Context) (Status, error) {
	var status Status

	stale, err := m.expireStale(ctx)
	if err != nil {
		logger.Warn(ctx, "stale claim sweep failed", "error", err)
	}
	if len(stale) > 0 {
		status.Stale = stale
		status.Messages = append(status.Messages, staleMessage(stale))
	}

	processed, err := m.processedHeight(ctx)
	if errors.Is(err, checkpoint.ErrRecordNotFound) {
		m.flush(ctx, status.Messages)
		return status, nil
	}
	if err != nil {
		m.flush(ctx, status.Messages)
		return status, fmt.Errorf("load watermark: %w", err)
	}

	primary, err := m.primary.TipHeight(ctx)
	if err != nil {
		m.flush(ctx, status.Messages)
		return status, fmt.Errorf("primary tip: %w", err)
	}

	status.Processed = processed
	status.Primary = primary
	status.Backup = m.backup.Height()
	status.Rate = m.observe(processed)

	if status.Rate != nil {
		m.rate.Record(ctx, *status.Rate)
		status.Messages = append(status.Messages, fmt.Sprintf("Processing at %.2f block/sec", *status.Rate))
	}

	switch {
	case primary < processed:
		status.Messages = append(status.Messages, fmt.Sprintf("Current block error\nRollback %d block", processed-primary))
	case primary-processed > behindThreshold:
		status.Messages = append(status.Messages, fmt.Sprintf("Tracking is %d block behind", primary-processed))
	}
	if primary >= processed {
		m.lag.Record(ctx, int64(primary-processed))
	}

	backup := status.Backup
	switch {
	case backup > primary && backup-primary > divergenceThreshold:
		status.Messages = append(status.Messages, fmt.Sprintf(
			"Main RPC is too slow %d block behind backup\nMain at %d, Backup at %d", backup-primary, primary, backup))
	case primary > backup && primary-backup > divergenceThreshold:
		status.Messages = append(status.Messages, fmt.Sprintf(
			"Backup RPC is too slow %d block behind main\nMain at %d, Backup at %d", primary-backup, primary, backup))
	}

	m.flush(ctx, status.Messages)
	return status, nil
}

func (m *Monitor) flush(ctx context.Context, messages []string) {
	for _, msg := range messages {
		m.sink.Send(ctx, msg)
	}
}

// observe stores the new sample and returns the rate since the previous one.
func (m *Monitor) observe(processed uint64) *float64 {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.last
	m.last = &sample{at: now, height: processed}

	if prev == nil || processed < prev.height {
		return nil
	}

	elapsed := now.Sub(prev.at)
	if elapsed < minRateWindow {
		return nil
	}

	rate := float64(processed-prev.height) / elapsed.Seconds()
	return &rate
}

func (m *Monitor) expireStale(ctx context.Context) ([]uint64, error) {
	if m.staleAge <= 0 {
		return nil, nil
	}
	return m.checkpoints.MarkStaleClaims(ctx, m.now().Add(-m.staleAge))
}

func staleMessage(heights []uint64) string {
	listed := heights
	if len(listed) > maxListedStale {
		listed = listed[:maxListedStale]
	}

	parts := make([]string, len(listed))
	for i, h := range listed {
		parts[i] = strconv.FormatUint(h, 10)
	}

	msg := fmt.Sprintf("%d stuck block(s) marked as error: %s", len(heights), strings.Join(parts, ", "))
	if len(heights) > len(listed) {
		msg += ", ..."
	}
	return msg
}

// Run checks on the configured interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return ErrMonitorAlreadyRunning
	}
	m.running = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
	}()

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger), cron.Recover(cron.DiscardLogger)))
	if _, err := c.AddFunc("@every "+m.interval.String(), func() {
		rctx, cancel := context.WithTimeout(ctx, m.interval)
		defer cancel()

		if _, err := m.Check(rctx); err != nil && ctx.Err() == nil {
			logger.Warn(ctx, "health check failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule health check: %w", err)
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
