// Package blockingest runs the per-shard loop that claims block heights,
// extracts the balance changes of tracked wallets and hands them to the
// alerting service.
package blockingest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gabapcia/aptoswatch/internal/balance"
	"github.com/gabapcia/aptoswatch/internal/checkpoint"
	"github.com/gabapcia/aptoswatch/internal/pkg/logger"
	"github.com/gabapcia/aptoswatch/internal/pkg/x/chflow"
	"github.com/gabapcia/aptoswatch/internal/tokenprice"
	"github.com/gabapcia/aptoswatch/internal/walletalert"
	"github.com/gabapcia/aptoswatch/internal/walletindex"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/aptoswatch/internal/blockingest"

// ErrAheadOfTip is returned when the claimed height is above the tracked tip.
var ErrAheadOfTip = errors.New("claimed height is ahead of the chain tip")

const (
	emptyBackoff      = 300 * time.Millisecond
	bottomStepBackoff = 250 * time.Millisecond
	tipStepBackoff    = 250 * time.Millisecond
	maxTipBackoff     = time.Minute
	unknownTipBackoff = time.Second
	errorBackoff      = time.Second
)

// BlockRange is the transaction versions contained in a block.
type BlockRange struct {
	Height       uint64
	FirstVersion uint64
	LastVersion  uint64
}

// ChainAccessor fetches blocks.
type ChainAccessor interface {
	BlockByHeight(ctx context.Context, height uint64) (BlockRange, error)
}

// Indexer returns the asset activities of a version range, both ends included.
type Indexer interface {
	Activities(ctx context.Context, minVersion, maxVersion uint64) ([]balance.Event, error)
}

// Scheduler picks the next height of a shard.
type Scheduler interface {
	Shard() checkpoint.Shard
	Next(ctx context.Context) (uint64, error)
}

// Checkpoints records claims and their outcome.
type Checkpoints interface {
	InsertClaim(ctx context.Context, height uint64, shard checkpoint.Shard) error
	UpdateStatus(ctx context.Context, height uint64, status checkpoint.Status, txCount uint32) error
}

// TipReader returns the latest known chain height, 0 when unknown.
type TipReader interface {
	Height() uint64
}

// WalletSource serves the tracked wallets.
type WalletSource interface {
	Snapshot() *walletindex.Snapshot
}

// PriceSource serves token prices and collects unpriced tokens.
type PriceSource interface {
	Snapshot() *tokenprice.Snapshot
	MarkUnknown(addr string, decimals uint8)
}

// Alerter notifies subscriptions.
type Alerter interface {
	Notify(ctx context.Context, alert walletalert.Alert, prices balance.Prices) error
}

// Reporter forwards errors to operators.
type Reporter interface {
	Report(ctx context.Context, err error)
}

// Dependencies are shared by every worker.
type Dependencies struct {
	Checkpoints Checkpoints
	Chain       ChainAccessor
	Indexer     Indexer
	Tip         TipReader
	Wallets     WalletSource
	Prices      PriceSource
	Alerter     Alerter
	Reporter    Reporter
}

// Worker processes the heights of one shard.
type Worker struct {
	Dependencies

	scheduler Scheduler
	tracer    trace.Tracer
	processed metric.Int64Counter
}

// NewWorker returns a Worker claiming heights through scheduler.
func NewWorker(deps Dependencies, scheduler Scheduler) *Worker {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"aptoswatch.blocks.processed",
		metric.WithDescription("Blocks finalized by status"),
	)
	if err != nil {
		counter, _ = noop.NewMeterProvider().Meter("").Int64Counter("")
	}

	return &Worker{
		Dependencies: deps,
		scheduler:    scheduler,
		tracer:       otel.Tracer(instrumentationName),
		processed:    counter,
	}
}

// Run processes heights until ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	shard := w.scheduler.Shard()
	ctx = logger.Derive(ctx, "shard.modulo", shard.Modulo, "shard.remainder", shard.Remainder)

	logger.Info(ctx, "block ingest worker started")
	defer logger.Info(ctx, "block ingest worker stopped")

	for {
		backoff, err := w.ProcessNext(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			w.logFailure(ctx, err)
		}

		if !chflow.Sleep(ctx, backoff) {
			return nil
		}
	}
}

func (w *Worker) logFailure(ctx context.Context, err error) {
	switch {
	case errors.Is(err, checkpoint.ErrSlotDatabaseEmpty),
		errors.Is(err, checkpoint.ErrWaitTillBottomUpdate),
		errors.Is(err, checkpoint.ErrAlreadyClaimed):
		logger.Debug(ctx, "scheduling race", "error", err)
	case errors.Is(err, ErrAheadOfTip):
		logger.Debug(ctx, "waiting for the chain", "error", err)
	case errors.As(err, new(*transientError)):
		logger.Warn(ctx, "block processing failed", "error", err)
	default:
		logger.Error(ctx, "block processing failed", "error", err)
		if w.Reporter != nil {
			w.Reporter.Report(ctx, err)
		}
	}
}

// transientError wraps chain and indexer failures, which are retried on the
// next cycle without operator attention.
type transientError struct {
	op  string
	err error
}

func transient(op string, err error) error {
	return &transientError{op: op, err: err}
}

func (e *transientError) Error() string {
	return e.op + ": " + e.err.Error()
}

func (e *transientError) Unwrap() error {
	return e.err
}

// ProcessNext claims and processes one height. It returns how long the
// caller should wait before the next call.
func (w *Worker) ProcessNext(ctx context.Context) (time.Duration, error) {
	shard := w.scheduler.Shard()

	height, err := w.scheduler.Next(ctx)
	switch {
	case errors.Is(err, checkpoint.ErrSlotDatabaseEmpty):
		return emptyBackoff, err
	case errors.Is(err, checkpoint.ErrWaitTillBottomUpdate):
		return bottomStepBackoff * time.Duration(shard.Modulo), err
	case err != nil:
		return errorBackoff, err
	}

	tip := w.Tip.Height()
	if wait := TipBackoff(height, tip); wait > 0 {
		return wait, fmt.Errorf("%w: height %d, tip %d", ErrAheadOfTip, height, tip)
	}

	ctx = logger.Derive(ctx, "block.height", height)
	ctx, span := w.tracer.Start(ctx, "blockingest.ProcessBlock", trace.WithAttributes(
		attribute.Int64("block.height", int64(height)),
		attribute.String("shard", shard.String()),
	))
	defer span.End()

	block, err := w.Chain.BlockByHeight(ctx, height)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return errorBackoff, transient(fmt.Sprintf("fetch block %d", height), err)
	}

	if err := w.Checkpoints.InsertClaim(ctx, height, shard); err != nil {
		if errors.Is(err, checkpoint.ErrAlreadyClaimed) {
			return 0, err
		}
		span.SetStatus(codes.Error, err.Error())
		return errorBackoff, fmt.Errorf("claim %d: %w", height, err)
	}

	txCount, err := w.processBlock(ctx, block)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		_ = w.finalize(ctx, height, checkpoint.StatusError, 0)
		return errorBackoff, err
	}

	span.SetAttributes(attribute.Int("block.tx_count", int(txCount)))
	if err := w.finalize(ctx, height, checkpoint.StatusComplete, txCount); err != nil {
		return errorBackoff, err
	}
	return 0, nil
}

// TipBackoff is how long to wait before claiming height when the chain is at
// tip: 250ms per missing block capped at a minute, 1s when the tip is
// unknown, zero when the block exists.
func TipBackoff(height, tip uint64) time.Duration {
	if tip == 0 {
		return unknownTipBackoff
	}
	if height <= tip {
		return 0
	}

	ahead := height - tip
	if ahead >= uint64(maxTipBackoff/tipStepBackoff) {
		return maxTipBackoff
	}
	return time.Duration(ahead) * tipStepBackoff
}

func (w *Worker) finalize(ctx context.Context, height uint64, status checkpoint.Status, txCount uint32) error {
	shard := w.scheduler.Shard()
	w.processed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("shard", shard.String()),
		attribute.String("status", string(status)),
	))

	if err := w.Checkpoints.UpdateStatus(ctx, height, status, txCount); err != nil {
		err = fmt.Errorf("finalize %d as %s: %w", height, status, err)
		if status != checkpoint.StatusComplete {
			logger.Warn(ctx, "could not record block failure", "error", err)
		}
		return err
	}
	return nil
}

// processBlock returns the number of transactions found in the block.
func (w *Worker) processBlock(ctx context.Context, block BlockRange) (uint32, error) {
	wallets := w.Wallets.Snapshot()
	if wallets.Len() == 0 {
		return 0, nil
	}

	events, err := w.Indexer.Activities(ctx, block.FirstVersion, block.LastVersion)
	if err != nil {
		return 0, transient(fmt.Sprintf("query activities %d-%d", block.FirstVersion, block.LastVersion), err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	txs := balance.GroupByVersion(events)
	if len(txs) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d transactions in block %d", checkpoint.ErrOverflow, len(txs), block.Height)
	}

	prices := w.Prices.Snapshot()
	for _, tx := range txs {
		if !tx.Succeeded() {
			continue
		}
		w.processTransaction(ctx, tx, wallets, prices)
	}

	return uint32(len(txs)), nil
}

func (w *Worker) processTransaction(ctx context.Context, tx balance.Transaction, wallets *walletindex.Snapshot, prices *tokenprice.Snapshot) {
	var changes []balance.Change
	for _, owner := range tx.Owners() {
		if !wallets.Contains(owner) {
			continue
		}

		if changes == nil {
			changes = balance.FromEvents(tx.Events)
			w.discoverTokens(changes, prices)
		}

		owned := balance.FilterByOwner(changes, owner)
		if len(owned) == 0 {
			continue
		}

		alert := walletalert.Alert{
			Version:       tx.Version,
			Wallet:        owner,
			Subscriptions: wallets.Subscriptions(owner),
			Changes:       owned,
		}
		if err := w.Alerter.Notify(ctx, alert, prices); err != nil {
			logger.Error(ctx, "wallet alert failed", "tx.version", tx.Version, "wallet", owner, "error", err)
			if w.Reporter != nil {
				w.Reporter.Report(ctx, err)
			}
		}
	}
}

func (w *Worker) discoverTokens(changes []balance.Change, prices *tokenprice.Snapshot) {
	for _, c := range changes {
		if c.Token.Kind != balance.TokenAccount {
			continue
		}
		if _, ok := prices.Lookup(c.Token.Key()); !ok {
			w.Prices.MarkUnknown(c.Token.Key(), c.Token.Decimals)
		}
	}
}
