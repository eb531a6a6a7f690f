package walletalert

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/aptoswatch/internal/balance"
	"github.com/gabapcia/aptoswatch/internal/pkg/logger"
	"github.com/gabapcia/aptoswatch/internal/walletindex"

	"github.com/alitto/pond/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	defaultExplorerURL = "https://explorer.aptoslabs.com"
	defaultConcurrency = 8
	defaultDedupeTTL   = 30 * time.Minute
)

// Alert is the changes of one tracked wallet in one transaction together with
// the subscriptions following that wallet.
type Alert struct {
	Version       uint64
	Wallet        string
	Subscriptions []walletindex.Subscription
	Changes       []balance.Change
}

// Service matches alerts against subscriptions and delivers them through a
// Notifier. Deliveries of one alert run concurrently on a bounded pool.
type Service struct {
	notifier    Notifier
	storage     SubscriptionStorage
	dedupe      DedupeGuard
	ownGuard    *MemoryGuard
	pool        pond.Pool
	explorerURL string
	sent        metric.Int64Counter
}

// Option configures New.
type Option func(*Service)

// WithExplorerURL sets the base URL of the transaction link.
func WithExplorerURL(u string) Option {
	return func(s *Service) {
		s.explorerURL = strings.TrimRight(u, "/")
	}
}

// WithConcurrency bounds how many deliveries run at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		s.pool = pond.NewPool(n)
	}
}

// WithDedupeGuard replaces the in-memory guard.
func WithDedupeGuard(g DedupeGuard) Option {
	return func(s *Service) {
		s.dedupe = g
	}
}

// New returns a Service. Without WithDedupeGuard a MemoryGuard is used and
// evicts expired marks until Close.
func New(notifier Notifier, storage SubscriptionStorage, opts ...Option) *Service {
	s := &Service{
		notifier:    notifier,
		storage:     storage,
		explorerURL: defaultExplorerURL,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.pool == nil {
		s.pool = pond.NewPool(defaultConcurrency)
	}
	if s.dedupe == nil {
		s.ownGuard = NewMemoryGuard(defaultDedupeTTL)
		s.dedupe = s.ownGuard
		go s.ownGuard.Start()
	}

	counter, err := otel.Meter("github.com/gabapcia/aptoswatch/internal/walletalert").Int64Counter(
		"aptoswatch.notifications.sent",
		metric.WithDescription("Notification deliveries by outcome"),
	)
	if err != nil {
		counter, _ = noop.NewMeterProvider().Meter("").Int64Counter("")
	}
	s.sent = counter

	return s
}

// Close waits for in-flight deliveries and stops the pool.
func (s *Service) Close() {
	s.pool.StopAndWait()
	if s.ownGuard != nil {
		s.ownGuard.Stop()
	}
}

// Notify delivers alert to every matching subscription. Delivery failures are
// classified and acted on; only failures to apply their consequences are
// returned.
func (s *Service) Notify(ctx context.Context, alert Alert, prices balance.Prices) error {
	if len(alert.Changes) == 0 || len(alert.Subscriptions) == 0 {
		return nil
	}

	summary := Summarize(alert.Changes, prices)

	var (
		mu    sync.Mutex
		errs  []error
		group = s.pool.NewGroup()
	)
	for _, sub := range alert.Subscriptions {
		if !Matches(sub, summary) {
			continue
		}

		group.Submit(func() {
			if err := s.deliver(ctx, sub, alert.Version, summary.Text); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, pond.ErrGroupStopped) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Service) deliver(ctx context.Context, sub walletindex.Subscription, version uint64, text string) error {
	ctx = logger.Derive(ctx, "chat.id", sub.ChatID, "subscription.id", sub.ID, "tx.version", version)

	fresh, err := s.dedupe.TryMark(ctx, sub.ID, version)
	if err != nil {
		logger.Warn(ctx, "dedupe guard unavailable, sending anyway", "error", err)
		fresh = true
	}
	if !fresh {
		s.record(ctx, "duplicate")
		return nil
	}

	err = s.notifier.Send(ctx, s.message(sub, version, text))
	if err == nil {
		s.record(ctx, "sent")
		return nil
	}

	return s.handleFailure(ctx, sub, err)
}

func (s *Service) handleFailure(ctx context.Context, sub walletindex.Subscription, err error) error {
	var deliveryErr *DeliveryError
	if !errors.As(err, &deliveryErr) {
		s.record(ctx, ReasonOther.String())
		logger.Error(ctx, "notification failed", "error", err)
		return nil
	}

	s.record(ctx, deliveryErr.Reason.String())

	switch deliveryErr.Reason {
	case ReasonBlocked:
		n, err := s.storage.PurgeChat(ctx, sub.ChatID)
		if err != nil {
			return fmt.Errorf("purge chat %d: %w", sub.ChatID, err)
		}
		logger.Warn(ctx, "chat unreachable, subscriptions purged", "subscriptions.count", n)
	case ReasonMoved:
		if err := s.storage.MigrateChat(ctx, sub.ChatID, deliveryErr.MovedTo); err != nil {
			return fmt.Errorf("migrate chat %d to %d: %w", sub.ChatID, deliveryErr.MovedTo, err)
		}
		logger.Info(ctx, "chat migrated", "chat.new_id", deliveryErr.MovedTo)
	case ReasonRateLimited:
		logger.Debug(ctx, "notification dropped by rate limit")
	default:
		logger.Error(ctx, "notification failed", "error", deliveryErr)
	}

	return nil
}

func (s *Service) message(sub walletindex.Subscription, version uint64, text string) Message {
	return Message{
		ChatID: sub.ChatID,
		Text:   text,
		Actions: []Action{
			{Text: "TX detail", URL: fmt.Sprintf("%s/txn/%d?network=mainnet", s.explorerURL, version)},
			{Text: "Unsubscribe", Data: UnsubscribeToken(sub.ID)},
		},
	}
}

func (s *Service) record(ctx context.Context, outcome string) {
	s.sent.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
