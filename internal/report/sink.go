// Package report forwards operational messages and errors to an operator
// chat. Reporting never blocks the caller and never fails: messages are
// queued, dropped when the queue is full and send failures are only logged.
package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/aptoswatch/internal/pkg/logger"
	"github.com/gabapcia/aptoswatch/internal/pkg/x/chflow"
	"github.com/gabapcia/aptoswatch/internal/walletalert"

	"github.com/jellydator/ttlcache/v3"
)

var ErrSinkAlreadyRunning = errors.New("report sink already running")

// Notifier delivers a message to a chat.
type Notifier interface {
	Send(ctx context.Context, msg walletalert.Message) error
}

// Sink queues messages for the operator chat. A zero chat id disables
// forwarding; errors are still logged.
type Sink struct {
	mu      sync.Mutex
	running bool

	notifier Notifier
	chatID   int64
	queue    chan string
	recent   *ttlcache.Cache[string, struct{}]
}

// Option configures New.
type Option func(*sinkConfig)

type sinkConfig struct {
	queueSize int
	cooldown  time.Duration
}

// WithQueueSize overrides the 64 message queue.
func WithQueueSize(n int) Option {
	return func(c *sinkConfig) {
		c.queueSize = n
	}
}

// WithCooldown sets how long an identical message is suppressed (1 minute by
// default).
func WithCooldown(d time.Duration) Option {
	return func(c *sinkConfig) {
		c.cooldown = d
	}
}

// New returns a Sink sending to chatID through notifier.
func New(notifier Notifier, chatID int64, opts ...Option) *Sink {
	cfg := sinkConfig{queueSize: 64, cooldown: time.Minute}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Sink{
		notifier: notifier,
		chatID:   chatID,
		queue:    make(chan string, cfg.queueSize),
		recent: ttlcache.New(
			ttlcache.WithTTL[string, struct{}](cfg.cooldown),
			ttlcache.WithDisableTouchOnHit[string, struct{}](),
		),
	}
}

// Report logs err and forwards "Error: <err>".
func (s *Sink) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger.Error(ctx, "reported error", "error", err)
	s.enqueue(ctx, fmt.Sprintf("Error: %v", err))
}

// Send forwards text as is.
func (s *Sink) Send(ctx context.Context, text string) {
	logger.Info(ctx, "operator report", "report.text", text)
	s.enqueue(ctx, text)
}

func (s *Sink) enqueue(ctx context.Context, text string) {
	if s.chatID == 0 {
		return
	}

	if _, seen := s.recent.GetOrSet(text, struct{}{}); seen {
		return
	}

	if !chflow.TrySend(s.queue, text) {
		logger.Warn(ctx, "report queue full, message dropped")
	}
}

// Run delivers queued messages until ctx is done. Expired cooldown entries
// are evicted only while Run is active.
func (s *Sink) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrSinkAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	go s.recent.Start()
	defer s.recent.Stop()

	for {
		text, ok := chflow.Receive(ctx, s.queue)
		if !ok {
			return nil
		}
		s.deliver(ctx, text)
	}
}

func (s *Sink) deliver(ctx context.Context, text string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn(ctx, "report delivery panicked", "panic", r)
		}
	}()

	if err := s.notifier.Send(ctx, walletalert.Message{ChatID: s.chatID, Text: text}); err != nil {
		logger.Warn(ctx, "report delivery failed", "error", err)
	}
}
