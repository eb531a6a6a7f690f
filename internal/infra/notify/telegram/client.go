// Package telegram delivers notifications through the Telegram Bot API.
package telegram

import (
	"net/http"

	"github.com/gabapcia/aptoswatch/internal/pkg/transport/rest"
	"github.com/gabapcia/aptoswatch/internal/report"
	"github.com/gabapcia/aptoswatch/internal/walletalert"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public Bot API endpoint.
	DefaultBaseURL = "https://api.telegram.org"

	// defaultRatePerSecond stays under the Bot API global limit of 30 msg/s.
	defaultRatePerSecond = 25
)

type client struct {
	conn    rest.Client
	token   string
	limiter *rate.Limiter
}

var (
	_ walletalert.Notifier = (*client)(nil)
	_ report.Notifier      = (*client)(nil)
)

type config struct {
	baseURL       string
	ratePerSecond float64
}

// Option configures NewClient.
type Option func(*config)

// WithBaseURL points the client at another Bot API server.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = u
	}
}

// WithRateLimit caps outgoing messages per second. Non-positive values keep
// the default.
func WithRateLimit(perSecond float64) Option {
	return func(c *config) {
		if perSecond > 0 {
			c.ratePerSecond = perSecond
		}
	}
}

// NewClient returns a bot client authenticated with token.
func NewClient(httpClient *http.Client, token string, opts ...Option) *client {
	cfg := config{
		baseURL:       DefaultBaseURL,
		ratePerSecond: defaultRatePerSecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:    rest.NewClient(httpClient, cfg.baseURL),
		token:   token,
		limiter: rate.NewLimiter(rate.Limit(cfg.ratePerSecond), 1),
	}
}
