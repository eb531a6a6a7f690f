package walletalert

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidUnsubscribeToken = errors.New("invalid unsubscribe token")

// Reason classifies a failed delivery.
type Reason int

const (
	// ReasonOther is any failure not listed below.
	ReasonOther Reason = iota
	// ReasonBlocked means the chat can no longer be reached.
	ReasonBlocked
	// ReasonMoved means the chat has a new identifier.
	ReasonMoved
	// ReasonRateLimited means the channel asked to slow down.
	ReasonRateLimited
)

func (r Reason) String() string {
	switch r {
	case ReasonBlocked:
		return "blocked"
	case ReasonMoved:
		return "moved"
	case ReasonRateLimited:
		return "rate_limited"
	default:
		return "other"
	}
}

// DeliveryError is returned by Notifier implementations.
type DeliveryError struct {
	Reason  Reason
	MovedTo int64
	Err     error
}

func (e *DeliveryError) Error() string {
	if e.Reason == ReasonMoved {
		return fmt.Sprintf("delivery failed (%s to %d): %v", e.Reason, e.MovedTo, e.Err)
	}
	return fmt.Sprintf("delivery failed (%s): %v", e.Reason, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Action is a button attached to a message: a link when URL is set,
// otherwise a callback carrying Data.
type Action struct {
	Text string
	URL  string
	Data string
}

// Message is one notification for one chat.
type Message struct {
	ChatID  int64
	Text    string
	Actions []Action
}

// Notifier delivers messages.
type Notifier interface {
	// Send returns a *DeliveryError when the channel rejected the message.
	Send(ctx context.Context, msg Message) error
}

// SubscriptionStorage applies the consequences of failed deliveries.
type SubscriptionStorage interface {
	// PurgeChat deletes every subscription of chatID.
	PurgeChat(ctx context.Context, chatID int64) (int64, error)

	// MigrateChat moves every subscription of from to to.
	MigrateChat(ctx context.Context, from, to int64) error
}

// DedupeGuard remembers which transactions a subscription was already
// notified about. A chat following several wallets touched by the same
// transaction gets one message per subscription.
type DedupeGuard interface {
	// TryMark records (subscriptionID, version) and reports whether it was new.
	TryMark(ctx context.Context, subscriptionID int64, version uint64) (bool, error)
}

// UnsubscribeToken is the callback data that removes subscription id.
func UnsubscribeToken(id int64) string {
	return "0 " + strconv.FormatInt(id, 10)
}

// ParseUnsubscribeToken is the inverse of UnsubscribeToken.
func ParseUnsubscribeToken(token string) (int64, error) {
	kind, raw, ok := strings.Cut(strings.TrimSpace(token), " ")
	if !ok || kind != "0" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnsubscribeToken, token)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnsubscribeToken, token)
	}
	return id, nil
}
