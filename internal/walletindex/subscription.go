// Package walletindex holds the wallet subscriptions and an in-memory index of
// the tracked addresses, refreshed from storage.
package walletindex

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownTrackType = errors.New("unknown track type")

// TrackType is the alert policy of a subscription.
type TrackType string

const (
	// TrackFull notifies every transaction touching the wallet.
	TrackFull TrackType = "full"
	// TrackSent notifies when the outflow reaches the threshold.
	TrackSent TrackType = "sent"
	// TrackReceive notifies when the inflow reaches the threshold.
	TrackReceive TrackType = "receive"
	// TrackBalance notifies when the absolute movement reaches the threshold.
	TrackBalance TrackType = "balance"
)

// ParseTrackType accepts any casing of a TrackType. An empty string is TrackFull.
func ParseTrackType(s string) (TrackType, error) {
	switch t := TrackType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TrackFull, nil
	case TrackFull, TrackSent, TrackReceive, TrackBalance:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTrackType, s)
	}
}

// Subscription is one chat following one wallet. A chat follows a wallet at
// most once.
type Subscription struct {
	ID              int64
	ChatID          int64
	UserID          int64
	WalletAddress   string
	Nickname        *string
	TrackType       TrackType
	MinimumValueUSD float64
	CreatedAt       time.Time
}

// Label is the nickname when set, the address otherwise.
func (s Subscription) Label() string {
	if s.Nickname != nil && *s.Nickname != "" {
		return *s.Nickname
	}
	return s.WalletAddress
}
