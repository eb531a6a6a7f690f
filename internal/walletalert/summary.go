// Package walletalert decides which subscriptions a wallet's balance changes
// should reach and delivers the notifications.
package walletalert

import (
	"math"
	"strings"

	"github.com/gabapcia/aptoswatch/internal/balance"
	"github.com/gabapcia/aptoswatch/internal/walletindex"
)

// Summary aggregates one wallet's changes in one transaction. Unpriced
// changes count as zero.
type Summary struct {
	// Total is the sum of absolute USD values.
	Total float64
	// Sent is the sum of outflow magnitudes.
	Sent float64
	// Received is the sum of inflow magnitudes.
	Received float64
	// Text holds one line per change.
	Text string
}

// Summarize prices changes and renders the notification text.
func Summarize(changes []balance.Change, prices balance.Prices) Summary {
	var (
		s     Summary
		lines strings.Builder
	)
	for _, c := range changes {
		lines.WriteString(c.Line(prices))
		lines.WriteByte('\n')

		usd, _ := c.USDValue(prices)
		s.Total += math.Abs(usd)
		if math.Signbit(usd) {
			s.Sent += math.Abs(usd)
		} else {
			s.Received += usd
		}
	}
	s.Text = lines.String()
	return s
}

// Matches reports whether sub should be notified about s.
func Matches(sub walletindex.Subscription, s Summary) bool {
	switch sub.TrackType {
	case walletindex.TrackFull:
		return true
	case walletindex.TrackBalance:
		return s.Total >= sub.MinimumValueUSD
	case walletindex.TrackReceive:
		return s.Received >= sub.MinimumValueUSD
	case walletindex.TrackSent:
		return s.Sent >= sub.MinimumValueUSD
	default:
		return false
	}
}
