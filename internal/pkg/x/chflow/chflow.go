// Package chflow holds context-aware channel and timing helpers shared by the
// long-running loops.
package chflow

import (
	"context"
	"time"
)

// Receive waits for a value from ch or for ctx to be done. The boolean is
// false when ctx finished first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// TrySend sends data only if ch has room right now.
func TrySend[T any](ch chan<- T, data T) bool {
	select {
	case ch <- data:
		return true
	default:
		return false
	}
}

// Sleep pauses for d or until ctx is done, reporting whether the full
// duration elapsed. A non-positive d returns immediately with ctx's state.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
