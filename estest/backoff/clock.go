package backoff

import (
	"context"
	"fmt"
	"time"
)

// Clock abstracts the monotonic time source and the suspend primitive so
// polling loops can be driven by a fake in tests.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, duration time.Duration) error
}

// SystemClock is the process wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep suspends the caller for the specified duration but respects
// context cancellation. Returns nil if the sleep completes, or an error
// if the context is cancelled. Returns immediately (nil) for zero or
// negative durations.
func (SystemClock) Sleep(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return nil
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context done: %w", ctx.Err())
	}
}
