package backoff

import (
	"math"
	"time"
)

const maxShift = 62

// InitialDelay is the first inter-attempt delay of the doubling schedule.
const InitialDelay = time.Millisecond

// FastAttempts returns the number of doubling attempts used to spread a
// wait budget, never fewer than one. It is round(log10(ms)/log10(2)) on
// the budget in milliseconds; the rounding under- and over-shoots for
// sub-10ms budgets, and callers depend on that exact timing, so the
// formula must not change.
func FastAttempts(budget time.Duration) int {
	ms := budget.Milliseconds()
	if ms < 1 {
		ms = 1
	}

	attempts := int(math.Round(math.Log10(float64(ms)) / math.Log10(2)))
	if attempts < 1 {
		attempts = 1
	}

	return attempts
}

// Exponential calculates the delay for a given attempt number as
// base * 2^attempt with overflow protection. Negative attempts are
// treated as 0.
func Exponential(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}

	if attempt < 0 {
		attempt = 0
	} else if attempt > maxShift {
		attempt = maxShift
	}

	multiplier := int64(1 << attempt)

	baseInt := int64(base)
	if baseInt > math.MaxInt64/multiplier {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(baseInt * multiplier)
}

// Remaining returns the unslept part of the budget, clamped at zero.
func Remaining(budget, slept time.Duration) time.Duration {
	if slept >= budget {
		return 0
	}

	return budget - slept
}
