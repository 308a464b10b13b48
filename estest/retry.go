package estest

import (
	"context"
	"errors"
	"time"

	"github.com/skukx/elasticsearch/estest/backoff"
	"github.com/skukx/elasticsearch/estest/check"
	"github.com/skukx/elasticsearch/estest/log"
)

// DefaultWait bounds a retry or poll call when no Within option is given.
const DefaultWait = 10 * time.Second

// ErrInvalidWait is returned when the configured wait budget is not positive.
var ErrInvalidWait = errors.New("wait budget must be positive")

type config struct {
	wait   time.Duration
	clock  backoff.Clock
	logger log.Logger
}

// Option adjusts a single retry or poll call.
type Option func(*config)

// Within caps the total time slept across the call. The budget bounds
// sleep time only: the final probe runs after the budget is spent, and a
// slow probe can push real elapsed time past the budget by its own cost.
func Within(wait time.Duration) Option {
	return func(cfg *config) {
		cfg.wait = wait
	}
}

// WithClock substitutes the time source, usually with a fake in tests.
func WithClock(clock backoff.Clock) Option {
	return func(cfg *config) {
		cfg.clock = clock
	}
}

// WithLogger records attempt outcomes at debug level. Recoverable
// failures during retries are expected and are never logged as errors.
func WithLogger(logger log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

func newConfig(opts []Option) (config, error) {
	cfg := config{
		wait:   DefaultWait,
		clock:  backoff.SystemClock{},
		logger: log.NewNop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.wait <= 0 {
		return config{}, ErrInvalidWait
	}

	if cfg.clock == nil {
		cfg.clock = backoff.SystemClock{}
	}

	if cfg.logger == nil {
		cfg.logger = log.NewNop()
	}

	return cfg, nil
}

// RetryUntil invokes op with exponentially increasing inter-attempt
// delays until it succeeds or the wait budget is exhausted.
//
// Only the recoverable-check kind (check.Failed) restarts the loop; any
// other error propagates on its first occurrence. When the budget runs
// out, the last failure is returned with every earlier failure attached
// as history (see check.History) and the exhaustion is recorded on the
// active span.
//
// Attempts are strictly sequential on the calling goroutine; the engine
// spawns none of its own. Cancelling ctx aborts the call during a sleep,
// never mid-probe.
func RetryUntil[T any](ctx context.Context, op func() (T, error), opts ...Option) (T, error) {
	var zero T

	cfg, err := newConfig(opts)
	if err != nil {
		return zero, err
	}

	fast := backoff.FastAttempts(cfg.wait)
	delay := backoff.InitialDelay

	var (
		slept    time.Duration
		failures []error
	)

	for attempt := 0; attempt < fast; attempt++ {
		value, opErr := op()
		if opErr == nil {
			return value, nil
		}

		if !check.Failed(opErr) {
			return zero, opErr
		}

		failures = append(failures, opErr)
		cfg.logger.Log(ctx, log.LevelDebug, "condition not yet true",
			log.Int("attempt", attempt+1),
			log.Duration("delay", delay),
			log.Err(opErr),
		)

		if sleepErr := cfg.clock.Sleep(ctx, delay); sleepErr != nil {
			return zero, sleepErr
		}

		slept += delay
		delay *= 2
	}

	if sleepErr := cfg.clock.Sleep(ctx, backoff.Remaining(cfg.wait, slept)); sleepErr != nil {
		return zero, sleepErr
	}

	value, opErr := op()
	if opErr == nil {
		return value, nil
	}

	if !check.Failed(opErr) {
		return zero, opErr
	}

	final := check.WithHistory(opErr, failures)
	check.RecordToSpan(ctx, final, fast+1)

	return zero, final
}

// Retry is RetryUntil for operations with no result value.
func Retry(ctx context.Context, op func() error, opts ...Option) error {
	_, err := RetryUntil(ctx, func() (struct{}, error) {
		return struct{}{}, op()
	}, opts...)

	return err
}

// PollUntil invokes pred on the same backoff schedule as RetryUntil and
// reports whether it ever returned true. Exhaustion is not an error;
// only an invalid option or a cancelled context is.
func PollUntil(ctx context.Context, pred func() bool, opts ...Option) (bool, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return false, err
	}

	fast := backoff.FastAttempts(cfg.wait)
	delay := backoff.InitialDelay

	var slept time.Duration

	for attempt := 0; attempt < fast; attempt++ {
		if pred() {
			return true, nil
		}

		cfg.logger.Log(ctx, log.LevelDebug, "predicate not yet true",
			log.Int("attempt", attempt+1),
			log.Duration("delay", delay),
		)

		if sleepErr := cfg.clock.Sleep(ctx, delay); sleepErr != nil {
			return false, sleepErr
		}

		slept += delay
		delay *= 2
	}

	if sleepErr := cfg.clock.Sleep(ctx, backoff.Remaining(cfg.wait, slept)); sleepErr != nil {
		return false, sleepErr
	}

	return pred(), nil
}
