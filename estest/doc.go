// Package estest provides support primitives for randomized,
// version-aware test suites.
//
// Two pieces carry the weight: a bounded-time, backoff-driven retry/poll
// engine (RetryUntil, PollUntil) that waits for asynchronous conditions
// without fixed sleeps, and — in the version subpackage — a sorted
// catalog of known release versions supporting uniform and range-bounded
// random sampling for compatibility testing.
//
// Waiting for a condition:
//
//	err := estest.Retry(ctx, func() error {
//	    return check.That(cluster.GreenStatus(), "cluster not green")
//	}, estest.Within(30*time.Second))
//
// Sampling a version:
//
//	rng := estest.NewSeeded(seed)
//	v := catalog.Random(rng)
package estest
