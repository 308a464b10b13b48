// Package log defines the logging interface and typed logging fields
// used across the test-support packages.
//
// Adapters (such as NewZap) implement Logger so callers can keep logging
// calls consistent across backends.
package log
