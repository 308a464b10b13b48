// Package backoff computes the doubling delay schedule used by bounded
// retry and poll loops.
//
// The schedule front-loads short delays (1ms, 2ms, 4ms, ...) and reserves
// whatever is left of the budget for one final wait, so a call never
// sleeps past its budget while still probing fast conditions quickly.
package backoff
