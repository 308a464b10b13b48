// Package version maintains the immutable, deduplicated,
// descending-sorted catalog of known release versions and supports
// uniform and range-bounded random sampling over it.
//
// The catalog is built once from a Provider and is safe for concurrent
// read access without locking. Sampling takes an explicit random source
// so runs are reproducible under a fixed seed.
package version
