package version

import (
	"errors"
	"sync"
)

// ErrNoProvider is returned by Default before a provider is registered.
var ErrNoProvider = errors.New("no version provider registered")

var (
	defaultMu       sync.Mutex
	defaultProvider Provider
	defaultCatalog  *Catalog
)

// SetProvider registers the enumeration backing the process-wide
// catalog. Call once during startup, before the first Default call.
// Registering a new provider discards a previously built catalog.
func SetProvider(provider Provider) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultProvider = provider
	defaultCatalog = nil
}

// Default returns the process-wide catalog, building it from the
// registered provider on first use. Once built, the catalog lives for
// the remainder of the process.
func Default() (*Catalog, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultCatalog != nil {
		return defaultCatalog, nil
	}

	if defaultProvider == nil {
		return nil, ErrNoProvider
	}

	catalog, err := NewCatalog(defaultProvider)
	if err != nil {
		return nil, err
	}

	defaultCatalog = catalog

	return catalog, nil
}

// MustDefault is Default for callers that treat a missing or invalid
// catalog as an unrecoverable startup fault.
func MustDefault() *Catalog {
	catalog, err := Default()
	if err != nil {
		panic(err)
	}

	return catalog
}

// Reset clears the process-wide catalog and provider (useful for tests).
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultProvider = nil
	defaultCatalog = nil
}
