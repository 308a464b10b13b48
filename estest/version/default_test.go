//go:build unit

package version

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The process-wide catalog tests share mutable package state, so they
// run in one sequential test function.
func TestDefaultCatalog(t *testing.T) {
	t.Cleanup(Reset)

	t.Run("no provider registered", func(t *testing.T) {
		Reset()

		_, err := Default()

		require.ErrorIs(t, err, ErrNoProvider)
	})

	t.Run("builds once and is reused", func(t *testing.T) {
		Reset()

		builds := 0

		SetProvider(ProviderFunc(func() ([]Version, error) {
			builds++
			return []Version{FromID(1_000_000), FromID(2_000_000)}, nil
		}))

		first, err := Default()
		require.NoError(t, err)

		second, err := Default()
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, builds)
	})

	t.Run("construction failure is not cached", func(t *testing.T) {
		Reset()
		SetProvider(Static())

		_, err := Default()
		require.ErrorIs(t, err, ErrEmptyCatalog)

		SetProvider(Static(FromID(1_000_000)))

		catalog, err := Default()
		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Len())
	})

	t.Run("MustDefault panics without a provider", func(t *testing.T) {
		Reset()

		require.Panics(t, func() {
			MustDefault()
		})
	})

	t.Run("safe under concurrent access", func(t *testing.T) {
		Reset()
		SetProvider(Static(FromID(1_000_000), FromID(2_000_000)))

		var wg sync.WaitGroup

		catalogs := make([]*Catalog, 8)

		for i := range catalogs {
			wg.Add(1)

			go func() {
				defer wg.Done()

				catalogs[i] = MustDefault()
			}()
		}

		wg.Wait()

		for _, catalog := range catalogs {
			assert.Same(t, catalogs[0], catalog)
		}
	})
}
