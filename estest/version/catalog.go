package version

import (
	"cmp"
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"slices"
)

var (
	// ErrEmptyCatalog is returned when the provider enumerates no
	// versions. Construction cannot proceed; this is a configuration
	// fault, not a recoverable condition.
	ErrEmptyCatalog = errors.New("version catalog is empty")

	// ErrVersionNotFound is returned when a range bound is not present
	// in the catalog.
	ErrVersionNotFound = errors.New("version not in catalog")

	// ErrInvalidRange is returned when the requested range resolves to
	// an empty or inverted index span.
	ErrInvalidRange = errors.New("version range is inverted")

	// ErrNoPrevious is returned by Previous on a single-entry catalog.
	ErrNoPrevious = errors.New("catalog holds fewer than two versions")

	// ErrNilProvider is returned when the catalog is built without a provider.
	ErrNilProvider = errors.New("version provider is nil")
)

// Catalog is the immutable, deduplicated sequence of known versions,
// sorted strictly descending (newest first). Once constructed it is
// never mutated and is safe for concurrent use without locking.
type Catalog struct {
	versions []Version
}

// NewCatalog loads the full enumeration from provider, dedupes by id
// (first occurrence wins) and sorts descending. An empty or unreadable
// enumeration fails construction.
func NewCatalog(provider Provider) (*Catalog, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	all, err := provider.Versions()
	if err != nil {
		return nil, fmt.Errorf("load versions: %w", err)
	}

	seen := make(map[int]struct{}, len(all))
	versions := make([]Version, 0, len(all))

	for _, v := range all {
		if _, ok := seen[v.id]; ok {
			continue
		}

		seen[v.id] = struct{}{}
		versions = append(versions, v)
	}

	if len(versions) == 0 {
		return nil, ErrEmptyCatalog
	}

	slices.SortFunc(versions, func(a, b Version) int {
		return cmp.Compare(b.id, a.id)
	})

	if err := checkSemanticOrder(versions); err != nil {
		return nil, err
	}

	return &Catalog{versions: versions}, nil
}

// checkSemanticOrder verifies that descending id order agrees with the
// semantic ordering of the display names.
func checkSemanticOrder(versions []Version) error {
	for i := 1; i < len(versions); i++ {
		newer, err := versions[i-1].Semantic()
		if err != nil {
			continue
		}

		older, err := versions[i].Semantic()
		if err != nil {
			continue
		}

		if newer.LessThan(older) {
			return fmt.Errorf("%w: id order disagrees with semantic order between %s and %s",
				ErrInvalidVersion, versions[i-1], versions[i])
		}
	}

	return nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.versions)
}

// All returns the full descending catalog as a fresh copy.
func (c *Catalog) All() []Version {
	return slices.Clone(c.versions)
}

// Latest returns the newest catalog entry.
func (c *Catalog) Latest() Version {
	return c.versions[0]
}

// Previous returns the entry immediately older than the newest.
func (c *Catalog) Previous() (Version, error) {
	if len(c.versions) < 2 {
		return Version{}, ErrNoPrevious
	}

	return c.versions[1], nil
}

// Random returns a uniformly distributed catalog entry drawn from rng.
func (c *Catalog) Random(rng *mrand.Rand) Version {
	return c.versions[rng.IntN(len(c.versions))]
}

// RandomBetween returns a uniformly distributed catalog entry whose
// value lies between minVersion and maxVersion, inclusive on both ends.
// A nil bound is unbounded on that side, defaulting to the oldest or
// newest entry respectively.
//
// In the descending sequence maxVersion resolves to the smaller index
// and minVersion to the larger one; sampling is uniform over that
// inclusive index span. A bound absent from the catalog yields
// ErrVersionNotFound; a span with minVersion newer than maxVersion
// yields ErrInvalidRange. When both bounds name the same entry it is
// returned deterministically.
func (c *Catalog) RandomBetween(rng *mrand.Rand, minVersion, maxVersion *Version) (Version, error) {
	minIndex := len(c.versions) - 1
	if minVersion != nil {
		idx, ok := c.indexOf(*minVersion)
		if !ok {
			return Version{}, fmt.Errorf("%w: min version %s", ErrVersionNotFound, minVersion)
		}

		minIndex = idx
	}

	maxIndex := 0
	if maxVersion != nil {
		idx, ok := c.indexOf(*maxVersion)
		if !ok {
			return Version{}, fmt.Errorf("%w: max version %s", ErrVersionNotFound, maxVersion)
		}

		maxIndex = idx
	}

	if maxIndex > minIndex {
		return Version{}, fmt.Errorf("%w: min %s is newer than max %s",
			ErrInvalidRange, c.versions[minIndex], c.versions[maxIndex])
	}

	// minIndex is inclusive, so the span is one wider than the index difference.
	span := minIndex + 1 - maxIndex

	return c.versions[maxIndex+rng.IntN(span)], nil
}

// indexOf locates a version by id in the descending sequence.
func (c *Catalog) indexOf(v Version) (int, bool) {
	return slices.BinarySearchFunc(c.versions, v, func(entry, target Version) int {
		return cmp.Compare(target.id, entry.id)
	})
}
