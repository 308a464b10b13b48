package estest

import (
	mrand "math/rand/v2"

	"github.com/google/uuid"
)

// NewSeeded returns a deterministic random source for reproducible runs.
// The same seed over the same catalog yields the same sampling sequence.
func NewSeeded(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, 0))
}

// RandomFrom picks a uniformly random element of items. items must be
// non-empty; callers own the precondition.
func RandomFrom[T any](rng *mrand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

var numericTypes = []string{"byte", "short", "integer", "long"}

// RandomNumericType returns a random numeric field type name.
func RandomNumericType(rng *mrand.Rand) string {
	return RandomFrom(rng, numericTypes)
}

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomString returns a random ASCII string of the given length.
func RandomString(rng *mrand.Rand, length int) string {
	out := make([]byte, length)
	for i := range out {
		out[i] = asciiLetters[rng.IntN(len(asciiLetters))]
	}

	return string(out)
}

// RandomStringSlice returns fewer than maxLen random ASCII strings, each
// shorter than or equal to maxStrLen. Empty slices are allowed. Both
// bounds must be positive.
func RandomStringSlice(rng *mrand.Rand, maxLen, maxStrLen int) []string {
	out := make([]string, rng.IntN(maxLen))
	for i := range out {
		out[i] = RandomString(rng, rng.IntN(maxStrLen)+1)
	}

	return out
}

// RandomID returns a unique identifier for naming test resources.
func RandomID() string {
	return uuid.NewString()
}
