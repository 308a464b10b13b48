package version

import (
	"errors"
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// ErrInvalidVersion is returned when a version id or display name cannot
// be accepted.
var ErrInvalidVersion = errors.New("invalid version")

// Packed-id place values: major*1000000 + minor*10000 + patch*100.
const (
	idMajor = 1_000_000
	idMinor = 10_000
	idPatch = 100
)

// Version identifies one software release. Ordering is total and follows
// the numeric id; equality is by id. The display name carries the
// human-readable form.
type Version struct {
	id   int
	name string
}

// New builds a Version from an id and its display name. The name must
// parse as a semantic version so catalogs can cross-check id order
// against semantic order.
func New(id int, name string) (Version, error) {
	if id < 0 {
		return Version{}, fmt.Errorf("%w: negative id %d", ErrInvalidVersion, id)
	}

	if _, err := goversion.NewVersion(name); err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, name, err)
	}

	return Version{id: id, name: name}, nil
}

// Must is New for static version tables; it panics on invalid input.
func Must(id int, name string) Version {
	v, err := New(id, name)
	if err != nil {
		panic(err)
	}

	return v
}

// FromID derives the display name from the packed id.
func FromID(id int) Version {
	return Version{
		id:   id,
		name: fmt.Sprintf("%d.%d.%d", id/idMajor, id/idMinor%100, id/idPatch%100),
	}
}

// Parse builds a Version from its display name, packing the id from the
// first three segments.
func Parse(name string) (Version, error) {
	parsed, err := goversion.NewVersion(name)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, name, err)
	}

	segments := parsed.Segments()
	id := segments[0]*idMajor + segments[1]*idMinor + segments[2]*idPatch

	return Version{id: id, name: name}, nil
}

// ID returns the numeric identifier.
func (v Version) ID() int {
	return v.id
}

// String returns the display name.
func (v Version) String() string {
	return v.name
}

// Semantic returns the parsed semantic form of the display name.
func (v Version) Semantic() (*goversion.Version, error) {
	return goversion.NewVersion(v.name)
}

// Compare orders two versions by id: negative when v is older than
// other, zero when equal, positive when newer.
func (v Version) Compare(other Version) int {
	switch {
	case v.id < other.id:
		return -1
	case v.id > other.id:
		return 1
	default:
		return 0
	}
}

// Before reports whether v is strictly older than other.
func (v Version) Before(other Version) bool {
	return v.id < other.id
}

// After reports whether v is strictly newer than other.
func (v Version) After(other Version) bool {
	return v.id > other.id
}

// Equal reports id equality.
func (v Version) Equal(other Version) bool {
	return v.id == other.id
}
