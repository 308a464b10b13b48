// Package settings builds version-gated configuration maps for
// compatibility tests, so index settings stay consistent with the
// release version under test.
package settings

import (
	"maps"
	"strconv"

	"github.com/skukx/elasticsearch/estest/version"
)

// VersionCreatedKey marks the release version an index was created with.
const VersionCreatedKey = "index.version.created"

// Builder accumulates string settings, optionally gated on a version.
// The zero value is not usable; start from New or ForVersion.
type Builder struct {
	kv map[string]string
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{kv: make(map[string]string)}
}

// ForVersion seeds a builder with the version-created marker for v.
func ForVersion(v version.Version) *Builder {
	return New().PutVersion(VersionCreatedKey, v)
}

// Put sets key to value.
func (b *Builder) Put(key, value string) *Builder {
	b.kv[key] = value

	return b
}

// PutInt sets key to the decimal form of value.
func (b *Builder) PutInt(key string, value int) *Builder {
	return b.Put(key, strconv.Itoa(value))
}

// PutVersion sets key to the numeric id of v.
func (b *Builder) PutVersion(key string, v version.Version) *Builder {
	return b.PutInt(key, v.ID())
}

// PutBefore sets key to value only when v is strictly older than pivot.
// Use it for settings that only legacy versions require.
func (b *Builder) PutBefore(v, pivot version.Version, key, value string) *Builder {
	if v.Before(pivot) {
		return b.Put(key, value)
	}

	return b
}

// Merge copies every entry of other into the builder, overwriting
// existing keys.
func (b *Builder) Merge(other map[string]string) *Builder {
	maps.Copy(b.kv, other)

	return b
}

// Build returns an independent copy of the accumulated settings.
func (b *Builder) Build() map[string]string {
	return maps.Clone(b.kv)
}
