//go:build unit

package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skukx/elasticsearch/estest/version"
)

func TestBuilder_Put(t *testing.T) {
	t.Parallel()

	got := New().
		Put("index.number_of_shards", "3").
		PutInt("index.number_of_replicas", 1).
		Build()

	assert.Equal(t, map[string]string{
		"index.number_of_shards":   "3",
		"index.number_of_replicas": "1",
	}, got)
}

func TestForVersion(t *testing.T) {
	t.Parallel()

	v := version.FromID(1_020_300)

	got := ForVersion(v).Build()

	require.Contains(t, got, VersionCreatedKey)
	assert.Equal(t, "1020300", got[VersionCreatedKey])
}

func TestBuilder_PutBefore(t *testing.T) {
	t.Parallel()

	pivot := version.FromID(2_000_000)

	tests := []struct {
		name    string
		v       version.Version
		applied bool
	}{
		{
			name:    "older version gets the legacy setting",
			v:       version.FromID(1_000_000),
			applied: true,
		},
		{
			name:    "pivot itself does not",
			v:       pivot,
			applied: false,
		},
		{
			name:    "newer version does not",
			v:       version.FromID(3_000_000),
			applied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := New().PutBefore(tt.v, pivot, "index.legacy.routing.hash", "djb").Build()

			if tt.applied {
				assert.Equal(t, "djb", got["index.legacy.routing.hash"])
			} else {
				assert.NotContains(t, got, "index.legacy.routing.hash")
			}
		})
	}
}

func TestBuilder_Merge(t *testing.T) {
	t.Parallel()

	got := New().
		Put("a", "1").
		Merge(map[string]string{"a": "2", "b": "3"}).
		Build()

	assert.Equal(t, map[string]string{"a": "2", "b": "3"}, got)
}

func TestBuilder_BuildIsACopy(t *testing.T) {
	t.Parallel()

	builder := New().Put("a", "1")

	first := builder.Build()
	first["a"] = "mutated"

	assert.Equal(t, "1", builder.Build()["a"])
}
