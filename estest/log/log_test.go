//go:build unit

package log

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevel_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    Level
		expected string
	}{
		{LevelError, "error"},
		{LevelWarn, "warn"},
		{LevelInfo, "info"},
		{LevelDebug, "debug"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{input: "debug", expected: LevelDebug},
		{input: "INFO", expected: LevelInfo},
		{input: "warning", expected: LevelWarn},
		{input: "error", expected: LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 3}, Int("n", 3))
	assert.Equal(t, Field{Key: "d", Value: time.Second}, Duration("d", time.Second))
	assert.Equal(t, Field{Key: "error", Value: errBoom}, Err(errBoom))
	assert.Equal(t, Field{Key: "x", Value: true}, Any("x", true))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	require.NotPanics(t, func() {
		logger.Log(context.Background(), LevelError, "dropped")
	})

	assert.False(t, logger.Enabled(LevelError))
	assert.Same(t, logger, logger.With(String("k", "v")))
}

func TestZapLogger(t *testing.T) {
	t.Parallel()

	t.Run("dispatches levels and fields", func(t *testing.T) {
		t.Parallel()

		core, observed := observer.New(zap.DebugLevel)
		logger := NewZap(zap.New(core))

		logger.Log(context.Background(), LevelDebug, "attempt", Int("attempt", 3))
		logger.Log(context.Background(), LevelError, "gave up")

		entries := observed.All()
		require.Len(t, entries, 2)
		assert.Equal(t, "attempt", entries[0].Message)
		assert.Equal(t, zap.DebugLevel, entries[0].Level)
		assert.Equal(t, int64(3), entries[0].ContextMap()["attempt"])
		assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	})

	t.Run("With attaches persistent fields", func(t *testing.T) {
		t.Parallel()

		core, observed := observer.New(zap.DebugLevel)
		logger := NewZap(zap.New(core)).With(String("component", "retry"))

		logger.Log(context.Background(), LevelInfo, "hello")

		entries := observed.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "retry", entries[0].ContextMap()["component"])
	})

	t.Run("Enabled honors the core level", func(t *testing.T) {
		t.Parallel()

		core, _ := observer.New(zap.InfoLevel)
		logger := NewZap(zap.New(core))

		assert.True(t, logger.Enabled(LevelInfo))
		assert.False(t, logger.Enabled(LevelDebug))
	})

	t.Run("nil zap logger falls back to no-op", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			NewZap(nil).Log(context.Background(), LevelInfo, "dropped")
		})
	})
}
