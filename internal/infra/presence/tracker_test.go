//go:build unit

package presence_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"nightlife-feedback/internal/infra/presence"
	"nightlife-feedback/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 6, 14, 16, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("unknown user is not focused", func(t *testing.T) {
		tr := presence.NewTracker(2*time.Minute, clock.NewMockClock(start), logger)
		assert.False(t, tr.IsFocused(ctx, "user-1"))
	})

	t.Run("latest heartbeat wins", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		tr := presence.NewTracker(2*time.Minute, clk, logger)

		tr.Heartbeat("user-1", true)
		assert.True(t, tr.IsFocused(ctx, "user-1"))
		assert.False(t, tr.IsFocused(ctx, "user-2"))

		tr.Heartbeat("user-1", false)
		assert.False(t, tr.IsFocused(ctx, "user-1"))
	})

	t.Run("heartbeat expires after the ttl", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		tr := presence.NewTracker(2*time.Minute, clk, logger)
		tr.Heartbeat("user-1", true)

		clk.Add(2 * time.Minute)
		assert.True(t, tr.IsFocused(ctx, "user-1"))
		clk.Add(time.Second)
		assert.False(t, tr.IsFocused(ctx, "user-1"))
	})

	t.Run("sweep removes stale entries only", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		tr := presence.NewTracker(time.Minute, clk, logger)
		tr.Heartbeat("old", true)
		clk.Add(90 * time.Second)
		tr.Heartbeat("fresh", true)

		assert.Equal(t, 1, tr.Sweep())
		assert.True(t, tr.IsFocused(ctx, "fresh"))
		assert.Equal(t, 0, tr.Sweep())
	})
}
