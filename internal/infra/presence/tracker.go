package presence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nightlife-feedback/internal/pkg/clock"
)

type heartbeat struct {
	focused bool
	at      time.Time
}

// Tracker answers "is the app in focus" from client heartbeats. A heartbeat
// older than the TTL counts as unfocused.
type Tracker struct {
	mu     sync.RWMutex
	seen   map[string]heartbeat
	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger
}

func NewTracker(ttl time.Duration, clk clock.Clock, logger *slog.Logger) *Tracker {
	return &Tracker{
		seen:   make(map[string]heartbeat),
		ttl:    ttl,
		clock:  clk,
		logger: logger.With(slog.String("component", "presence")),
	}
}

func (t *Tracker) Heartbeat(userID string, focused bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen[userID] = heartbeat{focused: focused, at: t.clock.Now()}
}

func (t *Tracker) IsFocused(_ context.Context, userID string) bool {
	t.mu.RLock()
	hb, ok := t.seen[userID]
	t.mu.RUnlock()
	if !ok {
		return false
	}
	return hb.focused && t.clock.Now().Sub(hb.at) <= t.ttl
}

// Sweep drops heartbeats past the TTL and returns how many were removed.
func (t *Tracker) Sweep() int {
	now := t.clock.Now()
	t.mu.Lock()
	defer t.mu.Unlock()
	removed := 0
	for id, hb := range t.seen {
		if now.Sub(hb.at) > t.ttl {
			delete(t.seen, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := t.Sweep(); n > 0 {
				t.logger.Debug("stale heartbeats removed", slog.Int("count", n))
			}
		}
	}
}
