package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/pkg/errs"
	"nightlife-feedback/internal/usecase/shared"
)

// ResilientStore retries failed saves and remembers the last collection it was
// asked to write. While the backend is down LoadAll serves that copy.
type ResilientStore struct {
	next    shared.FeedbackStore
	retries int
	backoff time.Duration
	logger  *slog.Logger

	mu       sync.Mutex
	last     []*feedback.FeedbackRequest
	hasLast  bool
	degraded bool
}

func NewResilientStore(next shared.FeedbackStore, retries int, backoff time.Duration, logger *slog.Logger) *ResilientStore {
	if retries < 0 {
		retries = 0
	}
	return &ResilientStore{
		next:    next,
		retries: retries,
		backoff: backoff,
		logger:  logger.With(slog.String("component", "resilient_store")),
	}
}

func (s *ResilientStore) LoadAll(ctx context.Context) ([]*feedback.FeedbackRequest, error) {
	reqs, err := s.next.LoadAll(ctx)
	if err == nil {
		return reqs, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasLast {
		return nil, err
	}
	s.logger.Warn("backend unavailable, serving in-memory snapshot",
		slog.Int("requests", len(s.last)),
		slog.String("error", err.Error()))
	return cloneAll(s.last), nil
}

func (s *ResilientStore) SaveAll(ctx context.Context, reqs []*feedback.FeedbackRequest) error {
	s.mu.Lock()
	s.last = cloneAll(reqs)
	s.hasLast = true
	s.mu.Unlock()

	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if err = s.next.SaveAll(ctx, reqs); err == nil {
			s.markHealthy()
			return nil
		}
		if attempt == s.retries {
			break
		}
		wait := time.Duration(1<<attempt) * s.backoff
		s.logger.Warn("save failed, retrying",
			slog.Int("attempt", attempt+1),
			slog.Int64("wait_ms", wait.Milliseconds()),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return errs.Mark(errs.Wrap(ctx.Err(), "save feedback requests"), errs.ErrPersistence)
		case <-time.After(wait):
		}
	}

	s.mu.Lock()
	s.degraded = true
	s.mu.Unlock()
	s.logger.Error("giving up on save; state kept in memory only",
		slog.Int("requests", len(reqs)),
		slog.String("error", err.Error()))
	return errs.Mark(errs.Wrap(err, "save feedback requests"), errs.ErrPersistence)
}

// Degraded reports whether the most recent save failed.
func (s *ResilientStore) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

func (s *ResilientStore) markHealthy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.degraded {
		s.logger.Info("backend recovered")
	}
	s.degraded = false
}

func cloneAll(reqs []*feedback.FeedbackRequest) []*feedback.FeedbackRequest {
	out := make([]*feedback.FeedbackRequest, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Clone())
	}
	return out
}
