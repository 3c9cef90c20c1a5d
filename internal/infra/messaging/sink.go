package messaging

import (
	"context"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/pkg/clock"
)

// GamificationPublisher forwards reward signals to the gamification service.
type GamificationPublisher struct {
	pub   EventPublisher
	clock clock.Clock
}

func NewGamificationPublisher(pub EventPublisher, clk clock.Clock) *GamificationPublisher {
	return &GamificationPublisher{pub: pub, clock: clk}
}

func (g *GamificationPublisher) AwardPoints(ctx context.Context, userID string, amount int, reason string) error {
	return g.pub.Publish(ctx, KeyPointsAwarded, PointsAwarded{
		UserID:     userID,
		Amount:     amount,
		Reason:     reason,
		OccurredAt: g.clock.Now().UTC(),
	})
}

func (g *GamificationPublisher) UpdateSatisfactionIndex(ctx context.Context, eventID string, value int) error {
	return g.pub.Publish(ctx, KeySatisfactionUpdated, SatisfactionUpdated{
		EventID:    eventID,
		Value:      value,
		OccurredAt: g.clock.Now().UTC(),
	})
}

// PromptPublisher hands surfaced prompts to the notification fan-out that
// reaches the user's open sessions.
type PromptPublisher struct {
	pub EventPublisher
}

func NewPromptPublisher(pub EventPublisher) *PromptPublisher {
	return &PromptPublisher{pub: pub}
}

func (p *PromptPublisher) Present(ctx context.Context, req *feedback.FeedbackRequest) error {
	return p.pub.Publish(ctx, KeyPromptSurfaced, PromptSurfaced{
		RequestID:   req.ID(),
		EventID:     req.EventID(),
		EventTitle:  req.EventTitle(),
		UserID:      req.UserID(),
		Attempts:    req.Attempts(),
		MaxAttempts: req.MaxAttempts(),
		ExpiresAt:   req.PromptTime().UTC(),
	})
}
