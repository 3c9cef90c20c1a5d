package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/mock_ports.go -package=sharedmock

import (
	"context"

	"nightlife-feedback/internal/domain/feedback"

	"github.com/google/uuid"
)

// FeedbackStore persists the whole active collection; every save replaces it.
type FeedbackStore interface {
	LoadAll(ctx context.Context) ([]*feedback.FeedbackRequest, error)
	SaveAll(ctx context.Context, requests []*feedback.FeedbackRequest) error
}

// HistoryLog is append-only.
type HistoryLog interface {
	AppendRecord(ctx context.Context, record feedback.FeedbackRecord) error
	AppendRetired(ctx context.Context, req *feedback.FeedbackRequest) error
}

type FocusOracle interface {
	IsFocused(ctx context.Context, userID string) bool
}

type PromptPresenter interface {
	Present(ctx context.Context, req *feedback.FeedbackRequest) error
}

type SubmissionGateway interface {
	Submit(ctx context.Context, payload SubmissionPayload) (*SubmissionAck, error)
	UploadPhoto(ctx context.Context, requestID uuid.UUID, photo feedback.Photo) error
}

type GamificationSink interface {
	AwardPoints(ctx context.Context, userID string, amount int, reason string) error
	UpdateSatisfactionIndex(ctx context.Context, eventID string, value int) error
}
