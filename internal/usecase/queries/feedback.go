package queries

//go:generate mockgen -source=feedback.go -destination=../../../tests/mock/queries/mock_feedback.go -package=queriesmock

import (
	"sort"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/pkg/errs"
	"nightlife-feedback/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrRequestAccess = errs.Mark(errs.New("feedback request belongs to another user"), errs.ErrNotFound)

// ActiveRequestSource is the scheduler's in-memory active set.
type ActiveRequestSource interface {
	ListActive() []*feedback.FeedbackRequest
	Get(requestID uuid.UUID) (*feedback.FeedbackRequest, error)
}

type FeedbackRequestQueries interface {
	ListActiveByUser(userID string, status *feedback.Status) []*readmodel.FeedbackRequestRM
	GetForUser(requestID uuid.UUID, userID string) (*readmodel.FeedbackRequestRM, error)
}

type feedbackRequestQueriesImpl struct {
	source ActiveRequestSource
}

func NewFeedbackRequestQueries(source ActiveRequestSource) FeedbackRequestQueries {
	return &feedbackRequestQueriesImpl{source: source}
}

func (q *feedbackRequestQueriesImpl) ListActiveByUser(userID string, status *feedback.Status) []*readmodel.FeedbackRequestRM {
	out := make([]*readmodel.FeedbackRequestRM, 0)
	for _, req := range q.source.ListActive() {
		if req.UserID() != userID {
			continue
		}
		if status != nil && req.Status() != *status {
			continue
		}
		out = append(out, ToFeedbackRequestRM(req))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PromptTime.Before(out[j].PromptTime)
	})
	return out
}

// GetForUser hides requests of other users behind a not-found error.
func (q *feedbackRequestQueriesImpl) GetForUser(requestID uuid.UUID, userID string) (*readmodel.FeedbackRequestRM, error) {
	req, err := q.source.Get(requestID)
	if err != nil {
		return nil, err
	}
	if req.UserID() != userID {
		return nil, ErrRequestAccess
	}
	return ToFeedbackRequestRM(req), nil
}

func ToFeedbackRequestRM(req *feedback.FeedbackRequest) *readmodel.FeedbackRequestRM {
	return &readmodel.FeedbackRequestRM{
		ID:          req.ID(),
		EventID:     req.EventID(),
		EventTitle:  req.EventTitle(),
		EventDate:   req.EventDate(),
		UserID:      req.UserID(),
		PromptTime:  req.PromptTime(),
		Status:      req.Status().String(),
		Attempts:    req.Attempts(),
		MaxAttempts: req.MaxAttempts(),
		CreatedAt:   req.CreatedAt(),
		UpdatedAt:   req.UpdatedAt(),
	}
}
