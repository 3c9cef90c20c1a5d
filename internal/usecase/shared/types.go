package shared

import (
	"strings"
	"time"

	"nightlife-feedback/internal/domain/feedback"

	"github.com/google/uuid"
)

// SubmissionPayload is the wire shape of a rating sent to the submission endpoint.
type SubmissionPayload struct {
	RequestID     uuid.UUID      `json:"requestId"`
	EventID       string         `json:"eventId"`
	UserID        string         `json:"userId"`
	Timestamp     time.Time      `json:"timestamp"`
	Ratings       map[string]int `json:"ratings"`
	OverallRating int            `json:"overallRating"`
	Comment       string         `json:"comment"`
	Tags          []string       `json:"tags"`
	HasPhoto      bool           `json:"hasPhoto"`
}

type SubmissionAck struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func NewSubmissionPayload(record feedback.FeedbackRecord) SubmissionPayload {
	ratings := make(map[string]int, len(record.Ratings))
	for c, v := range record.Ratings {
		ratings[string(c)] = v
	}
	tags := record.Tags
	if tags == nil {
		tags = []string{}
	}
	return SubmissionPayload{
		RequestID:     record.RequestID,
		EventID:       record.EventID,
		UserID:        record.UserID,
		Timestamp:     record.SubmittedAt.UTC(),
		Ratings:       ratings,
		OverallRating: record.OverallRating,
		Comment:       record.Comment,
		Tags:          tags,
		HasPhoto:      record.HasPhoto,
	}
}

// Validate is the last local check before anything goes on the wire.
func (p SubmissionPayload) Validate() error {
	if len(p.Ratings) == 0 && p.OverallRating == 0 && strings.TrimSpace(p.Comment) == "" {
		return feedback.ErrNothingToSubmit
	}
	return nil
}
