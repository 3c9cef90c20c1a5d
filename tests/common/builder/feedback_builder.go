//go:build unit || e2e

package builder

import (
	"time"

	domfeedback "nightlife-feedback/internal/domain/feedback"
	reqdto "nightlife-feedback/internal/handler/dto/request"

	"github.com/google/uuid"
)

var DefaultEventEnd = time.Date(2025, 6, 14, 4, 0, 0, 0, time.UTC)

type FeedbackRequestBuilder struct {
	ID          uuid.UUID
	EventID     string
	EventTitle  string
	EventDate   time.Time
	UserID      string
	PromptTime  time.Time
	Status      domfeedback.Status
	Attempts    int
	MaxAttempts int
	CreatedAt   time.Time
}

func NewFeedbackRequestBuilder() *FeedbackRequestBuilder {
	return &FeedbackRequestBuilder{
		ID:          uuid.New(),
		EventID:     "evt-warehouse-rave",
		EventTitle:  "Warehouse Rave",
		EventDate:   DefaultEventEnd,
		UserID:      "user-1",
		PromptTime:  DefaultEventEnd.Add(12 * time.Hour),
		Status:      domfeedback.StatusScheduled,
		Attempts:    0,
		MaxAttempts: domfeedback.DefaultMaxAttempts,
		CreatedAt:   DefaultEventEnd,
	}
}

func (b *FeedbackRequestBuilder) With(mutate func(*FeedbackRequestBuilder)) *FeedbackRequestBuilder {
	mutate(b)
	return b
}

func (b *FeedbackRequestBuilder) WithStatus(s domfeedback.Status) *FeedbackRequestBuilder {
	b.Status = s
	return b
}

func (b *FeedbackRequestBuilder) WithAttempts(attempts int) *FeedbackRequestBuilder {
	b.Attempts = attempts
	return b
}

func (b *FeedbackRequestBuilder) WithPromptTime(t time.Time) *FeedbackRequestBuilder {
	b.PromptTime = t
	return b
}

func (b *FeedbackRequestBuilder) WithUserID(id string) *FeedbackRequestBuilder {
	b.UserID = id
	return b
}

func (b *FeedbackRequestBuilder) ScheduleInput() domfeedback.ScheduleInput {
	return domfeedback.ScheduleInput{
		EventID:    b.EventID,
		EventTitle: b.EventTitle,
		EventDate:  b.EventDate,
		UserID:     b.UserID,
	}
}

func (b *FeedbackRequestBuilder) BuildDomain() *domfeedback.FeedbackRequest {
	return domfeedback.ReconstructFeedbackRequest(
		b.ID, b.EventID, b.EventTitle, b.EventDate, b.UserID,
		b.PromptTime, b.Status, b.Attempts, b.MaxAttempts,
		b.CreatedAt, b.CreatedAt,
	)
}

type SubmissionBuilder struct {
	Ratings       map[string]int
	OverallRating int
	Comment       string
	Tags          []string
	Photo         *domfeedback.Photo
}

func NewSubmissionBuilder() *SubmissionBuilder {
	return &SubmissionBuilder{
		Ratings:       map[string]int{"music": 5},
		OverallRating: 5,
		Comment:       "Great sound system",
		Tags:          []string{"techno", "late-night"},
	}
}

func (b *SubmissionBuilder) With(mutate func(*SubmissionBuilder)) *SubmissionBuilder {
	mutate(b)
	return b
}

func (b *SubmissionBuilder) Empty() *SubmissionBuilder {
	b.Ratings = nil
	b.OverallRating = 0
	b.Comment = ""
	b.Tags = nil
	b.Photo = nil
	return b
}

func (b *SubmissionBuilder) Input() domfeedback.SubmissionInput {
	return domfeedback.SubmissionInput{
		Ratings:       b.Ratings,
		OverallRating: b.OverallRating,
		Comment:       b.Comment,
		Tags:          b.Tags,
		Photo:         b.Photo,
	}
}

func (b *SubmissionBuilder) BuildDomain() (*domfeedback.Submission, error) {
	return domfeedback.NewSubmission(b.Input())
}

func (b *SubmissionBuilder) BuildRequestDTO() reqdto.SubmitFeedbackRequest {
	dto := reqdto.SubmitFeedbackRequest{
		Ratings:       b.Ratings,
		OverallRating: b.OverallRating,
		Comment:       b.Comment,
		Tags:          b.Tags,
	}
	if b.Photo != nil {
		dto.Photo = b.Photo.Data
		dto.PhotoContentType = b.Photo.ContentType
		dto.PhotoFilename = b.Photo.Filename
	}
	return dto
}
