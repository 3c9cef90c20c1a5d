package request

import (
	"net/http"
	"time"

	"nightlife-feedback/internal/domain/feedback"
)

type ScheduleFeedbackRequest struct {
	EventID    string    `json:"eventId" binding:"required,max=128"`
	EventTitle string    `json:"eventTitle" binding:"max=256"`
	EventDate  time.Time `json:"eventDate" binding:"required"`
}

func (r *ScheduleFeedbackRequest) ToDomain(userID string) feedback.ScheduleInput {
	return feedback.ScheduleInput{
		EventID:    r.EventID,
		EventTitle: r.EventTitle,
		EventDate:  r.EventDate,
		UserID:     userID,
	}
}

// SubmitFeedbackRequest carries the optional photo base64 encoded in JSON.
type SubmitFeedbackRequest struct {
	Ratings          map[string]int `json:"ratings" binding:"omitempty,dive,min=1,max=5"`
	OverallRating    int            `json:"overallRating" binding:"min=0,max=5"`
	Comment          string         `json:"comment"`
	Tags             []string       `json:"tags"`
	Photo            []byte         `json:"photo,omitempty"`
	PhotoContentType string         `json:"photoContentType,omitempty"`
	PhotoFilename    string         `json:"photoFilename,omitempty"`
}

func (r *SubmitFeedbackRequest) ToDomain() feedback.SubmissionInput {
	in := feedback.SubmissionInput{
		Ratings:       r.Ratings,
		OverallRating: r.OverallRating,
		Comment:       r.Comment,
		Tags:          r.Tags,
	}
	if len(r.Photo) > 0 {
		contentType := r.PhotoContentType
		if contentType == "" {
			contentType = http.DetectContentType(r.Photo)
		}
		in.Photo = &feedback.Photo{
			Data:        r.Photo,
			ContentType: contentType,
			Filename:    r.PhotoFilename,
		}
	}
	return in
}

type PresenceRequest struct {
	Focused *bool `json:"focused" binding:"required"`
}
