package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackRequestRM struct {
	ID          uuid.UUID `json:"id"`
	EventID     string    `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	EventDate   time.Time `json:"event_date"`
	UserID      string    `json:"user_id"`
	PromptTime  time.Time `json:"prompt_time"`
	Status      string    `json:"status"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"max_attempts"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type FeedbackRecordRM struct {
	RequestID     uuid.UUID      `json:"request_id"`
	EventID       string         `json:"event_id"`
	UserID        string         `json:"user_id"`
	Ratings       map[string]int `json:"ratings"`
	OverallRating int            `json:"overall_rating"`
	Comment       string         `json:"comment"`
	Tags          []string       `json:"tags"`
	HasPhoto      bool           `json:"has_photo"`
	SubmittedAt   time.Time      `json:"submitted_at"`
}
