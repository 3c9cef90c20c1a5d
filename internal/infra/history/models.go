package history

import (
	"time"
)

type feedbackRecordModel struct {
	ID            uint      `gorm:"primaryKey"`
	RequestID     string    `gorm:"type:uuid;not null;uniqueIndex"`
	EventID       string    `gorm:"not null;index"`
	UserID        string    `gorm:"not null;index:idx_feedback_records_user_submitted,priority:1"`
	Ratings       string    `gorm:"type:jsonb;not null"`
	OverallRating int       `gorm:"not null"`
	Comment       string    `gorm:"not null"`
	Tags          string    `gorm:"type:jsonb;not null"`
	HasPhoto      bool      `gorm:"not null"`
	SubmittedAt   time.Time `gorm:"not null;index:idx_feedback_records_user_submitted,priority:2"`
	CreatedAt     time.Time
}

func (feedbackRecordModel) TableName() string {
	return "feedback_records"
}

// retiredRequestModel is the final state of a request that left the active set.
type retiredRequestModel struct {
	ID          uint      `gorm:"primaryKey"`
	RequestID   string    `gorm:"type:uuid;not null;index"`
	EventID     string    `gorm:"not null"`
	EventTitle  string    `gorm:"not null"`
	EventDate   time.Time `gorm:"not null"`
	UserID      string    `gorm:"not null;index"`
	Status      string    `gorm:"type:varchar(20);not null"`
	Attempts    int       `gorm:"not null"`
	MaxAttempts int       `gorm:"not null"`
	PromptTime  time.Time `gorm:"not null"`
	RetiredAt   time.Time `gorm:"not null"`
}

func (retiredRequestModel) TableName() string {
	return "feedback_request_history"
}
