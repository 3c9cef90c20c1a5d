package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys on the platform topic exchange.
const (
	KeyPointsAwarded       = "gamification.points.awarded"
	KeySatisfactionUpdated = "gamification.satisfaction.updated"
	KeyPromptSurfaced      = "feedback.prompt.surfaced"
)

type PointsAwarded struct {
	UserID     string    `json:"userId"`
	Amount     int       `json:"amount"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}

type SatisfactionUpdated struct {
	EventID    string    `json:"eventId"`
	Value      int       `json:"value"`
	OccurredAt time.Time `json:"occurredAt"`
}

type PromptSurfaced struct {
	RequestID   uuid.UUID `json:"requestId"`
	EventID     string    `json:"eventId"`
	EventTitle  string    `json:"eventTitle"`
	UserID      string    `json:"userId"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"maxAttempts"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AttendanceConfirmed is published by the booking service once a guest was
// checked in at the door.
type AttendanceConfirmed struct {
	EventID    string    `json:"eventId"`
	EventTitle string    `json:"eventTitle"`
	EventDate  time.Time `json:"eventDate"`
	UserID     string    `json:"userId"`
}
