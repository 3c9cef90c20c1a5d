package feedback

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FeedbackRequest tracks one pending rating ask for one attendee of one event.
// The event fields are a snapshot taken at scheduling time.
type FeedbackRequest struct {
	id          uuid.UUID
	eventID     string
	eventTitle  string
	eventDate   time.Time
	userID      string
	promptTime  time.Time
	status      Status
	attempts    int
	maxAttempts int
	createdAt   time.Time
	updatedAt   time.Time
}

type ScheduleInput struct {
	EventID    string
	EventTitle string
	// EventDate is the instant the event ends.
	EventDate time.Time
	UserID    string
}

func NewFeedbackRequest(in ScheduleInput, policy Policy, now time.Time) (*FeedbackRequest, error) {
	eventID := strings.TrimSpace(in.EventID)
	if eventID == "" {
		return nil, ErrEventRequired
	}
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return nil, ErrUserRequired
	}
	if in.EventDate.IsZero() {
		return nil, ErrEventDateEmpty
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &FeedbackRequest{
		id:          newRequestID(),
		eventID:     eventID,
		eventTitle:  strings.TrimSpace(in.EventTitle),
		eventDate:   truncate(in.EventDate),
		userID:      userID,
		promptTime:  truncate(in.EventDate.Add(policy.InitialDelay)),
		status:      StatusScheduled,
		attempts:    0,
		maxAttempts: policy.MaxAttempts,
		createdAt:   truncate(now),
		updatedAt:   truncate(now),
	}, nil
}

func ReconstructFeedbackRequest(
	id uuid.UUID,
	eventID, eventTitle string,
	eventDate time.Time,
	userID string,
	promptTime time.Time,
	status Status,
	attempts, maxAttempts int,
	createdAt, updatedAt time.Time,
) *FeedbackRequest {
	return &FeedbackRequest{
		id:          id,
		eventID:     eventID,
		eventTitle:  eventTitle,
		eventDate:   truncate(eventDate),
		userID:      userID,
		promptTime:  truncate(promptTime),
		status:      status,
		attempts:    attempts,
		maxAttempts: maxAttempts,
		createdAt:   truncate(createdAt),
		updatedAt:   truncate(updatedAt),
	}
}

// OnTimerFired applies a timer fire. Every fire consumes one attempt; the last
// attempt either surfaces the prompt or expires the request.
func (r *FeedbackRequest) OnTimerFired(now time.Time, focused bool, policy Policy) (Transition, error) {
	switch r.status {
	case StatusScheduled, StatusPrompted:
	case StatusSubmitted, StatusDismissed, StatusExpired:
		return TransitionNone, ErrAlreadyRetired
	default:
		return TransitionNone, ErrInvalidStatus
	}

	if r.attempts >= r.maxAttempts {
		r.expire(now)
		return TransitionExpired, nil
	}

	r.attempts++
	r.updatedAt = truncate(now)

	if focused {
		r.status = StatusPrompted
		r.advancePromptTime(now.Add(policy.PromptTimeout))
		return TransitionPrompted, nil
	}

	if r.attempts >= r.maxAttempts {
		r.expire(now)
		return TransitionExpired, nil
	}

	r.status = StatusScheduled
	r.advancePromptTime(now.Add(policy.UnfocusedRetryDelay))
	return TransitionRescheduled, nil
}

func (r *FeedbackRequest) Dismiss(now time.Time, policy Policy) (Transition, error) {
	switch r.status {
	case StatusPrompted:
	case StatusScheduled:
		return TransitionNone, ErrNotPrompted
	case StatusSubmitted, StatusDismissed, StatusExpired:
		return TransitionNone, ErrAlreadyRetired
	default:
		return TransitionNone, ErrInvalidStatus
	}

	if r.attempts >= r.maxAttempts {
		r.expire(now)
		return TransitionExpired, nil
	}

	r.status = StatusScheduled
	r.updatedAt = truncate(now)
	r.advancePromptTime(now.Add(policy.DismissRetryDelay))
	return TransitionRescheduled, nil
}

// CanSubmit reports whether a rating may be sent for this request right now.
func (r *FeedbackRequest) CanSubmit() error {
	switch r.status {
	case StatusPrompted:
		return nil
	case StatusScheduled:
		return ErrNotPrompted
	case StatusSubmitted, StatusDismissed, StatusExpired:
		return ErrAlreadyRetired
	default:
		return ErrInvalidStatus
	}
}

func (r *FeedbackRequest) MarkSubmitted(now time.Time) (Transition, error) {
	if err := r.CanSubmit(); err != nil {
		return TransitionNone, err
	}
	r.status = StatusSubmitted
	r.updatedAt = truncate(now)
	return TransitionSubmitted, nil
}

// FireAt is when the armed timer should run: overdue requests fire right away.
func (r *FeedbackRequest) FireAt(now time.Time) time.Time {
	if r.promptTime.Before(now) {
		return now
	}
	return r.promptTime
}

func (r *FeedbackRequest) IsActive() bool {
	return r.status.IsActive()
}

func (r *FeedbackRequest) Clone() *FeedbackRequest {
	c := *r
	return &c
}

func (r *FeedbackRequest) expire(now time.Time) {
	r.status = StatusExpired
	r.updatedAt = truncate(now)
}

// promptTime never moves backwards.
func (r *FeedbackRequest) advancePromptTime(t time.Time) {
	t = truncate(t)
	if t.After(r.promptTime) {
		r.promptTime = t
	}
}

func (r *FeedbackRequest) ID() uuid.UUID         { return r.id }
func (r *FeedbackRequest) EventID() string       { return r.eventID }
func (r *FeedbackRequest) EventTitle() string    { return r.eventTitle }
func (r *FeedbackRequest) EventDate() time.Time  { return r.eventDate }
func (r *FeedbackRequest) UserID() string        { return r.userID }
func (r *FeedbackRequest) PromptTime() time.Time { return r.promptTime }
func (r *FeedbackRequest) Status() Status        { return r.status }
func (r *FeedbackRequest) Attempts() int         { return r.attempts }
func (r *FeedbackRequest) MaxAttempts() int      { return r.maxAttempts }
func (r *FeedbackRequest) CreatedAt() time.Time  { return r.createdAt }
func (r *FeedbackRequest) UpdatedAt() time.Time  { return r.updatedAt }

// truncate keeps microsecond precision, the finest every store can hold, so a
// save and load cycle returns the same instant.
func truncate(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}

func newRequestID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
