package response

import (
	"time"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/usecase/commands"
	"nightlife-feedback/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FeedbackRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	EventID     string    `json:"eventId"`
	EventTitle  string    `json:"eventTitle"`
	EventDate   time.Time `json:"eventDate"`
	PromptTime  time.Time `json:"promptTime"`
	Status      string    `json:"status"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"maxAttempts"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type FeedbackRecordResponse struct {
	RequestID     uuid.UUID      `json:"requestId"`
	EventID       string         `json:"eventId"`
	Ratings       map[string]int `json:"ratings"`
	OverallRating int            `json:"overallRating"`
	Comment       string         `json:"comment"`
	Tags          []string       `json:"tags"`
	HasPhoto      bool           `json:"hasPhoto"`
	SubmittedAt   time.Time      `json:"submittedAt"`
}

type SubmitFeedbackResponse struct {
	RequestID     uuid.UUID `json:"requestId"`
	Status        string    `json:"status"`
	AckID         string    `json:"ackId,omitempty"`
	OverallRating int       `json:"overallRating"`
	PhotoUploaded bool      `json:"photoUploaded"`
	PhotoError    string    `json:"photoError,omitempty"`
}

type DismissFeedbackResponse struct {
	RequestID uuid.UUID `json:"requestId"`
	Outcome   string    `json:"outcome"`
}

func FromFeedbackRequestRM(rm *readmodel.FeedbackRequestRM) *FeedbackRequestResponse {
	var res FeedbackRequestResponse
	_ = copier.Copy(&res, rm)
	return &res
}

func FromFeedbackRequestList(rms []*readmodel.FeedbackRequestRM) []*FeedbackRequestResponse {
	res := make([]*FeedbackRequestResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromFeedbackRequestRM(rm)
	}
	return res
}

func FromFeedbackRecordList(rms []*readmodel.FeedbackRecordRM) []*FeedbackRecordResponse {
	res := make([]*FeedbackRecordResponse, len(rms))
	for i, rm := range rms {
		var item FeedbackRecordResponse
		_ = copier.CopyWithOption(&item, rm, copier.Option{DeepCopy: true})
		res[i] = &item
	}
	return res
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitFeedbackResponse {
	res := &SubmitFeedbackResponse{
		RequestID:     r.Record.RequestID,
		Status:        feedback.StatusSubmitted.String(),
		OverallRating: r.Record.OverallRating,
		PhotoUploaded: r.PhotoUploaded,
	}
	if r.Ack != nil {
		res.AckID = r.Ack.ID
	}
	if r.PhotoErr != nil {
		res.PhotoError = "photo upload failed; rating was saved"
	}
	return res
}

func FromTransition(id uuid.UUID, tr feedback.Transition) *DismissFeedbackResponse {
	return &DismissFeedbackResponse{RequestID: id, Outcome: tr.String()}
}
