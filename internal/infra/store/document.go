package store

import (
	"time"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/pkg/errs"

	"github.com/google/uuid"
)

// timeLayout keeps nanoseconds so a save/load cycle returns the same instant.
const timeLayout = time.RFC3339Nano

// requestDocument is the persisted shape of a FeedbackRequest. Timestamps are
// ISO-8601 strings in UTC.
type requestDocument struct {
	ID          string `json:"id" bson:"_id"`
	EventID     string `json:"eventId" bson:"eventId"`
	EventTitle  string `json:"eventTitle" bson:"eventTitle"`
	EventDate   string `json:"eventDate" bson:"eventDate"`
	UserID      string `json:"userId" bson:"userId"`
	PromptTime  string `json:"promptTime" bson:"promptTime"`
	Status      string `json:"status" bson:"status"`
	Attempts    int    `json:"attempts" bson:"attempts"`
	MaxAttempts int    `json:"maxAttempts" bson:"maxAttempts"`
	CreatedAt   string `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string `json:"updatedAt" bson:"updatedAt"`
}

func toDocument(r *feedback.FeedbackRequest) requestDocument {
	return requestDocument{
		ID:          r.ID().String(),
		EventID:     r.EventID(),
		EventTitle:  r.EventTitle(),
		EventDate:   formatTime(r.EventDate()),
		UserID:      r.UserID(),
		PromptTime:  formatTime(r.PromptTime()),
		Status:      r.Status().String(),
		Attempts:    r.Attempts(),
		MaxAttempts: r.MaxAttempts(),
		CreatedAt:   formatTime(r.CreatedAt()),
		UpdatedAt:   formatTime(r.UpdatedAt()),
	}
}

func fromDocument(d requestDocument) (*feedback.FeedbackRequest, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errs.Wrapf(err, "document id %q", d.ID)
	}
	status, err := feedback.ParseStatus(d.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "document %s", d.ID)
	}

	var eventDate, promptTime, createdAt, updatedAt time.Time
	for _, f := range []struct {
		name string
		raw  string
		dst  *time.Time
	}{
		{"eventDate", d.EventDate, &eventDate},
		{"promptTime", d.PromptTime, &promptTime},
		{"createdAt", d.CreatedAt, &createdAt},
		{"updatedAt", d.UpdatedAt, &updatedAt},
	} {
		t, perr := time.Parse(timeLayout, f.raw)
		if perr != nil {
			return nil, errs.Wrapf(perr, "document %s: %s", d.ID, f.name)
		}
		*f.dst = t
	}

	return feedback.ReconstructFeedbackRequest(
		id, d.EventID, d.EventTitle, eventDate, d.UserID,
		promptTime, status, d.Attempts, d.MaxAttempts,
		createdAt, updatedAt,
	), nil
}

func toDocuments(reqs []*feedback.FeedbackRequest) []requestDocument {
	docs := make([]requestDocument, 0, len(reqs))
	for _, r := range reqs {
		docs = append(docs, toDocument(r))
	}
	return docs
}

func fromDocuments(docs []requestDocument) ([]*feedback.FeedbackRequest, error) {
	reqs := make([]*feedback.FeedbackRequest, 0, len(docs))
	for _, d := range docs {
		r, err := fromDocument(d)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, r)
	}
	return reqs, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
