package feedback

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionInput struct {
	Ratings       map[string]int
	OverallRating int
	Comment       string
	Tags          []string
	Photo         *Photo
}

// Submission is a validated rating payload. It always carries at least one
// rating dimension or a non-empty comment.
type Submission struct {
	ratings Ratings
	overall int
	comment Comment
	tags    Tags
	photo   *Photo
}

func NewSubmission(in SubmissionInput) (*Submission, error) {
	ratings, err := NewRatings(in.Ratings)
	if err != nil {
		return nil, err
	}
	if in.OverallRating < 0 || in.OverallRating > MaxRating {
		return nil, ErrInvalidOverall
	}
	comment, err := NewComment(in.Comment)
	if err != nil {
		return nil, err
	}
	tags, err := NewTags(in.Tags)
	if err != nil {
		return nil, err
	}

	var photo *Photo
	if in.Photo != nil && len(in.Photo.Data) > 0 {
		// The content type is declared by the caller; an undeclared one is not an image.
		p := *in.Photo
		if err := p.validate(); err != nil {
			return nil, err
		}
		photo = &p
	}

	if ratings.Len() == 0 && in.OverallRating == 0 && comment.IsEmpty() {
		return nil, ErrNothingToSubmit
	}

	return &Submission{
		ratings: ratings,
		overall: in.OverallRating,
		comment: comment,
		tags:    tags,
		photo:   photo,
	}, nil
}

// Overall prefers the explicit overall rating, then the "overall" category,
// then the rounded mean of whatever was rated.
func (s *Submission) Overall() int {
	if s.overall > 0 {
		return s.overall
	}
	if v, ok := s.ratings.Get(CategoryOverall); ok {
		return v
	}
	return s.ratings.Mean()
}

// SatisfactionIndex scales the overall rating to 0..100.
func (s *Submission) SatisfactionIndex() int {
	return s.Overall() * 100 / MaxRating
}

func (s *Submission) Ratings() Ratings { return s.ratings }
func (s *Submission) Comment() Comment { return s.comment }
func (s *Submission) Tags() Tags       { return s.tags }
func (s *Submission) Photo() *Photo    { return s.photo }
func (s *Submission) HasPhoto() bool   { return s.photo != nil }

// FeedbackRecord is the append-only history entry of a submitted rating.
type FeedbackRecord struct {
	RequestID     uuid.UUID
	EventID       string
	UserID        string
	Ratings       map[Category]int
	OverallRating int
	Comment       string
	Tags          []string
	HasPhoto      bool
	SubmittedAt   time.Time
}

func NewFeedbackRecord(req *FeedbackRequest, sub *Submission, submittedAt time.Time) FeedbackRecord {
	return FeedbackRecord{
		RequestID:     req.ID(),
		EventID:       req.EventID(),
		UserID:        req.UserID(),
		Ratings:       sub.Ratings().Map(),
		OverallRating: sub.Overall(),
		Comment:       sub.Comment().String(),
		Tags:          sub.Tags().Values(),
		HasPhoto:      sub.HasPhoto(),
		SubmittedAt:   submittedAt,
	}
}
