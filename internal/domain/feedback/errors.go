package feedback

import "nightlife-feedback/internal/pkg/errs"

var (
	ErrEventRequired  = errs.Mark(errs.New("event id is required"), errs.ErrValidation)
	ErrUserRequired   = errs.Mark(errs.New("user id is required"), errs.ErrValidation)
	ErrEventDateEmpty = errs.Mark(errs.New("event date is required"), errs.ErrValidation)
	ErrInvalidStatus  = errs.Mark(errs.New("invalid feedback request status"), errs.ErrValidation)
	ErrInvalidPolicy  = errs.Mark(errs.New("invalid scheduling policy"), errs.ErrValidation)

	ErrInvalidCategory = errs.Mark(errs.New("unknown rating category"), errs.ErrValidation)
	ErrInvalidRating   = errs.Mark(errs.New("rating must be between 1 and 5"), errs.ErrValidation)
	ErrInvalidOverall  = errs.Mark(errs.New("overall rating must be between 0 and 5"), errs.ErrValidation)
	ErrCommentTooLong  = errs.Mark(errs.New("comment exceeds maximum length"), errs.ErrValidation)
	ErrTooManyTags     = errs.Mark(errs.New("too many tags"), errs.ErrValidation)
	ErrPhotoTooLarge   = errs.Mark(errs.New("photo exceeds maximum size"), errs.ErrValidation)
	ErrPhotoNotImage   = errs.Mark(errs.New("photo must be an image"), errs.ErrValidation)
	ErrNothingToSubmit = errs.Mark(errs.New("at least one rating or a comment is required"), errs.ErrValidation)
	ErrNotPrompted     = errs.Mark(errs.New("feedback request is not awaiting a response"), errs.ErrConflict)
	ErrAlreadyRetired  = errs.Mark(errs.New("feedback request is no longer active"), errs.ErrConflict)
)
