package gateway

import (
	"errors"
	"fmt"

	"nightlife-feedback/internal/pkg/errs"
)

var (
	ErrSubmissionFailed  = errors.New("feedback submission failed")
	ErrPhotoUploadFailed = errors.New("feedback photo upload failed")
)

// TransportError is any non-2xx answer or network failure from the rating
// endpoints. It matches its Op sentinel and errs.ErrTransport.
type TransportError struct {
	Op         error
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Op, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%v: status=%d body=%s", e.Op, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("%v: status=%d", e.Op, e.StatusCode)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == e.Op || target == errs.ErrTransport
}

// Retryable reports whether sending the same request again may succeed.
func (e *TransportError) Retryable() bool {
	return e.StatusCode == 0 || e.StatusCode == 408 || e.StatusCode == 429 || e.StatusCode >= 500
}
