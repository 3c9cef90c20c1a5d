package feedback

import "time"

const DefaultMaxAttempts = 3

// Policy holds the timing knobs of the prompt schedule.
type Policy struct {
	InitialDelay        time.Duration
	UnfocusedRetryDelay time.Duration
	DismissRetryDelay   time.Duration
	// PromptTimeout re-arms a surfaced prompt that got no answer.
	PromptTimeout time.Duration
	MaxAttempts   int
}

func DefaultPolicy() Policy {
	return Policy{
		InitialDelay:        12 * time.Hour,
		UnfocusedRetryDelay: 30 * time.Minute,
		DismissRetryDelay:   24 * time.Hour,
		PromptTimeout:       24 * time.Hour,
		MaxAttempts:         DefaultMaxAttempts,
	}
}

func (p Policy) Validate() error {
	if p.InitialDelay < 0 || p.UnfocusedRetryDelay <= 0 || p.DismissRetryDelay <= 0 || p.PromptTimeout <= 0 {
		return ErrInvalidPolicy
	}
	if p.MaxAttempts < 1 {
		return ErrInvalidPolicy
	}
	return nil
}
