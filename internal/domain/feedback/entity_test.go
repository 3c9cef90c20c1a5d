//go:build unit

package feedback_test

import (
	"testing"
	"time"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/pkg/errs"
	"nightlife-feedback/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedbackRequest(t *testing.T) {
	policy := feedback.DefaultPolicy()
	now := builder.DefaultEventEnd.Add(-2 * time.Hour)

	t.Run("basic success case", func(t *testing.T) {
		in := builder.NewFeedbackRequestBuilder().ScheduleInput()

		actual, err := feedback.NewFeedbackRequest(in, policy, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, feedback.StatusScheduled, actual.Status())
		assert.Equal(t, 0, actual.Attempts())
		assert.Equal(t, 3, actual.MaxAttempts())
		assert.Equal(t, in.EventDate.Add(12*time.Hour), actual.PromptTime())
		assert.Equal(t, now, actual.CreatedAt())
		assert.True(t, actual.IsActive())
	})

	t.Run("ids are unique per call", func(t *testing.T) {
		in := builder.NewFeedbackRequestBuilder().ScheduleInput()
		a, err := feedback.NewFeedbackRequest(in, policy, now)
		require.NoError(t, err)
		b, err := feedback.NewFeedbackRequest(in, policy, now)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("input validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.FeedbackRequestBuilder)
			errIs  error
		}{
			{name: "missing event id", mutate: func(b *builder.FeedbackRequestBuilder) { b.EventID = "  " }, errIs: feedback.ErrEventRequired},
			{name: "missing user id", mutate: func(b *builder.FeedbackRequestBuilder) { b.UserID = "" }, errIs: feedback.ErrUserRequired},
			{name: "missing event date", mutate: func(b *builder.FeedbackRequestBuilder) { b.EventDate = time.Time{} }, errIs: feedback.ErrEventDateEmpty},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				in := builder.NewFeedbackRequestBuilder().With(c.mutate).ScheduleInput()
				actual, err := feedback.NewFeedbackRequest(in, policy, now)
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
			})
		}
	})

	t.Run("invalid policy", func(t *testing.T) {
		p := policy
		p.MaxAttempts = 0
		_, err := feedback.NewFeedbackRequest(builder.NewFeedbackRequestBuilder().ScheduleInput(), p, now)
		require.ErrorIs(t, err, feedback.ErrInvalidPolicy)
	})
}

func TestFeedbackRequest_OnTimerFired(t *testing.T) {
	policy := feedback.DefaultPolicy()
	fireAt := builder.DefaultEventEnd.Add(12 * time.Hour)

	t.Run("focused user is prompted", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().BuildDomain()

		tr, err := r.OnTimerFired(fireAt, true, policy)
		require.NoError(t, err)

		assert.Equal(t, feedback.TransitionPrompted, tr)
		assert.Equal(t, feedback.StatusPrompted, r.Status())
		assert.Equal(t, 1, r.Attempts())
		assert.Equal(t, fireAt.Add(policy.PromptTimeout), r.PromptTime())
	})

	t.Run("unfocused user is retried in thirty minutes", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().BuildDomain()

		tr, err := r.OnTimerFired(fireAt, false, policy)
		require.NoError(t, err)

		assert.Equal(t, feedback.TransitionRescheduled, tr)
		assert.Equal(t, feedback.StatusScheduled, r.Status())
		assert.Equal(t, 1, r.Attempts())
		assert.Equal(t, fireAt.Add(30*time.Minute), r.PromptTime())
	})

	t.Run("unfocused fire consuming the last attempt expires", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().WithAttempts(2).BuildDomain()

		tr, err := r.OnTimerFired(fireAt, false, policy)
		require.NoError(t, err)

		assert.Equal(t, feedback.TransitionExpired, tr)
		assert.Equal(t, feedback.StatusExpired, r.Status())
		assert.Equal(t, 3, r.Attempts())
	})

	t.Run("focused fire on the last attempt still prompts", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().WithAttempts(2).BuildDomain()

		tr, err := r.OnTimerFired(fireAt, true, policy)
		require.NoError(t, err)

		assert.Equal(t, feedback.TransitionPrompted, tr)
		assert.Equal(t, 3, r.Attempts())
	})

	t.Run("fire with attempts exhausted expires without counting", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().
			WithStatus(feedback.StatusPrompted).
			WithAttempts(3).
			BuildDomain()

		tr, err := r.OnTimerFired(fireAt, true, policy)
		require.NoError(t, err)

		assert.Equal(t, feedback.TransitionExpired, tr)
		assert.Equal(t, 3, r.Attempts())
	})

	t.Run("prompt time never moves backwards", func(t *testing.T) {
		later := fireAt.Add(48 * time.Hour)
		r := builder.NewFeedbackRequestBuilder().WithPromptTime(later).BuildDomain()

		_, err := r.OnTimerFired(fireAt, false, policy)
		require.NoError(t, err)

		assert.Equal(t, later, r.PromptTime())
	})

	t.Run("terminal requests reject fires", func(t *testing.T) {
		for _, s := range []feedback.Status{feedback.StatusSubmitted, feedback.StatusExpired, feedback.StatusDismissed} {
			r := builder.NewFeedbackRequestBuilder().WithStatus(s).BuildDomain()
			_, err := r.OnTimerFired(fireAt, true, policy)
			require.ErrorIs(t, err, feedback.ErrAlreadyRetired, s.String())
		}
	})
}

func TestFeedbackRequest_Dismiss(t *testing.T) {
	policy := feedback.DefaultPolicy()
	now := builder.DefaultEventEnd.Add(13 * time.Hour)

	t.Run("dismiss with attempts left reschedules a day later", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().
			WithStatus(feedback.StatusPrompted).
			WithAttempts(1).
			BuildDomain()

		tr, err := r.Dismiss(now, policy)
		require.NoError(t, err)

		assert.Equal(t, feedback.TransitionRescheduled, tr)
		assert.Equal(t, feedback.StatusScheduled, r.Status())
		assert.Equal(t, now.Add(24*time.Hour), r.PromptTime())
		assert.Equal(t, 1, r.Attempts())
	})

	t.Run("dismiss at the ceiling expires", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().
			WithStatus(feedback.StatusPrompted).
			WithAttempts(3).
			BuildDomain()

		tr, err := r.Dismiss(now, policy)
		require.NoError(t, err)

		assert.Equal(t, feedback.TransitionExpired, tr)
		assert.Equal(t, feedback.StatusExpired, r.Status())
		assert.False(t, r.IsActive())
	})

	t.Run("dismiss requires an open prompt", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().BuildDomain()

		_, err := r.Dismiss(now, policy)
		require.ErrorIs(t, err, feedback.ErrNotPrompted)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})
}

func TestFeedbackRequest_MarkSubmitted(t *testing.T) {
	now := builder.DefaultEventEnd.Add(13 * time.Hour)

	t.Run("prompted request can be submitted", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().WithStatus(feedback.StatusPrompted).WithAttempts(1).BuildDomain()

		tr, err := r.MarkSubmitted(now)
		require.NoError(t, err)
		assert.Equal(t, feedback.TransitionSubmitted, tr)
		assert.Equal(t, feedback.StatusSubmitted, r.Status())
		assert.Equal(t, now, r.UpdatedAt())
	})

	t.Run("scheduled request cannot be submitted", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().BuildDomain()

		_, err := r.MarkSubmitted(now)
		require.ErrorIs(t, err, feedback.ErrNotPrompted)
		assert.Equal(t, feedback.StatusScheduled, r.Status())
	})
}

func TestFeedbackRequest_FireAt(t *testing.T) {
	prompt := builder.DefaultEventEnd.Add(12 * time.Hour)
	r := builder.NewFeedbackRequestBuilder().WithPromptTime(prompt).BuildDomain()

	assert.Equal(t, prompt, r.FireAt(prompt.Add(-time.Hour)))
	assert.Equal(t, prompt.Add(time.Hour), r.FireAt(prompt.Add(time.Hour)))
}

func TestFeedbackRequest_MicrosecondPrecision(t *testing.T) {
	policy := feedback.DefaultPolicy()
	policy.InitialDelay = 12*time.Hour + 999*time.Nanosecond
	end := builder.DefaultEventEnd.Add(1500 * time.Nanosecond)
	now := end.Add(-time.Hour + 42*time.Nanosecond)

	t.Run("scheduling drops sub-microsecond digits", func(t *testing.T) {
		in := builder.NewFeedbackRequestBuilder().ScheduleInput()
		in.EventDate = end

		r, err := feedback.NewFeedbackRequest(in, policy, now)
		require.NoError(t, err)

		assert.Equal(t, end.Truncate(time.Microsecond), r.EventDate())
		assert.Equal(t, builder.DefaultEventEnd.Add(12*time.Hour+2*time.Microsecond), r.PromptTime())
		assert.Zero(t, r.CreatedAt().Nanosecond()%1000)
		assert.Zero(t, r.UpdatedAt().Nanosecond()%1000)
	})

	t.Run("transitions keep microsecond precision", func(t *testing.T) {
		r := builder.NewFeedbackRequestBuilder().BuildDomain()
		fireAt := builder.DefaultEventEnd.Add(12*time.Hour + 777*time.Nanosecond)

		_, err := r.OnTimerFired(fireAt, false, policy)
		require.NoError(t, err)

		assert.Equal(t, builder.DefaultEventEnd.Add(12*time.Hour+30*time.Minute), r.PromptTime())
		assert.Equal(t, builder.DefaultEventEnd.Add(12*time.Hour), r.UpdatedAt())
	})

	t.Run("reconstructed timestamps match what a store can hold", func(t *testing.T) {
		prompt := builder.DefaultEventEnd.Add(36*time.Hour + 123456789*time.Nanosecond)
		r := builder.NewFeedbackRequestBuilder().WithPromptTime(prompt).BuildDomain()

		assert.Equal(t, prompt.Truncate(time.Microsecond), r.PromptTime())
	})
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "prompted", "submitted", "dismissed", "expired"} {
		actual, err := feedback.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, actual.String())
	}

	_, err := feedback.ParseStatus("SCHEDULED")
	require.ErrorIs(t, err, feedback.ErrInvalidStatus)
}
