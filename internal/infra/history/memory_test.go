//go:build unit

package history_test

import (
	"context"
	"testing"
	"time"

	domfeedback "nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/infra/history"
	"nightlife-feedback/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(userID string, at time.Time) domfeedback.FeedbackRecord {
	return domfeedback.FeedbackRecord{
		RequestID:     uuid.New(),
		EventID:       "evt-1",
		UserID:        userID,
		Ratings:       map[domfeedback.Category]int{domfeedback.Category("music"): 5},
		OverallRating: 5,
		Comment:       "loud",
		SubmittedAt:   at,
	}
}

func TestMemoryLog(t *testing.T) {
	ctx := context.Background()
	base := builder.DefaultEventEnd.Add(13 * time.Hour)

	t.Run("records are listed newest first per user", func(t *testing.T) {
		log := history.NewMemoryLog()
		first := record("user-1", base)
		second := record("user-1", base.Add(time.Minute))
		require.NoError(t, log.AppendRecord(ctx, first))
		require.NoError(t, log.AppendRecord(ctx, second))
		require.NoError(t, log.AppendRecord(ctx, record("user-2", base)))

		got, err := log.FindRecordsByUserFirstPage(ctx, "user-1", 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, second.RequestID, got[0].RequestID)
		assert.Equal(t, first.RequestID, got[1].RequestID)
		assert.Equal(t, map[string]int{"music": 5}, got[0].Ratings)
		assert.Equal(t, []string{}, got[0].Tags)
	})

	t.Run("keyset continues after the given position", func(t *testing.T) {
		log := history.NewMemoryLog()
		var all []domfeedback.FeedbackRecord
		for i := range 5 {
			r := record("user-1", base.Add(time.Duration(i)*time.Minute))
			all = append(all, r)
			require.NoError(t, log.AppendRecord(ctx, r))
		}

		page, err := log.FindRecordsByUserFirstPage(ctx, "user-1", 2)
		require.NoError(t, err)
		require.Len(t, page, 2)

		last := page[1]
		rest, err := log.FindRecordsByUserKeyset(ctx, "user-1", last.SubmittedAt, last.RequestID, 10)
		require.NoError(t, err)
		require.Len(t, rest, 3)
		assert.Equal(t, all[2].RequestID, rest[0].RequestID)
		assert.Equal(t, all[0].RequestID, rest[2].RequestID)
	})

	t.Run("a replayed append is ignored", func(t *testing.T) {
		log := history.NewMemoryLog()
		r := record("user-1", base)
		require.NoError(t, log.AppendRecord(ctx, r))
		require.NoError(t, log.AppendRecord(ctx, r))

		got, err := log.FindRecordsByUserFirstPage(ctx, "user-1", 10)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("retired requests are copied", func(t *testing.T) {
		log := history.NewMemoryLog()
		req := builder.NewFeedbackRequestBuilder().WithStatus(domfeedback.StatusExpired).WithAttempts(3).BuildDomain()
		require.NoError(t, log.AppendRetired(ctx, req))

		retired := log.Retired()
		require.Len(t, retired, 1)
		assert.Equal(t, req.ID(), retired[0].ID())
		assert.Equal(t, domfeedback.StatusExpired, retired[0].Status())
		assert.NotSame(t, req, retired[0])
	})
}
