//go:build e2e

package persistence_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	domfeedback "nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/infra/db"
	"nightlife-feedback/internal/infra/history"
	"nightlife-feedback/internal/infra/store"
	"nightlife-feedback/internal/infra/uow"
	"nightlife-feedback/internal/usecase/queries"
	"nightlife-feedback/tests/common/builder"
	"nightlife-feedback/tests/common/dbtest"
	"nightlife-feedback/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PersistenceSuite struct {
	e2e.SharedSuite

	store   *store.PostgresStore
	history *history.GormLog
}

func TestPersistenceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PersistenceSuite))
}

func (s *PersistenceSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	logger := slog.Default()
	s.store = store.NewPostgresStore(uow.NewPostgresUoW(s.DB, logger), logger)

	gdb, cleanup, err := db.OpenGorm(s.DB)
	s.Require().NoError(err)
	s.T().Cleanup(cleanup)
	s.history = history.NewGormLog(gdb, logger)
}

func (s *PersistenceSuite) TestPostgresStore() {
	ctx := context.Background()

	s.Run("Normal case: SaveAll then LoadAll returns the same requests", func() {
		t := s.T()
		first := builder.NewFeedbackRequestBuilder().BuildDomain()
		second := builder.NewFeedbackRequestBuilder().
			WithStatus(domfeedback.StatusPrompted).
			WithAttempts(1).
			WithPromptTime(builder.DefaultEventEnd.Add(13 * time.Hour)).
			BuildDomain()

		require.NoError(t, s.store.SaveAll(ctx, []*domfeedback.FeedbackRequest{second, first}))

		loaded, err := s.store.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 2)

		// ordered by prompt time
		require.Equal(t, first.ID(), loaded[0].ID())
		require.Equal(t, second.ID(), loaded[1].ID())
		require.Equal(t, domfeedback.StatusPrompted, loaded[1].Status())
		require.Equal(t, 1, loaded[1].Attempts())
		require.True(t, second.PromptTime().Equal(loaded[1].PromptTime()))
	})

	s.Run("Normal case: SaveAll removes requests that left the set", func() {
		t := s.T()
		keep := builder.NewFeedbackRequestBuilder()
		gone := builder.NewFeedbackRequestBuilder()
		dbtest.InsertFeedbackRequest(t, s.DB, keep)
		dbtest.InsertFeedbackRequest(t, s.DB, gone)

		require.NoError(t, s.store.SaveAll(ctx, []*domfeedback.FeedbackRequest{keep.BuildDomain()}))

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "feedback_requests", ""))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "feedback_requests", "id = $1", gone.ID))
	})

	s.Run("Normal case: SaveAll with an empty set clears the table", func() {
		t := s.T()
		dbtest.InsertFeedbackRequest(t, s.DB, builder.NewFeedbackRequestBuilder())

		require.NoError(t, s.store.SaveAll(ctx, nil))

		loaded, err := s.store.LoadAll(ctx)
		require.NoError(t, err)
		require.Empty(t, loaded)
	})
}

func (s *PersistenceSuite) TestGormHistory() {
	ctx := context.Background()

	record := func(userID string, at time.Time) domfeedback.FeedbackRecord {
		return domfeedback.FeedbackRecord{
			RequestID:     uuid.New(),
			EventID:       "evt-warehouse-rave",
			UserID:        userID,
			Ratings:       map[domfeedback.Category]int{domfeedback.CategoryMusic: 4},
			OverallRating: 4,
			Comment:       "loud",
			SubmittedAt:   at,
		}
	}

	s.Run("Normal case: records page newest first across cursors", func() {
		t := s.T()
		userID := "user-" + uuid.NewString()
		base := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)

		var want []uuid.UUID
		for i := range 5 {
			r := record(userID, base.Add(time.Duration(i)*time.Minute))
			require.NoError(t, s.history.AppendRecord(ctx, r))
			want = append([]uuid.UUID{r.RequestID}, want...)
		}
		require.NoError(t, s.history.AppendRecord(ctx, record("someone-else", base)))

		q := queries.NewHistoryQueries(s.history)
		var (
			got    []uuid.UUID
			cursor *queries.Cursor
		)
		for range 3 {
			rows, next, err := q.ListByUser(ctx, userID, cursor, 2)
			require.NoError(t, err)
			for _, r := range rows {
				got = append(got, r.RequestID)
			}
			if next == nil {
				break
			}
			cursor = next
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("history order mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: replayed append is ignored", func() {
		t := s.T()
		r := record("user-"+uuid.NewString(), time.Now())

		require.NoError(t, s.history.AppendRecord(ctx, r))
		r.Comment = "second write"
		require.NoError(t, s.history.AppendRecord(ctx, r))

		rows, err := s.history.FindRecordsByUserFirstPage(ctx, r.UserID, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "loud", rows[0].Comment)
		require.Equal(t, map[string]int{"music": 4}, rows[0].Ratings)
	})

	s.Run("Normal case: retired request keeps its final state", func() {
		t := s.T()
		req := builder.NewFeedbackRequestBuilder().WithAttempts(3).BuildDomain()

		require.NoError(t, s.history.AppendRetired(ctx, req))

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "feedback_request_history",
			"request_id = $1 AND attempts = 3 AND user_id = $2", req.ID(), req.UserID()))
	})
}
