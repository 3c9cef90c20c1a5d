package queries

//go:generate mockgen -source=history.go -destination=../../../tests/mock/queries/mock_history.go -package=queriesmock

import (
	"context"
	"time"

	"nightlife-feedback/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type HistoryReadStore interface {
	FindRecordsByUserFirstPage(ctx context.Context, userID string, limit int) ([]*readmodel.FeedbackRecordRM, error)
	FindRecordsByUserKeyset(ctx context.Context, userID string, lastSubmittedAt time.Time, lastID uuid.UUID, limit int) ([]*readmodel.FeedbackRecordRM, error)
}

// HistoryQueries lists a user's submitted feedback, newest first.
type HistoryQueries interface {
	ListByUser(ctx context.Context, userID string, cursor *Cursor, limit int) ([]*readmodel.FeedbackRecordRM, *Cursor, error)
}

type historyQueriesImpl struct {
	repo HistoryReadStore
}

func NewHistoryQueries(repo HistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{repo: repo}
}

func (q *historyQueriesImpl) ListByUser(ctx context.Context, userID string, cursor *Cursor, limit int) ([]*readmodel.FeedbackRecordRM, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*readmodel.FeedbackRecordRM
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindRecordsByUserFirstPage(ctx, userID, limit+1)
	} else {
		lastSubmittedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindRecordsByUserKeyset(ctx, userID, lastSubmittedAt, lastID, limit+1)
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.SubmittedAt, last.RequestID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
