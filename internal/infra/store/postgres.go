package store

import (
	"context"
	"log/slog"
	"time"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/infra"
	"nightlife-feedback/internal/infra/uow"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	selectActiveSQL = `
SELECT id, event_id, event_title, event_date, user_id, prompt_time,
       status, attempts, max_attempts, created_at, updated_at
FROM feedback_requests
ORDER BY prompt_time, id`

	upsertRequestSQL = `
INSERT INTO feedback_requests (
    id, event_id, event_title, event_date, user_id, prompt_time,
    status, attempts, max_attempts, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
    prompt_time  = EXCLUDED.prompt_time,
    status       = EXCLUDED.status,
    attempts     = EXCLUDED.attempts,
    max_attempts = EXCLUDED.max_attempts,
    updated_at   = EXCLUDED.updated_at`

	deleteMissingSQL = `DELETE FROM feedback_requests WHERE NOT (id = ANY($1))`
)

// PostgresStore writes the active collection in one transaction: upsert every
// row, then delete rows that left the set. Postgres keeps microseconds, so
// timestamps are truncated on the way in.
type PostgresStore struct {
	uow    *uow.PostgresUoW
	logger *slog.Logger
}

func NewPostgresStore(u *uow.PostgresUoW, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{uow: u, logger: logger}
}

func (s *PostgresStore) LoadAll(ctx context.Context) ([]*feedback.FeedbackRequest, error) {
	var out []*feedback.FeedbackRequest
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectActiveSQL)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = out[:0]
		for rows.Next() {
			var (
				id                                          uuid.UUID
				eventID, eventTitle, userID, status         string
				eventDate, promptTime, createdAt, updatedAt time.Time
				attempts, maxAttempts                       int
			)
			if err := rows.Scan(&id, &eventID, &eventTitle, &eventDate, &userID, &promptTime,
				&status, &attempts, &maxAttempts, &createdAt, &updatedAt); err != nil {
				return err
			}
			st, err := feedback.ParseStatus(status)
			if err != nil {
				return infra.WrapRepoErr(s.logger, infra.KindDecode, "unknown status in feedback_requests", err)
			}
			out = append(out, feedback.ReconstructFeedbackRequest(
				id, eventID, eventTitle, eventDate.UTC(), userID, promptTime.UTC(),
				st, attempts, maxAttempts, createdAt.UTC(), updatedAt.UTC(),
			))
		}
		return rows.Err()
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDecode) {
			return nil, err
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load feedback requests", err)
	}
	if out == nil {
		out = []*feedback.FeedbackRequest{}
	}
	return out, nil
}

func (s *PostgresStore) SaveAll(ctx context.Context, reqs []*feedback.FeedbackRequest) error {
	ids := make([]uuid.UUID, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ID())
	}

	err := s.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Built per attempt: a retried transaction must not share batch state.
		batch := &pgx.Batch{}
		for _, r := range reqs {
			batch.Queue(upsertRequestSQL,
				r.ID(), r.EventID(), r.EventTitle(), pgTime(r.EventDate()), r.UserID(), pgTime(r.PromptTime()),
				r.Status().String(), r.Attempts(), r.MaxAttempts(), pgTime(r.CreatedAt()), pgTime(r.UpdatedAt()),
			)
		}
		if batch.Len() > 0 {
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return err
			}
		}
		_, err := tx.Exec(ctx, deleteMissingSQL, ids)
		return err
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to save feedback requests", err)
	}
	return nil
}

func pgTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
