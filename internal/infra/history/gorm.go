package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/infra"
	"nightlife-feedback/internal/usecase/readmodel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLog appends submitted records and retired requests to Postgres through gorm.
type GormLog struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormLog(db *gorm.DB, logger *slog.Logger) *GormLog {
	return &GormLog{db: db, logger: logger}
}

func (l *GormLog) AppendRecord(ctx context.Context, record feedback.FeedbackRecord) error {
	m, err := toRecordModel(record)
	if err != nil {
		return infra.WrapRepoErr(l.logger, infra.KindDecode, "failed to encode feedback record", err)
	}
	// A replayed append for the same request is a no-op.
	err = l.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "request_id"}}, DoNothing: true}).
		Create(&m).Error
	if err != nil {
		return infra.WrapRepoErr(l.logger, infra.KindDBFailure, "failed to append feedback record", err)
	}
	return nil
}

func (l *GormLog) AppendRetired(ctx context.Context, req *feedback.FeedbackRequest) error {
	m := retiredRequestModel{
		RequestID:   req.ID().String(),
		EventID:     req.EventID(),
		EventTitle:  req.EventTitle(),
		EventDate:   req.EventDate().UTC(),
		UserID:      req.UserID(),
		Status:      req.Status().String(),
		Attempts:    req.Attempts(),
		MaxAttempts: req.MaxAttempts(),
		PromptTime:  req.PromptTime().UTC(),
		RetiredAt:   req.UpdatedAt().UTC(),
	}
	if err := l.db.WithContext(ctx).Create(&m).Error; err != nil {
		return infra.WrapRepoErr(l.logger, infra.KindDBFailure, "failed to append retired request", err)
	}
	return nil
}

func (l *GormLog) FindRecordsByUserFirstPage(ctx context.Context, userID string, limit int) ([]*readmodel.FeedbackRecordRM, error) {
	var rows []feedbackRecordModel
	err := l.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC, request_id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, infra.WrapRepoErr(l.logger, infra.KindDBFailure, "failed to list feedback records", err)
	}
	return l.toRMs(rows)
}

func (l *GormLog) FindRecordsByUserKeyset(ctx context.Context, userID string, lastSubmittedAt time.Time, lastID uuid.UUID, limit int) ([]*readmodel.FeedbackRecordRM, error) {
	var rows []feedbackRecordModel
	err := l.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("(submitted_at, request_id) < (?, ?)", lastSubmittedAt, lastID.String()).
		Order("submitted_at DESC, request_id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, infra.WrapRepoErr(l.logger, infra.KindDBFailure, "failed to list feedback records", err)
	}
	return l.toRMs(rows)
}

func (l *GormLog) toRMs(rows []feedbackRecordModel) ([]*readmodel.FeedbackRecordRM, error) {
	out := make([]*readmodel.FeedbackRecordRM, 0, len(rows))
	for _, row := range rows {
		rm, err := fromRecordModel(row)
		if err != nil {
			return nil, infra.WrapRepoErr(l.logger, infra.KindDecode, "failed to decode feedback record", err)
		}
		out = append(out, rm)
	}
	return out, nil
}

func toRecordModel(r feedback.FeedbackRecord) (feedbackRecordModel, error) {
	ratings := make(map[string]int, len(r.Ratings))
	for c, v := range r.Ratings {
		ratings[string(c)] = v
	}
	ratingsJSON, err := json.Marshal(ratings)
	if err != nil {
		return feedbackRecordModel{}, err
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return feedbackRecordModel{}, err
	}
	return feedbackRecordModel{
		RequestID:     r.RequestID.String(),
		EventID:       r.EventID,
		UserID:        r.UserID,
		Ratings:       string(ratingsJSON),
		OverallRating: r.OverallRating,
		Comment:       r.Comment,
		Tags:          string(tagsJSON),
		HasPhoto:      r.HasPhoto,
		SubmittedAt:   r.SubmittedAt.UTC().Truncate(time.Microsecond),
	}, nil
}

func fromRecordModel(m feedbackRecordModel) (*readmodel.FeedbackRecordRM, error) {
	id, err := uuid.Parse(m.RequestID)
	if err != nil {
		return nil, err
	}
	var ratings map[string]int
	if err := json.Unmarshal([]byte(m.Ratings), &ratings); err != nil {
		return nil, err
	}
	var tags []string
	if err := json.Unmarshal([]byte(m.Tags), &tags); err != nil {
		return nil, err
	}
	return &readmodel.FeedbackRecordRM{
		RequestID:     id,
		EventID:       m.EventID,
		UserID:        m.UserID,
		Ratings:       ratings,
		OverallRating: m.OverallRating,
		Comment:       m.Comment,
		Tags:          tags,
		HasPhoto:      m.HasPhoto,
		SubmittedAt:   m.SubmittedAt.UTC(),
	}, nil
}

func sortRecordsDesc(rs []*readmodel.FeedbackRecordRM) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].SubmittedAt.Equal(rs[j].SubmittedAt) {
			return rs[i].RequestID.String() > rs[j].RequestID.String()
		}
		return rs[i].SubmittedAt.After(rs[j].SubmittedAt)
	})
}
