package history

import (
	"context"
	"sync"
	"time"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// MemoryLog is the history log used with STORE_DRIVER=memory.
type MemoryLog struct {
	mu      sync.Mutex
	records []*readmodel.FeedbackRecordRM
	seen    map[uuid.UUID]struct{}
	retired []*feedback.FeedbackRequest
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{seen: make(map[uuid.UUID]struct{})}
}

func (l *MemoryLog) AppendRecord(_ context.Context, record feedback.FeedbackRecord) error {
	m, err := toRecordModel(record)
	if err != nil {
		return err
	}
	rm, err := fromRecordModel(m)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, dup := l.seen[rm.RequestID]; dup {
		return nil
	}
	l.seen[rm.RequestID] = struct{}{}
	l.records = append(l.records, rm)
	return nil
}

func (l *MemoryLog) AppendRetired(_ context.Context, req *feedback.FeedbackRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.retired = append(l.retired, req.Clone())
	return nil
}

// Retired returns copies of every retired request in append order.
func (l *MemoryLog) Retired() []*feedback.FeedbackRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*feedback.FeedbackRequest, 0, len(l.retired))
	for _, r := range l.retired {
		out = append(out, r.Clone())
	}
	return out
}

func (l *MemoryLog) FindRecordsByUserFirstPage(_ context.Context, userID string, limit int) ([]*readmodel.FeedbackRecordRM, error) {
	return l.find(userID, func(*readmodel.FeedbackRecordRM) bool { return true }, limit), nil
}

func (l *MemoryLog) FindRecordsByUserKeyset(_ context.Context, userID string, lastSubmittedAt time.Time, lastID uuid.UUID, limit int) ([]*readmodel.FeedbackRecordRM, error) {
	before := func(r *readmodel.FeedbackRecordRM) bool {
		if r.SubmittedAt.Equal(lastSubmittedAt) {
			return r.RequestID.String() < lastID.String()
		}
		return r.SubmittedAt.Before(lastSubmittedAt)
	}
	return l.find(userID, before, limit), nil
}

func (l *MemoryLog) find(userID string, keep func(*readmodel.FeedbackRecordRM) bool, limit int) []*readmodel.FeedbackRecordRM {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*readmodel.FeedbackRecordRM
	for _, r := range l.records {
		if r.UserID == userID && keep(r) {
			c := *r
			out = append(out, &c)
		}
	}
	sortRecordsDesc(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
