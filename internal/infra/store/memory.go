package store

import (
	"context"
	"encoding/json"
	"sync"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/pkg/errs"
)

// MemoryStore keeps the last saved collection as serialized JSON, so it goes
// through the same codec as the durable stores.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadAll(_ context.Context) ([]*feedback.FeedbackRequest, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()

	if len(data) == 0 {
		return []*feedback.FeedbackRequest{}, nil
	}
	var docs []requestDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, errs.Wrap(err, "decode feedback requests")
	}
	return fromDocuments(docs)
}

func (s *MemoryStore) SaveAll(_ context.Context, reqs []*feedback.FeedbackRequest) error {
	data, err := json.Marshal(toDocuments(reqs))
	if err != nil {
		return errs.Wrap(err, "encode feedback requests")
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Snapshot returns the raw persisted bytes.
func (s *MemoryStore) Snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}
