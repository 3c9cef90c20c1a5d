package commands

//go:generate mockgen -source=feedback_scheduler.go -destination=../../../tests/mock/commands/mock_feedback_scheduler.go -package=commandsmock

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/pkg/clock"
	"nightlife-feedback/internal/pkg/errs"
	"nightlife-feedback/internal/usecase/shared"

	"github.com/google/uuid"
)

const rewardReason = "feedback_submitted"

var (
	ErrRequestNotFound      = errs.Mark(errs.New("feedback request not found"), errs.ErrNotFound)
	ErrSubmissionInProgress = errs.Mark(errs.New("a submission for this request is already in flight"), errs.ErrConflict)
	ErrSchedulerClosed      = errs.New("feedback scheduler is closed")
)

type FeedbackScheduler interface {
	Schedule(ctx context.Context, in feedback.ScheduleInput) (*feedback.FeedbackRequest, error)
	Rehydrate(ctx context.Context) (int, error)
	RespondSubmit(ctx context.Context, requestID uuid.UUID, in feedback.SubmissionInput) (*SubmitResult, error)
	RespondDismiss(ctx context.Context, requestID uuid.UUID) (feedback.Transition, error)
	ListActive() []*feedback.FeedbackRequest
	Get(requestID uuid.UUID) (*feedback.FeedbackRequest, error)
	Close()
}

type SchedulerConfig struct {
	Policy       feedback.Policy
	RewardPoints int
}

type SubmitResult struct {
	Record        feedback.FeedbackRecord
	Ack           *shared.SubmissionAck
	PhotoUploaded bool
	// PhotoErr is informational: a failed upload never undoes the rating.
	PhotoErr error
}

type armedTimer struct {
	seq   uint64
	timer clock.Timer
}

// snapshot is a copy of the active collection. Higher seq means newer state.
type snapshot struct {
	seq  uint64
	reqs []*feedback.FeedbackRequest
}

type feedbackSchedulerImpl struct {
	mu         sync.Mutex
	active     map[uuid.UUID]*feedback.FeedbackRequest
	timers     map[uuid.UUID]armedTimer
	submitting map[uuid.UUID]struct{}
	seq        uint64
	snapSeq    uint64
	closed     bool

	// saveMu serialises store writes outside mu; savedSeq is guarded by it.
	saveMu   sync.Mutex
	savedSeq uint64

	ctx    context.Context
	cancel context.CancelFunc

	cfg       SchedulerConfig
	clock     clock.Timers
	store     shared.FeedbackStore
	history   shared.HistoryLog
	oracle    shared.FocusOracle
	presenter shared.PromptPresenter
	gateway   shared.SubmissionGateway
	sink      shared.GamificationSink
	logger    *slog.Logger
}

func NewFeedbackScheduler(
	cfg SchedulerConfig,
	clk clock.Timers,
	store shared.FeedbackStore,
	history shared.HistoryLog,
	oracle shared.FocusOracle,
	presenter shared.PromptPresenter,
	gateway shared.SubmissionGateway,
	sink shared.GamificationSink,
	logger *slog.Logger,
) (FeedbackScheduler, error) {
	if err := cfg.Policy.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &feedbackSchedulerImpl{
		active:     make(map[uuid.UUID]*feedback.FeedbackRequest),
		timers:     make(map[uuid.UUID]armedTimer),
		submitting: make(map[uuid.UUID]struct{}),
		ctx:        ctx,
		cancel:     cancel,
		cfg:        cfg,
		clock:      clk,
		store:      store,
		history:    history,
		oracle:     oracle,
		presenter:  presenter,
		gateway:    gateway,
		sink:       sink,
		logger:     logger.With(slog.String("component", "feedback_scheduler")),
	}, nil
}

// Schedule does not deduplicate: two calls for the same event and user produce
// two independent requests.
func (s *feedbackSchedulerImpl) Schedule(ctx context.Context, in feedback.ScheduleInput) (*feedback.FeedbackRequest, error) {
	req, err := feedback.NewFeedbackRequest(in, s.cfg.Policy, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSchedulerClosed
	}
	s.active[req.ID()] = req
	s.armLocked(req, req.FireAt(s.clock.Now()))
	out := req.Clone()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)

	s.logger.Info("feedback request scheduled",
		slog.String("request_id", out.ID().String()),
		slog.String("event_id", out.EventID()),
		slog.String("user_id", out.UserID()),
		slog.Time("prompt_time", out.PromptTime()))

	return out, nil
}

// Rehydrate loads persisted requests and re-arms their timers. Overdue prompts
// fire right away. Requests already known to this process keep their in-memory
// state and timer.
func (s *feedbackSchedulerImpl) Rehydrate(ctx context.Context) (int, error) {
	loaded, err := s.store.LoadAll(ctx)
	if err != nil {
		s.logger.Error("failed to load persisted feedback requests", slog.String("error", err.Error()))
		return 0, errs.Mark(errs.Wrap(err, "rehydrate"), errs.ErrPersistence)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, ErrSchedulerClosed
	}

	now := s.clock.Now()
	armed := 0
	for _, req := range loaded {
		if !req.IsActive() {
			continue
		}
		if _, ok := s.timers[req.ID()]; ok {
			continue
		}
		if existing, ok := s.active[req.ID()]; ok {
			req = existing
		} else {
			s.active[req.ID()] = req
		}
		s.armLocked(req, req.FireAt(now))
		armed++
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)

	s.logger.Info("feedback scheduler rehydrated",
		slog.Int("loaded", len(loaded)),
		slog.Int("armed", armed))
	return armed, nil
}

func (s *feedbackSchedulerImpl) RespondSubmit(ctx context.Context, requestID uuid.UUID, in feedback.SubmissionInput) (*SubmitResult, error) {
	sub, err := feedback.NewSubmission(in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSchedulerClosed
	}
	req, ok := s.active[requestID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrRequestNotFound
	}
	if err = req.CanSubmit(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if _, busy := s.submitting[requestID]; busy {
		s.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}
	s.submitting[requestID] = struct{}{}
	record := feedback.NewFeedbackRecord(req, sub, s.clock.Now())
	s.mu.Unlock()

	ack, err := s.gateway.Submit(ctx, shared.NewSubmissionPayload(record))
	if err != nil {
		s.mu.Lock()
		delete(s.submitting, requestID)
		s.mu.Unlock()
		s.logger.Warn("feedback submission failed; prompt stays open",
			slog.String("request_id", requestID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	result := &SubmitResult{Record: record, Ack: ack}
	if photo := sub.Photo(); photo != nil {
		if perr := s.gateway.UploadPhoto(ctx, requestID, *photo); perr != nil {
			result.PhotoErr = perr
			s.logger.Warn("photo upload failed; rating kept",
				slog.String("request_id", requestID.String()),
				slog.String("error", perr.Error()))
		} else {
			result.PhotoUploaded = true
		}
	}

	var (
		retired *feedback.FeedbackRequest
		snap    snapshot
	)
	s.mu.Lock()
	delete(s.submitting, requestID)
	if req, ok = s.active[requestID]; ok {
		if _, merr := req.MarkSubmitted(s.clock.Now()); merr != nil {
			s.logger.Warn("submitted request was not awaiting a response",
				slog.String("request_id", requestID.String()),
				slog.String("status", req.Status().String()))
		}
		retired = req.Clone()
		s.retireLocked(req)
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	if retired != nil {
		s.persist(bg, snap)
	}
	if herr := s.history.AppendRecord(bg, record); herr != nil {
		s.logger.Error("failed to append feedback record", slog.String("request_id", requestID.String()), slog.String("error", herr.Error()))
	}
	if retired != nil {
		s.appendRetired(bg, retired)
	}
	s.notifySink(bg, record, sub)

	s.logger.Info("feedback submitted",
		slog.String("request_id", requestID.String()),
		slog.String("event_id", record.EventID),
		slog.Int("overall_rating", record.OverallRating),
		slog.Bool("photo_uploaded", result.PhotoUploaded))
	return result, nil
}

func (s *feedbackSchedulerImpl) RespondDismiss(ctx context.Context, requestID uuid.UUID) (feedback.Transition, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return feedback.TransitionNone, ErrSchedulerClosed
	}
	req, ok := s.active[requestID]
	if !ok {
		s.mu.Unlock()
		return feedback.TransitionNone, ErrRequestNotFound
	}
	if _, busy := s.submitting[requestID]; busy {
		s.mu.Unlock()
		return feedback.TransitionNone, ErrSubmissionInProgress
	}

	tr, err := req.Dismiss(s.clock.Now(), s.cfg.Policy)
	if err != nil {
		s.mu.Unlock()
		return feedback.TransitionNone, err
	}

	var retired *feedback.FeedbackRequest
	switch tr {
	case feedback.TransitionRescheduled:
		s.armLocked(req, req.PromptTime())
	case feedback.TransitionExpired:
		retired = req.Clone()
		s.retireLocked(req)
	case feedback.TransitionNone, feedback.TransitionPrompted, feedback.TransitionSubmitted:
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	if retired != nil {
		s.appendRetired(context.WithoutCancel(ctx), retired)
	}

	s.logger.Info("feedback prompt dismissed",
		slog.String("request_id", requestID.String()),
		slog.String("transition", tr.String()))
	return tr, nil
}

func (s *feedbackSchedulerImpl) ListActive() []*feedback.FeedbackRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*feedback.FeedbackRequest, 0, len(s.active))
	for _, req := range s.active {
		out = append(out, req.Clone())
	}
	sortRequests(out)
	return out
}

func (s *feedbackSchedulerImpl) Get(requestID uuid.UUID) (*feedback.FeedbackRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.active[requestID]
	if !ok {
		return nil, ErrRequestNotFound
	}
	return req.Clone(), nil
}

// Close cancels every armed timer. Persisted state is left as is so the next
// process can rehydrate it.
func (s *feedbackSchedulerImpl) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id := range s.timers {
		s.cancelLocked(id)
	}
	s.cancel()
}

// fire runs on the timer's goroutine. A callback whose sequence number no
// longer matches the armed entry lost a race with a cancel and is dropped.
func (s *feedbackSchedulerImpl) fire(id uuid.UUID, seq uint64) {
	s.mu.Lock()
	entry, ok := s.timers[id]
	if !ok || entry.seq != seq {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)

	req, ok := s.active[id]
	if !ok {
		s.mu.Unlock()
		return
	}

	now := s.clock.Now()
	if _, busy := s.submitting[id]; busy {
		s.armLocked(req, now.Add(s.cfg.Policy.UnfocusedRetryDelay))
		s.mu.Unlock()
		return
	}

	// An exhausted request expires whatever the user is doing.
	focused := false
	if req.Attempts() < req.MaxAttempts() {
		focused = s.oracle.IsFocused(s.ctx, req.UserID())
	}
	tr, err := req.OnTimerFired(now, focused, s.cfg.Policy)
	if err != nil {
		s.logger.Error("timer fired for a request that cannot transition",
			slog.String("request_id", id.String()),
			slog.String("status", req.Status().String()),
			slog.String("error", err.Error()))
		s.retireLocked(req)
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.persist(s.ctx, snap)
		return
	}

	var prompted, retired *feedback.FeedbackRequest
	switch tr {
	case feedback.TransitionPrompted:
		s.armLocked(req, req.PromptTime())
		prompted = req.Clone()
	case feedback.TransitionRescheduled:
		s.armLocked(req, req.PromptTime())
	case feedback.TransitionExpired:
		retired = req.Clone()
		s.retireLocked(req)
	case feedback.TransitionNone, feedback.TransitionSubmitted:
	}
	// req stays shared with the next fire once mu is released.
	attempts := req.Attempts()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(s.ctx, snap)

	s.logger.Info("feedback timer fired",
		slog.String("request_id", id.String()),
		slog.Bool("focused", focused),
		slog.Int("attempts", attempts),
		slog.String("transition", tr.String()))

	if prompted != nil {
		if perr := s.presenter.Present(s.ctx, prompted); perr != nil {
			s.logger.Warn("failed to surface feedback prompt",
				slog.String("request_id", id.String()),
				slog.String("error", perr.Error()))
		}
	}
	if retired != nil {
		s.appendRetired(s.ctx, retired)
	}
}

// armLocked cancels any timer for the request before arming the new one.
func (s *feedbackSchedulerImpl) armLocked(req *feedback.FeedbackRequest, at time.Time) {
	id := req.ID()
	s.cancelLocked(id)
	s.seq++
	seq := s.seq
	t := s.clock.At(at, func() { s.fire(id, seq) })
	s.timers[id] = armedTimer{seq: seq, timer: t}
}

func (s *feedbackSchedulerImpl) cancelLocked(id uuid.UUID) {
	if entry, ok := s.timers[id]; ok {
		entry.timer.Stop()
		delete(s.timers, id)
	}
}

func (s *feedbackSchedulerImpl) retireLocked(req *feedback.FeedbackRequest) {
	s.cancelLocked(req.ID())
	delete(s.active, req.ID())
}

func (s *feedbackSchedulerImpl) snapshotLocked() snapshot {
	reqs := make([]*feedback.FeedbackRequest, 0, len(s.active))
	for _, req := range s.active {
		reqs = append(reqs, req.Clone())
	}
	sortRequests(reqs)
	s.snapSeq++
	return snapshot{seq: s.snapSeq, reqs: reqs}
}

// persist writes the full active collection without holding mu, so a slow or
// retrying store never stalls timers and reads. A snapshot older than the
// last one written is dropped. A failing store is logged and prompting
// carries on in memory.
func (s *feedbackSchedulerImpl) persist(ctx context.Context, snap snapshot) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if snap.seq <= s.savedSeq {
		return
	}
	s.savedSeq = snap.seq

	if err := s.store.SaveAll(ctx, snap.reqs); err != nil {
		s.logger.Error("failed to persist feedback requests; continuing in memory",
			slog.Int("active", len(snap.reqs)),
			slog.String("error", err.Error()))
	}
}

func (s *feedbackSchedulerImpl) appendRetired(ctx context.Context, req *feedback.FeedbackRequest) {
	if err := s.history.AppendRetired(ctx, req); err != nil {
		s.logger.Error("failed to append retired request to history",
			slog.String("request_id", req.ID().String()),
			slog.String("error", err.Error()))
	}
}

// notifySink runs only after the gateway confirmed the rating.
func (s *feedbackSchedulerImpl) notifySink(ctx context.Context, record feedback.FeedbackRecord, sub *feedback.Submission) {
	if err := s.sink.AwardPoints(ctx, record.UserID, s.cfg.RewardPoints, rewardReason); err != nil {
		s.logger.Warn("failed to award feedback points",
			slog.String("user_id", record.UserID),
			slog.String("error", err.Error()))
	}
	if sub.Overall() == 0 {
		return
	}
	if err := s.sink.UpdateSatisfactionIndex(ctx, record.EventID, sub.SatisfactionIndex()); err != nil {
		s.logger.Warn("failed to update satisfaction index",
			slog.String("event_id", record.EventID),
			slog.String("error", err.Error()))
	}
}

func sortRequests(reqs []*feedback.FeedbackRequest) {
	sort.Slice(reqs, func(i, j int) bool {
		if reqs[i].PromptTime().Equal(reqs[j].PromptTime()) {
			return reqs[i].ID().String() < reqs[j].ID().String()
		}
		return reqs[i].PromptTime().Before(reqs[j].PromptTime())
	})
}
