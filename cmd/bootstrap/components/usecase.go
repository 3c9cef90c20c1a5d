package components

import (
	"context"
	"log/slog"

	"nightlife-feedback/internal/handler/api"
	"nightlife-feedback/internal/infra/gateway"
	"nightlife-feedback/internal/infra/presence"
	"nightlife-feedback/internal/pkg/clock"
	"nightlife-feedback/internal/pkg/config"
	"nightlife-feedback/internal/usecase"
	"nightlife-feedback/internal/usecase/commands"
	"nightlife-feedback/internal/usecase/queries"
	"nightlife-feedback/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	clock.NewRealTimers,
	NewPresenceTracker,
	func(t *presence.Tracker) shared.FocusOracle { return t },
	func(t *presence.Tracker) api.PresenceRecorder { return t },
	fx.Annotate(
		func(cfg config.Config, logger *slog.Logger) *gateway.HTTPGateway {
			return gateway.NewHTTPGateway(cfg.Gateway, logger)
		},
		fx.As(new(shared.SubmissionGateway)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewFeedbackScheduler,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(s commands.FeedbackScheduler) queries.ActiveRequestSource { return s },
		queries.NewFeedbackRequestQueries,
		queries.NewHistoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewPresenceTracker sweeps stale heartbeats once per TTL while the app runs.
func NewPresenceTracker(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) *presence.Tracker {
	tracker := presence.NewTracker(cfg.Presence.TTL, clk, logger)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go tracker.Run(ctx, cfg.Presence.TTL)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return tracker
}

type schedulerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Timers    clock.Timers
	Store     shared.FeedbackStore
	History   shared.HistoryLog
	Oracle    shared.FocusOracle
	Presenter shared.PromptPresenter
	Gateway   shared.SubmissionGateway
	Sink      shared.GamificationSink
	Logger    *slog.Logger
}

// NewFeedbackScheduler re-arms persisted requests on start and cancels every
// timer on stop.
func NewFeedbackScheduler(p schedulerParams) (commands.FeedbackScheduler, error) {
	scheduler, err := commands.NewFeedbackScheduler(
		commands.SchedulerConfig{
			Policy:       p.Config.Scheduler.Policy(),
			RewardPoints: p.Config.Scheduler.RewardPoints,
		},
		p.Timers,
		p.Store,
		p.History,
		p.Oracle,
		p.Presenter,
		p.Gateway,
		p.Sink,
		p.Logger,
	)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		// A failed load aborts startup: saving an empty set would wipe the store.
		OnStart: func(ctx context.Context) error {
			_, err := scheduler.Rehydrate(ctx)
			return err
		},
		OnStop: func(_ context.Context) error {
			scheduler.Close()
			return nil
		},
	})
	return scheduler, nil
}
