package components

import (
	"context"
	"log/slog"

	"nightlife-feedback/internal/infra/messaging"
	"nightlife-feedback/internal/pkg/config"
	"nightlife-feedback/internal/usecase/commands"
	"nightlife-feedback/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
		fx.Annotate(
			messaging.NewGamificationPublisher,
			fx.As(new(shared.GamificationSink)),
		),
		fx.Annotate(
			messaging.NewPromptPublisher,
			fx.As(new(shared.PromptPresenter)),
		),
	),
	fx.Invoke(StartAttendanceConsumer),
)

// NewEventPublisher falls back to logging when no broker is configured.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (messaging.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Warn("AMQP_URL is empty, gamification and prompt events will only be logged")
		return messaging.NewLogPublisher(logger), nil
	}

	pub, err := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pub.Close()
			return nil
		},
	})
	return pub, nil
}

// StartAttendanceConsumer schedules a prompt for every attendance confirmation
// on the broker. It is a no-op without AMQP_URL.
func StartAttendanceConsumer(lc fx.Lifecycle, cfg config.Config, scheduler commands.FeedbackScheduler, logger *slog.Logger) error {
	if cfg.AMQP.URL == "" {
		return nil
	}

	consumer, err := messaging.NewAttendanceConsumer(
		cfg.AMQP.URL,
		cfg.AMQP.Exchange,
		cfg.AMQP.AttendanceQueue,
		cfg.AMQP.AttendanceKey,
		scheduler,
		logger,
	)
	if err != nil {
		return err
	}

	// The delivery loop outlives the start hook's context.
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return consumer.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			cancel()
			consumer.Close()
			return nil
		},
	})
	return nil
}
