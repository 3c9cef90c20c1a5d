package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

type AttendanceScheduler interface {
	Schedule(ctx context.Context, in feedback.ScheduleInput) (*feedback.FeedbackRequest, error)
}

// AttendanceConsumer turns booking.attended messages into feedback requests.
type AttendanceConsumer struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queue     string
	scheduler AttendanceScheduler
	logger    *slog.Logger
	wg        sync.WaitGroup
}

func NewAttendanceConsumer(url, exchange, queue, routingKey string, scheduler AttendanceScheduler, logger *slog.Logger) (*AttendanceConsumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	if err := ch.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue bind: %w", err)
	}

	return &AttendanceConsumer{
		conn:      conn,
		channel:   ch,
		queue:     q.Name,
		scheduler: scheduler,
		logger:    logger.With(slog.String("component", "attendance_consumer")),
	}, nil
}

func (c *AttendanceConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq consume: %w", err)
	}

	c.logger.Info("consuming attendance confirmations", slog.String("queue", c.queue))
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for msg := range msgs {
			HandleAttendance(ctx, c.scheduler, c.logger, msg)
		}
		c.logger.Info("attendance channel closed, stopping consumer")
	}()
	return nil
}

func (c *AttendanceConsumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	c.wg.Wait()
}

// HandleAttendance acks scheduled and malformed messages and requeues the rest.
func HandleAttendance(ctx context.Context, scheduler AttendanceScheduler, logger *slog.Logger, msg amqp.Delivery) {
	var evt AttendanceConfirmed
	if err := json.Unmarshal(msg.Body, &evt); err != nil {
		logger.Warn("dropping unreadable attendance message", slog.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}

	req, err := scheduler.Schedule(ctx, feedback.ScheduleInput{
		EventID:    evt.EventID,
		EventTitle: evt.EventTitle,
		EventDate:  evt.EventDate,
		UserID:     evt.UserID,
	})
	if err != nil {
		if errs.Is(err, errs.ErrValidation) {
			logger.Warn("dropping invalid attendance message",
				slog.String("event_id", evt.EventID),
				slog.String("user_id", evt.UserID),
				slog.String("error", err.Error()))
			_ = msg.Nack(false, false)
			return
		}
		logger.Error("failed to schedule feedback request", slog.String("error", err.Error()))
		_ = msg.Nack(false, true)
		return
	}

	logger.Info("attendance confirmed",
		slog.String("request_id", req.ID().String()),
		slog.String("event_id", evt.EventID))
	_ = msg.Ack(false)
}
