package notification

import (
	"context"
	"fmt"
	"time"

	"apna/models"
	"apna/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer is the part of *asynq.Client used to schedule reminders.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier schedules a reminder task for every new booking.
type QueueNotifier struct {
	Queue  Enqueuer
	Lead   time.Duration
	Now    func() time.Time
	Logger *zap.Logger
}

func NewQueueNotifier(queue Enqueuer, lead time.Duration, logger *zap.Logger) *QueueNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueueNotifier{Queue: queue, Lead: lead, Now: time.Now, Logger: logger}
}

func (n *QueueNotifier) BookingCreated(ctx context.Context, b models.Booking) error {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	fireAt := tasks.ReminderFireTime(b.Date, b.Time, n.Lead, now())

	payload := models.ReminderPayload{
		BookingID:    b.ID,
		ProviderID:   b.ProviderID,
		ProviderName: b.ProviderName,
		Service:      b.Service,
		Date:         b.Date,
		Time:         b.Time,
		FireDate:     fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewBookingReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("BookingCreated: build reminder for %s: %w", b.ID, err)
	}
	info, err := n.Queue.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("BookingCreated: enqueue reminder for %s: %w", b.ID, err)
	}
	n.Logger.Info("Booking reminder scheduled",
		zap.String("bookingId", b.ID), zap.String("taskId", info.ID), zap.Time("fireAt", fireAt))
	return nil
}

// LogNotifier only logs. Used when reminders are disabled.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) BookingCreated(_ context.Context, b models.Booking) error {
	logger := n.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Info("Booking created",
		zap.String("bookingId", b.ID),
		zap.String("providerId", b.ProviderID),
		zap.String("date", b.Date),
		zap.String("time", b.Time),
		zap.Float64("amount", b.Amount))
	return nil
}
