package cron

import (
	"context"
	"fmt"
	"time"

	"apna/config"
	"apna/services/tasks"
	"apna/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt returns the asynq connection for the reminder queue.
func RedisOpt(cfg config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
}

// InitReminderWorker runs the async worker in background. The returned server
// must be shut down by the caller.
func InitReminderWorker(ctx context.Context, cfg config.Config, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(cfg),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, handleReminderTask(logger))

	go monitorRedisConnection(ctx, cfg, logger)

	// Start async worker with retry logic
	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("Reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Reminder worker gave up; reminders will not be delivered")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempts*2) * time.Second):
			}
		}
	}()
	return srv
}

func handleReminderTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReminderPayload(task)
		if err != nil {
			logger.Warn("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("decode reminder: %w: %w", err, asynq.SkipRetry)
		}

		logger.Info("Booking reminder",
			zap.String("bookingId", p.BookingID),
			zap.String("providerId", p.ProviderID),
			zap.String("provider", p.ProviderName),
			zap.String("service", p.Service),
			zap.String("date", p.Date),
			zap.String("time", p.Time),
			zap.String("fireDate", p.FireDate))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context, cfg config.Config, logger *zap.Logger) {
	client, err := utils.NewRedisClient(cfg, cfg.RedisQueueDB)
	if err != nil {
		logger.Warn("Reminder queue Redis unreachable", zap.Error(err))
		return
	}
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Reminder queue Redis connection lost", zap.Error(err))
			}
		}
	}
}
