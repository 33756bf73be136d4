package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sevasetu/config"
	"sevasetu/models"
	"sevasetu/services/notification"
	"sevasetu/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection shared by the API's client and the worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewNotificationMux routes notification tasks to their handlers.
func NewNotificationMux(notifSvc notification.NotificationService, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingAssigned, handleBookingAssigned(notifSvc, logger))
	mux.HandleFunc(tasks.TypeSupportTicket, handleSupportTicket(notifSvc, logger))
	return mux
}

// InitNotificationWorker runs the async worker in background. The returned
// server is shut down by the caller.
func InitNotificationWorker(notifSvc notification.NotificationService, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				tasks.NotificationQueue: 1,
			},
			Logger: logger.Sugar(),
		},
	)
	mux := NewNotificationMux(notifSvc, logger)

	go func() {
		logger.Info("Starting notification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Notification worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("Notification worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleBookingAssigned(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingAssignedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid booking notification payload", zap.Error(err))
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		if p.ProviderID == "" {
			logger.Warn("Booking notification without provider", zap.String("bookingId", p.BookingID))
			return nil
		}
		if err := notifSvc.NotifyProviderAssigned(ctx, p); err != nil {
			logger.Error("Failed to notify provider", zap.String("providerId", p.ProviderID), zap.Error(err))
			return err
		}
		return nil
	}
}

func handleSupportTicket(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.SupportTicketPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid support notification payload", zap.Error(err))
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		if err := notifSvc.NotifySupportTicket(ctx, p); err != nil {
			logger.Error("Failed to notify support desk", zap.String("ticketId", p.TicketID), zap.Error(err))
			return err
		}
		return nil
	}
}
