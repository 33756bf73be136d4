package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"sevasetu/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeBookingAssigned = "booking:assigned"
	TypeSupportTicket   = "support:ticket"

	// NotificationQueue is the asynq queue drained by the notification worker.
	NotificationQueue = "notifications"
)

func NewBookingAssignedTask(payload models.BookingAssignedPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingAssigned, b, asynq.Queue(NotificationQueue), asynq.MaxRetry(5)), nil
}

func NewSupportTicketTask(payload models.SupportTicketPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSupportTicket, b, asynq.Queue(NotificationQueue), asynq.MaxRetry(10)), nil
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Dispatcher is the write side of the notification queue.
type Dispatcher interface {
	BookingAssigned(ctx context.Context, b *models.Booking) error
	SupportTicket(ctx context.Context, t *models.SupportTicket) error
}

type AsynqDispatcher struct {
	Client Enqueuer
	Logger *zap.Logger
}

func NewAsynqDispatcher(client Enqueuer, logger *zap.Logger) *AsynqDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AsynqDispatcher{Client: client, Logger: logger}
}

func (d *AsynqDispatcher) BookingAssigned(ctx context.Context, b *models.Booking) error {
	if b.AssignedProvider == nil {
		return fmt.Errorf("booking %s has no assigned provider", b.ID)
	}
	task, err := NewBookingAssignedTask(models.BookingAssignedPayload{
		BookingID:    b.ID,
		RequestID:    b.RequestID,
		ProviderID:   b.AssignedProvider.ID,
		ProviderName: b.AssignedProvider.Name,
		Category:     b.PrimaryCategory(),
		District:     b.Address.District,
		Date:         b.Date,
		TimeSlot:     b.TimeSlot,
	})
	if err != nil {
		return fmt.Errorf("build %s task: %w", TypeBookingAssigned, err)
	}
	return d.enqueue(ctx, task)
}

func (d *AsynqDispatcher) SupportTicket(ctx context.Context, t *models.SupportTicket) error {
	task, err := NewSupportTicketTask(models.SupportTicketPayload{
		TicketID: t.ID,
		Name:     t.Name,
		Email:    t.Email,
		Message:  t.Message,
	})
	if err != nil {
		return fmt.Errorf("build %s task: %w", TypeSupportTicket, err)
	}
	return d.enqueue(ctx, task)
}

func (d *AsynqDispatcher) enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := d.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}
	d.Logger.Debug("Task enqueued", zap.String("type", task.Type()), zap.String("id", info.ID), zap.String("queue", info.Queue))
	return nil
}
