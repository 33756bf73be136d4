package notification

import (
	"context"
	"fmt"

	"sevasetu/models"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Topics the admin and provider apps subscribe to.
const SupportTopic = "support"

func ProviderTopic(providerID string) string {
	return "provider_" + providerID
}

// Messenger is satisfied by *messaging.Client.
type Messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	NotifyProviderAssigned(ctx context.Context, p models.BookingAssignedPayload) error
	NotifySupportTicket(ctx context.Context, p models.SupportTicketPayload) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	messenger Messenger
	logger    *zap.Logger
}

func NewDefaultNotificationService(messenger Messenger, logger *zap.Logger) (*DefaultNotificationService, error) {
	if messenger == nil {
		return nil, fmt.Errorf("notification service initialization error: messenger is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultNotificationService{messenger: messenger, logger: logger}, nil
}

// NotifyProviderAssigned pushes the new job to the provider's topic.
func (s *DefaultNotificationService) NotifyProviderAssigned(ctx context.Context, p models.BookingAssignedPayload) error {
	msg := &messaging.Message{
		Topic: ProviderTopic(p.ProviderID),
		Notification: &messaging.Notification{
			Title: "New booking assigned",
			Body:  fmt.Sprintf("%s in %s on %s (%s)", p.Category, p.District, p.Date, p.TimeSlot),
		},
		Data: map[string]string{
			"role":      "provider",
			"bookingId": p.BookingID,
			"requestId": p.RequestID,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
	return s.send(ctx, msg)
}

// NotifySupportTicket alerts the support desk about a new contact message.
func (s *DefaultNotificationService) NotifySupportTicket(ctx context.Context, p models.SupportTicketPayload) error {
	msg := &messaging.Message{
		Topic: SupportTopic,
		Notification: &messaging.Notification{
			Title: "New support ticket from " + p.Name,
			Body:  truncate(p.Message, 120),
		},
		Data: map[string]string{
			"role":     "admin",
			"ticketId": p.TicketID,
			"email":    p.Email,
		},
	}
	return s.send(ctx, msg)
}

func (s *DefaultNotificationService) send(ctx context.Context, msg *messaging.Message) error {
	id, err := s.messenger.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send FCM message to %s: %w", msg.Topic, err)
	}
	s.logger.Info("Push sent", zap.String("topic", msg.Topic), zap.String("messageId", id))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
