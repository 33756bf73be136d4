package support

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"sevasetu/database"
	ticketRepo "sevasetu/database/repository/ticket"
	"sevasetu/models"
	"sevasetu/services/live"
	"sevasetu/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrInvalidStatus  = errors.New("invalid ticket status")
	ErrInvalidTicket  = errors.New("name, email and message are required")
)

var statusLabels = map[string]models.TicketStatus{
	"new":         models.TicketNew,
	"pending":     models.TicketNew,
	"in_progress": models.TicketInProgress,
	"in progress": models.TicketInProgress,
	"resolved":    models.TicketResolved,
	"escalated":   models.TicketEscalated,
}

func ParseTicketStatus(label string) (models.TicketStatus, error) {
	status, ok := statusLabels[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, label)
	}
	return status, nil
}

type CreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type SupportService interface {
	Create(ctx context.Context, req CreateRequest) (*models.SupportTicket, error)
	List(ctx context.Context) ([]models.SupportTicket, error)
	UpdateStatus(ctx context.Context, id, label string) error
	Summary(ctx context.Context) (*models.TicketSummary, error)
}

type DefaultSupportService struct {
	Repo   ticketRepo.TicketRepository
	Tasks  tasks.Dispatcher
	Events live.Publisher
	Logger *zap.Logger
}

func NewDefaultSupportService(repo ticketRepo.TicketRepository, dispatcher tasks.Dispatcher, events live.Publisher, logger *zap.Logger) *DefaultSupportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if events == nil {
		events = live.NopPublisher{}
	}
	return &DefaultSupportService{Repo: repo, Tasks: dispatcher, Events: events, Logger: logger}
}

// Create stores the contact message and queues the support notification.
// A queue failure is logged; the ticket is already saved.
func (s *DefaultSupportService) Create(ctx context.Context, req CreateRequest) (*models.SupportTicket, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return nil, ErrInvalidTicket
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidTicket)
	}

	t := &models.SupportTicket{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Status:    models.TicketNew,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	if s.Tasks != nil {
		if err := s.Tasks.SupportTicket(ctx, t); err != nil {
			s.Logger.Warn("Failed to queue support notification", zap.String("ticketId", t.ID), zap.Error(err))
		}
	}
	s.Events.Publish(live.EventTicketCreated, t)
	return t, nil
}

func (s *DefaultSupportService) List(ctx context.Context) ([]models.SupportTicket, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultSupportService) UpdateStatus(ctx context.Context, id, label string) error {
	status, err := ParseTicketStatus(label)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdateStatus(ctx, id, status, time.Now()); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrTicketNotFound
		}
		return err
	}
	s.Events.Publish(live.EventTicketStatusChanged, map[string]string{"id": id, "status": string(status)})
	return nil
}

// Summary counts new and in-progress tickets as open.
func (s *DefaultSupportService) Summary(ctx context.Context) (*models.TicketSummary, error) {
	tickets, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sum := &models.TicketSummary{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case models.TicketNew, models.TicketInProgress:
			sum.Open++
		case models.TicketResolved:
			sum.Resolved++
		}
	}
	return sum, nil
}
