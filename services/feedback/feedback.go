package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sevasetu/database"
	bookingRepo "sevasetu/database/repository/booking"
	feedbackRepo "sevasetu/database/repository/feedback"
	"sevasetu/models"
	"sevasetu/services/booking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrMissingBookingID = errors.New("bookingId is required")
	ErrInvalidTag       = errors.New("unknown feedback tag")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNoRecentBooking  = errors.New("no recent booking to review")
)

const (
	defaultName    = "Anonymous"
	defaultComment = "No comment provided"
	defaultPlace   = "Unknown"
	guestUserID    = "guest"
)

type SubmitRequest struct {
	BookingID string   `json:"bookingId"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Place     string   `json:"place"`
	Rating    int      `json:"rating"`
	Comment   string   `json:"comment"`
	Tags      []string `json:"tags"`
}

type FeedbackService interface {
	Submit(ctx context.Context, identity models.Identity, req SubmitRequest) (*models.Feedback, error)
	// Prefill builds the feedback form for the owner's most recent booking.
	Prefill(ctx context.Context, owner string) (*models.FeedbackDraft, error)
	ListForUser(ctx context.Context, identity models.Identity) ([]models.Feedback, error)
}

type DefaultFeedbackService struct {
	Repo        feedbackRepo.FeedbackRepository
	Bookings    bookingRepo.BookingRepository
	LastBooking booking.LastBookingStore
	Logger      *zap.Logger
}

func NewDefaultFeedbackService(repo feedbackRepo.FeedbackRepository, bookings bookingRepo.BookingRepository, last booking.LastBookingStore, logger *zap.Logger) *DefaultFeedbackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultFeedbackService{Repo: repo, Bookings: bookings, LastBooking: last, Logger: logger}
}

func validTag(tag string) bool {
	for _, t := range models.FeedbackTags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s *DefaultFeedbackService) Submit(ctx context.Context, identity models.Identity, req SubmitRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	req.BookingID = strings.TrimSpace(req.BookingID)
	if req.BookingID == "" {
		return nil, ErrMissingBookingID
	}
	for _, tag := range req.Tags {
		if !validTag(tag) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
		}
	}

	b, err := s.Bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	// Contact details are copied from the booking only for its own customer.
	var ownerName, ownerEmail string
	if identity.UID != "" && b.UserID == identity.UID {
		ownerName, ownerEmail = b.Name, b.Email
	}

	f := &models.Feedback{
		ID:          uuid.New().String(),
		BookingID:   b.ID,
		UserID:      pick(identity.UID, guestUserID),
		Name:        pick(strings.TrimSpace(req.Name), identity.DisplayName, ownerName, defaultName),
		Email:       pick(strings.TrimSpace(req.Email), identity.Email, ownerEmail),
		Category:    b.PrimaryCategory(),
		ServiceName: b.PrimaryService(),
		Place:       pick(strings.TrimSpace(req.Place), b.Address.District, defaultPlace),
		Rating:      req.Rating,
		Comment:     pick(strings.TrimSpace(req.Comment), defaultComment),
		Tags:        req.Tags,
		CreatedAt:   time.Now(),
	}
	if f.Tags == nil {
		f.Tags = []string{}
	}
	if err := s.Repo.Insert(ctx, f); err != nil {
		return nil, err
	}
	s.Logger.Info("Feedback submitted", zap.String("bookingId", f.BookingID), zap.Int("rating", f.Rating))
	return f, nil
}

func (s *DefaultFeedbackService) Prefill(ctx context.Context, owner string) (*models.FeedbackDraft, error) {
	if s.LastBooking == nil {
		return nil, ErrNoRecentBooking
	}
	b, err := s.LastBooking.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNoRecentBooking
	}
	return &models.FeedbackDraft{
		BookingID:   b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Category:    b.PrimaryCategory(),
		ServiceName: b.PrimaryService(),
		Place:       pick(b.Address.District, defaultPlace),
	}, nil
}

// ListForUser returns the caller's feedback. Guests share one userId, so they
// get an empty list.
func (s *DefaultFeedbackService) ListForUser(ctx context.Context, identity models.Identity) ([]models.Feedback, error) {
	if identity.UID == "" {
		return []models.Feedback{}, nil
	}
	return s.Repo.ListByUser(ctx, identity.UID)
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
