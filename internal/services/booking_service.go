package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/models"
)

type BookingService struct {
	bookingRepo models.BookingRepo
	userRepo    models.UserRepo
	events      models.BookingEventRepo
	logger      *slog.Logger
	now         func() time.Time
}

func NewBookingService(bookingRepo models.BookingRepo, userRepo models.UserRepo, events models.BookingEventRepo, logger *slog.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		events:      events,
		logger:      logger,
		now:         time.Now,
	}
}

func (bs *BookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req models.CreateBookingRequest) (*models.BookingView, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, badRequest("End date must be after start date")
	}
	if req.StartDate.Before(bs.now()) {
		return nil, badRequest("Start date cannot be in the past")
	}
	user, err := bs.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	booking := &models.Booking{
		UserID:    userID,
		CarID:     req.ParsedCarID(),
		StartDate: req.StartDate.UTC(),
		EndDate:   req.EndDate.UTC(),
		Status:    models.StatusPending,
	}
	err = bs.bookingRepo.CreateBookingIfAvailable(ctx, booking)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		return nil, notFound("User not found")
	case errors.Is(err, models.ErrCarNotFound):
		return nil, notFound("Car not found")
	case errors.Is(err, models.ErrBookingOverlap):
		return nil, conflict("Car is not available for the selected dates", err)
	case err != nil:
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	recordEvent(ctx, bs.events, bs.logger, booking.ID, userID, models.ActionCreated, "", models.StatusPending)
	view := models.NewBookingView(*booking, false)
	return &view, nil
}

func (bs *BookingService) ListUserBookings(ctx context.Context, userID uuid.UUID, page models.Page) ([]models.BookingView, int64, error) {
	bookings, total, err := bs.bookingRepo.ListBookingsByUser(ctx, userID, page)
	if err != nil {
		return nil, 0, err
	}
	return models.NewBookingViews(bookings, false), total, nil
}

// GetBooking returns a booking to its owner or to an admin.
func (bs *BookingService) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.BookingView, error) {
	booking, err := bs.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("Booking not found")
	}
	if booking.UserID == userID {
		view := models.NewBookingView(*booking, false)
		return &view, nil
	}

	viewer, err := bs.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if viewer == nil || !viewer.IsAdmin() {
		return nil, forbidden("You do not have permission to view this booking")
	}
	view := models.NewBookingView(*booking, true)
	return &view, nil
}

// CancelBooking cancels the caller's own booking before it starts.
func (bs *BookingService) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.BookingView, error) {
	booking, err := bs.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("Booking not found")
	}
	if booking.UserID != userID {
		return nil, forbidden("You can only cancel your own bookings")
	}
	if err := applyTransition(booking, models.StatusCancelled, ActorOwner); err != nil {
		return nil, err
	}
	if bs.now().After(booking.StartDate) {
		return nil, badRequest("Cannot cancel a booking that has already started")
	}

	from := booking.Status
	if err := moveBooking(ctx, bs.bookingRepo, booking, models.StatusCancelled); err != nil {
		return nil, err
	}
	recordEvent(ctx, bs.events, bs.logger, booking.ID, userID, models.ActionCancelled, from, models.StatusCancelled)
	view := models.NewBookingView(*booking, false)
	return &view, nil
}

// moveBooking persists an allowed transition and updates b in place.
func moveBooking(ctx context.Context, repo models.BookingRepo, b *models.Booking, to models.BookingStatus) error {
	from := b.Status
	err := repo.UpdateBookingStatus(ctx, b.ID, from, to)
	if errors.Is(err, models.ErrStatusChanged) {
		return conflict("Booking was modified by another request, please retry", err)
	}
	if err != nil {
		return err
	}
	recordTransition(from, to)
	b.Status = to
	b.UpdatedAt = time.Now()
	return nil
}

// recordEvent appends to the activity log. Failures are logged only.
func recordEvent(ctx context.Context, events models.BookingEventRepo, logger *slog.Logger, bookingID, actorID uuid.UUID, action models.BookingAction, from, to models.BookingStatus) {
	err := events.RecordBookingEvent(ctx, &models.BookingEvent{
		BookingID:  bookingID.String(),
		ActorID:    actorID.String(),
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
	})
	if err != nil {
		logger.Warn("failed to record booking event",
			"booking_id", bookingID,
			"action", action,
			"error", err,
		)
	}
}
