package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/models"
)

type AdminService struct {
	userRepo    models.UserRepo
	bookingRepo models.BookingRepo
	events      models.BookingEventRepo
	logger      *slog.Logger
}

func NewAdminService(userRepo models.UserRepo, bookingRepo models.BookingRepo, events models.BookingEventRepo, logger *slog.Logger) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		events:      events,
		logger:      logger,
	}
}

// ListUsers pages through users, optionally restricted to one role.
func (as *AdminService) ListUsers(ctx context.Context, role string, page models.Page) ([]models.UserSummary, int64, error) {
	var filter *models.Role
	if role != "" {
		r := models.Role(upper(role))
		if !r.Valid() {
			return nil, 0, badRequest("Invalid role: " + role)
		}
		filter = &r
	}
	return as.userRepo.ListUsers(ctx, filter, page)
}

func (as *AdminService) ListBookings(ctx context.Context, status string, page models.Page) ([]models.BookingView, int64, error) {
	var filter *models.BookingStatus
	if status != "" {
		s, ok := models.ParseBookingStatus(status)
		if !ok {
			return nil, 0, badRequest("Invalid booking status: " + status)
		}
		filter = &s
	}
	bookings, total, err := as.bookingRepo.ListBookings(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	return models.NewBookingViews(bookings, true), total, nil
}

func (as *AdminService) ApproveBooking(ctx context.Context, adminID, bookingID uuid.UUID) (*models.BookingView, error) {
	booking, err := as.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("Booking not found")
	}
	if err := applyTransition(booking, models.StatusConfirmed, ActorAdmin); err != nil {
		return nil, err
	}

	from := booking.Status
	if err := moveBooking(ctx, as.bookingRepo, booking, models.StatusConfirmed); err != nil {
		return nil, err
	}
	recordEvent(ctx, as.events, as.logger, booking.ID, adminID, models.ActionApproved, from, models.StatusConfirmed)
	view := models.NewBookingView(*booking, true)
	return &view, nil
}

// BookingEvents returns the status history of a booking, oldest first.
func (as *AdminService) BookingEvents(ctx context.Context, bookingID uuid.UUID) ([]models.BookingEvent, error) {
	booking, err := as.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("Booking not found")
	}
	return as.events.ListBookingEvents(ctx, bookingID)
}
