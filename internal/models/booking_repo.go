package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepo interface {
	// CreateBookingIfAvailable inserts b when no active booking of the same
	// car intersects its dates. It fills b.Car on success and returns
	// ErrUserNotFound when b.UserID does not resolve.
	CreateBookingIfAvailable(ctx context.Context, b *Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListBookingsByUser(ctx context.Context, userID uuid.UUID, page Page) ([]Booking, int64, error)
	ListBookings(ctx context.Context, status *BookingStatus, page Page) ([]Booking, int64, error)
	// UpdateBookingStatus moves a booking from one status to another and
	// fails with ErrStatusChanged when the stored status is no longer from.
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to BookingStatus) error
}

var activeStatuses = []BookingStatus{StatusPending, StatusConfirmed}

func (pr *PostgresRepo) CreateBookingIfAvailable(ctx context.Context, b *Booking) error {
	err := pr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var car Car
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&car, "id = ?", b.CarID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCarNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock car: %w", err)
		}

		var clashes int64
		err = tx.Model(&Booking{}).
			Where("car_id = ? AND status IN ?", b.CarID, activeStatuses).
			Where("start_date <= ? AND end_date >= ?", b.EndDate, b.StartDate).
			Count(&clashes).Error
		if err != nil {
			return fmt.Errorf("failed to check availability: %w", err)
		}
		if clashes > 0 {
			return ErrBookingOverlap
		}

		// The car row is locked, so a foreign key failure can only be the user.
		if err := tx.Omit("Car", "User").Create(b).Error; err != nil {
			if isForeignKeyViolation(err) {
				return ErrUserNotFound
			}
			return translatePgError(err)
		}
		b.Car = &car
		return nil
	})
	return err
}

// GetBookingByID returns nil, nil when the booking does not exist.
func (pr *PostgresRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var b Booking
	err := pr.db.WithContext(ctx).
		Preload("Car").
		Preload("User").
		First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

func (pr *PostgresRepo) ListBookingsByUser(ctx context.Context, userID uuid.UUID, page Page) ([]Booking, int64, error) {
	q := pr.db.WithContext(ctx).Model(&Booking{}).Where("user_id = ?", userID)
	return pr.pageBookings(q, page, "Car")
}

func (pr *PostgresRepo) ListBookings(ctx context.Context, status *BookingStatus, page Page) ([]Booking, int64, error) {
	q := pr.db.WithContext(ctx).Model(&Booking{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	return pr.pageBookings(q, page, "Car", "User")
}

func (pr *PostgresRepo) pageBookings(q *gorm.DB, page Page, preloads ...string) ([]Booking, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	list := q.Session(&gorm.Session{})
	for _, p := range preloads {
		list = list.Preload(p)
	}
	bookings := []Booking{}
	err := list.Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, total, nil
}

func (pr *PostgresRepo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to BookingStatus) error {
	res := pr.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", translatePgError(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}
