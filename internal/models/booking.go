package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Active reports whether a booking in this status still holds the car.
func (s BookingStatus) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

func ParseBookingStatus(raw string) (BookingStatus, bool) {
	s := BookingStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.Valid()
}

type Booking struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"userId"`
	CarID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"carId"`
	StartDate time.Time     `gorm:"not null" json:"startDate"`
	EndDate   time.Time     `gorm:"not null" json:"endDate"`
	Status    BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt time.Time     `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`

	Car  *Car  `gorm:"foreignKey:CarID;constraint:OnDelete:RESTRICT" json:"car,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// Overlaps reports whether the inclusive intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one instant.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !bStart.After(aEnd) && !bEnd.Before(aStart)
}

// RentalDays is the number of started 24h periods between start and end.
func RentalDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	days := d / (24 * time.Hour)
	if d%(24*time.Hour) != 0 {
		days++
	}
	return int(days)
}

func TotalPrice(days int, pricePerDay float64) float64 {
	return float64(days) * pricePerDay
}

// BookingView is a booking as returned to clients, with the derived price
// fields and, for admin listings, the owner summary.
type BookingView struct {
	Booking
	TotalDays  int           `json:"totalDays"`
	TotalPrice float64       `json:"totalPrice"`
	Owner      *BookingOwner `json:"user,omitempty"`
}

// NewBookingView derives the price from the loaded car. withOwner attaches
// the user summary when the user relation was preloaded.
func NewBookingView(b Booking, withOwner bool) BookingView {
	v := BookingView{
		Booking:   b,
		TotalDays: RentalDays(b.StartDate, b.EndDate),
	}
	if b.Car != nil {
		v.TotalPrice = TotalPrice(v.TotalDays, b.Car.PricePerDay)
	}
	if withOwner && b.User != nil {
		v.Owner = &BookingOwner{
			ID:    b.User.ID,
			Name:  b.User.Name,
			Email: b.User.Email,
			Phone: b.User.Phone,
		}
	}
	return v
}

func NewBookingViews(bookings []Booking, withOwner bool) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, NewBookingView(b, withOwner))
	}
	return views
}
