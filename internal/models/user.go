package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string    `gorm:"size:255;uniqueIndex:idx_users_email;not null" json:"email"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Name       string    `gorm:"size:150;not null" json:"name"`
	Phone      *string   `gorm:"size:20" json:"phone"`
	Role       Role      `gorm:"type:varchar(10);not null;default:'USER'" json:"role"`
	LicenseURL *string   `gorm:"column:license_url" json:"licenseUrl"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Account is the short form returned by the auth endpoints.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) Account() Account {
	return Account{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserSummary is a user row plus the number of bookings it owns.
type UserSummary struct {
	User
	BookingCount int64 `json:"bookingCount"`
}

// BookingOwner is the subset of a user shown next to a booking.
type BookingOwner struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone *string   `json:"phone"`
}
