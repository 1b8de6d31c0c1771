package models

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Password string `json:"password" binding:"required,min=8,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=50"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=150"`
	Phone    *string `json:"phone" binding:"omitempty,min=7,max=20,phone"`
	Password *string `json:"password" binding:"omitempty,min=8,max=50"`
}

type CreateBookingRequest struct {
	CarID     string    `json:"carId" binding:"required,uuid"`
	StartDate time.Time `json:"startDate" binding:"required,notpast"`
	EndDate   time.Time `json:"endDate" binding:"required,gtfield=StartDate"`
}

// ParsedCarID parses the already validated car id.
func (r *CreateBookingRequest) ParsedCarID() uuid.UUID {
	id, _ := uuid.Parse(r.CarID)
	return id
}

// UpdateCarForm is the multipart form of a car update. Enum values are
// normalised by the service.
type UpdateCarForm struct {
	Name        *string  `form:"name" binding:"omitempty,min=1,max=100"`
	Brand       *string  `form:"brand" binding:"omitempty,min=1,max=100"`
	Type        *string  `form:"type"`
	FuelType    *string  `form:"fuelType"`
	Seats       *int     `form:"seats" binding:"omitempty,min=1,max=50"`
	PricePerDay *float64 `form:"pricePerDay" binding:"omitempty,gt=0"`
}
