package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarType string

const (
	CarTypeSedan       CarType = "SEDAN"
	CarTypeSUV         CarType = "SUV"
	CarTypeHatchback   CarType = "HATCHBACK"
	CarTypeVan         CarType = "VAN"
	CarTypeTruck       CarType = "TRUCK"
	CarTypeCoupe       CarType = "COUPE"
	CarTypeConvertible CarType = "CONVERTIBLE"
)

var carTypes = map[CarType]struct{}{
	CarTypeSedan:       {},
	CarTypeSUV:         {},
	CarTypeHatchback:   {},
	CarTypeVan:         {},
	CarTypeTruck:       {},
	CarTypeCoupe:       {},
	CarTypeConvertible: {},
}

func (t CarType) Valid() bool {
	_, ok := carTypes[t]
	return ok
}

// ParseCarType upper-cases raw before checking it against the known types.
func ParseCarType(raw string) (CarType, bool) {
	t := CarType(strings.ToUpper(strings.TrimSpace(raw)))
	return t, t.Valid()
}

type FuelType string

const (
	FuelPetrol   FuelType = "PETROL"
	FuelDiesel   FuelType = "DIESEL"
	FuelElectric FuelType = "ELECTRIC"
	FuelHybrid   FuelType = "HYBRID"
)

func (f FuelType) Valid() bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid:
		return true
	}
	return false
}

func ParseFuelType(raw string) (FuelType, bool) {
	f := FuelType(strings.ToUpper(strings.TrimSpace(raw)))
	return f, f.Valid()
}

type Car struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Brand       string    `gorm:"size:100;not null;index" json:"brand"`
	Type        CarType   `gorm:"type:varchar(20);not null;index" json:"type"`
	FuelType    FuelType  `gorm:"type:varchar(20);not null" json:"fuelType"`
	Seats       int       `gorm:"not null" json:"seats"`
	PricePerDay float64   `gorm:"not null" json:"pricePerDay"`
	ImageURL    *string   `gorm:"column:image_url" json:"imageUrl"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CarFilter narrows the catalog. Nil or empty fields impose no constraint.
type CarFilter struct {
	Type     *CarType
	Brand    string
	FuelType *FuelType
	MinPrice *float64
	MaxPrice *float64
	Seats    *int
}

// CarUpdate carries the fields a partial update supplied.
type CarUpdate struct {
	Name        *string
	Brand       *string
	Type        *CarType
	FuelType    *FuelType
	Seats       *int
	PricePerDay *float64
	ImageURL    *string
}

// Columns returns the supplied fields keyed by column name.
func (u CarUpdate) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Brand != nil {
		cols["brand"] = *u.Brand
	}
	if u.Type != nil {
		cols["type"] = *u.Type
	}
	if u.FuelType != nil {
		cols["fuel_type"] = *u.FuelType
	}
	if u.Seats != nil {
		cols["seats"] = *u.Seats
	}
	if u.PricePerDay != nil {
		cols["price_per_day"] = *u.PricePerDay
	}
	if u.ImageURL != nil {
		cols["image_url"] = *u.ImageURL
	}
	return cols
}
