package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
)

type CarService struct {
	carRepo models.CarRepo
	images  helpers.ImageStore
}

func NewCarService(carRepo models.CarRepo, images helpers.ImageStore) *CarService {
	return &CarService{
		carRepo: carRepo,
		images:  images,
	}
}

// CarQuery holds the raw catalog filters taken from the query string.
type CarQuery struct {
	Type     string `form:"type"`
	Brand    string `form:"brand"`
	FuelType string `form:"fuelType"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Seats    string `form:"seats"`
}

// Filter validates q and turns it into a repository filter.
func (q CarQuery) Filter() (models.CarFilter, error) {
	var f models.CarFilter
	if q.Type != "" {
		t, ok := models.ParseCarType(q.Type)
		if !ok {
			return f, badRequest("Invalid car type: " + q.Type)
		}
		f.Type = &t
	}
	if q.FuelType != "" {
		ft, ok := models.ParseFuelType(q.FuelType)
		if !ok {
			return f, badRequest("Invalid fuel type: " + q.FuelType)
		}
		f.FuelType = &ft
	}
	f.Brand = helpers.StringTrim(q.Brand)

	var err error
	if f.MinPrice, err = parseOptionalFloat("minPrice", q.MinPrice); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parseOptionalFloat("maxPrice", q.MaxPrice); err != nil {
		return f, err
	}
	if f.Seats, err = parseOptionalInt("seats", q.Seats); err != nil {
		return f, err
	}
	return f, nil
}

func (cs *CarService) ListCars(ctx context.Context, q CarQuery) ([]models.Car, error) {
	filter, err := q.Filter()
	if err != nil {
		return nil, err
	}
	return cs.carRepo.ListCars(ctx, filter)
}

func (cs *CarService) GetCar(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	car, err := cs.carRepo.GetCarByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, notFound("Car not found")
	}
	return car, nil
}

// UpdateCar applies the supplied fields. The car must exist before an image
// is uploaded for it.
func (cs *CarService) UpdateCar(ctx context.Context, id uuid.UUID, form models.UpdateCarForm, image *helpers.Upload) (*models.Car, error) {
	if _, err := cs.GetCar(ctx, id); err != nil {
		return nil, err
	}

	update := models.CarUpdate{
		Name:        trimmed(form.Name),
		Brand:       trimmed(form.Brand),
		Seats:       form.Seats,
		PricePerDay: form.PricePerDay,
	}
	if form.Type != nil {
		t, ok := models.ParseCarType(*form.Type)
		if !ok {
			return nil, badRequest("Invalid car type: " + *form.Type)
		}
		update.Type = &t
	}
	if form.FuelType != nil {
		ft, ok := models.ParseFuelType(*form.FuelType)
		if !ok {
			return nil, badRequest("Invalid fuel type: " + *form.FuelType)
		}
		update.FuelType = &ft
	}
	if image != nil {
		url, err := cs.images.Save(ctx, helpers.CarsFolder, image)
		if err != nil {
			return nil, fmt.Errorf("failed to store car image: %w", err)
		}
		update.ImageURL = &url
	}

	car, err := cs.carRepo.UpdateCar(ctx, id, update.Columns())
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, notFound("Car not found")
	}
	return car, nil
}

func (cs *CarService) DeleteCar(ctx context.Context, id uuid.UUID) error {
	if _, err := cs.GetCar(ctx, id); err != nil {
		return err
	}
	err := cs.carRepo.DeleteCar(ctx, id)
	switch {
	case errors.Is(err, models.ErrCarNotFound):
		return notFound("Car not found")
	case errors.Is(err, models.ErrCarInUse):
		return conflict("Car has existing bookings and cannot be deleted", err)
	case err != nil:
		return fmt.Errorf("failed to delete car: %w", err)
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := helpers.StringTrim(*s)
	return &v
}
