package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCarsFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.car(t, "Corolla", models.CarTypeSedan, 50)
	f.car(t, "Fortuner", models.CarTypeSUV, 100)
	f.car(t, "Hilux", models.CarTypeTruck, 85)

	cars, err := f.cars.ListCars(ctx, CarQuery{})
	require.NoError(t, err)
	require.Len(t, cars, 3)
	assert.Equal(t, "Hilux", cars[0].Name, "newest first")

	cars, err = f.cars.ListCars(ctx, CarQuery{Type: "suv"})
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Fortuner", cars[0].Name)

	cars, err = f.cars.ListCars(ctx, CarQuery{Brand: "toy", MinPrice: "60", MaxPrice: "90"})
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Hilux", cars[0].Name)

	_, err = f.cars.ListCars(ctx, CarQuery{Type: "spaceship"})
	assertKind(t, err, KindValidation, "Invalid car type: spaceship")

	_, err = f.cars.ListCars(ctx, CarQuery{MinPrice: "cheap"})
	assertKind(t, err, KindValidation, "minPrice must be a non-negative number")

	for _, raw := range []string{"NaN", "Inf", "-Inf", "+inf"} {
		_, err = f.cars.ListCars(ctx, CarQuery{MaxPrice: raw})
		assertKind(t, err, KindValidation, "maxPrice must be a non-negative number")
	}

	_, err = f.cars.ListCars(ctx, CarQuery{Seats: "0"})
	assertKind(t, err, KindValidation, "seats must be a positive integer")
}

func TestGetCar(t *testing.T) {
	f := newFixture(t)
	c := f.car(t, "Corolla", models.CarTypeSedan, 50)

	got, err := f.cars.GetCar(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corolla", got.Name)

	_, err = f.cars.GetCar(context.Background(), uuid.New())
	assertKind(t, err, KindNotFound, "Car not found")
}

func TestUpdateCar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.car(t, "Corolla", models.CarTypeSedan, 50)

	price := 65.0
	fuel := "hybrid"
	updated, err := f.cars.UpdateCar(ctx, c.ID, models.UpdateCarForm{PricePerDay: &price, FuelType: &fuel},
		&helpers.Upload{Filename: "corolla.png", MIME: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, 65.0, updated.PricePerDay)
	assert.Equal(t, models.FuelHybrid, updated.FuelType)
	assert.Equal(t, "Corolla", updated.Name)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, []string{helpers.CarsFolder}, f.store.folders)

	bad := "rocket"
	_, err = f.cars.UpdateCar(ctx, c.ID, models.UpdateCarForm{Type: &bad}, nil)
	assertKind(t, err, KindValidation, "Invalid car type: rocket")

	_, err = f.cars.UpdateCar(ctx, uuid.New(), models.UpdateCarForm{PricePerDay: &price},
		&helpers.Upload{Filename: "x.png", MIME: "image/png"})
	assertKind(t, err, KindNotFound, "Car not found")
	assert.Len(t, f.store.folders, 1, "no upload for a missing car")
}

func TestDeleteCar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "john@example.com", models.RoleUser)
	free := f.car(t, "Swift", models.CarTypeHatchback, 35)
	booked := f.car(t, "Civic", models.CarTypeSedan, 55)

	_, err := f.bookings.CreateBooking(ctx, u.ID, bookingRequest(booked.ID, 2, 4))
	require.NoError(t, err)

	require.NoError(t, f.cars.DeleteCar(ctx, free.ID))
	assertKind(t, f.cars.DeleteCar(ctx, free.ID), KindNotFound, "Car not found")
	assertKind(t, f.cars.DeleteCar(ctx, booked.ID), KindConflict, "")
}
