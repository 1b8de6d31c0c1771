package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/joshua-takyi/carrental/internal/models/memrepo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	folders []string
}

func (s *stubStore) Save(ctx context.Context, folder string, up *helpers.Upload) (string, error) {
	s.folders = append(s.folders, folder)
	return "https://cdn.test/" + folder + "/" + up.Filename, nil
}

type fixture struct {
	repo     *memrepo.Repo
	store    *stubStore
	auth     *AuthService
	users    *UserService
	cars     *CarService
	bookings *BookingService
	admin    *AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := memrepo.New()
	store := &stubStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := helpers.NewTokenManager("test-secret", 0)
	return &fixture{
		repo:     repo,
		store:    store,
		auth:     NewAuthService(repo, tokens, 4),
		users:    NewUserService(repo, store, 4),
		cars:     NewCarService(repo, store),
		bookings: NewBookingService(repo, repo, repo, logger),
		admin:    NewAdminService(repo, repo, repo, logger),
	}
}

func (f *fixture) user(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := helpers.HashPassword("password123", 4)
	require.NoError(t, err)
	u := &models.User{Email: email, Name: "Test User", Password: hash, Role: role}
	require.NoError(t, f.repo.CreateUser(context.Background(), u))
	return u
}

func (f *fixture) car(t *testing.T, name string, typ models.CarType, price float64) *models.Car {
	t.Helper()
	c := &models.Car{
		Name:        name,
		Brand:       "Toyota",
		Type:        typ,
		FuelType:    models.FuelPetrol,
		Seats:       5,
		PricePerDay: price,
	}
	require.NoError(t, f.repo.CreateCar(context.Background(), c))
	return c
}

func assertKind(t *testing.T, err error, kind ErrorKind, msg string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := AsAppError(err)
	require.True(t, ok, "expected *AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	if msg != "" {
		assert.Equal(t, msg, appErr.Message)
	}
}

var baseTime = time.Now().Truncate(time.Hour).Add(time.Hour)

func daysFromNow(n int) time.Time {
	return baseTime.Add(time.Duration(n) * 24 * time.Hour)
}

func bookingRequest(carID uuid.UUID, from, to int) models.CreateBookingRequest {
	return models.CreateBookingRequest{
		CarID:     carID.String(),
		StartDate: daysFromNow(from),
		EndDate:   daysFromNow(to),
	}
}
