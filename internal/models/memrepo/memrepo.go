package memrepo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/models"
)

// Repo is an in-process implementation of every repository interface in
// models. It honours the same availability and status rules as the Postgres
// store and backs the service, middleware and router tests.
type Repo struct {
	mu       sync.Mutex
	users    []*models.User
	cars     []*models.Car
	bookings []*models.Booking
	events   []models.BookingEvent
}

var (
	_ models.UserRepo         = (*Repo)(nil)
	_ models.CarRepo          = (*Repo)(nil)
	_ models.BookingRepo      = (*Repo)(nil)
	_ models.BookingEventRepo = (*Repo)(nil)
)

func New() *Repo {
	return &Repo{}
}

func (m *Repo) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.ErrDuplicateEmail
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	cp := *user
	m.users = append(m.users, &cp)
	return nil
}

func (m *Repo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Repo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u := m.user(id); u != nil {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *Repo) user(id uuid.UUID) *models.User {
	for _, u := range m.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (m *Repo) UpdateUser(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.user(id)
	if u == nil {
		return nil, nil
	}
	for col, v := range fields {
		switch col {
		case "name":
			u.Name = v.(string)
		case "phone":
			s := v.(string)
			u.Phone = &s
		case "password":
			u.Password = v.(string)
		case "license_url":
			s := v.(string)
			u.LicenseURL = &s
		case "role":
			u.Role = v.(models.Role)
		}
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (m *Repo) ListUsers(ctx context.Context, role *models.Role, page models.Page) ([]models.UserSummary, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := []models.UserSummary{}
	for i := len(m.users) - 1; i >= 0; i-- {
		u := m.users[i]
		if role != nil && u.Role != *role {
			continue
		}
		var count int64
		for _, b := range m.bookings {
			if b.UserID == u.ID {
				count++
			}
		}
		matched = append(matched, models.UserSummary{User: *u, BookingCount: count})
	}
	return pageOf(matched, page), int64(len(matched)), nil
}

func (m *Repo) CreateCar(ctx context.Context, car *models.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	now := time.Now()
	car.CreatedAt, car.UpdatedAt = now, now
	cp := *car
	m.cars = append(m.cars, &cp)
	return nil
}

func (m *Repo) ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cars := []models.Car{}
	brand := strings.ToLower(strings.TrimSpace(filter.Brand))
	for i := len(m.cars) - 1; i >= 0; i-- {
		c := m.cars[i]
		switch {
		case filter.Type != nil && c.Type != *filter.Type:
		case brand != "" && !strings.Contains(strings.ToLower(c.Brand), brand):
		case filter.FuelType != nil && c.FuelType != *filter.FuelType:
		case filter.MinPrice != nil && c.PricePerDay < *filter.MinPrice:
		case filter.MaxPrice != nil && c.PricePerDay > *filter.MaxPrice:
		case filter.Seats != nil && c.Seats != *filter.Seats:
		default:
			cars = append(cars, *c)
		}
	}
	return cars, nil
}

func (m *Repo) GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c := m.car(id); c != nil {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *Repo) car(id uuid.UUID) *models.Car {
	for _, c := range m.cars {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (m *Repo) UpdateCar(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.car(id)
	if c == nil {
		return nil, nil
	}
	for col, v := range fields {
		switch col {
		case "name":
			c.Name = v.(string)
		case "brand":
			c.Brand = v.(string)
		case "type":
			c.Type = v.(models.CarType)
		case "fuel_type":
			c.FuelType = v.(models.FuelType)
		case "seats":
			c.Seats = v.(int)
		case "price_per_day":
			c.PricePerDay = v.(float64)
		case "image_url":
			s := v.(string)
			c.ImageURL = &s
		}
	}
	c.UpdatedAt = time.Now()
	cp := *c
	return &cp, nil
}

func (m *Repo) DeleteCar(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.CarID == id {
			return models.ErrCarInUse
		}
	}
	for i, c := range m.cars {
		if c.ID == id {
			m.cars = append(m.cars[:i], m.cars[i+1:]...)
			return nil
		}
	}
	return models.ErrCarNotFound
}

func (m *Repo) CreateBookingIfAvailable(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.car(b.CarID)
	if c == nil {
		return models.ErrCarNotFound
	}
	if m.user(b.UserID) == nil {
		return models.ErrUserNotFound
	}
	for _, existing := range m.bookings {
		if existing.CarID == b.CarID && existing.Status.Active() &&
			models.Overlaps(b.StartDate, b.EndDate, existing.StartDate, existing.EndDate) {
			return models.ErrBookingOverlap
		}
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = models.StatusPending
	}
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	stored := *b
	stored.Car, stored.User = nil, nil
	m.bookings = append(m.bookings, &stored)

	car := *c
	b.Car = &car
	return nil
}

func (m *Repo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			loaded := m.load(b, true)
			return &loaded, nil
		}
	}
	return nil, nil
}

// load copies b with its relations attached.
func (m *Repo) load(b *models.Booking, withUser bool) models.Booking {
	cp := *b
	if c := m.car(b.CarID); c != nil {
		car := *c
		cp.Car = &car
	}
	if withUser {
		if u := m.user(b.UserID); u != nil {
			user := *u
			cp.User = &user
		}
	}
	return cp
}

func (m *Repo) ListBookingsByUser(ctx context.Context, userID uuid.UUID, page models.Page) ([]models.Booking, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := []models.Booking{}
	for i := len(m.bookings) - 1; i >= 0; i-- {
		if m.bookings[i].UserID == userID {
			matched = append(matched, m.load(m.bookings[i], false))
		}
	}
	return pageOf(matched, page), int64(len(matched)), nil
}

func (m *Repo) ListBookings(ctx context.Context, status *models.BookingStatus, page models.Page) ([]models.Booking, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := []models.Booking{}
	for i := len(m.bookings) - 1; i >= 0; i-- {
		if status == nil || m.bookings[i].Status == *status {
			matched = append(matched, m.load(m.bookings[i], true))
		}
	}
	return pageOf(matched, page), int64(len(matched)), nil
}

func (m *Repo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to models.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id && b.Status == from {
			b.Status = to
			b.UpdatedAt = time.Now()
			return nil
		}
	}
	return models.ErrStatusChanged
}

func (m *Repo) RecordBookingEvent(ctx context.Context, event *models.BookingEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	event.BeforeCreate()
	m.events = append(m.events, *event)
	return nil
}

func (m *Repo) ListBookingEvents(ctx context.Context, bookingID uuid.UUID) ([]models.BookingEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.BookingEvent{}
	for _, e := range m.events {
		if e.BookingID == bookingID.String() {
			out = append(out, e)
		}
	}
	return out, nil
}

func pageOf[T any](items []T, page models.Page) []T {
	start := page.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + page.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
