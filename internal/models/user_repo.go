package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UsersTable    = "users"
	CarsTable     = "cars"
	BookingsTable = "bookings"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*User, error)
	ListUsers(ctx context.Context, role *Role, page Page) ([]UserSummary, int64, error)
}

func (pr *PostgresRepo) CreateUser(ctx context.Context, user *User) error {
	if err := pr.db.WithContext(ctx).Create(user).Error; err != nil {
		return translatePgError(err)
	}
	return nil
}

// GetUserByEmail returns nil, nil when no user has the address.
func (pr *PostgresRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := pr.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetUserByID returns nil, nil when the id does not resolve.
func (pr *PostgresRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}
	var user User
	err := pr.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return &user, nil
}

func (pr *PostgresRepo) UpdateUser(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}
	db := pr.db.WithContext(ctx)
	if len(fields) > 0 {
		res := db.Model(&User{ID: id}).Updates(fields)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update user: %w", translatePgError(res.Error))
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return pr.GetUserByID(ctx, id)
}

func (pr *PostgresRepo) ListUsers(ctx context.Context, role *Role, page Page) ([]UserSummary, int64, error) {
	base := pr.db.WithContext(ctx).Model(&User{})
	if role != nil {
		base = base.Where("role = ?", *role)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	users := []UserSummary{}
	err := base.Session(&gorm.Session{}).
		Select("users.*, (SELECT COUNT(*) FROM bookings WHERE bookings.user_id = users.id) AS booking_count").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Scan(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}
