package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarRepo interface {
	CreateCar(ctx context.Context, car *Car) error
	ListCars(ctx context.Context, filter CarFilter) ([]Car, error)
	GetCarByID(ctx context.Context, id uuid.UUID) (*Car, error)
	UpdateCar(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*Car, error)
	DeleteCar(ctx context.Context, id uuid.UUID) error
}

func (pr *PostgresRepo) CreateCar(ctx context.Context, car *Car) error {
	return pr.db.WithContext(ctx).Create(car).Error
}

func (pr *PostgresRepo) ListCars(ctx context.Context, filter CarFilter) ([]Car, error) {
	q := pr.db.WithContext(ctx).Model(&Car{})
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if brand := strings.TrimSpace(filter.Brand); brand != "" {
		q = q.Where("brand ILIKE ?", "%"+escapeLike(brand)+"%")
	}
	if filter.FuelType != nil {
		q = q.Where("fuel_type = ?", *filter.FuelType)
	}
	if filter.MinPrice != nil {
		q = q.Where("price_per_day >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price_per_day <= ?", *filter.MaxPrice)
	}
	if filter.Seats != nil {
		q = q.Where("seats = ?", *filter.Seats)
	}

	cars := []Car{}
	if err := q.Order("created_at DESC").Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

// GetCarByID returns nil, nil when the car does not exist.
func (pr *PostgresRepo) GetCarByID(ctx context.Context, id uuid.UUID) (*Car, error) {
	var car Car
	err := pr.db.WithContext(ctx).First(&car, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	return &car, nil
}

func (pr *PostgresRepo) UpdateCar(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*Car, error) {
	db := pr.db.WithContext(ctx)
	if len(fields) > 0 {
		res := db.Model(&Car{ID: id}).Updates(fields)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update car: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return pr.GetCarByID(ctx, id)
}

func (pr *PostgresRepo) DeleteCar(ctx context.Context, id uuid.UUID) error {
	res := pr.db.WithContext(ctx).Delete(&Car{}, "id = ?", id)
	if isForeignKeyViolation(res.Error) {
		return ErrCarInUse
	}
	if res.Error != nil {
		return fmt.Errorf("failed to delete car: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCarNotFound
	}
	return nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
