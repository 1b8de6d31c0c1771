package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/carrental/internal/config"
	"github.com/joshua-takyi/carrental/internal/connect"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"gorm.io/gorm"
)

type seedUser struct {
	name, email, password, phone string
	role                         models.Role
}

var users = []seedUser{
	{"Admin User", "admin@carrental.com", "admin123", "+977-9800000001", models.RoleAdmin},
	{"John Doe", "john@example.com", "password123", "+977-9800000002", models.RoleUser},
	{"Jane Smith", "jane@example.com", "password123", "+977-9800000003", models.RoleUser},
}

var cars = []models.Car{
	{Name: "Corolla", Brand: "Toyota", Type: models.CarTypeSedan, FuelType: models.FuelPetrol, Seats: 5, PricePerDay: 50, ImageURL: image("corolla")},
	{Name: "Civic", Brand: "Honda", Type: models.CarTypeSedan, FuelType: models.FuelPetrol, Seats: 5, PricePerDay: 55, ImageURL: image("civic")},
	{Name: "CR-V", Brand: "Honda", Type: models.CarTypeSUV, FuelType: models.FuelDiesel, Seats: 7, PricePerDay: 80, ImageURL: image("crv")},
	{Name: "Fortuner", Brand: "Toyota", Type: models.CarTypeSUV, FuelType: models.FuelDiesel, Seats: 7, PricePerDay: 100, ImageURL: image("fortuner")},
	{Name: "Swift", Brand: "Suzuki", Type: models.CarTypeHatchback, FuelType: models.FuelPetrol, Seats: 5, PricePerDay: 35, ImageURL: image("swift")},
	{Name: "Model 3", Brand: "Tesla", Type: models.CarTypeSedan, FuelType: models.FuelElectric, Seats: 5, PricePerDay: 120, ImageURL: image("model3")},
	{Name: "Prius", Brand: "Toyota", Type: models.CarTypeHatchback, FuelType: models.FuelHybrid, Seats: 5, PricePerDay: 60, ImageURL: image("prius")},
	{Name: "Hiace", Brand: "Toyota", Type: models.CarTypeVan, FuelType: models.FuelDiesel, Seats: 12, PricePerDay: 90, ImageURL: image("hiace")},
	{Name: "Hilux", Brand: "Toyota", Type: models.CarTypeTruck, FuelType: models.FuelDiesel, Seats: 5, PricePerDay: 85, ImageURL: image("hilux")},
	{Name: "Ranger", Brand: "Ford", Type: models.CarTypeTruck, FuelType: models.FuelDiesel, Seats: 5, PricePerDay: 90, ImageURL: image("ranger")},
}

func image(name string) *string {
	url := "https://example.com/images/" + name + ".jpg"
	return &url
}

func main() {
	_ = godotenv.Load(".env.local", ".env")
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(context.Background(), logger); err != nil {
		logger.Error("Seed failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Seed completed", "users", len(users), "cars", len(cars))
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := connect.PostgresConnect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := connect.PostgresDisconnect(db); err != nil {
			logger.Error("Failed to close PostgreSQL", "error", err)
		}
	}()

	if err := models.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return seed(ctx, db, cfg.BcryptCost, logger)
}

// seed wipes bookings, cars and users, then inserts the fixtures.
func seed(ctx context.Context, db *gorm.DB, cost int, logger *slog.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []interface{}{&models.Booking{}, &models.Car{}, &models.User{}} {
			if err := wipe.Delete(m).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", m, err)
			}
		}

		repo := models.PostgresNewRepo(tx)
		for _, u := range users {
			hash, err := helpers.HashPassword(u.password, cost)
			if err != nil {
				return err
			}
			phone := u.phone
			user := &models.User{
				Name:     u.name,
				Email:    u.email,
				Password: hash,
				Phone:    &phone,
				Role:     u.role,
			}
			if err := repo.CreateUser(ctx, user); err != nil {
				return fmt.Errorf("failed to create user %s: %w", u.email, err)
			}
			logger.Info("Created user", "email", user.Email, "role", user.Role)
		}

		for i := range cars {
			car := cars[i]
			if err := repo.CreateCar(ctx, &car); err != nil {
				return fmt.Errorf("failed to create car %s: %w", car.Name, err)
			}
			logger.Info("Created car", "brand", car.Brand, "name", car.Name)
		}
		return nil
	})
}
