package container

import (
	"log/slog"

	"github.com/joshua-takyi/carrental/internal/config"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/joshua-takyi/carrental/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Repositories groups the storage implementations the services run on.
type Repositories struct {
	Users    models.UserRepo
	Cars     models.CarRepo
	Bookings models.BookingRepo
	Events   models.BookingEventRepo
}

// StoreRepositories wires the Postgres store and, when a client is given, the
// MongoDB activity log.
func StoreRepositories(db *gorm.DB, mongoClient *mongo.Client, mongoDatabase string) Repositories {
	pg := models.PostgresNewRepo(db)
	repos := Repositories{
		Users:    pg,
		Cars:     pg,
		Bookings: pg,
		Events:   models.DiscardEvents{},
	}
	if mongoClient != nil {
		repos.Events = models.MongodbNewRepo(mongoClient, mongoDatabase)
	}
	return repos
}

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config

	AuthService    *services.AuthService
	UserService    *services.UserService
	CarService     *services.CarService
	BookingService *services.BookingService
	AdminService   *services.AdminService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, repos Repositories, images helpers.ImageStore) *Container {
	tokens := helpers.NewTokenManager(cfg.JWTSecret, helpers.TokenTTL)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		AuthService:    services.NewAuthService(repos.Users, tokens, cfg.BcryptCost),
		UserService:    services.NewUserService(repos.Users, images, cfg.BcryptCost),
		CarService:     services.NewCarService(repos.Cars, images),
		BookingService: services.NewBookingService(repos.Bookings, repos.Users, repos.Events, logger),
		AdminService:   services.NewAdminService(repos.Users, repos.Bookings, repos.Events, logger),
	}
}
