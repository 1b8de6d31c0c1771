package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carrental/internal/container"
	"github.com/joshua-takyi/carrental/internal/handlers"
	"github.com/joshua-takyi/carrental/internal/middleware"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	cfg := container.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	secure := cfg.IsProduction()
	auth := middleware.AuthMiddleware(container.AuthService)

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"service": "carrental-api",
			})
		})
		v1.Static("/uploads", cfg.UploadDir)
	}

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", middleware.ValidateJSON[models.RegisterRequest](), handlers.Register(container.AuthService))
		authRoutes.POST("/login", middleware.ValidateJSON[models.LoginRequest](), handlers.Login(container.AuthService, secure))
		authRoutes.POST("/logout", handlers.Logout(secure))
		authRoutes.GET("/me", auth, handlers.Me(container.AuthService))
	}

	userRoutes := v1.Group("/user", auth)
	{
		userRoutes.GET("/me", handlers.GetProfile(container.UserService))
		userRoutes.PUT("/me", middleware.ValidateJSON[models.UpdateProfileRequest](), handlers.UpdateProfile(container.UserService))
		userRoutes.POST("/upload", handlers.UploadLicense(container.UserService))
	}

	carRoutes := v1.Group("/car", auth)
	{
		carRoutes.GET("", handlers.ListCars(container.CarService))
		carRoutes.GET("/:id", handlers.GetCar(container.CarService))
		carRoutes.PUT("/:id", handlers.UpdateCar(container.CarService))
		carRoutes.DELETE("/:id", handlers.DeleteCar(container.CarService))
	}

	bookingRoutes := v1.Group("/booking", auth)
	{
		bookingRoutes.GET("", handlers.ListUserBookings(container.BookingService))
		bookingRoutes.POST("/create", middleware.ValidateJSON[models.CreateBookingRequest](), handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
		bookingRoutes.PUT("/:id/cancel", handlers.CancelBooking(container.BookingService))
	}

	adminRoutes := v1.Group("/admin", auth, middleware.RequireAdmin(container.AuthService))
	{
		adminRoutes.GET("/users", handlers.AdminListUsers(container.AdminService))
		adminRoutes.GET("/bookings", handlers.AdminListBookings(container.AdminService))
		adminRoutes.PUT("/bookings/:id/approve", handlers.ApproveBooking(container.AdminService))
		adminRoutes.GET("/bookings/:id/events", handlers.BookingEvents(container.AdminService))
	}

	return r
}
