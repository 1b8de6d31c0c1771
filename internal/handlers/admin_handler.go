package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/joshua-takyi/carrental/internal/services"
)

func AdminListUsers(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := pageFrom(c)
		users, total, err := as.ListUsers(c.Request.Context(), c.Query("role"), page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(users, page, total, "Users retrieved successfully"))
	}
}

func AdminListBookings(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := pageFrom(c)
		bookings, total, err := as.ListBookings(c.Request.Context(), c.Query("status"), page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(bookings, page, total, "Bookings retrieved successfully"))
	}
}

func ApproveBooking(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "Invalid booking ID")
		if !ok {
			return
		}
		booking, err := as.ApproveBooking(c.Request.Context(), adminID, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking approved successfully"))
	}
}

func BookingEvents(as *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "Invalid booking ID")
		if !ok {
			return
		}
		events, err := as.BookingEvents(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(events, len(events), "Booking events retrieved successfully"))
	}
}
