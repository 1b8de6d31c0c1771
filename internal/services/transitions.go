package services

import (
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Actor string

const (
	ActorOwner Actor = "owner"
	ActorAdmin Actor = "admin"
)

var bookingTransitions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "carrental_booking_transitions_total",
		Help: "Booking status changes by target status",
	},
	[]string{"from", "to"},
)

// allowedTransitions[from][to] names who may move a booking. CANCELLED and
// COMPLETED have no outgoing edges.
var allowedTransitions = map[models.BookingStatus]map[models.BookingStatus]Actor{
	models.StatusPending: {
		models.StatusConfirmed: ActorAdmin,
		models.StatusCancelled: ActorOwner,
	},
	models.StatusConfirmed: {
		models.StatusCancelled: ActorOwner,
	},
}

// Rejection messages for transitions the table does not allow.
var rejections = map[models.BookingStatus]map[models.BookingStatus]string{
	models.StatusConfirmed: {
		models.StatusConfirmed: "Booking is already confirmed",
	},
	models.StatusCancelled: {
		models.StatusConfirmed: "Cannot approve a cancelled booking",
		models.StatusCancelled: "Booking is already cancelled",
	},
	models.StatusCompleted: {
		models.StatusConfirmed: "Booking is already completed",
		models.StatusCancelled: "Cannot cancel a completed booking",
	},
}

// applyTransition checks that actor may move b to status to.
func applyTransition(b *models.Booking, to models.BookingStatus, actor Actor) error {
	if who, ok := allowedTransitions[b.Status][to]; ok && who == actor {
		return nil
	}
	if msg, ok := rejections[b.Status][to]; ok {
		return badRequest(msg)
	}
	return badRequest("Booking cannot be moved from " + string(b.Status) + " to " + string(to))
}

func recordTransition(from, to models.BookingStatus) {
	bookingTransitions.WithLabelValues(string(from), string(to)).Inc()
}
